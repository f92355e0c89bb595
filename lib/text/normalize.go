package text

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// CollapseWhitespace rewrites any run of whitespace, newlines included, as a
// single space and trims the ends. Spec pages wrap their abstracts over many
// lines; registry entries hold them on one.
func CollapseWhitespace(in string) string {
	return strings.Join(strings.Fields(in), " ")
}

// FoldKey produces the comparison key used for duplicate detection: NFKC
// normalised, case folded and trimmed, so "Web Thing API " and "web thing
// api" collide.
func FoldKey(in string) string {
	folded := cases.Fold().String(norm.NFKC.String(in))
	return strings.TrimSpace(folded)
}
