package specdoc

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Data is the metadata pulled out of a specification page.
type Data struct {
	Title       string
	Description string
	Org         string
	URL         string
}

// Parser extracts Data from a parsed specification page. Parse may return a
// better-URL error when the page points at a more canonical location; the
// caller should refetch there.
type Parser interface {
	Parse(root *html.Node, fetchedURL string) (Data, error)
}

// ErrNotSpecification is returned for URLs on a known host that don't point
// at a specification document.
var ErrNotSpecification = errors.New("that doesn't look like a specification")

type betterURLError struct {
	url string
}

func (e betterURLError) Error() string {
	return fmt.Sprintf("better URL available: %s", e.url)
}

// BetterURL reports whether err carries a more canonical URL to fetch
// instead.
func BetterURL(err error) (string, bool) {
	var b betterURLError
	if errors.As(err, &b) {
		return b.url, true
	}
	return "", false
}

// parsersByHost routes a specification's hostname to the parser for its
// standards body.
var parsersByHost = map[string]Parser{
	"www.w3.org":           W3CParser{},
	"w3c.github.io":        W3CParser{},
	"wicg.github.io":       W3CParser{},
	"dev.w3.org":           W3CParser{},
	"dvcs.w3.org":          W3CParser{},
	"drafts.csswg.org":     W3CParser{},
	"w3ctag.github.io":     W3CParser{},
	"datatracker.ietf.org": IETFParser{},
	"www.ietf.org":         IETFParser{},
	"tools.ietf.org":       IETFParser{},
	"http2.github.io":      IETFParser{},
	"httpwg.github.io":     IETFParser{},
	"httpwg.org":           IETFParser{},
}

// ParserFor picks the parser from the hostname of the originally requested
// URL. Anything under .spec.whatwg.org is a WHATWG spec.
func ParserFor(rawURL string) (Parser, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	host := strings.ToLower(u.Host)

	if parser, ok := parsersByHost[host]; ok {
		return parser, nil
	}
	if strings.HasSuffix(host, ".spec.whatwg.org") {
		return W3CParser{OrgName: "WHATWG"}, nil
	}
	return nil, fmt.Errorf("can't figure out which organisation %s belongs to", host)
}

// CleanURL canonicalises a specification URL: lowercased host, no trailing
// slash, query and fragment dropped.
func CleanURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	path := strings.TrimSuffix(u.Path, "/")
	return fmt.Sprintf("%s://%s%s", u.Scheme, strings.ToLower(u.Host), path)
}
