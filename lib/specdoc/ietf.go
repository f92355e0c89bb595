package specdoc

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/standards-watch/activities/lib/text"
	"golang.org/x/net/html"
)

// IETFParser reads RFC and Internet-Draft pages. The various IETF mirrors
// (tools.ietf.org, www.ietf.org, datatracker.ietf.org) mostly redirect to a
// canonical html rendering, so much of this is URL routing.
type IETFParser struct{}

func (p IETFParser) Parse(root *html.Node, fetchedURL string) (Data, error) {
	u, err := url.Parse(fetchedURL)
	if err != nil {
		return Data{}, err
	}
	host := strings.ToLower(u.Host)
	parts := splitPath(u.Path)

	switch host {
	case "tools.ietf.org":
		if len(parts) == 0 {
			return Data{}, ErrNotSpecification
		}
		switch parts[0] {
		case "html":
			identifier := metaContent(root, "DC.Identifier")
			if strings.HasPrefix(strings.ToLower(identifier), "urn:ietf:rfc") {
				rfc := identifier[strings.LastIndex(identifier, ":")+1:]
				newURL := htmlURL("rfc" + rfc)
				if CleanURL(fetchedURL) != CleanURL(newURL) {
					return Data{}, betterURLError{newURL}
				}
			}
			draftName, draftNumber := parseDraftName(parts[len(parts)-1])
			if draftNumber != "" {
				return Data{}, betterURLError{htmlURL(draftName)}
			}
		case "id", "pdf":
			if len(parts) < 2 {
				return Data{}, ErrNotSpecification
			}
			return Data{}, betterURLError{htmlURL(parts[1])}
		default:
			return Data{}, ErrNotSpecification
		}
	case "www.ietf.org":
		if len(parts) < 2 || parts[0] != "id" {
			return Data{}, ErrNotSpecification
		}
		draftName := strings.TrimSuffix(parts[1], ".txt")
		draftName = strings.TrimSuffix(draftName, ".html")
		draftName, _ = parseDraftName(draftName)
		return Data{}, betterURLError{htmlURL(draftName)}
	case "datatracker.ietf.org":
		if len(parts) < 2 || parts[0] != "doc" {
			return Data{}, ErrNotSpecification
		}
		return Data{}, betterURLError{htmlURL(parts[1])}
	}

	data := Data{
		Org: "IETF",
		URL: CleanURL(fetchedURL),
	}
	data.Title = metaContent(root, "DC.Title")
	if data.Title == "" {
		if title := findFirst(root, "title"); title != nil {
			data.Title = nodeText(title)
		}
	}
	data.Title = text.CollapseWhitespace(data.Title)

	for _, name := range []string{"description", "dcterms.abstract", "DC.Description.Abstract"} {
		if content := metaContent(root, name); content != "" {
			data.Description = text.CollapseWhitespace(content)
			break
		}
	}

	return data, nil
}

// parseDraftName splits a draft identifier into its name and two-digit
// revision. Identifiers without a trailing revision come back unchanged with
// an empty number.
func parseDraftName(in string) (string, string) {
	idx := strings.LastIndex(in, "-")
	if idx < 0 {
		return in, ""
	}
	name, number := in[:idx], in[idx+1:]
	if len(number) == 2 && isDigits(number) {
		return name, number
	}
	return in, ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// htmlURL is the canonical html rendering for a document name.
func htmlURL(docName string) string {
	return fmt.Sprintf("https://tools.ietf.org/html/%s", docName)
}

// splitPath breaks a URL path into its non-empty components.
func splitPath(p string) []string {
	var parts []string
	for _, part := range strings.Split(p, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
