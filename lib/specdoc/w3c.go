package specdoc

import (
	"errors"
	"strings"

	"github.com/standards-watch/activities/lib/text"
	"golang.org/x/net/html"
)

// W3CParser reads the metadata section W3C-style specs carry: a <dl> of
// "This version" / "Latest version" / "Editor's draft" links, an <h1> title
// and an abstract. WHATWG specs share the layout, so the org name is
// configurable.
type W3CParser struct {
	OrgName string
}

func (p W3CParser) org() string {
	if p.OrgName == "" {
		return "W3C"
	}
	return p.OrgName
}

func (p W3CParser) Parse(root *html.Node, fetchedURL string) (Data, error) {
	if refresh := metaRefreshURL(root); refresh != "" {
		return Data{}, betterURLError{refresh}
	}

	thisURL := p.metadataLink(root, "this version")
	latestURL := p.metadataLink(root, "latest version")
	edURL := p.metadataLink(root, "editor's draft")

	// Prefer the editor's draft, then the latest version. Only settle for
	// the page we were given when it is the most canonical one.
	switch {
	case edURL != "" && edURL != thisURL:
		return Data{}, betterURLError{edURL}
	case latestURL != "" && latestURL != thisURL:
		return Data{}, betterURLError{latestURL}
	}

	data := Data{Org: p.org()}
	if thisURL != "" {
		data.URL = thisURL
	} else {
		data.URL = CleanURL(fetchedURL)
	}

	h1 := findFirst(root, "h1")
	if h1 == nil {
		return Data{}, errors.New("can't find the specification's title")
	}
	data.Title = text.CollapseWhitespace(nodeText(h1))

	abstract := findByID(root, "abstract")
	if abstract == nil {
		return Data{}, errors.New("can't find the specification's description")
	}
	body := nextSiblingElement(abstract, "p", "div")
	if body == nil {
		// Some specs put the abstract text inside the container itself.
		body = abstract
	}
	data.Description = text.CollapseWhitespace(nodeText(body))
	if data.Description == "" {
		return Data{}, errors.New("can't find the specification's description")
	}

	return data, nil
}

// metadataLink pulls a link out of the spec's metadata <dl>: the <dd>
// following the <dt> whose text starts with prefix (matched case
// insensitively). W3C pages put the URL in the anchor's text.
func (p W3CParser) metadataLink(root *html.Node, prefix string) string {
	dl := findFirst(root, "dl")
	if dl == nil {
		return ""
	}

	var link string
	walk(dl, func(n *html.Node) bool {
		if n.Data != "dt" {
			return true
		}
		label := strings.ToLower(text.CollapseWhitespace(nodeText(n)))
		if !strings.HasPrefix(label, prefix) {
			return true
		}
		dd := nextSiblingElement(n, "dd")
		if dd == nil {
			return false
		}
		a := findFirst(dd, "a")
		if a == nil {
			return false
		}
		link = CleanURL(text.CollapseWhitespace(nodeText(a)))
		return false
	})
	return link
}
