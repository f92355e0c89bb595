package specdoc

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Traversal helpers over the x/net/html node tree. These cover the handful
// of shapes spec pages use for their metadata; nothing here tries to be a
// general query language.

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// walk visits every element node depth first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if n.Type == html.ElementNode && !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

func findFirst(root *html.Node, tag string) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) bool {
		if n.Data == tag {
			found = n
			return false
		}
		return true
	})
	return found
}

func findByID(root *html.Node, id string) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) bool {
		if attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// nodeText concatenates the text content below n.
func nodeText(n *html.Node) string {
	var buf bytes.Buffer
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return buf.String()
}

// nextSiblingElement returns the first following sibling whose tag is one of
// names.
func nextSiblingElement(n *html.Node, names ...string) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type != html.ElementNode {
			continue
		}
		for _, name := range names {
			if s.Data == name {
				return s
			}
		}
	}
	return nil
}

// metaContent returns the content attribute of <meta name=...>, "" when
// absent.
func metaContent(root *html.Node, name string) string {
	var content string
	walk(root, func(n *html.Node) bool {
		if n.Data == "meta" && strings.EqualFold(attr(n, "name"), name) {
			content = attr(n, "content")
			return false
		}
		return true
	})
	return strings.ReplaceAll(content, "\n", " ")
}

// metaRefreshURL extracts the target of <meta http-equiv="Refresh"
// content="0; URL=...">, "" when the page has none.
func metaRefreshURL(root *html.Node) string {
	var target string
	walk(root, func(n *html.Node) bool {
		if n.Data != "meta" || !strings.EqualFold(attr(n, "http-equiv"), "refresh") {
			return true
		}
		content := attr(n, "content")
		parts := strings.SplitN(content, ";", 2)
		if len(parts) != 2 {
			return true
		}
		kv := strings.SplitN(parts[1], "=", 2)
		if len(kv) != 2 {
			return true
		}
		target = strings.TrimSpace(kv[1])
		return false
	})
	return target
}
