// Package htmlpath rewrites relative URLs inside HTML fragments to absolute
// ones, so article bodies survive contexts that have no base URL, such as
// feed readers.
package htmlpath

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// AbsolutizeURLs resolves relative img src and a href values in an HTML
// fragment against base (typically the article's canonical directory URL).
//
// Left untouched:
//   - absolute URLs and protocol-relative ones
//   - data: URIs
//   - pure fragment anchors (#section)
func AbsolutizeURLs(fragment, base string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing base URL: %w", err)
	}

	nodes, err := parseFragment(fragment)
	if err != nil {
		return "", fmt.Errorf("parsing fragment: %w", err)
	}

	var buf strings.Builder
	for _, n := range nodes {
		rewriteNode(n, baseURL)
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("rendering fragment: %w", err)
		}
	}
	return buf.String(), nil
}

// parseFragment parses with a body context so the fragment is not wrapped
// in <html><body>.
func parseFragment(fragment string) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	return html.ParseFragment(strings.NewReader(fragment), context)
}

// rewriteNode traverses the tree and rewrites relative URL attributes.
func rewriteNode(n *html.Node, base *url.URL) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "img":
			rewriteAttr(n, "src", base)
		case "a":
			rewriteAttr(n, "href", base)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, base)
	}
}

// rewriteAttr resolves one attribute against the base URL if it is relative.
func rewriteAttr(n *html.Node, attrName string, base *url.URL) {
	for i, attr := range n.Attr {
		if attr.Key != attrName {
			continue
		}
		if !isRelative(attr.Val) {
			continue
		}
		ref, err := url.Parse(attr.Val)
		if err != nil {
			continue
		}
		n.Attr[i].Val = base.ResolveReference(ref).String()
	}
}

// isRelative reports whether the value should be resolved.
func isRelative(val string) bool {
	if val == "" {
		return false
	}
	if strings.HasPrefix(val, "#") ||
		strings.HasPrefix(val, "//") ||
		strings.HasPrefix(val, "data:") {
		return false
	}
	if u, err := url.Parse(val); err != nil || u.IsAbs() {
		return false
	}
	return true
}
