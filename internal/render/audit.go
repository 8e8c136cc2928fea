package render

import (
	"strings"

	"golang.org/x/net/html"
)

// ExternalRef is one network reference found in a rendered page.
type ExternalRef struct {
	Element string // img, script, or link
	Attr    string // src or href
	URL     string
}

// resourceRels are link rel values that make the browser fetch the href.
// Metadata rels such as canonical or alternate load nothing and do not
// break self-containment.
var resourceRels = map[string]bool{
	"stylesheet":       true,
	"icon":             true,
	"shortcut":         true,
	"apple-touch-icon": true,
	"mask-icon":        true,
	"manifest":         true,
	"preload":          true,
	"modulepreload":    true,
	"prefetch":         true,
}

// FindExternalRefs parses a rendered page and reports every http(s) or
// protocol-relative reference in img[src], script[src], and resource
// link[href]. A fully self-contained page reports none; analytics
// snippets are the usual legitimate source.
func FindExternalRefs(page string) ([]ExternalRef, error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, err
	}

	var refs []ExternalRef
	collectExternalRefs(doc, &refs)
	return refs, nil
}

// collectExternalRefs traverses the DOM and records external references.
func collectExternalRefs(n *html.Node, refs *[]ExternalRef) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "img", "script":
			if val, ok := attrValue(n, "src"); ok && isNetworkURL(val) {
				*refs = append(*refs, ExternalRef{Element: n.Data, Attr: "src", URL: val})
			}
		case "link":
			if linkLoadsResource(n) {
				if val, ok := attrValue(n, "href"); ok && isNetworkURL(val) {
					*refs = append(*refs, ExternalRef{Element: n.Data, Attr: "href", URL: val})
				}
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectExternalRefs(c, refs)
	}
}

// linkLoadsResource reports whether a link element's rel makes it fetch.
// rel is a space-separated token list ("shortcut icon").
func linkLoadsResource(n *html.Node) bool {
	rel, ok := attrValue(n, "rel")
	if !ok {
		return false
	}
	for _, token := range strings.Fields(strings.ToLower(rel)) {
		if resourceRels[token] {
			return true
		}
	}
	return false
}

func attrValue(n *html.Node, name string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

// isNetworkURL reports whether val points at a network resource.
func isNetworkURL(val string) bool {
	return strings.HasPrefix(val, "http://") ||
		strings.HasPrefix(val, "https://") ||
		strings.HasPrefix(val, "//")
}
