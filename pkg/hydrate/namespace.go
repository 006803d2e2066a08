package hydrate

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/vango-dev/hydrate/pkg/dom"
	"github.com/vango-dev/hydrate/pkg/vdom"
)

// resolveSVG returns whether v and its subtree are created in the SVG
// namespace, given that the surrounding context is (or is not) SVG.
func resolveSVG(inSVG bool, v *vdom.VNode) bool {
	return inSVG || v.SVG || strings.EqualFold(v.Tag, "svg")
}

// namespaceFor maps an SVG decision to the namespace used for creation.
func namespaceFor(svg bool) string {
	if svg {
		return dom.NamespaceSVG
	}
	return dom.NamespaceHTML
}

// tagMatches reports whether an existing element can be adopted for tag.
// HTML tag names compare case-insensitively; SVG tag names are
// case-sensitive.
func tagMatches(n *html.Node, tag string) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	if n.Namespace == dom.NamespaceSVG {
		return n.Data == tag
	}
	return strings.EqualFold(n.Data, tag)
}
