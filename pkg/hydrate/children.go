package hydrate

import (
	"golang.org/x/net/html"

	"github.com/vango-dev/hydrate/pkg/vdom"
)

// reconcileChildren aligns children against the DOM range [cursor, end)
// of parent, in order. DOM nodes left over after the last child are not
// touched. It returns the first unconsumed node.
func (s *scope) reconcileChildren(parent *html.Node, children []*vdom.VNode, cursor, end *html.Node) *html.Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		cursor = s.reconcile(parent, c, cursor, end)
	}
	return cursor
}

// flatten splices fragments into a flat leaf sequence.
func flatten(out, nodes []*vdom.VNode) []*vdom.VNode {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.Kind == vdom.KindFragment {
			out = flatten(out, n.Children)
			continue
		}
		out = append(out, n)
	}
	return out
}
