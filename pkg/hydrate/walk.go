package hydrate

import (
	"golang.org/x/net/html"

	herrors "github.com/vango-dev/hydrate/internal/errors"
	"github.com/vango-dev/hydrate/pkg/dom"
	"github.com/vango-dev/hydrate/pkg/reactive"
	"github.com/vango-dev/hydrate/pkg/vdom"
)

// scope is the context threaded through one walk: the owner new bindings
// belong to, the namespace new elements are created in, and the sinks for
// counts and branch errors.
type scope struct {
	h     *Hydrator
	owner *reactive.Owner
	svg   bool
	stats *Stats
	errs  []error
}

func newScope(h *Hydrator, owner *reactive.Owner, svg bool) *scope {
	return &scope{h: h, owner: owner, svg: svg, stats: &Stats{}}
}

// child returns a scope for a subtree. It shares the parent's sinks.
func (s *scope) child(owner *reactive.Owner, svg bool) *scope {
	c := *s
	c.owner = owner
	c.svg = svg
	c.errs = nil
	return &c
}

// merge moves a child scope's errors into s.
func (s *scope) merge(c *scope) {
	s.errs = append(s.errs, c.errs...)
}

func (s *scope) fail(err *herrors.Error) {
	s.h.metrics.recordError(err.Code)
	s.errs = append(s.errs, err)
}

// reconcile pairs v with the DOM nodes of parent starting at cursor and
// stopping before end. New nodes are inserted before the node they replace,
// or before end once the range is exhausted. It returns the first node
// not consumed by v.
func (s *scope) reconcile(parent *html.Node, v *vdom.VNode, cursor, end *html.Node) *html.Node {
	switch v.Kind {
	case vdom.KindText:
		return s.text(parent, v.Text, cursor, end)
	case vdom.KindElement:
		return s.element(parent, v, cursor, end)
	case vdom.KindPlaceholder:
		cursor = s.skipWhitespace(cursor, end)
		if cursor == end {
			return end
		}
		return cursor.NextSibling
	case vdom.KindFragment:
		return s.reconcileChildren(parent, v.Children, cursor, end)
	case vdom.KindReactive:
		return s.bindRegion(parent, v.Producer, cursor, end)
	case vdom.KindInvalid:
		s.fail(herrors.New("H004").WithTag(tagOf(parent)).Wrap(v.Err))
		return cursor
	default:
		s.fail(herrors.New("H004").WithTag(tagOf(parent)).WithDetailf("unknown node kind %s", v.Kind))
		return cursor
	}
}

func (s *scope) text(parent *html.Node, data string, cursor, end *html.Node) *html.Node {
	if cursor != end && cursor.Type == html.TextNode {
		if cursor.Data != data {
			cursor.Data = data
		}
		s.adopted()
		return cursor.NextSibling
	}

	t := s.h.doc.CreateText(data)
	s.created()
	if cursor == end {
		dom.InsertBefore(parent, t, end)
		return end
	}
	next := cursor.NextSibling
	dom.InsertBefore(parent, t, cursor)
	s.discard(cursor)
	return next
}

func (s *scope) element(parent *html.Node, v *vdom.VNode, cursor, end *html.Node) *html.Node {
	cursor = s.skipWhitespace(cursor, end)
	svg := resolveSVG(s.svg, v)

	var el, next *html.Node
	switch {
	case cursor != end && tagMatches(cursor, v.Tag):
		el, next = cursor, cursor.NextSibling
		s.adopted()
	case cursor != end:
		s.h.logger.Debug("hydrate: structure mismatch",
			"code", "H001", "want", v.Tag, "got", describe(cursor))
		el = s.h.doc.CreateElementNS(namespaceFor(svg), v.Tag)
		next = cursor.NextSibling
		dom.InsertBefore(parent, el, cursor)
		s.discard(cursor)
		s.created()
	default:
		s.h.logger.Debug("hydrate: node exhausted", "code", "H002", "want", v.Tag)
		el = s.h.doc.CreateElementNS(namespaceFor(svg), v.Tag)
		next = end
		dom.InsertBefore(parent, el, end)
		s.created()
	}

	s.bindProps(el, v.Tag, v.Props)
	c := s.child(s.owner, svg || el.Namespace == dom.NamespaceSVG)
	c.reconcileChildren(el, v.Children, el.FirstChild, nil)
	s.merge(c)
	return next
}

// skipWhitespace advances past insignificant whitespace text.
func (s *scope) skipWhitespace(cursor, end *html.Node) *html.Node {
	for cursor != end && dom.IsWhitespaceText(cursor) && s.h.markers[cursor] == nil {
		cursor = cursor.NextSibling
	}
	return cursor
}

func (s *scope) adopted() {
	s.stats.Adopted++
	s.h.metrics.incAdopted()
}

func (s *scope) created() {
	s.stats.Created++
	s.h.metrics.incCreated()
}

func (s *scope) discard(n *html.Node) {
	dom.Remove(n)
	s.h.doc.Release(n)
	s.stats.Discarded++
	s.h.metrics.incDiscarded()
}

func tagOf(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	return n.Data
}

func describe(n *html.Node) string {
	switch n.Type {
	case html.ElementNode:
		return "<" + n.Data + ">"
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	default:
		return "#node"
	}
}
