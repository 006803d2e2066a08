package hydrate

import (
	"golang.org/x/net/html"

	herrors "github.com/vango-dev/hydrate/internal/errors"
	"github.com/vango-dev/hydrate/pkg/dom"
	"github.com/vango-dev/hydrate/pkg/reactive"
	"github.com/vango-dev/hydrate/pkg/vdom"
)

// Region is the DOM owned by one reactive child. Its nodes are the
// siblings strictly between two empty text markers; nothing outside the
// region inserts between them.
type Region struct {
	h        *Hydrator
	producer func() any
	svg      bool

	// owner is the scope the region was bound in; run is the child scope
	// holding the bindings made by the latest output.
	owner *reactive.Owner
	run   *reactive.Owner

	start, end *html.Node
	effect     *reactive.Effect
	patches    int
}

// bindRegion binds producer at cursor and returns the node after the
// region. The producer runs once immediately; every later run patches the
// region in place.
func (s *scope) bindRegion(parent *html.Node, producer func() any, cursor, end *html.Node) *html.Node {
	r := &Region{
		h:        s.h,
		producer: producer,
		svg:      s.svg,
		owner:    s.owner,
		start:    s.h.doc.CreateText(""),
		end:      s.h.doc.CreateText(""),
	}
	s.h.markers[r.start] = r
	s.h.markers[r.end] = r
	s.h.regions = append(s.h.regions, r)
	s.stats.Regions++
	s.owner.OnCleanup(r.teardown)

	var next *html.Node
	bound := false
	r.effect = s.h.rt.CreateEffect(s.owner, func() reactive.Cleanup {
		value := r.producer()
		if !bound {
			bound = true
			s.h.rt.Untracked(func() {
				next = r.bind(s, parent, value, cursor, end)
			})
			return nil
		}
		s.h.rt.Untracked(func() {
			r.patch(value)
		})
		return nil
	})
	return next
}

// bind claims the DOM nodes matching the first output.
func (r *Region) bind(s *scope, parent *html.Node, value any, cursor, end *html.Node) *html.Node {
	leaves, err := normalizeLeaves(value)
	if err != nil {
		s.fail(herrors.New("H004").WithTag(tagOf(parent)).Wrap(err))
		leaves = nil
	}
	if len(leaves) > 0 && leaves[0].Kind != vdom.KindText {
		cursor = s.skipWhitespace(cursor, end)
	}

	dom.InsertBefore(parent, r.start, cursor)
	r.run = reactive.NewOwner(r.owner)
	c := s.child(r.run, r.svg)
	next := c.reconcileChildren(parent, leaves, cursor, end)
	s.merge(c)
	dom.InsertBefore(parent, r.end, next)
	return next
}

// patch reconciles the region's current nodes against a new output.
// An unrenderable output leaves the region as it was.
func (r *Region) patch(value any) {
	parent := r.end.Parent
	if parent == nil || r.start.Parent != parent {
		return
	}
	leaves, err := normalizeLeaves(value)
	if err != nil {
		r.h.metrics.recordError("H004")
		r.h.reportPatchError(herrors.New("H004").WithTag(tagOf(parent)).Wrap(err))
		return
	}

	// Nested regions and listeners of the previous output go first; their
	// markers leave the DOM with them.
	r.run.Dispose()
	r.run = reactive.NewOwner(r.owner)

	s := newScope(r.h, r.run, r.svg)
	cursor := r.start.NextSibling
	if len(leaves) > 0 && leaves[0].Kind != vdom.KindText {
		cursor = s.skipWhitespace(cursor, r.end)
	}
	next := s.reconcileChildren(parent, leaves, cursor, r.end)
	for n := next; n != nil && n != r.end; {
		following := n.NextSibling
		s.discard(n)
		n = following
	}

	r.patches++
	s.stats.Patches++
	r.h.metrics.incPatches()
	r.h.stats.add(*s.stats)
	r.h.logger.Debug("hydrate: region patched",
		"leaves", len(leaves),
		"created", s.stats.Created,
		"discarded", s.stats.Discarded,
	)
	for _, err := range s.errs {
		r.h.reportPatchError(err)
	}
}

// teardown stops the region and removes its markers from the DOM.
func (r *Region) teardown() {
	delete(r.h.markers, r.start)
	delete(r.h.markers, r.end)
	dom.Remove(r.start)
	dom.Remove(r.end)
	for i, other := range r.h.regions {
		if other == r {
			r.h.regions = append(r.h.regions[:i], r.h.regions[i+1:]...)
			break
		}
	}
}

// Nodes returns the nodes currently held by the region, in order.
func (r *Region) Nodes() []*html.Node {
	var out []*html.Node
	if r.start.Parent == nil {
		return out
	}
	for n := r.start.NextSibling; n != nil && n != r.end; n = n.NextSibling {
		out = append(out, n)
	}
	return out
}

// Boundary returns the node the region inserts before: its end marker.
func (r *Region) Boundary() *html.Node {
	return r.end
}

// Patches returns how many times the region has been patched.
func (r *Region) Patches() int {
	return r.patches
}

// Active reports whether the region is still bound.
func (r *Region) Active() bool {
	return r.effect != nil && !r.effect.IsDisposed()
}

// normalizeLeaves turns producer output into a flat leaf sequence.
func normalizeLeaves(value any) ([]*vdom.VNode, error) {
	nodes, err := vdom.Normalize(value)
	if err != nil {
		return nil, err
	}
	return flatten(nil, nodes), nil
}
