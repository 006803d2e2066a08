package hydrate

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"

	herrors "github.com/vango-dev/hydrate/internal/errors"
	"github.com/vango-dev/hydrate/pkg/dom"
	"github.com/vango-dev/hydrate/pkg/reactive"
	"github.com/vango-dev/hydrate/pkg/vdom"
)

const tracerName = "github.com/vango-dev/hydrate"

// Sentinel errors, comparable with errors.Is.
var (
	ErrInvalidHandler    = herrors.New("H003")
	ErrUnrenderableChild = herrors.New("H004")
	ErrAlreadyHydrated   = herrors.New("H005")
)

// Stats counts what hydration did to the DOM.
type Stats struct {
	Adopted   int
	Created   int
	Discarded int
	Regions   int
	Patches   int
}

// Hydrator binds delta trees to DOM nodes of one Document.
// A Hydrator is confined to the goroutine that drives its Runtime.
type Hydrator struct {
	doc *dom.Document
	rt  *reactive.Runtime

	logger      *slog.Logger
	metrics     *Metrics
	tracer      trace.Tracer
	eventPrefix string
	onError     func(error)

	// owner scopes every binding made by this Hydrator.
	owner *reactive.Owner

	hydrated map[*html.Node]bool
	markers  map[*html.Node]*Region
	regions  []*Region
	stats    Stats
}

// New creates a Hydrator for doc whose reactive bindings run on rt.
func New(doc *dom.Document, rt *reactive.Runtime, opts ...Option) *Hydrator {
	h := &Hydrator{
		doc:         doc,
		rt:          rt,
		logger:      slog.Default(),
		tracer:      otel.Tracer(tracerName),
		eventPrefix: defaultEventPrefix(),
		owner:       reactive.NewOwner(nil),
		hydrated:    make(map[*html.Node]bool),
		markers:     make(map[*html.Node]*Region),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Document returns the document this Hydrator mutates.
func (h *Hydrator) Document() *dom.Document {
	return h.doc
}

// Stats returns totals across every hydration and patch so far.
func (h *Hydrator) Stats() Stats {
	return h.stats
}

// Regions returns the live dynamic regions in creation order.
func (h *Hydrator) Regions() []*Region {
	out := make([]*Region, len(h.regions))
	copy(out, h.regions)
	return out
}

// Hydrate binds delta to root and returns the node now standing at root's
// position. That is root itself unless the root element had to be
// replaced. A nil root renders delta from scratch.
//
// Errors from individual branches are joined; the rest of the tree is
// hydrated regardless.
func (h *Hydrator) Hydrate(delta *vdom.VNode, root *html.Node) (*html.Node, error) {
	return h.HydrateContext(context.Background(), delta, root)
}

// HydrateContext is Hydrate with a trace span parented on ctx.
func (h *Hydrator) HydrateContext(ctx context.Context, delta *vdom.VNode, root *html.Node) (*html.Node, error) {
	_, span := h.startSpan(ctx, "hydrate", delta)
	defer span.End()

	start := time.Now()
	node, stats, err := h.hydrate(delta, root)
	h.metrics.observeDuration(time.Since(start))
	endSpan(span, stats, err)

	h.logger.Debug("hydrate complete",
		"adopted", stats.Adopted,
		"created", stats.Created,
		"discarded", stats.Discarded,
		"regions", stats.Regions,
		"duration", time.Since(start),
	)
	return node, err
}

// Render builds fresh DOM for delta, with the same bindings Hydrate would
// attach. It is the cold-render counterpart hydration output is compared
// against.
func (h *Hydrator) Render(delta *vdom.VNode) (*html.Node, error) {
	return h.Hydrate(delta, nil)
}

// Dispose tears down every binding: effects stop, listeners are detached
// and region markers are removed from the DOM.
func (h *Hydrator) Dispose() {
	h.owner.Dispose()
	h.owner = reactive.NewOwner(nil)
}

func (h *Hydrator) hydrate(delta *vdom.VNode, root *html.Node) (*html.Node, Stats, error) {
	if delta == nil {
		err := herrors.New("H004").WithDetail("nil delta tree")
		h.metrics.recordError("H004")
		return root, Stats{}, err
	}
	if root != nil && h.hydrated[root] {
		h.metrics.recordError("H005")
		return root, Stats{}, herrors.New("H005").WithTag(root.Data)
	}

	parent, detached := h.parentOf(root)
	s := newScope(h, h.owner, parent.Namespace == dom.NamespaceSVG)

	var result *html.Node
	switch delta.Kind {
	case vdom.KindElement, vdom.KindText, vdom.KindPlaceholder:
		// The root position claims exactly one unit. Element and
		// placeholder roots pass over insignificant whitespace first, so
		// the separator stays and the node behind it is the one paired.
		cursor := root
		if delta.Kind != vdom.KindText {
			cursor = s.skipWhitespace(root, nil)
		}
		var end *html.Node
		if cursor != nil {
			end = cursor.NextSibling
		}
		next := s.reconcile(parent, delta, cursor, end)
		if next != nil {
			result = next.PrevSibling
		} else {
			result = parent.LastChild
		}
	default:
		var prev *html.Node
		if root != nil {
			prev = root.PrevSibling
		}
		s.reconcile(parent, delta, root, nil)
		if prev != nil {
			result = prev.NextSibling
		} else {
			result = parent.FirstChild
		}
		for result != nil && h.markers[result] != nil {
			result = result.NextSibling
		}
	}
	if detached && result != nil && (delta.Kind == vdom.KindElement || delta.Kind == vdom.KindText) {
		dom.Remove(result)
	}

	if root != nil {
		h.hydrated[root] = true
	}
	if result != nil {
		h.hydrated[result] = true
	}

	h.stats.add(*s.stats)
	return result, *s.stats, errors.Join(s.errs...)
}

// parentOf returns root's parent, or a scratch container when root is nil
// or detached.
func (h *Hydrator) parentOf(root *html.Node) (*html.Node, bool) {
	if root != nil && root.Parent != nil {
		return root.Parent, false
	}
	scratch := h.doc.CreateElement("body")
	if root != nil {
		dom.AppendChild(scratch, root)
	}
	return scratch, true
}

// reportPatchError delivers an error raised outside of a Hydrate call.
func (h *Hydrator) reportPatchError(err error) {
	h.logger.Error("region patch failed", "error", err, "code", herrors.CodeOf(err))
	if h.onError != nil {
		h.onError(err)
	}
}

func (s *Stats) add(o Stats) {
	s.Adopted += o.Adopted
	s.Created += o.Created
	s.Discarded += o.Discarded
	s.Regions += o.Regions
	s.Patches += o.Patches
}
