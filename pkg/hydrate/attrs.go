package hydrate

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	herrors "github.com/vango-dev/hydrate/internal/errors"
	"github.com/vango-dev/hydrate/pkg/dom"
	"github.com/vango-dev/hydrate/pkg/reactive"
	"github.com/vango-dev/hydrate/pkg/vdom"
)

// aliases maps DOM property spellings to attribute names.
var aliases = map[string]string{
	"className": "class",
	"htmlFor":   "for",
}

// bindProps applies props to el in declared order. An invalid event
// handler stops the remaining props of el; its children still hydrate.
func (s *scope) bindProps(el *html.Node, tag string, props vdom.Props) {
	for _, p := range props {
		if vdom.IsPlaceholder(p.Value) {
			continue
		}

		if s.h.isEventKey(p.Key) {
			fn, ok := listenerOf(p.Value)
			if !ok {
				s.fail(herrors.New("H003").WithTag(tag).
					WithDetailf("%s holds %T", p.Key, p.Value))
				return
			}
			event := strings.ToLower(p.Key[len(s.h.eventPrefix):])
			remove := s.h.doc.AddEventListener(el, event, fn)
			s.owner.OnCleanup(remove)
			continue
		}

		if produce, ok := vdom.Producer(p.Value); ok {
			key := p.Key
			s.h.rt.CreateEffect(s.owner, func() reactive.Cleanup {
				s.h.setProp(el, key, produce())
				return nil
			})
			continue
		}

		s.h.setProp(el, p.Key, p.Value)
	}
}

// setProp writes one non-event prop. It always writes, even when the
// attribute already holds the value.
func (h *Hydrator) setProp(el *html.Node, key string, value any) {
	name := key
	if alias, ok := aliases[key]; ok {
		name = alias
	}

	if dom.IsProperty(name) {
		h.doc.SetProperty(el, name, value)
		return
	}

	switch v := value.(type) {
	case nil:
		dom.RemoveAttr(el, name)
	case bool:
		if v {
			dom.SetAttr(el, name, "")
		} else {
			dom.RemoveAttr(el, name)
		}
	default:
		s, ok := vdom.Stringify(v)
		if !ok {
			s = fmt.Sprint(v)
		}
		dom.SetAttr(el, name, s)
	}
}

func (h *Hydrator) isEventKey(key string) bool {
	return len(key) > len(h.eventPrefix) && strings.HasPrefix(key, h.eventPrefix)
}

// listenerOf accepts the callable shapes an event prop may hold.
func listenerOf(v any) (dom.Listener, bool) {
	switch fn := v.(type) {
	case dom.Listener:
		return fn, fn != nil
	case func(*dom.Event):
		return fn, fn != nil
	case func():
		if fn == nil {
			return nil, false
		}
		return func(*dom.Event) { fn() }, true
	}
	return nil, false
}
