package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement     VKind = iota // <div>, <button>, etc.
	KindText                     // Plain text node
	KindReactive                 // Producer whose output is bound as a dynamic region
	KindFragment                 // Inline splice of children, no wrapper
	KindPlaceholder              // Skip the corresponding DOM unit untouched
	KindInvalid                  // Child that could not be classified
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindReactive:
		return "Reactive"
	case KindFragment:
		return "Fragment"
	case KindPlaceholder:
		return "Placeholder"
	case KindInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// EventPrefix marks props that hold event handlers.
const EventPrefix = "on"

// VNode is one node of a delta tree.
type VNode struct {
	Kind     VKind      // Node type
	Tag      string     // Element tag name (e.g., "div")
	SVG      bool       // Element was built through an SVG entry point
	Props    Props      // Attributes and event handlers, in declared order
	Children []*VNode   // Child nodes
	Text     string     // For KindText
	Producer func() any // For KindReactive
	Err      error      // For KindInvalid
}

// Props holds attributes and event handlers in declared order.
type Props []Attr

// Get returns the value of the first prop with the given key.
func (p Props) Get(key string) (any, bool) {
	for _, a := range p {
		if a.Key == key {
			return a.Value, true
		}
	}
	return nil, false
}

// set replaces an existing prop in place or appends a new one,
// so later declarations win without changing the original position.
func (p Props) set(key string, value any) Props {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Attr{Key: key, Value: value})
}

// IsInteractive returns true if this node has event handlers.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for _, a := range v.Props {
		if IsEventKey(a.Key) {
			return true
		}
	}
	return false
}

// IsEventKey reports whether a prop key names an event handler.
func IsEventKey(key string) bool {
	return len(key) > len(EventPrefix) && strings.HasPrefix(key, EventPrefix)
}

// Attr represents a single attribute.
// Value is a static value, a Reader or zero-argument function (reactive),
// Skip (leave the attribute untouched), or a handler for event keys.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // Function to call
}

// Reader is a reactive value that can be read as an untyped value.
// Reading inside a tracked computation subscribes that computation.
type Reader interface {
	Read() any
}
