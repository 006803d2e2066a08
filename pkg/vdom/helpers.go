package vdom

import "fmt"

// Skip is the placeholder sentinel. It is recognized by identity and
// never equals legitimate content: in child position it consumes one
// DOM node untouched, as an attribute value it leaves the attribute as is.
var Skip = &VNode{Kind: KindPlaceholder}

// IsPlaceholder reports whether v is the placeholder sentinel.
func IsPlaceholder(v any) bool {
	n, ok := v.(*VNode)
	return ok && n == Skip
}

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Reactive creates a dynamic child from a producer. The producer is run
// inside a tracked computation; its output may be a literal, a delta node,
// a sequence of those, or further reactive content.
func Reactive(producer func() any) *VNode {
	return &VNode{
		Kind:     KindReactive,
		Producer: producer,
	}
}

// Invalid creates a node recording a child that could not be classified.
// Hydration reports err for this branch only.
func Invalid(err error) *VNode {
	return &VNode{
		Kind: KindInvalid,
		Err:  err,
	}
}

// Fragment groups children without a wrapper.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0, len(children)),
	}
	for _, child := range children {
		node.Children = appendChild(node.Children, child)
	}
	return node
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Map builds one node per item.
func Map[T any](items []T, fn func(T) *VNode) []*VNode {
	out := make([]*VNode, 0, len(items))
	for _, item := range items {
		if n := fn(item); n != nil {
			out = append(out, n)
		}
	}
	return out
}
