// Package vdom provides the delta tree consumed by hydration.
//
// A delta tree is an immutable description of the desired DOM shape.
// It is produced once by builders (or decoded from JSON) and consumed
// exactly once by a hydration call. Every node is one variant of a closed
// set decided at the producer boundary:
//
//	Element{tag, props, children} | Text | Reactive | Fragment | Placeholder
//
// # Core Types
//
// VNode is the tagged variant. Props is an ordered list of Attr values;
// attribute write order on newly created elements follows declaration
// order. EventHandler entries are props whose key carries the "on" prefix.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1("Title"),
//	    P(func() any { return count.Get() }),
//	    Button(OnClick(handler), "Apply"),
//	)
//
// SVG subtrees are built with SVG (or the Svg, Circle, Rect... shorthands),
// which mark the subtree for SVG-namespace creation.
//
// # Dynamic content
//
// A zero-argument function, or any Reader such as a signal, in child or
// attribute position becomes a Reactive producer. Skip is the placeholder
// sentinel: hydration leaves the DOM unit it covers untouched.
package vdom
