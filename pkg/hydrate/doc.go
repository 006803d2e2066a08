// Package hydrate attaches a delta tree to pre-rendered DOM.
//
// Hydration walks a vdom delta tree and the live children of an existing
// DOM node side by side. Each delta node either adopts the DOM node at its
// position, or creates a replacement when none fits. Listeners and
// reactive bindings are attached as the walk goes, so the markup that was
// already on screen becomes live without being rebuilt.
//
//	doc := dom.NewDocument()
//	root, _ := doc.ParseElement(serverMarkup)
//	rt := reactive.NewRuntime()
//	h := hydrate.New(doc, rt, hydrate.WithLogger(logger))
//	root, err := h.Hydrate(view(), root)
//
// # Alignment
//
// Children are aligned by position. Whitespace-only text between elements
// is an insignificant separator: it is skipped when aligning an element,
// a placeholder or a dynamic child, and never removed. A text child always
// consumes exactly the next DOM node. DOM children beyond the delta's
// children are left in place.
//
// # Dynamic regions
//
// A reactive child owns a Region: the run of DOM nodes produced by its
// latest output, delimited by two empty text markers. When a dependency of
// the producer changes, the region reconciles its own nodes by position
// and nothing else in the tree is revisited. Growth inserts before the end
// marker; shrinking removes trailing nodes.
//
// # Errors
//
// Structure mismatches (H001) and exhausted positions (H002) are recovered
// and logged at debug level. Invalid event handlers (H003) and
// unrenderable children (H004) abort only their own branch and are joined
// into the error returned from Hydrate. Errors raised while a region
// patches are passed to the error handler.
package hydrate
