// Package dom is a small live document model built on golang.org/x/net/html.
//
// A Document parses pre-rendered markup into *html.Node trees and adds the
// pieces a browser DOM has that html.Node lacks: event listeners with
// bubbling, and element properties (value, checked, selected,
// indeterminate) that live beside the attributes rather than in them.
//
//	doc := dom.NewDocument()
//	root, err := doc.ParseElement(`<div><button>ok</button></div>`)
//	btn := dom.FirstElementChild(root)
//	doc.AddEventListener(btn, "click", func(e *dom.Event) { ... })
//	doc.Click(btn)
//
// Only registered listeners run. Inline handler attributes such as
// onclick="..." are kept as plain markup and never executed.
//
// Tree mutation helpers (InsertBefore, AppendChild, Remove) detach a node
// from its current parent before moving it, so callers never trip the
// html.Node parent checks.
package dom
