// Package render produces the server markup that hydration later adopts.
//
// The renderer converts delta trees into HTML strings or streams:
//
//   - attributes are written in declared order
//   - text and attribute values are escaped
//   - void elements (input, br, img, ...) have no closing tag
//   - boolean attributes render bare when true and not at all when false
//   - event handlers are skipped; they only exist once hydrated
//   - reactive children and attributes render their current value
//   - placeholders render nothing
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Full Page Rendering
//
//	err := renderer.RenderPage(w, render.PageData{Title: "Demo", Body: node})
package render
