package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// H creates an element with the given tag. It is the generic
// hyperscript entry point behind every element factory.
//
// Arguments can be: nil, Attr, []Attr, EventHandler, *VNode, []*VNode,
// string or other literals, readers and zero-argument functions (reactive
// children), or slices of any of those.
func H(tag string, args ...any) *VNode {
	return createElement(tag, args)
}

// SVG creates an element through the SVG entry point: the element and
// every descendant built inside it are created in the SVG namespace.
func SVG(tag string, args ...any) *VNode {
	node := createElement(tag, args)
	markSVG(node)
	return node
}

func markSVG(node *VNode) {
	if node == nil {
		return
	}
	if node.Kind == KindElement {
		node.SVG = true
	}
	for _, c := range node.Children {
		markSVG(c)
	}
}

// createElement creates a new VNode with the given tag and arguments.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			if v.Key != "" {
				node.Props = node.Props.set(v.Key, v.Value)
			}

		case []Attr:
			for _, attr := range v {
				if attr.Key != "" {
					node.Props = node.Props.set(attr.Key, attr.Value)
				}
			}

		case EventHandler:
			node.Props = node.Props.set(v.Event, v.Handler)

		default:
			node.Children = appendChild(node.Children, arg)
		}
	}

	return node
}

// appendChild classifies one child argument. Unclassifiable values are
// kept as Invalid nodes so hydration can reject only that branch.
func appendChild(children []*VNode, child any) []*VNode {
	out, err := Normalize(child)
	if err != nil {
		return append(children, Invalid(err))
	}
	return append(children, out...)
}

// Document structure elements

func Html(args ...any) *VNode  { return createElement("html", args) }
func Head(args ...any) *VNode  { return createElement("head", args) }
func Body(args ...any) *VNode  { return createElement("body", args) }
func Title(args ...any) *VNode { return createElement("title", args) }
func Meta(args ...any) *VNode  { return createElement("meta", args) }
func Link(args ...any) *VNode  { return createElement("link", args) }

// Content sectioning elements

func Header(args ...any) *VNode  { return createElement("header", args) }
func Footer(args ...any) *VNode  { return createElement("footer", args) }
func Main(args ...any) *VNode    { return createElement("main", args) }
func Nav(args ...any) *VNode     { return createElement("nav", args) }
func Section(args ...any) *VNode { return createElement("section", args) }
func Article(args ...any) *VNode { return createElement("article", args) }
func Aside(args ...any) *VNode   { return createElement("aside", args) }
func H1(args ...any) *VNode      { return createElement("h1", args) }
func H2(args ...any) *VNode      { return createElement("h2", args) }
func H3(args ...any) *VNode      { return createElement("h3", args) }

// Text content elements

func Div(args ...any) *VNode  { return createElement("div", args) }
func P(args ...any) *VNode    { return createElement("p", args) }
func Span(args ...any) *VNode { return createElement("span", args) }
func Pre(args ...any) *VNode  { return createElement("pre", args) }
func Ul(args ...any) *VNode   { return createElement("ul", args) }
func Ol(args ...any) *VNode   { return createElement("ol", args) }
func Li(args ...any) *VNode   { return createElement("li", args) }
func Hr(args ...any) *VNode   { return createElement("hr", args) }

// Inline text semantics

func A(args ...any) *VNode      { return createElement("a", args) }
func Strong(args ...any) *VNode { return createElement("strong", args) }
func Em(args ...any) *VNode     { return createElement("em", args) }
func B(args ...any) *VNode      { return createElement("b", args) }
func I(args ...any) *VNode      { return createElement("i", args) }
func Small(args ...any) *VNode  { return createElement("small", args) }
func Code(args ...any) *VNode   { return createElement("code", args) }
func Br(args ...any) *VNode     { return createElement("br", args) }

// Form elements

func Form(args ...any) *VNode     { return createElement("form", args) }
func Input(args ...any) *VNode    { return createElement("input", args) }
func Textarea(args ...any) *VNode { return createElement("textarea", args) }
func Select(args ...any) *VNode   { return createElement("select", args) }
func Option(args ...any) *VNode   { return createElement("option", args) }
func Button(args ...any) *VNode   { return createElement("button", args) }
func Label(args ...any) *VNode    { return createElement("label", args) }

// Media elements

func Img(args ...any) *VNode { return createElement("img", args) }

// SVG elements

func Svg(args ...any) *VNode      { return SVG("svg", args...) }
func G(args ...any) *VNode        { return SVG("g", args...) }
func Circle(args ...any) *VNode   { return SVG("circle", args...) }
func Rect(args ...any) *VNode     { return SVG("rect", args...) }
func Path(args ...any) *VNode     { return SVG("path", args...) }
func Line(args ...any) *VNode     { return SVG("line", args...) }
func Polyline(args ...any) *VNode { return SVG("polyline", args...) }

// CustomElement creates an element with a custom tag name.
func CustomElement(tag string, args ...any) *VNode {
	return createElement(tag, args)
}
