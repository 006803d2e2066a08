package dom

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Namespace values carried in html.Node.Namespace.
const (
	NamespaceHTML = ""
	NamespaceSVG  = "svg"
)

// Document owns the listener registry and property table for the nodes
// it parsed or created.
type Document struct {
	listeners map[*html.Node][]*registration
	props     map[*html.Node]map[string]any
	nextID    uint64
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		listeners: make(map[*html.Node][]*registration),
		props:     make(map[*html.Node]map[string]any),
	}
}

// Parse parses markup as body content and returns a detached container
// element holding the parsed nodes. Top-level nodes therefore always have
// a parent.
func (d *Document) Parse(markup string) (*html.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("dom: parse: %w", err)
	}
	container := d.CreateElement("body")
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// ParseElement parses markup and returns its first top-level element.
func (d *Document) ParseElement(markup string) (*html.Node, error) {
	container, err := d.Parse(markup)
	if err != nil {
		return nil, err
	}
	el := FirstElementChild(container)
	if el == nil {
		return nil, fmt.Errorf("dom: no element in markup %q", markup)
	}
	return el, nil
}

// CreateElement creates a detached HTML element.
func (d *Document) CreateElement(tag string) *html.Node {
	return d.CreateElementNS(NamespaceHTML, tag)
}

// CreateElementNS creates a detached element in the given namespace.
// HTML tag names are lower-cased; SVG tag names keep their case.
func (d *Document) CreateElementNS(ns, tag string) *html.Node {
	if ns == NamespaceHTML {
		tag = strings.ToLower(tag)
	}
	return &html.Node{
		Type:      html.ElementNode,
		Data:      tag,
		DataAtom:  atom.Lookup([]byte(tag)),
		Namespace: ns,
	}
}

// CreateText creates a detached text node.
func (d *Document) CreateText(data string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: data}
}

// CreateComment creates a detached comment node.
func (d *Document) CreateComment(data string) *html.Node {
	return &html.Node{Type: html.CommentNode, Data: data}
}

// InsertBefore inserts child into parent before ref, or at the end when
// ref is nil. A child that already has a parent is detached first.
func InsertBefore(parent, child, ref *html.Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	parent.InsertBefore(child, ref)
}

// AppendChild appends child to parent, detaching it first if needed.
func AppendChild(parent, child *html.Node) {
	InsertBefore(parent, child, nil)
}

// Remove detaches n from its parent. Removing a detached node is a no-op.
func Remove(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Replace puts next where old is and detaches old.
func Replace(old, next *html.Node) {
	if old.Parent == nil {
		return
	}
	InsertBefore(old.Parent, next, old)
	old.Parent.RemoveChild(old)
}

// Children returns the child nodes of n in order.
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// FirstElementChild returns the first element child of n, or nil.
func FirstElementChild(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// ElementChildren returns the element children of n in order.
func ElementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// QuerySelector returns the first descendant element accepted by match,
// in document order.
func QuerySelector(n *html.Node, match func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && match(c) {
			return c
		}
		if found := QuerySelector(c, match); found != nil {
			return found
		}
	}
	return nil
}

// ByTag matches elements with the given tag name.
func ByTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return strings.EqualFold(n.Data, tag) }
}

// ByClass matches elements whose class list contains class.
func ByClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		v, ok := GetAttr(n, "class")
		if !ok {
			return false
		}
		for _, c := range strings.Fields(v) {
			if c == class {
				return true
			}
		}
		return false
	}
}

// IsWhitespaceText reports whether n is a text node holding only
// whitespace. Empty text nodes count as whitespace.
func IsWhitespaceText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode && strings.TrimSpace(n.Data) == ""
}

// OuterHTML serializes n and its subtree.
func OuterHTML(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// InnerHTML serializes the children of n.
func InnerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return buf.String()
}

// TextContent concatenates the text of every descendant text node.
func TextContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
