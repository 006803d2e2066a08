package dom

import (
	"testing"

	"golang.org/x/net/html"
)

func TestParseElement(t *testing.T) {
	doc := NewDocument()
	root, err := doc.ParseElement(`<div class="a"><span>x</span></div>`)
	if err != nil {
		t.Fatalf("ParseElement failed: %v", err)
	}
	if root.Data != "div" {
		t.Errorf("expected div, got %s", root.Data)
	}
	if root.Parent == nil {
		t.Error("expected parsed element to have a container parent")
	}
	if got := OuterHTML(root); got != `<div class="a"><span>x</span></div>` {
		t.Errorf("unexpected markup %q", got)
	}
}

func TestParseElementNoElement(t *testing.T) {
	doc := NewDocument()
	if _, err := doc.ParseElement("just text"); err == nil {
		t.Error("expected error for markup without an element")
	}
}

func TestParseKeepsWhitespace(t *testing.T) {
	doc := NewDocument()
	root, err := doc.ParseElement("<div>\n  <p>a</p>\n</div>")
	if err != nil {
		t.Fatal(err)
	}
	kids := Children(root)
	if len(kids) != 3 {
		t.Fatalf("expected 3 children, got %d", len(kids))
	}
	if !IsWhitespaceText(kids[0]) || !IsWhitespaceText(kids[2]) {
		t.Error("expected whitespace text around the paragraph")
	}
}

func TestParseSVGNamespace(t *testing.T) {
	doc := NewDocument()
	root, err := doc.ParseElement(`<svg viewBox="0 0 10 10"><circle r="1"></circle></svg>`)
	if err != nil {
		t.Fatal(err)
	}
	if root.Namespace != NamespaceSVG {
		t.Errorf("expected svg namespace, got %q", root.Namespace)
	}
	if c := FirstElementChild(root); c == nil || c.Namespace != NamespaceSVG {
		t.Error("expected circle in svg namespace")
	}
	if v, ok := GetAttr(root, "viewBox"); !ok || v != "0 0 10 10" {
		t.Errorf("expected viewBox attribute, got %q %v", v, ok)
	}
}

func TestCreateElementNS(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("DIV")
	if div.Data != "div" || div.Namespace != NamespaceHTML {
		t.Errorf("unexpected html element %q ns=%q", div.Data, div.Namespace)
	}
	fo := doc.CreateElementNS(NamespaceSVG, "foreignObject")
	if fo.Data != "foreignObject" || fo.Namespace != NamespaceSVG {
		t.Errorf("unexpected svg element %q ns=%q", fo.Data, fo.Namespace)
	}
}

func TestInsertBeforeMovesAttachedNode(t *testing.T) {
	doc := NewDocument()
	root, _ := doc.ParseElement(`<ul><li>a</li><li>b</li></ul>`)
	items := ElementChildren(root)

	InsertBefore(root, items[1], items[0])
	if got := OuterHTML(root); got != `<ul><li>b</li><li>a</li></ul>` {
		t.Errorf("unexpected order %q", got)
	}

	Remove(items[0])
	Remove(items[0])
	if got := OuterHTML(root); got != `<ul><li>b</li></ul>` {
		t.Errorf("unexpected markup after remove %q", got)
	}
}

func TestReplace(t *testing.T) {
	doc := NewDocument()
	root, _ := doc.ParseElement(`<div><i>old</i></div>`)
	b := doc.CreateElement("b")
	AppendChild(b, doc.CreateText("new"))

	Replace(FirstElementChild(root), b)
	if got := OuterHTML(root); got != `<div><b>new</b></div>` {
		t.Errorf("unexpected markup %q", got)
	}
}

func TestQuerySelector(t *testing.T) {
	doc := NewDocument()
	root, _ := doc.ParseElement(`<div><p><button class="x btn">a</button></p><button>b</button></div>`)

	btn := QuerySelector(root, ByClass("btn"))
	if btn == nil || TextContent(btn) != "a" {
		t.Fatal("expected to find .btn")
	}
	if QuerySelector(root, ByTag("span")) != nil {
		t.Error("expected no span")
	}
}

func TestInnerHTMLAndText(t *testing.T) {
	doc := NewDocument()
	root, _ := doc.ParseElement(`<div>a<b>b</b>c</div>`)
	if got := InnerHTML(root); got != `a<b>b</b>c` {
		t.Errorf("unexpected inner %q", got)
	}
	if got := TextContent(root); got != "abc" {
		t.Errorf("unexpected text %q", got)
	}
}

func TestIsWhitespaceText(t *testing.T) {
	cases := []struct {
		node *html.Node
		want bool
	}{
		{&html.Node{Type: html.TextNode, Data: " \n\t"}, true},
		{&html.Node{Type: html.TextNode, Data: ""}, true},
		{&html.Node{Type: html.TextNode, Data: " x "}, false},
		{&html.Node{Type: html.ElementNode, Data: "div"}, false},
		{nil, false},
	}
	for _, tc := range cases {
		if got := IsWhitespaceText(tc.node); got != tc.want {
			t.Errorf("IsWhitespaceText(%v) = %v, want %v", tc.node, got, tc.want)
		}
	}
}
