package dom

import "testing"

func TestSetAttrKeepsOrder(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("a")
	SetAttr(el, "href", "/x")
	SetAttr(el, "title", "t")
	SetAttr(el, "href", "/y")

	if got := OuterHTML(el); got != `<a href="/y" title="t"></a>` {
		t.Errorf("unexpected markup %q", got)
	}
}

func TestRemoveAttr(t *testing.T) {
	doc := NewDocument()
	el, _ := doc.ParseElement(`<input type="checkbox" disabled>`)
	RemoveAttr(el, "disabled")
	RemoveAttr(el, "missing")

	if HasAttr(el, "disabled") {
		t.Error("expected disabled to be removed")
	}
	if v, _ := GetAttr(el, "type"); v != "checkbox" {
		t.Errorf("expected type to survive, got %q", v)
	}
}

func TestPropertiesDoNotTouchMarkup(t *testing.T) {
	doc := NewDocument()
	el, _ := doc.ParseElement(`<input value="server">`)

	if v, ok := doc.Property(el, "value"); !ok || v != "server" {
		t.Errorf("expected property to reflect markup, got %v %v", v, ok)
	}

	doc.SetProperty(el, "value", "typed")
	if v, _ := doc.Property(el, "value"); v != "typed" {
		t.Errorf("expected typed, got %v", v)
	}
	if got := OuterHTML(el); got != `<input value="server"/>` {
		t.Errorf("expected markup unchanged, got %q", got)
	}
}

func TestBooleanPropertyFallback(t *testing.T) {
	doc := NewDocument()
	el, _ := doc.ParseElement(`<input type="checkbox" checked>`)

	if v, ok := doc.Property(el, "checked"); !ok || v != true {
		t.Errorf("expected checked=true, got %v %v", v, ok)
	}
	if _, ok := doc.Property(el, "indeterminate"); ok {
		t.Error("expected indeterminate to be unset")
	}
	if !IsProperty("checked") || IsProperty("class") {
		t.Error("unexpected property routing")
	}
}

func TestReleaseDropsSubtreeState(t *testing.T) {
	doc := NewDocument()
	form, _ := doc.ParseElement(`<form><input value="a"><button>go</button></form>`)
	input := FirstElementChild(form)
	button := input.NextSibling

	doc.SetProperty(input, "value", "typed")
	doc.AddEventListener(button, "click", func(*Event) {})

	doc.Release(form)

	if doc.HasProperties(input) {
		t.Error("properties of a released descendant should be dropped")
	}
	if n := doc.ListenerCount(button, "click"); n != 0 {
		t.Errorf("ListenerCount = %d, want 0", n)
	}
	if v, _ := doc.Property(input, "value"); v != "a" {
		t.Errorf("Property falls back to the attribute, got %v", v)
	}
}
