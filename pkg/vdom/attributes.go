package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Prop creates an attribute with an arbitrary key. The value may be a
// static value, a Reader or zero-argument function, or Skip.
func Prop(key string, value any) Attr { return attr(key, value) }

// Identity attributes

// ID sets the id attribute.
func ID(id any) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// ClassOf sets the class attribute from a static or reactive value.
func ClassOf(value any) Attr { return attr("class", value) }

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(style any) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key string, value any) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label any) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden any) Attr { return attr("aria-hidden", hidden) }

// Visibility attributes

// Hidden sets the hidden attribute.
func Hidden() Attr { return attr("hidden", true) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title any) Attr { return attr("title", title) }

// Link attributes

// Href sets the href attribute.
func Href(url any) Attr { return attr("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Form input attributes

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value property.
func Value(value any) Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text any) Attr { return attr("placeholder", text) }

// Disabled sets the disabled attribute. Pass a reactive bool to toggle it.
func Disabled(disabled ...any) Attr {
	if len(disabled) > 0 {
		return attr("disabled", disabled[0])
	}
	return attr("disabled", true)
}

// Checked sets the checked property.
func Checked(checked ...any) Attr {
	if len(checked) > 0 {
		return attr("checked", checked[0])
	}
	return attr("checked", true)
}

// Selected sets the selected property.
func Selected(selected ...any) Attr {
	if len(selected) > 0 {
		return attr("selected", selected[0])
	}
	return attr("selected", true)
}

// For sets the for attribute (for labels).
func For(id string) Attr { return attr("for", id) }

// Media attributes

// Src sets the src attribute.
func Src(url any) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text any) Attr { return attr("alt", text) }

// SVG attributes

// ViewBox sets the viewBox attribute.
func ViewBox(box string) Attr { return attr("viewBox", box) }

// D sets the path data attribute.
func D(d any) Attr { return attr("d", d) }

// Cx sets the cx attribute.
func Cx(v any) Attr { return attr("cx", v) }

// Cy sets the cy attribute.
func Cy(v any) Attr { return attr("cy", v) }

// R sets the r attribute.
func R(v any) Attr { return attr("r", v) }

// X sets the x attribute.
func X(v any) Attr { return attr("x", v) }

// Y sets the y attribute.
func Y(v any) Attr { return attr("y", v) }

// Width sets the width attribute.
func Width(v any) Attr { return attr("width", v) }

// Height sets the height attribute.
func Height(v any) Attr { return attr("height", v) }

// Fill sets the fill attribute.
func Fill(v any) Attr { return attr("fill", v) }

// Stroke sets the stroke attribute.
func Stroke(v any) Attr { return attr("stroke", v) }
