package dom

import "golang.org/x/net/html"

// attrName is the qualified name of a, e.g. "xlink:href".
func attrName(a html.Attribute) string {
	if a.Namespace == "" {
		return a.Key
	}
	return a.Namespace + ":" + a.Key
}

// GetAttr returns the value of the named attribute.
func GetAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if attrName(a) == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the named attribute is present.
func HasAttr(n *html.Node, key string) bool {
	_, ok := GetAttr(n, key)
	return ok
}

// SetAttr sets an attribute. An existing attribute keeps its position;
// a new one is appended, so attributes serialize in write order.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if attrName(a) == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes the named attribute if present.
func RemoveAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if attrName(a) == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// routed lists the names that are element properties rather than
// attributes once an element is live.
var routed = map[string]bool{
	"value":         true,
	"checked":       true,
	"selected":      true,
	"indeterminate": true,
}

// IsProperty reports whether name is routed to the property table.
func IsProperty(name string) bool {
	return routed[name]
}

// SetProperty stores a live property value on n. Properties do not change
// the serialized markup.
func (d *Document) SetProperty(n *html.Node, name string, v any) {
	m := d.props[n]
	if m == nil {
		m = make(map[string]any)
		d.props[n] = m
	}
	m[name] = v
}

// HasProperties reports whether any live property is stored for n.
func (d *Document) HasProperties(n *html.Node) bool {
	return len(d.props[n]) > 0
}

// Release drops the properties and listeners held for n and its
// descendants. Call it once n has been discarded from the tree.
func (d *Document) Release(n *html.Node) {
	if n == nil {
		return
	}
	delete(d.props, n)
	delete(d.listeners, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.Release(c)
	}
}

// Property returns the live property value on n. When no property was set
// it falls back to the attribute of the same name, the way a freshly
// parsed element reflects its markup.
func (d *Document) Property(n *html.Node, name string) (any, bool) {
	if v, ok := d.props[n][name]; ok {
		return v, true
	}
	v, ok := GetAttr(n, name)
	if !ok {
		return nil, false
	}
	switch name {
	case "checked", "selected", "indeterminate":
		return true, true
	}
	return v, true
}
