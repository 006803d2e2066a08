package vdom

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/vango-dev/hydrate/internal/errors"
)

// Decode reads a serialized delta tree.
//
// Nodes are objects {"tag", "props", "children"} (the underscore-prefixed
// forms "_tag", "_props", "_children" are accepted too); strings and
// numbers are text; arrays are fragments; {"placeholder": true} is Skip.
// Prop order in the document is preserved. Serialized trees are static:
// they carry neither handlers nor producers.
func Decode(r io.Reader) (*VNode, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New("D001").Wrap(err)
	}
	return Unmarshal(data)
}

// Unmarshal decodes a serialized delta tree from data.
func Unmarshal(data []byte) (*VNode, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.New("D001").Wrap(err)
	}
	node, err := decodeNode(raw)
	if err != nil {
		return nil, errors.FromError(err, "D001")
	}
	return node, nil
}

type jsonNode struct {
	Tag         string            `json:"tag"`
	AltTag      string            `json:"_tag"`
	Props       json.RawMessage   `json:"props"`
	AltProps    json.RawMessage   `json:"_props"`
	Children    []json.RawMessage `json:"children"`
	AltChildren []json.RawMessage `json:"_children"`
	Placeholder bool              `json:"placeholder"`
	SVG         bool              `json:"svg"`
}

func decodeNode(raw json.RawMessage) (*VNode, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}

	switch raw[0] {
	case 'n':
		return nil, nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, errors.New("D001").Wrap(err)
		}
		return Text(s), nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, errors.New("D001").Wrap(err)
		}
		children, err := decodeChildren(items)
		if err != nil {
			return nil, err
		}
		return &VNode{Kind: KindFragment, Children: children}, nil
	case '{':
		return decodeElement(raw)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, errors.New("D001").Wrap(err)
		}
		s, _ := Stringify(b)
		return Text(s), nil
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, errors.New("D001").Wrap(err)
		}
		return Text(n.String()), nil
	}
}

func decodeElement(raw json.RawMessage) (*VNode, error) {
	var jn jsonNode
	if err := json.Unmarshal(raw, &jn); err != nil {
		return nil, errors.New("D001").Wrap(err)
	}
	if jn.Placeholder {
		return Skip, nil
	}

	tag := firstNonEmpty(jn.Tag, jn.AltTag)
	if tag == "" {
		return nil, errors.New("D001").WithDetailf("node without tag: %s", raw)
	}

	props, err := decodeProps(firstRaw(jn.Props, jn.AltProps))
	if err != nil {
		return nil, err
	}
	children, err := decodeChildren(firstRawSlice(jn.Children, jn.AltChildren))
	if err != nil {
		return nil, err
	}

	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    props,
		Children: children,
	}
	if jn.SVG || tag == "svg" {
		markSVG(node)
	}
	return node, nil
}

func decodeChildren(items []json.RawMessage) ([]*VNode, error) {
	children := make([]*VNode, 0, len(items))
	for _, item := range items {
		child, err := decodeNode(item)
		if err != nil {
			return nil, err
		}
		if child != nil {
			children = append(children, child)
		}
	}
	return children, nil
}

// decodeProps walks the props object token by token to keep key order.
func decodeProps(raw json.RawMessage) (Props, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.New("D001").Wrap(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("D001").WithDetailf("props must be an object, got %s", raw)
	}

	var props Props
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.New("D001").Wrap(err)
		}
		key := tok.(string)

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, errors.New("D001").Wrap(err)
		}
		if m, ok := value.(map[string]any); ok && m["placeholder"] == true {
			value = Skip
		}
		if IsEventKey(key) && !IsPlaceholder(value) {
			return nil, errors.New("D001").WithDetailf("prop %q: handlers cannot be serialized", key)
		}
		if n, ok := value.(json.Number); ok {
			value = n.String()
		}
		props = props.set(key, value)
	}
	return props, nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func firstRaw(a, b json.RawMessage) json.RawMessage {
	if len(a) > 0 {
		return a
	}
	return b
}

func firstRawSlice(a, b []json.RawMessage) []json.RawMessage {
	if a != nil {
		return a
	}
	return b
}

// String renders a compact description of the tree for diagnostics.
func (v *VNode) String() string {
	if v == nil {
		return "<nil>"
	}
	switch v.Kind {
	case KindText:
		return fmt.Sprintf("%q", v.Text)
	case KindElement:
		var b bytes.Buffer
		b.WriteString("<" + v.Tag)
		for _, a := range v.Props {
			b.WriteString(" " + a.Key)
		}
		b.WriteString(">")
		for _, c := range v.Children {
			b.WriteString(c.String())
		}
		b.WriteString("</" + v.Tag + ">")
		return b.String()
	case KindFragment:
		var b bytes.Buffer
		b.WriteString("[")
		for i, c := range v.Children {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(c.String())
		}
		b.WriteString("]")
		return b.String()
	case KindInvalid:
		return fmt.Sprintf("!(%v)", v.Err)
	default:
		return v.Kind.String()
	}
}
