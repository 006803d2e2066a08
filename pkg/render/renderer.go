package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	herrors "github.com/vango-dev/hydrate/internal/errors"
	"github.com/vango-dev/hydrate/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Pretty output adds whitespace text between elements; hydration
	// treats it as insignificant.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// EventPrefix marks props that hold event handlers. Defaults to "on".
	EventPrefix string
}

// Renderer handles server-side rendering of delta trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	if config.EventPrefix == "" {
		config.EventPrefix = vdom.EventPrefix
	}
	return &Renderer{config: config}
}

// RenderToString renders a delta tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a delta tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0, false)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int, svg bool) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth, svg)
	case vdom.KindText:
		return r.renderText(w, node)
	case vdom.KindFragment:
		return r.renderChildren(w, node.Children, depth, svg)
	case vdom.KindReactive:
		return r.renderReactive(w, node, depth, svg)
	case vdom.KindPlaceholder:
		return nil
	case vdom.KindInvalid:
		return herrors.New("H004").Wrap(node.Err)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

func (r *Renderer) renderChildren(w io.Writer, children []*vdom.VNode, depth int, svg bool) error {
	for _, child := range children {
		if err := r.renderNode(w, child, depth, svg); err != nil {
			return err
		}
	}
	return nil
}

// renderReactive renders the current output of a producer.
func (r *Renderer) renderReactive(w io.Writer, node *vdom.VNode, depth int, svg bool) error {
	out, err := vdom.Normalize(node.Producer())
	if err != nil {
		return herrors.New("H004").Wrap(err)
	}
	return r.renderChildren(w, out, depth, svg)
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int, svg bool) error {
	tag := node.Tag
	if !validName(tag) {
		return herrors.New("H004").WithDetailf("invalid tag name %q", tag)
	}
	svg = svg || node.SVG || strings.EqualFold(tag, "svg")

	// Indentation (if pretty printing)
	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	// Self-closing check for void elements
	if !svg && isVoidElement(tag) {
		if _, err := w.Write([]byte{'>'}); err != nil {
			return err
		}
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	// Newline after opening tag if has children and pretty printing
	hasBlockChildren := !isInlineElement(tag) && hasElementChild(node)
	if r.config.Pretty && hasBlockChildren {
		w.Write([]byte{'\n'})
	}

	childDepth := depth + 1
	if !hasBlockChildren {
		childDepth = 0
	}
	if err := r.renderChildren(w, node.Children, childDepth, svg); err != nil {
		return err
	}

	// Closing tag indentation
	if r.config.Pretty && hasBlockChildren {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty && depth > 0 {
		w.Write([]byte{'\n'})
	}
	return nil
}

func hasElementChild(node *vdom.VNode) bool {
	for _, c := range node.Children {
		if c != nil && c.Kind == vdom.KindElement {
			return true
		}
	}
	return false
}

// renderText renders a text node with HTML escaping.
func (r *Renderer) renderText(w io.Writer, node *vdom.VNode) error {
	_, err := io.WriteString(w, escapeHTML(node.Text))
	return err
}

// renderAttributes renders attributes in declared order.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	for _, attr := range node.Props {
		key := attr.Key
		value := attr.Value

		// Event handlers are attached by hydration, never rendered.
		if len(key) > len(r.config.EventPrefix) && strings.HasPrefix(key, r.config.EventPrefix) {
			continue
		}
		if vdom.IsPlaceholder(value) || !validName(key) {
			continue
		}
		if produce, ok := vdom.Producer(value); ok {
			value = produce()
		}

		switch key {
		case "className":
			key = "class"
		case "htmlFor":
			key = "for"
		}

		switch v := value.(type) {
		case nil:
			continue
		case bool:
			if !v {
				continue
			}
			if isBooleanAttr(key) {
				if _, err := fmt.Fprintf(w, " %s", key); err != nil {
					return err
				}
			} else if _, err := fmt.Fprintf(w, ` %s=""`, key); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(attrToString(value))); err != nil {
			return err
		}
	}
	return nil
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	if s, ok := vdom.Stringify(value); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}
