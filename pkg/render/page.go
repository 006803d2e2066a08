package render

import (
	"fmt"
	"io"

	"github.com/vango-dev/hydrate/pkg/vdom"
)

// PageData describes a complete HTML document around one hydration root.
type PageData struct {
	// Body is the delta tree rendered inside <body>.
	Body *vdom.VNode

	// Title is the page title
	Title string

	// Meta contains meta tags for the page
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Scripts are appended after the body content.
	Scripts []ScriptTag

	// Lang is the language attribute for the html element
	// Defaults to "en" if not specified
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string // name attribute
	Content  string // content attribute
	Property string // property attribute (for OpenGraph)
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Module bool   // type="module"
	Defer  bool   // defer attribute
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n", escapeAttr(lang)); err != nil {
		return err
	}
	if err := r.renderHead(w, page); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "<body>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	for _, script := range page.Scripts {
		if err := renderScriptTag(w, script); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

// renderHead renders the document head section.
func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	if _, err := io.WriteString(w, "<head>\n  <meta charset=\"utf-8\">\n"); err != nil {
		return err
	}

	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}

	for _, meta := range page.Meta {
		if err := renderMetaTag(w, meta); err != nil {
			return err
		}
	}

	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, `  <link rel="stylesheet" href="%s">`+"\n", escapeAttr(href)); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</head>\n")
	return err
}

// renderMetaTag renders a meta element.
func renderMetaTag(w io.Writer, meta MetaTag) error {
	if _, err := io.WriteString(w, "  <meta"); err != nil {
		return err
	}
	if meta.Name != "" {
		if _, err := fmt.Fprintf(w, ` name="%s"`, escapeAttr(meta.Name)); err != nil {
			return err
		}
	}
	if meta.Property != "" {
		if _, err := fmt.Fprintf(w, ` property="%s"`, escapeAttr(meta.Property)); err != nil {
			return err
		}
	}
	if meta.Content != "" {
		if _, err := fmt.Fprintf(w, ` content="%s"`, escapeAttr(meta.Content)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ">\n")
	return err
}

// renderScriptTag renders a script element.
func renderScriptTag(w io.Writer, script ScriptTag) error {
	if _, err := fmt.Fprintf(w, `<script src="%s"`, escapeAttr(script.Src)); err != nil {
		return err
	}
	if script.Module {
		if _, err := io.WriteString(w, ` type="module"`); err != nil {
			return err
		}
	}
	if script.Defer {
		if _, err := io.WriteString(w, " defer"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "></script>\n")
	return err
}
