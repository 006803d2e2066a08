package render

import "strings"

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)

	// Whitespace is encoded too so values survive attribute normalization
	// when the markup is parsed back for hydration.
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	return textEscaper.Replace(s)
}

// escapeAttr escapes text for safe inclusion in a double-quoted
// attribute value.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// validName reports whether s can be written verbatim as a tag or
// attribute name. Delta trees decoded from JSON are not trusted.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c <= ' ', c == 0x7f:
			return false
		case c == '"', c == '\'', c == '>', c == '/', c == '=', c == '<':
			return false
		}
	}
	return true
}
