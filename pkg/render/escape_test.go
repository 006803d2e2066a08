package render

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"text plain", escapeHTML, "plain", "plain"},
		{"text amp", escapeHTML, "a & b", "a &amp; b"},
		{"text tag", escapeHTML, "<tag>", "&lt;tag&gt;"},
		{"text quote", escapeHTML, `"q"`, "&quot;q&quot;"},
		{"text apostrophe", escapeHTML, "it's", "it&#39;s"},
		{"text keeps newline", escapeHTML, "a\nb", "a\nb"},
		{"attr newline", escapeAttr, "a\nb", "a&#10;b"},
		{"attr tab", escapeAttr, "a\tb", "a&#9;b"},
		{"attr quote", escapeAttr, `x"y`, "x&quot;y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidName(t *testing.T) {
	for _, name := range []string{"div", "data-id", "aria-label", "xlink:href", "my-widget"} {
		if !validName(name) {
			t.Errorf("validName(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"", "a b", `x"`, "a>b", "on/click", "a=b", "<script"} {
		if validName(name) {
			t.Errorf("validName(%q) = true, want false", name)
		}
	}
}
