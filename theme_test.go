package md2site

import (
	"strings"
	"testing"
)

func TestBuildThemeCSS(t *testing.T) {
	t.Parallel()

	t.Run("zero theme uses defaults", func(t *testing.T) {
		t.Parallel()
		css := buildThemeCSS(Theme{})
		for _, want := range []string{
			"--accent: " + defaultAccent + ";",
			"--max-width: " + defaultMaxWidth + ";",
			"--font-stack: " + defaultFontStack + ";",
		} {
			if !strings.Contains(css, want) {
				t.Errorf("missing %q in %q", want, css)
			}
		}
	})

	t.Run("overrides replace defaults", func(t *testing.T) {
		t.Parallel()
		css := buildThemeCSS(Theme{Accent: "#c33", MaxWidth: "60rem", FontStack: "Georgia, serif"})
		for _, want := range []string{
			"--accent: #c33;",
			"--max-width: 60rem;",
			"--font-stack: Georgia, serif;",
		} {
			if !strings.Contains(css, want) {
				t.Errorf("missing %q in %q", want, css)
			}
		}
	})

	t.Run("hostile value cannot close the style element", func(t *testing.T) {
		t.Parallel()
		css := buildThemeCSS(Theme{Accent: "</style><script>alert(1)</script>"})
		if strings.Contains(css, "<") || strings.Contains(css, ">") {
			t.Errorf("markup characters leaked: %q", css)
		}
	})
}

func TestSanitizeCSSValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain value untouched", input: "#0a7", want: "#0a7"},
		{name: "whitespace trimmed", input: "  42rem  ", want: "42rem"},
		{name: "declaration terminators stripped", input: "red; } body {", want: "red  body "},
		{name: "closing tag sequence stripped", input: "</style>", want: "style"},
		{name: "newlines stripped", input: "a\nb\rc", want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := sanitizeCSSValue(tt.input); got != tt.want {
				t.Errorf("sanitizeCSSValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
