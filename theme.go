package md2site

import (
	"strings"
)

// Stylesheet defaults when the theme leaves a property unset.
const (
	defaultAccent    = "#0a7"
	defaultMaxWidth  = "42rem"
	defaultFontStack = "system-ui, sans-serif"
)

// buildThemeCSS generates the custom-property block layered over the base
// stylesheet. Values are sanitized for safe use inside a <style> element.
func buildThemeCSS(theme Theme) string {
	accent := themeValue(theme.Accent, defaultAccent)
	width := themeValue(theme.MaxWidth, defaultMaxWidth)
	fonts := themeValue(theme.FontStack, defaultFontStack)

	var sb strings.Builder
	sb.WriteString(":root {\n")
	sb.WriteString("  --accent: " + accent + ";\n")
	sb.WriteString("  --max-width: " + width + ";\n")
	sb.WriteString("  --font-stack: " + fonts + ";\n")
	sb.WriteString("}\n")
	return sb.String()
}

// themeValue sanitizes one property value, falling back when blank.
func themeValue(value, fallback string) string {
	value = sanitizeCSSValue(value)
	if value == "" {
		return fallback
	}
	return value
}

// sanitizeCSSValue strips characters that could terminate the declaration or
// the surrounding <style> block.
func sanitizeCSSValue(value string) string {
	value = strings.TrimSpace(value)
	value = strings.ReplaceAll(value, "</", "")
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '\n', '\r':
			return -1
		}
		return r
	}, value)
}
