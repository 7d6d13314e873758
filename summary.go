package md2site

import (
	"regexp"
	"strings"
)

// maxSummaryLength bounds meta descriptions, index blurbs and feed summaries.
const maxSummaryLength = 160

var (
	tagPattern    = regexp.MustCompile(`<[^>]*>`)
	scriptPattern = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
)

// Summarize produces a short plain-text description of an article. A
// non-blank front matter summary wins, truncated to 160 characters. Otherwise
// the body HTML is stripped to text, whitespace-collapsed, and cut to 157
// characters at the last space with "..." appended when it runs long.
func Summarize(metaSummary, bodyHTML string) string {
	if s := strings.TrimSpace(metaSummary); s != "" {
		return truncateRunes(s, maxSummaryLength)
	}

	text := collapseWhitespace(StripTags(bodyHTML))
	if len([]rune(text)) <= maxSummaryLength {
		return text
	}

	cut := truncateRunes(text, maxSummaryLength-3)
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}

// StripTags removes script and style elements wholesale, then every
// remaining tag, and decodes the entities the renderer emits.
func StripTags(html string) string {
	text := scriptPattern.ReplaceAllString(html, " ")
	text = tagPattern.ReplaceAllString(text, " ")
	return unescapeEntities(text)
}

// unescapeEntities reverses the renderer's escaping for summary text.
// &amp; goes last so &amp;lt; decodes to &lt;, not <.
var entityUnescaper = strings.NewReplacer(
	"&lt;", "<", "&gt;", ">", "&quot;", `"`, "&#39;", "'", "&amp;", "&",
)

func unescapeEntities(s string) string { return entityUnescaper.Replace(s) }

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
