package md2site

import (
	"regexp"
	"strings"
)

// Patterns for retrofitting metadata into hand-written legacy pages.
var (
	doctypePattern   = regexp.MustCompile(`(?i)<!doctype html>`)
	canonicalPattern = regexp.MustCompile(`(?i)<link\s+rel="canonical"\s+href="([^"]+)"\s*/?>`)
	publishedDatePat = regexp.MustCompile(`(?i)Published on\s+(\d{4}-\d{2}-\d{2})`)
	headClosePattern = regexp.MustCompile(`(?i)</head>`)
	bodyOpenPattern  = regexp.MustCompile(`(?i)<body`)
	articleFragPat   = regexp.MustCompile(`(?is)<article\b[^>]*>(.*?)</article>`)
	divBlockPattern  = regexp.MustCompile(`(?is)<div\b[^>]*>.*?</div>`)

	// Stale tags removed before the canonical block is inserted, so the
	// pass is idempotent over pages it already enhanced.
	staleMetaPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\s*<meta name="description" content="[^"]*"\s*/?>`),
		regexp.MustCompile(`(?i)\s*<meta name="article:published" content="[^"]*"\s*/?>`),
		regexp.MustCompile(`(?i)\s*<meta property="og:type" content="[^"]*"\s*/?>`),
		regexp.MustCompile(`(?i)\s*<meta property="og:title" content="[^"]*"\s*/?>`),
		regexp.MustCompile(`(?i)\s*<meta property="og:description" content="[^"]*"\s*/?>`),
		regexp.MustCompile(`(?i)\s*<meta property="og:url" content="[^"]*"\s*/?>`),
		regexp.MustCompile(`(?i)\s*<meta property="og:site_name" content="[^"]*"\s*/?>`),
		regexp.MustCompile(`(?i)\s*<meta name="twitter:card" content="[^"]*"\s*/?>`),
		regexp.MustCompile(`(?i)\s*<meta name="twitter:title" content="[^"]*"\s*/?>`),
		regexp.MustCompile(`(?i)\s*<meta name="twitter:description" content="[^"]*"\s*/?>`),
		regexp.MustCompile(`(?is)\s*<script type="application/ld\+json">\{.*?"@type":\s*"Article".*?\}</script>`),
	}
)

// EnhanceLegacyPage retrofits SEO metadata into a hand-written page:
// description, Open Graph and Twitter metas, and an Article JSON-LD block,
// inserted after the canonical link. Pages already carrying a
// `<!doctype html>` (generated by this package) are left alone, as are
// pages without a <title> or canonical link. Stale metadata is removed
// first, so running the pass over its own output changes nothing.
//
// Returns the page and whether it changed.
func (s *Service) EnhanceLegacyPage(pageHTML string) (string, bool) {
	if doctypePattern.MatchString(pageHTML) {
		return pageHTML, false
	}

	titleMatch := titleTagPattern.FindStringSubmatch(pageHTML)
	canonicalMatch := canonicalPattern.FindStringSubmatch(pageHTML)
	if titleMatch == nil || canonicalMatch == nil {
		return pageHTML, false
	}
	title := collapseWhitespace(titleMatch[1])
	canonical := strings.TrimSpace(canonicalMatch[1])

	published := ""
	if m := publishedDatePat.FindStringSubmatch(pageHTML); m != nil {
		published = m[1]
	}

	description := Summarize("", legacyContentFragment(pageHTML))
	metadata := s.legacyMetaBlock(title, description, canonical, published)

	cleaned := pageHTML
	for _, p := range staleMetaPatterns {
		cleaned = p.ReplaceAllString(cleaned, "")
	}

	var enhanced string
	if loc := canonicalPattern.FindStringIndex(cleaned); loc != nil {
		enhanced = cleaned[:loc[1]] + metadata + cleaned[loc[1]:]
	} else if loc := headClosePattern.FindStringIndex(cleaned); loc != nil {
		enhanced = cleaned[:loc[0]] + metadata + "\n" + cleaned[loc[0]:]
	} else {
		return pageHTML, false
	}

	return enhanced, enhanced != pageHTML
}

// legacyContentFragment picks the description source: the <article>
// fragment, else the largest <div>, else everything from <body> on.
func legacyContentFragment(pageHTML string) string {
	bodyHTML := pageHTML
	if loc := bodyOpenPattern.FindStringIndex(pageHTML); loc != nil {
		bodyHTML = pageHTML[loc[0]:]
	}

	if m := articleFragPat.FindStringSubmatch(bodyHTML); m != nil {
		return m[1]
	}

	longest := ""
	for _, block := range divBlockPattern.FindAllString(bodyHTML, -1) {
		if len(block) > len(longest) {
			longest = block
		}
	}
	if longest != "" {
		return longest
	}
	return bodyHTML
}

// legacyMetaBlock assembles the inserted metadata. Attribute values are
// escaped for text and quotes; the JSON-LD block reuses the generated-page
// builder.
func (s *Service) legacyMetaBlock(title, description, canonical, published string) string {
	attr := func(v string) string { return escapeAttr(escapeText(v)) }

	var sb strings.Builder
	sb.WriteString("\n  <meta name=\"description\" content=\"" + attr(description) + "\" />")
	if published != "" {
		sb.WriteString("\n  <meta name=\"article:published\" content=\"" + published + "\" />")
	}
	sb.WriteString("\n  <meta property=\"og:type\" content=\"article\" />\n")
	sb.WriteString("  <meta property=\"og:title\" content=\"" + attr(title) + "\" />\n")
	sb.WriteString("  <meta property=\"og:description\" content=\"" + attr(description) + "\" />\n")
	sb.WriteString("  <meta property=\"og:url\" content=\"" + attr(canonical) + "\" />\n")
	sb.WriteString("  <meta property=\"og:site_name\" content=\"" + attr(s.site.Name) + "\" />\n")
	sb.WriteString("  <meta name=\"twitter:card\" content=\"summary\" />\n")
	sb.WriteString("  <meta name=\"twitter:title\" content=\"" + attr(title) + "\" />\n")
	sb.WriteString("  <meta name=\"twitter:description\" content=\"" + attr(description) + "\" />\n")
	sb.WriteString("  " + string(legacyJSONLD(s.site, title, description, canonical, published)))
	return sb.String()
}
