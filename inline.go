package md2site

import (
	"regexp"
	"strconv"
	"strings"
)

// Inline span patterns. renderInline applies them in a fixed order; see the
// function comment before reordering anything here.
var (
	// Shortest match, no backtick inside.
	codeSpanPattern = regexp.MustCompile("`([^`]+)`")

	// ![alt](src) with no ] in alt and no ) in src.
	imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

	// [text](href) with no ] in text and no ) in href.
	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	boldPattern   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern = regexp.MustCompile(`\*([^*]+)\*`)
)

// textEscaper escapes text content for <, > and &. Quotes stay literal;
// attribute values get escapeAttr on top.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// attrEscaper escapes quotes in values that already went through escapeText,
// so nothing is ever encoded twice.
var attrEscaper = strings.NewReplacer(`"`, "&quot;", "'", "&#39;")

func escapeText(s string) string { return textEscaper.Replace(s) }

func escapeAttr(s string) string { return attrEscaper.Replace(s) }

// placeholder returns the protection token for stash index i. The token
// carries raw angle brackets; escapeText rewrites every literal < and >, so
// escaped user text cannot spell a token.
func placeholder(i int) string {
	return "\x00<" + strconv.Itoa(i) + ">\x00"
}

// renderInline renders span-level markup inside one block of already
// classified text: heading text, list items, blockquote lines, paragraph
// bodies and chat bubble paragraphs.
//
// Stages run in a fixed order. Escaping comes first so every later stage
// sees entity-safe text. Code spans, images and links are sealed behind
// indexed placeholders so the emphasis stages cannot rewrite their
// internals. Bold runs before italic so ** pairs win over single *.
// Placeholders restore last, highest index first: a stashed link may hold a
// lower-indexed code token in its text, and restoring outer spans first
// exposes the inner tokens before their turn comes.
func renderInline(raw string) string {
	var stash []string
	protect := func(rendered string) string {
		stash = append(stash, rendered)
		return placeholder(len(stash) - 1)
	}

	out := escapeText(raw)

	out = codeSpanPattern.ReplaceAllStringFunc(out, func(m string) string {
		inner := m[1 : len(m)-1]
		return protect("<code>" + inner + "</code>")
	})

	out = imagePattern.ReplaceAllStringFunc(out, func(m string) string {
		g := imagePattern.FindStringSubmatch(m)
		alt := escapeAttr(strings.TrimSpace(g[1]))
		src := escapeAttr(strings.TrimSpace(g[2]))
		return protect(`<img src="` + src + `" alt="` + alt + `" />`)
	})

	out = linkPattern.ReplaceAllStringFunc(out, func(m string) string {
		g := linkPattern.FindStringSubmatch(m)
		// Link text keeps its stage-1 escaping and may hold a code
		// placeholder; it is never escaped again.
		text := strings.TrimSpace(g[1])
		href := escapeAttr(strings.TrimSpace(g[2]))
		return protect(`<a href="` + href + `">` + text + `</a>`)
	})

	out = boldPattern.ReplaceAllString(out, "<strong>$1</strong>")
	out = italicPattern.ReplaceAllString(out, "<em>$1</em>")

	for i := len(stash) - 1; i >= 0; i-- {
		out = strings.Replace(out, placeholder(i), stash[i], 1)
	}
	return out
}
