package md2site

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// Block-level line patterns, matched against the raw line.
var (
	// Line ending normalization.
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Exactly three backticks, an optional language tag, trailing spaces.
	fencePattern = regexp.MustCompile("^```" + `([\w+-]*)\s*$`)

	// ATX heading, 1-6 hashes then whitespace then text.
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+?)\s*$`)

	// Flat list items; indentation is tolerated but never nests.
	ulItemPattern = regexp.MustCompile(`^\s*[-*]\s+(.+?)\s*$`)
	olItemPattern = regexp.MustCompile(`^\s*\d+\.\s+(.+?)\s*$`)

	// A paragraph that is exactly two images gets a side-by-side class.
	imagePairPattern = regexp.MustCompile(`^!\[[^\]]*\]\([^)]+\)\s+!\[[^\]]*\]\([^)]+\)$`)
)

// lineKind is the block-level role of a single source line.
type lineKind int

const (
	lineBlank lineKind = iota
	lineFence
	lineComment
	lineRule
	lineHeading
	lineQuote
	lineULItem
	lineOLItem
	lineText
)

// scannedLine is the classification of one raw source line: its kind plus
// the payload the kind carries (fence language, heading text and level,
// item or quote text, trimmed paragraph text).
type scannedLine struct {
	kind  lineKind
	level int
	text  string
}

// classifyLine assigns the block-level role of one line. It is pure so each
// scanner transition can be tested in isolation; fence capture state lives
// in blockScanner, which checks lineFence before anything else.
func classifyLine(line string) scannedLine {
	if m := fencePattern.FindStringSubmatch(line); m != nil {
		return scannedLine{kind: lineFence, text: m[1]}
	}
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "<!--") && strings.HasSuffix(trimmed, "-->") {
		return scannedLine{kind: lineComment}
	}
	if trimmed == "" {
		return scannedLine{kind: lineBlank}
	}
	if trimmed == "---" || trimmed == "***" {
		return scannedLine{kind: lineRule}
	}
	if m := headingPattern.FindStringSubmatch(line); m != nil {
		return scannedLine{kind: lineHeading, level: len(m[1]), text: strings.TrimSpace(m[2])}
	}
	if strings.HasPrefix(trimmed, ">") {
		text := strings.TrimSpace(strings.TrimLeft(trimmed, ">"))
		return scannedLine{kind: lineQuote, text: text}
	}
	if m := ulItemPattern.FindStringSubmatch(line); m != nil {
		return scannedLine{kind: lineULItem, text: strings.TrimSpace(m[1])}
	}
	if m := olItemPattern.FindStringSubmatch(line); m != nil {
		return scannedLine{kind: lineOLItem, text: strings.TrimSpace(m[1])}
	}
	return scannedLine{kind: lineText, text: trimmed}
}

// listKind tracks the single list a scanner may have open.
type listKind int

const (
	listNone listKind = iota
	listUnordered
	listOrdered
)

// blockScanner turns classified lines into HTML fragments. Invariants: at
// most one list is open, an open blockquote never overlaps a list, and
// paragraph text accumulates until a structural line flushes it.
type blockScanner struct {
	out  []string
	para []string

	code     []string
	codeLang string
	inCode   bool

	list    listKind
	inQuote bool
}

func (s *blockScanner) feed(line string) {
	sl := classifyLine(line)
	if sl.kind == lineFence {
		s.toggleFence(sl.text)
		return
	}
	if s.inCode {
		s.code = append(s.code, line)
		return
	}

	switch sl.kind {
	case lineComment:
		// HTML comment lines are dropped from output.

	case lineBlank:
		s.flushPara()
		s.closeList()
		s.closeQuote()

	case lineRule:
		s.flushPara()
		s.closeList()
		s.closeQuote()
		s.out = append(s.out, "<hr />")

	case lineHeading:
		s.flushPara()
		s.closeList()
		s.closeQuote()
		tag := "h" + strconv.Itoa(sl.level)
		s.out = append(s.out, "<"+tag+">"+renderInline(sl.text)+"</"+tag+">")

	case lineQuote:
		s.flushPara()
		s.closeList()
		if !s.inQuote {
			s.out = append(s.out, "<blockquote>")
			s.inQuote = true
		}
		s.out = append(s.out, "<p>"+renderInline(sl.text)+"</p>")

	case lineULItem:
		s.flushPara()
		s.closeQuote()
		s.openList(listUnordered)
		s.out = append(s.out, "<li>"+renderInline(sl.text)+"</li>")

	case lineOLItem:
		s.flushPara()
		s.closeQuote()
		// Source numbers are discarded; the browser renumbers.
		s.openList(listOrdered)
		s.out = append(s.out, "<li>"+renderInline(sl.text)+"</li>")

	case lineText:
		s.closeQuote()
		s.para = append(s.para, sl.text)
	}
}

// toggleFence opens or closes code capture. Open blocks flush first so a
// fence always starts at the top level.
func (s *blockScanner) toggleFence(lang string) {
	s.flushPara()
	s.closeList()
	s.closeQuote()

	if !s.inCode {
		s.inCode = true
		s.codeLang = lang
		return
	}

	if strings.EqualFold(s.codeLang, "chat") {
		if block, ok := parseChatBlock(s.code); ok {
			s.out = append(s.out, block.render())
			s.resetFence()
			return
		}
	}
	s.out = append(s.out, renderCodeBlock(s.codeLang, strings.Join(s.code, "\n")))
	s.resetFence()
}

func (s *blockScanner) resetFence() {
	s.code = nil
	s.codeLang = ""
	s.inCode = false
}

func (s *blockScanner) flushPara() {
	if len(s.para) == 0 {
		return
	}
	text := strings.TrimSpace(strings.Join(s.para, " "))
	s.para = s.para[:0]

	if imagePairPattern.MatchString(text) {
		s.out = append(s.out, `<p class="image-pair">`+renderInline(text)+"</p>")
		return
	}
	s.out = append(s.out, "<p>"+renderInline(text)+"</p>")
}

func (s *blockScanner) closeList() {
	switch s.list {
	case listUnordered:
		s.out = append(s.out, "</ul>")
	case listOrdered:
		s.out = append(s.out, "</ol>")
	}
	s.list = listNone
}

// openList switches to the wanted list kind, closing the other kind first.
// Lists never nest.
func (s *blockScanner) openList(kind listKind) {
	if s.list == kind {
		return
	}
	s.closeList()
	if kind == listUnordered {
		s.out = append(s.out, "<ul>")
	} else {
		s.out = append(s.out, "<ol>")
	}
	s.list = kind
}

func (s *blockScanner) closeQuote() {
	if s.inQuote {
		s.out = append(s.out, "</blockquote>")
		s.inQuote = false
	}
}

// finish flushes whatever is still open and returns the joined fragments.
// A fence left open at end of input discards its capture; legacy behavior,
// kept so existing documents render byte-for-byte the same.
func (s *blockScanner) finish() string {
	s.flushPara()
	s.closeList()
	s.closeQuote()
	return strings.Join(s.out, "\n")
}

// renderCodeBlock emits a fenced capture as escaped preformatted code. The
// fence pattern restricts lang to word characters, + and -, so it is safe
// inside the class attribute as is.
func renderCodeBlock(lang, content string) string {
	classAttr := ""
	if lang != "" {
		classAttr = ` class="language-` + lang + `"`
	}
	return "<pre><code" + classAttr + ">" + html.EscapeString(content) + "</code></pre>"
}

// RenderMarkdown converts a Markdown article body into an HTML fragment.
//
// The dialect is deliberately small: ATX headings, paragraphs, flat ordered
// and unordered lists, blockquotes, horizontal rules, fenced code blocks,
// inline code, emphasis, links and images, plus fenced chat transcripts
// (see chat.go). Lines holding only an HTML comment are dropped. Anything
// else is paragraph text. Full CommonMark is a non-goal.
//
// RenderMarkdown never fails: malformed constructs degrade to paragraph
// text or literal code blocks. It keeps no state between calls, so any
// number of documents may be rendered concurrently.
func RenderMarkdown(src string) string {
	s := &blockScanner{}
	for _, line := range strings.Split(normalizeLineEndings(src), "\n") {
		s.feed(line)
	}
	return s.finish()
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(src string) string {
	return crlfOrCR.ReplaceAllString(src, "\n")
}
