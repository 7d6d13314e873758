package md2site

import (
	"regexp"
	"strings"
)

// Default bubble labels when the block sets none.
const (
	defaultUserLabel  = "User"
	defaultModelLabel = "Assistant"
)

// chatKeyPattern matches a key line. Keys are letters and underscores only;
// anything looser (URLs, prose with colons) must invalidate the block.
var chatKeyPattern = regexp.MustCompile(`^([A-Za-z_]+):\s*(.*)$`)

// chatParagraphSplit separates accumulated bubble text into paragraphs.
var chatParagraphSplit = regexp.MustCompile(`\n\s*\n`)

// chatKeys are the recognized field names, matched case-insensitively.
var chatKeys = map[string]bool{
	"user":        true,
	"model":       true,
	"image":       true,
	"user_label":  true,
	"model_label": true,
}

// chatBlock is a parsed two-party exchange captured from a chat fence.
type chatBlock struct {
	user       string
	model      string
	image      string
	userLabel  string
	modelLabel string
}

// parseChatBlock parses the captured fence lines. It reports ok=false when
// any line fits no rule, which sends the whole capture down the plain
// code-block path instead.
//
// The parser tracks one current key. Lines indented two or more spaces
// continue that key's value; blank lines insert a paragraph break into it.
// Neither applies to image, which is single-valued, and neither applies
// when no key is open: such lines attach to nothing and are dropped. An
// unrecognized key is tolerated but clears the current key, so its
// continuations are dropped rather than misfiled.
func parseChatBlock(lines []string) (*chatBlock, bool) {
	values := make(map[string]string, len(chatKeys))
	current := "" // key being accumulated; empty means none

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			if current != "" && current != "image" {
				values[current] += "\n\n"
			}
			continue
		}

		if strings.HasPrefix(line, "  ") {
			if current != "" && current != "image" {
				values[current] += "\n" + trimmed
			}
			continue
		}

		m := chatKeyPattern.FindStringSubmatch(line)
		if m == nil {
			return nil, false
		}
		name := strings.ToLower(m[1])
		if !chatKeys[name] {
			current = ""
			continue
		}
		current = name
		values[name] = strings.TrimSpace(m[2])
	}

	if strings.TrimSpace(values["user"]) == "" || strings.TrimSpace(values["model"]) == "" {
		return nil, false
	}

	return &chatBlock{
		user:       values["user"],
		model:      values["model"],
		image:      strings.TrimSpace(values["image"]),
		userLabel:  chatLabel(values["user_label"], defaultUserLabel),
		modelLabel: chatLabel(values["model_label"], defaultModelLabel),
	}, true
}

// chatLabel collapses a label value to one line, falling back when blank.
func chatLabel(raw, fallback string) string {
	label := strings.Join(strings.Fields(raw), " ")
	if label == "" {
		return fallback
	}
	return label
}

// render emits the two-row bubble layout. Bubble text splits on blank lines
// into paragraphs; inside a paragraph newlines collapse to spaces and the
// result goes through the inline renderer. Labels are escaped but carry no
// inline markup. The optional image lands at the end of the model bubble.
func (b *chatBlock) render() string {
	var sb strings.Builder
	sb.WriteString("<div class=\"chat\">\n")
	b.writeRow(&sb, "user", b.userLabel, b.user, "")
	b.writeRow(&sb, "model", b.modelLabel, b.model, b.image)
	sb.WriteString("</div>")
	return sb.String()
}

func (b *chatBlock) writeRow(sb *strings.Builder, side, label, text, image string) {
	sb.WriteString(`<div class="chat-row ` + side + `"><div class="chat-bubble">`)
	sb.WriteString(`<div class="chat-label">` + escapeText(label) + `</div>`)
	for _, para := range splitChatParagraphs(text) {
		sb.WriteString("<p>" + renderInline(para) + "</p>")
	}
	if image != "" {
		sb.WriteString(`<img class="chat-image" src="` + escapeAttr(escapeText(image)) + `" alt="" />`)
	}
	sb.WriteString("</div></div>\n")
}

// splitChatParagraphs breaks accumulated bubble text on blank-line
// boundaries and flattens each paragraph to a single line.
func splitChatParagraphs(value string) []string {
	var paras []string
	for _, part := range chatParagraphSplit.Split(value, -1) {
		part = strings.TrimSpace(strings.ReplaceAll(part, "\n", " "))
		if part != "" {
			paras = append(paras, part)
		}
	}
	return paras
}
