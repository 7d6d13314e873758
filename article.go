package md2site

import (
	"strings"
	"time"

	"github.com/alnah/go-md2site/internal/dateutil"
)

// FirstHeading returns the text of the first `# ` heading in the Markdown
// source, or "" when the document has none. Headings of other levels are
// skipped, so a table of contents above the title does not hide it.
func FirstHeading(src string) string {
	for _, line := range strings.Split(normalizeLineEndings(src), "\n") {
		sl := classifyLine(line)
		if sl.kind == lineHeading && sl.level == 1 {
			return sl.text
		}
	}
	return ""
}

// StripLeadingHeading removes the first `# ` heading when it is the first
// non-blank line of the source, along with the blank lines that follow it.
// The page template owns the <h1>, so a duplicated title is dropped here.
func StripLeadingHeading(src string) string {
	lines := strings.Split(normalizeLineEndings(src), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		sl := classifyLine(line)
		if sl.kind != lineHeading || sl.level != 1 {
			return src
		}
		rest := lines[i+1:]
		for len(rest) > 0 && strings.TrimSpace(rest[0]) == "" {
			rest = rest[1:]
		}
		return strings.Join(rest, "\n")
	}
	return src
}

// resolveTitle picks the article title: front matter, else the first H1,
// else the slug.
func resolveTitle(meta Meta, body, slug string) string {
	if t := strings.TrimSpace(meta.Title); t != "" {
		return t
	}
	if t := FirstHeading(body); t != "" {
		return t
	}
	return slug
}

// resolveStatus defaults the publication status.
func resolveStatus(meta Meta) string {
	status := strings.ToLower(strings.TrimSpace(meta.Status))
	if status == "" {
		return StatusPublished
	}
	return status
}

// resolvePublished parses the front matter date, falling back to the source
// file's modification time on absence or parse failure.
func resolvePublished(meta Meta, modTime time.Time) time.Time {
	if t, err := dateutil.ParseSourceDate(meta.Date); err == nil {
		return t
	}
	return modTime
}

// validSlug reports whether a slug is usable as an articles/ directory name.
func validSlug(slug string) bool {
	return slug != "" && !strings.ContainsAny(slug, "/\\") && slug != "." && slug != ".."
}
