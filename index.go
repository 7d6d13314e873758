package md2site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/alnah/go-md2site/internal/dateutil"
)

// Patterns for recovering metadata from built pages. Anchored to the markup
// this package emits; hand-written pages may match partially, which is fine
// because every field has a fallback.
var (
	h1Pattern            = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	publishedTextPattern = regexp.MustCompile(`class="published">\s*Published on (\d{4}-\d{2}-\d{2})`)
	publishedMetaPattern = regexp.MustCompile(`<meta property="article:published_time" content="([^"]*)"`)
	statusMetaPattern    = regexp.MustCompile(`<meta property="article:status" content="([^"]*)"`)
	titleTagPattern      = regexp.MustCompile(`(?is)<title>(.*?)</title>`)
	descriptionPattern   = regexp.MustCompile(`<meta name="description" content="([^"]*)"`)
	articleBodyPattern   = regexp.MustCompile(`(?is)<article>(.*?)</article>`)
	leadingH1Pattern     = regexp.MustCompile(`(?is)^\s*<h1[^>]*>.*?</h1>\s*`)
	publishedParaPattern = regexp.MustCompile(`(?is)<p class="published">.*?</p>\s*`)
)

// PageMeta is the metadata recovered from a built article page.
type PageMeta struct {
	Title     string
	Summary   string
	Status    string
	Published time.Time // zero when the page carries no date
}

// ExtractPageMeta recovers title, published date and status from a built
// page so the index, feed and sitemap passes can run standalone, without
// re-rendering the Markdown sources.
func ExtractPageMeta(pageHTML string) PageMeta {
	var meta PageMeta

	if m := h1Pattern.FindStringSubmatch(pageHTML); m != nil {
		meta.Title = collapseWhitespace(StripTags(m[1]))
	} else if m := titleTagPattern.FindStringSubmatch(pageHTML); m != nil {
		meta.Title = collapseWhitespace(StripTags(m[1]))
	}

	if m := publishedTextPattern.FindStringSubmatch(pageHTML); m != nil {
		if t, err := dateutil.ParseSourceDate(m[1]); err == nil {
			meta.Published = t
		}
	}
	if meta.Published.IsZero() {
		if m := publishedMetaPattern.FindStringSubmatch(pageHTML); m != nil {
			if t, err := dateutil.ParseSourceDate(m[1]); err == nil {
				meta.Published = t
			}
		}
	}

	if m := statusMetaPattern.FindStringSubmatch(pageHTML); m != nil {
		meta.Status = strings.ToLower(m[1])
	}
	if m := descriptionPattern.FindStringSubmatch(pageHTML); m != nil {
		meta.Summary = entityUnescaper.Replace(m[1])
	}

	return meta
}

// ExtractPageBody returns the article fragment of a built page with the
// heading and published line removed, suitable as feed entry content. An
// empty string means the page carries no article element.
func ExtractPageBody(pageHTML string) string {
	m := articleBodyPattern.FindStringSubmatch(pageHTML)
	if m == nil {
		return ""
	}
	body := leadingH1Pattern.ReplaceAllString(m[1], "")
	body = publishedParaPattern.ReplaceAllString(body, "")
	return strings.TrimSpace(body)
}

// indexData feeds the index page template.
type indexData struct {
	Site        Site
	Nav         []NavLink
	Description string
	Canonical   string
	Items       []indexRow
	Style       template.CSS
	JSONLD      template.HTML
}

// indexRow is one date + link line in the article list.
type indexRow struct {
	Date  string
	Href  string
	Title string
}

// RenderIndex renders the articles index page. Drafts are skipped and the
// remaining items sorted newest first; callers pass the source mod time as
// Published for undated pages so they still sort deterministically.
func (s *Service) RenderIndex(ctx context.Context, items []IndexItem) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	visible := make([]IndexItem, 0, len(items))
	for _, item := range items {
		if statusDraft(item.Status) {
			continue
		}
		visible = append(visible, item)
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Published.After(visible[j].Published)
	})

	rows := make([]indexRow, len(visible))
	for i, item := range visible {
		rows[i] = indexRow{
			Date:  dateutil.Display(item.Published),
			Href:  "/articles/" + item.Slug + "/",
			Title: item.Title,
		}
	}

	description := s.site.Description
	if description == "" {
		description = "Articles by " + s.site.Author
	}

	canonical := s.indexURL()
	data := indexData{
		Site:        s.site,
		Nav:         s.nav(),
		Description: description,
		Canonical:   canonical,
		Items:       rows,
		Style:       template.CSS(s.style), // #nosec G203 -- sanitized in buildThemeCSS
		JSONLD:      collectionJSONLD(s.site, description, canonical),
	}

	var buf bytes.Buffer
	if err := s.indexTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrIndexRender, err)
	}
	return buf.String(), nil
}
