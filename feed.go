package md2site

import (
	"context"
	"encoding/xml"
	"fmt"
	"sort"
	"time"

	"github.com/alnah/go-md2site/internal/htmlpath"
)

// Atom 1.0 document structure.
type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Xmlns   string      `xml:"xmlns,attr"`
	ID      string      `xml:"id"`
	Title   string      `xml:"title"`
	Updated string      `xml:"updated"`
	Author  atomPerson  `xml:"author"`
	Links   []atomLink  `xml:"link"`
	Entries []atomEntry `xml:"entry"`
}

type atomPerson struct {
	Name string `xml:"name"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr,omitempty"`
	Type string `xml:"type,attr,omitempty"`
}

type atomEntry struct {
	ID      string      `xml:"id"`
	Title   string      `xml:"title"`
	Updated string      `xml:"updated"`
	Link    atomLink    `xml:"link"`
	Summary string      `xml:"summary,omitempty"`
	Content atomContent `xml:"content"`
}

type atomContent struct {
	Type string `xml:"type,attr"`
	Body string `xml:",chardata"`
}

// RenderFeed renders the Atom feed document. Drafts are skipped; entries
// sort newest first. Each entry carries the full body fragment with
// relative URLs rewritten to absolute ones under the article's canonical
// directory, so the content survives feed readers.
func (s *Service) RenderFeed(ctx context.Context, items []FeedItem) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	visible := make([]FeedItem, 0, len(items))
	for _, item := range items {
		if statusDraft(item.Status) {
			continue
		}
		visible = append(visible, item)
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Published.After(visible[j].Published)
	})

	base := s.site.baseURL()
	feed := atomFeed{
		Xmlns:   "http://www.w3.org/2005/Atom",
		ID:      base + "/",
		Title:   s.site.Name,
		Updated: atomTime(feedUpdated(visible)),
		Author:  atomPerson{Name: s.site.Author},
		Links: []atomLink{
			{Href: base + "/feed.xml", Rel: "self", Type: "application/atom+xml"},
			{Href: base + "/"},
		},
	}

	for _, item := range visible {
		canonical := s.articleURL(item.Slug)
		body, err := htmlpath.AbsolutizeURLs(item.Body, canonical)
		if err != nil {
			return "", fmt.Errorf("%w: entry %s: %v", ErrFeedRender, item.Slug, err)
		}
		feed.Entries = append(feed.Entries, atomEntry{
			ID:      canonical,
			Title:   item.Title,
			Updated: atomTime(item.Published),
			Link:    atomLink{Href: canonical},
			Summary: item.Summary,
			Content: atomContent{Type: "html", Body: body},
		})
	}

	out, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFeedRender, err)
	}
	return xml.Header + string(out) + "\n", nil
}

// feedUpdated is the newest entry date, or zero when the feed is empty.
func feedUpdated(items []FeedItem) time.Time {
	var latest time.Time
	for _, item := range items {
		if item.Published.After(latest) {
			latest = item.Published
		}
	}
	return latest
}

// atomTime formats a timestamp per RFC3339 as Atom requires.
func atomTime(t time.Time) string {
	if t.IsZero() {
		t = time.Unix(0, 0)
	}
	return t.UTC().Format(time.RFC3339)
}
