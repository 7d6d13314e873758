package md2site

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestPageURL(t *testing.T) {
	t.Parallel()

	const base = "https://example.com"

	tests := []struct {
		name string
		rel  string
		want string
	}{
		{name: "root index", rel: "index.html", want: "https://example.com/"},
		{name: "directory index", rel: "articles/why-go/index.html", want: "https://example.com/articles/why-go/"},
		{name: "articles listing", rel: "articles/index.html", want: "https://example.com/articles/"},
		{name: "plain page loses extension", rel: "about.html", want: "https://example.com/about"},
		{name: "nested plain page", rel: "notes/setup.html", want: "https://example.com/notes/setup"},
		{name: "leading slash tolerated", rel: "/about.html", want: "https://example.com/about"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := PageURL(base, tt.rel); got != tt.want {
				t.Errorf("PageURL(%q) = %q, want %q", tt.rel, got, tt.want)
			}
		})
	}
}

func TestRenderSitemap(t *testing.T) {
	t.Parallel()

	svc := testService(t)
	entries := []SitemapEntry{
		{Path: "articles/zeta/index.html", LastMod: time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)},
		{Path: "index.html", LastMod: time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC)},
		{Path: "about.html"},
	}

	out, err := svc.RenderSitemap(context.Background(), entries)
	if err != nil {
		t.Fatalf("RenderSitemap() error = %v", err)
	}

	if !strings.HasPrefix(out, "<?xml") {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(out, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`) {
		t.Error("missing urlset namespace")
	}

	// Sorted by URL regardless of input order.
	root := strings.Index(out, "<loc>https://example.com/</loc>")
	about := strings.Index(out, "<loc>https://example.com/about</loc>")
	zeta := strings.Index(out, "<loc>https://example.com/articles/zeta/</loc>")
	if root < 0 || about < 0 || zeta < 0 {
		t.Fatalf("missing locations in %s", out)
	}
	if !(root < about && about < zeta) {
		t.Errorf("unsorted output: root %d, about %d, zeta %d", root, about, zeta)
	}

	if !strings.Contains(out, "<lastmod>2024-03-09</lastmod>") {
		t.Error("missing lastmod date")
	}
	if strings.Contains(out, "<lastmod></lastmod>") {
		t.Error("zero mod time should omit lastmod")
	}
}
