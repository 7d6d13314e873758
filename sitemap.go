package md2site

import (
	"context"
	"encoding/xml"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/alnah/go-md2site/internal/dateutil"
)

// sitemapNamespace is the urlset namespace required by the sitemap protocol.
const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// PageURL maps a site-root-relative HTML path to its public URL:
// index.html becomes the directory URL (the root for a top-level
// index.html), and other .html files lose the extension.
func PageURL(base, relPath string) string {
	base = strings.TrimRight(base, "/")
	relPath = path.Clean(strings.TrimPrefix(relPath, "/"))

	if relPath == "index.html" {
		return base + "/"
	}
	if strings.HasSuffix(relPath, "/index.html") {
		return base + "/" + strings.TrimSuffix(relPath, "index.html")
	}
	return base + "/" + strings.TrimSuffix(relPath, ".html")
}

// RenderSitemap renders sitemap.xml for the given pages. Entries are sorted
// by URL so the output is stable across runs regardless of walk order.
func (s *Service) RenderSitemap(ctx context.Context, entries []SitemapEntry) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	set := urlSet{Xmlns: sitemapNamespace}
	base := s.site.baseURL()

	for _, entry := range entries {
		u := sitemapURL{Loc: PageURL(base, entry.Path)}
		if !entry.LastMod.IsZero() {
			u.LastMod = dateutil.LastMod(entry.LastMod)
		}
		set.URLs = append(set.URLs, u)
	}
	sort.Slice(set.URLs, func(i, j int) bool {
		return set.URLs[i].Loc < set.URLs[j].Loc
	})

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSitemapRender, err)
	}
	return xml.Header + string(out) + "\n", nil
}
