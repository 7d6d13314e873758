package md2site

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/alnah/go-md2site/internal/assets"
)

// Article status constants.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

// Site holds the site-wide identity every rendered page carries.
type Site struct {
	Name        string    // site title, used in <title> and og:site_name
	BaseURL     string    // absolute URL of the site root, no trailing slash required
	Author      string    // article author for JSON-LD and the feed
	Description string    // index page meta description (empty = derived from Author)
	Nav         []NavLink // extra nav links after Home/Articles
	Theme       Theme     // stylesheet overrides
}

// NavLink is one navigation entry.
type NavLink struct {
	Label string
	Href  string
}

// Theme configures the CSS custom properties layered over the base stylesheet.
// Zero values fall back to the stylesheet defaults.
type Theme struct {
	Accent    string // accent color, e.g. "#0a7"
	MaxWidth  string // content column width, e.g. "42rem"
	FontStack string // body font-family
}

// Validate checks that the site configuration is usable.
// BaseURL must be an absolute http(s) URL.
func (s *Site) Validate() error {
	if s.BaseURL == "" {
		return ErrMissingBaseURL
	}
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("%w: %q (must be absolute http or https)", ErrInvalidBaseURL, s.BaseURL)
	}
	return nil
}

// baseURL returns the site base URL without a trailing slash.
func (s *Site) baseURL() string {
	return strings.TrimRight(s.BaseURL, "/")
}

// Input contains the parameters for building one article.
type Input struct {
	Markdown string    // article source, front matter included (required)
	Slug     string    // article directory name (required)
	ModTime  time.Time // source mtime, publish date fallback
}

// Article is the result of building one article.
type Article struct {
	Slug      string
	Title     string
	Summary   string
	Status    string
	Published time.Time
	Body      string // rendered Markdown fragment
	Page      string // complete HTML document
}

// Draft reports whether the article is excluded from index, feed and sitemap.
func (a *Article) Draft() bool {
	return statusDraft(a.Status)
}

// statusDraft reports whether a status string marks a page as draft. Only
// drafts are hidden; any other status, including unknown ones, stays visible.
func statusDraft(status string) bool {
	return strings.EqualFold(status, StatusDraft)
}

// IndexItem is one row of the articles index.
type IndexItem struct {
	Slug      string
	Title     string
	Status    string
	Published time.Time
}

// FeedItem is one entry of the Atom feed.
type FeedItem struct {
	Slug      string
	Title     string
	Summary   string
	Status    string
	Published time.Time
	Body      string // article body fragment, relative URLs allowed
}

// SitemapEntry maps one built page into the sitemap.
type SitemapEntry struct {
	Path    string    // site-root-relative path, e.g. "articles/why-go/index.html"
	LastMod time.Time // file modification time
}

// Option configures a Service.
type Option func(*Service)

// WithAssetLoader overrides the embedded templates and stylesheet.
func WithAssetLoader(loader assets.AssetLoader) Option {
	return func(s *Service) {
		s.loader = loader
	}
}
