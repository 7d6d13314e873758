package md2site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/alnah/go-md2site/internal/dateutil"
)

// pageData feeds the article page template.
type pageData struct {
	Site         Site
	Nav          []NavLink
	Title        string
	Description  string
	Canonical    string
	PublishedISO string
	Status       string
	Body         template.HTML
	Style        template.CSS
	JSONLD       template.HTML
}

// articleURL returns the canonical URL of an article directory.
func (s *Service) articleURL(slug string) string {
	return s.site.baseURL() + "/articles/" + slug + "/"
}

// indexURL returns the canonical URL of the articles index.
func (s *Service) indexURL() string {
	return s.site.baseURL() + "/articles/"
}

// nav builds the navigation: Home and Articles first, then configured links.
func (s *Service) nav() []NavLink {
	links := []NavLink{
		{Label: "Home", Href: "/"},
		{Label: "Articles", Href: "/articles/"},
	}
	return append(links, s.site.Nav...)
}

// renderArticlePage assembles the complete HTML document for one article.
func (s *Service) renderArticlePage(a *Article) (string, error) {
	canonical := s.articleURL(a.Slug)
	data := pageData{
		Site:         s.site,
		Nav:          s.nav(),
		Title:        a.Title,
		Description:  a.Summary,
		Canonical:    canonical,
		PublishedISO: dateutil.ISO(a.Published),
		Status:       a.Status,
		Body:         template.HTML(a.Body), // #nosec G203 -- renderer output, user text already escaped
		Style:        template.CSS(s.style), // #nosec G203 -- sanitized in buildThemeCSS
		JSONLD:       articleJSONLD(s.site, a, canonical),
	}

	var buf bytes.Buffer
	if err := s.articleTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}

// JSON-LD structures. json.Marshal escapes <, > and & to \uXXXX, so the
// output is safe inside a <script> element as is.
type jsonLDPerson struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type jsonLDArticle struct {
	Context          string       `json:"@context"`
	Type             string       `json:"@type"`
	Headline         string       `json:"headline"`
	Description      string       `json:"description,omitempty"`
	DatePublished    string       `json:"datePublished"`
	Author           jsonLDPerson `json:"author"`
	MainEntityOfPage string       `json:"mainEntityOfPage"`
}

type jsonLDCollection struct {
	Context     string       `json:"@context"`
	Type        string       `json:"@type"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	URL         string       `json:"url"`
	Author      jsonLDPerson `json:"author"`
}

// articleJSONLD builds the structured-data script for an article page.
func articleJSONLD(site Site, a *Article, canonical string) template.HTML {
	return jsonLDScript(jsonLDArticle{
		Context:          "https://schema.org",
		Type:             "Article",
		Headline:         a.Title,
		Description:      a.Summary,
		DatePublished:    dateutil.ISO(a.Published),
		Author:           jsonLDPerson{Type: "Person", Name: site.Author},
		MainEntityOfPage: canonical,
	})
}

// collectionJSONLD builds the structured-data script for the index page.
func collectionJSONLD(site Site, description, canonical string) template.HTML {
	return jsonLDScript(jsonLDCollection{
		Context:     "https://schema.org",
		Type:        "CollectionPage",
		Name:        "Articles — " + site.Name,
		Description: description,
		URL:         canonical,
		Author:      jsonLDPerson{Type: "Person", Name: site.Author},
	})
}

// legacyJSONLD builds the structured-data script inserted into retrofitted
// legacy pages. Unlike generated pages it carries url and publisher, and
// the date fields only when a published date was found in the page.
func legacyJSONLD(site Site, title, description, canonical, published string) template.HTML {
	person := jsonLDPerson{Type: "Person", Name: site.Author}
	return jsonLDScript(jsonLDLegacyArticle{
		Context:          "https://schema.org",
		Type:             "Article",
		Headline:         title,
		Description:      description,
		Author:           person,
		MainEntityOfPage: canonical,
		URL:              canonical,
		Publisher:        person,
		DatePublished:    published,
		DateModified:     published,
	})
}

type jsonLDLegacyArticle struct {
	Context          string       `json:"@context"`
	Type             string       `json:"@type"`
	Headline         string       `json:"headline"`
	Description      string       `json:"description,omitempty"`
	Author           jsonLDPerson `json:"author"`
	MainEntityOfPage string       `json:"mainEntityOfPage"`
	URL              string       `json:"url"`
	Publisher        jsonLDPerson `json:"publisher"`
	DatePublished    string       `json:"datePublished,omitempty"`
	DateModified     string       `json:"dateModified,omitempty"`
}

// jsonLDScript wraps a marshalled object in its script element. The element
// is built here rather than in the template so the JSON is pasted verbatim.
func jsonLDScript(v any) template.HTML {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	// #nosec G203 -- json.Marshal output with HTML escaping enabled
	return template.HTML(`<script type="application/ld+json">` + string(data) + `</script>`)
}
