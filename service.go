package md2site

import (
	"context"
	"fmt"
	"html/template"

	"github.com/alnah/go-md2site/internal/assets"
)

// Service renders articles and the derived site artifacts. It holds no
// mutable state after New, so a single instance is safe for concurrent use
// by any number of workers.
type Service struct {
	site   Site
	loader assets.AssetLoader

	articleTmpl *template.Template
	indexTmpl   *template.Template
	style       string
}

// New creates a Service for one site. Templates and the stylesheet are
// loaded and parsed once here, so malformed overrides fail at startup
// rather than at render time.
func New(site Site, opts ...Option) (*Service, error) {
	if err := site.Validate(); err != nil {
		return nil, err
	}

	s := &Service{
		site:   site,
		loader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.loadAssets(); err != nil {
		return nil, err
	}

	return s, nil
}

// loadAssets parses the page templates and assembles the stylesheet.
func (s *Service) loadAssets() error {
	articleSrc, err := s.loader.LoadTemplate("article")
	if err != nil {
		return fmt.Errorf("loading article template: %w", err)
	}
	s.articleTmpl, err = template.New("article").Parse(articleSrc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageRender, err)
	}

	indexSrc, err := s.loader.LoadTemplate("index")
	if err != nil {
		return fmt.Errorf("loading index template: %w", err)
	}
	s.indexTmpl, err = template.New("index").Parse(indexSrc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIndexRender, err)
	}

	baseCSS, err := s.loader.LoadStyle("site")
	if err != nil {
		return fmt.Errorf("loading stylesheet: %w", err)
	}
	s.style = baseCSS + "\n" + buildThemeCSS(s.site.Theme)

	return nil
}

// BuildArticle runs the article pipeline: front matter split, title and
// date resolution, Markdown rendering, summary derivation, page assembly.
// The context is checked between stages.
func (s *Service) BuildArticle(ctx context.Context, input Input) (*Article, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	meta, body := SplitFrontMatter(input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	title := resolveTitle(meta, body, input.Slug)
	body = StripLeadingHeading(body)

	fragment := RenderMarkdown(body)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	article := &Article{
		Slug:      input.Slug,
		Title:     title,
		Status:    resolveStatus(meta),
		Published: resolvePublished(meta, input.ModTime),
		Body:      fragment,
	}
	article.Summary = Summarize(meta.Summary, fragment)

	page, err := s.renderArticlePage(article)
	if err != nil {
		return nil, err
	}
	article.Page = page

	return article, nil
}

// validateInput checks that required fields are present and valid.
func validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptySource
	}
	if input.Slug == "" {
		return ErrEmptySlug
	}
	if !validSlug(input.Slug) {
		return fmt.Errorf("%w: %q", ErrInvalidSlug, input.Slug)
	}
	return nil
}
