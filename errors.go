package md2site

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptySource = errors.New("markdown source cannot be empty")
	ErrEmptySlug   = errors.New("article slug cannot be empty")
	ErrInvalidSlug = errors.New("invalid article slug")

	// Site validation errors.
	ErrMissingBaseURL = errors.New("base URL is required")
	ErrInvalidBaseURL = errors.New("invalid base URL")

	// Rendering errors.
	ErrPageRender    = errors.New("page template rendering failed")
	ErrIndexRender   = errors.New("index template rendering failed")
	ErrFeedRender    = errors.New("feed rendering failed")
	ErrSitemapRender = errors.New("sitemap rendering failed")
)
