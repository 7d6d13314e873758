package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/hints"
)

var (
	// ErrNoArticles reports an articles directory with no buildable sources.
	ErrNoArticles = errors.New("no articles found")
	// ErrReadSource wraps failures reading a Markdown source file.
	ErrReadSource = errors.New("failed to read source")
	// ErrWritePage wraps failures writing a rendered page.
	ErrWritePage = errors.New("failed to write page")
	// ErrInvalidSiteRoot reports a site root that is not a directory.
	ErrInvalidSiteRoot = errors.New("invalid site root")
)

// ArticleSource locates one article's Markdown source on disk.
type ArticleSource struct {
	Slug    string
	Path    string
	ModTime time.Time
}

// resolveSiteRoot returns the site root from the positional arguments,
// defaulting to the current directory.
func resolveSiteRoot(positional []string) (string, error) {
	root := "."
	if len(positional) > 0 {
		root = positional[0]
	}
	if len(positional) > 1 {
		return "", fmt.Errorf("%w: expected at most one directory, got %d arguments",
			ErrInvalidSiteRoot, len(positional))
	}
	if !fileutil.DirExists(root) {
		return "", fmt.Errorf("%w: %s is not a directory%s", ErrInvalidSiteRoot, root, hints.ForSiteRoot())
	}
	return root, nil
}

// discoverArticles finds every <articlesDir>/<slug>/index.md under root.
// Hidden directories and the shared data directory are skipped. Results
// come back sorted by slug so build output is deterministic.
func discoverArticles(root, articlesDir string) ([]ArticleSource, error) {
	dir := filepath.Join(root, articlesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s does not exist%s", ErrNoArticles, dir, hints.ForArticlesLayout(articlesDir))
		}
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	var sources []ArticleSource
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		slug := entry.Name()
		if slug == "data" || strings.HasPrefix(slug, ".") {
			continue
		}
		path := filepath.Join(dir, slug, "index.md")
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		sources = append(sources, ArticleSource{Slug: slug, Path: path, ModTime: info.ModTime()})
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].Slug < sources[j].Slug })
	return sources, nil
}
