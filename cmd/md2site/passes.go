package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// passFunc runs one site-level pass and reports a short human summary.
type passFunc func(ctx context.Context, svc *md2site.Service, cfg *config.Config, root string) (string, error)

// sitePasses maps standalone pass commands to their implementations.
var sitePasses = map[string]passFunc{
	"index":   indexPass,
	"feed":    feedPass,
	"sitemap": sitemapPass,
	"enhance": enhancePass,
}

// runPass runs one pass as a standalone command.
func runPass(ctx context.Context, name string, args []string, env *Environment) error {
	fn, ok := sitePasses[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	flags, positional, err := parsePassFlags(name, args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownCommand, err)
	}

	cfg, err := loadConfiguration(flags.common.config, env)
	if err != nil {
		return err
	}
	if flags.baseURL != "" {
		cfg.Site.BaseURL = flags.baseURL
	}

	root, err := resolveSiteRoot(positional)
	if err != nil {
		return err
	}

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	detail, err := fn(ctx, svc, cfg, root)
	if err != nil {
		return fmt.Errorf("%s pass: %w", name, err)
	}
	if !flags.common.quiet {
		if flags.common.verbose {
			fmt.Fprintf(env.Stdout, "ok %s: %s (%v)\n", name, detail, time.Since(start).Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "ok %s: %s\n", name, detail)
		}
	}
	return nil
}

// builtPage is one article page read back from disk.
type builtPage struct {
	Slug    string
	Path    string
	HTML    string
	ModTime time.Time
}

// collectPages reads every built <articlesDir>/<slug>/index.html under root.
func collectPages(root, articlesDir string) ([]builtPage, error) {
	sources, err := discoverBuiltPages(root, articlesDir)
	if err != nil {
		return nil, err
	}

	pages := make([]builtPage, 0, len(sources))
	for _, path := range sources {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
		}
		pages = append(pages, builtPage{
			Slug:    filepath.Base(filepath.Dir(path)),
			Path:    path,
			HTML:    string(raw),
			ModTime: info.ModTime(),
		})
	}
	return pages, nil
}

// discoverBuiltPages lists article page paths, sorted by slug.
func discoverBuiltPages(root, articlesDir string) ([]string, error) {
	dir := filepath.Join(root, articlesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s does not exist", ErrNoArticles, dir)
		}
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if name == "data" || strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(dir, name, "index.html")
		if fileutil.FileExists(path) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// indexPass regenerates <articlesDir>/index.html from the built pages.
func indexPass(ctx context.Context, svc *md2site.Service, cfg *config.Config, root string) (string, error) {
	pages, err := collectPages(root, cfg.Articles.Dir)
	if err != nil {
		return "", err
	}

	items := make([]md2site.IndexItem, 0, len(pages))
	for _, page := range pages {
		meta := md2site.ExtractPageMeta(page.HTML)
		item := md2site.IndexItem{
			Slug:      page.Slug,
			Title:     meta.Title,
			Status:    meta.Status,
			Published: meta.Published,
		}
		if item.Title == "" {
			item.Title = page.Slug
		}
		if item.Published.IsZero() {
			item.Published = page.ModTime
		}
		items = append(items, item)
	}

	html, err := svc.RenderIndex(ctx, items)
	if err != nil {
		return "", err
	}

	outPath := filepath.Join(root, cfg.Articles.Dir, "index.html")
	if _, err := fileutil.WriteFileIfChanged(outPath, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWritePage, err)
	}
	return fmt.Sprintf("%d article(s) listed", len(items)), nil
}

// feedPass regenerates feed.xml at the site root from the built pages.
func feedPass(ctx context.Context, svc *md2site.Service, cfg *config.Config, root string) (string, error) {
	pages, err := collectPages(root, cfg.Articles.Dir)
	if err != nil {
		return "", err
	}

	items := make([]md2site.FeedItem, 0, len(pages))
	for _, page := range pages {
		meta := md2site.ExtractPageMeta(page.HTML)
		item := md2site.FeedItem{
			Slug:      page.Slug,
			Title:     meta.Title,
			Summary:   meta.Summary,
			Status:    meta.Status,
			Published: meta.Published,
			Body:      md2site.ExtractPageBody(page.HTML),
		}
		if item.Title == "" {
			item.Title = page.Slug
		}
		if item.Published.IsZero() {
			item.Published = page.ModTime
		}
		items = append(items, item)
	}

	xmlOut, err := svc.RenderFeed(ctx, items)
	if err != nil {
		return "", err
	}

	outPath := filepath.Join(root, "feed.xml")
	if _, err := fileutil.WriteFileIfChanged(outPath, []byte(xmlOut), 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWritePage, err)
	}
	return fmt.Sprintf("%d entr(ies)", countVisible(items)), nil
}

func countVisible(items []md2site.FeedItem) int {
	n := 0
	for _, item := range items {
		if !strings.EqualFold(item.Status, md2site.StatusDraft) {
			n++
		}
	}
	return n
}

// sitemapPass regenerates sitemap.xml by walking every .html file under
// root, minus excluded directories, skip lists and draft article pages.
func sitemapPass(ctx context.Context, svc *md2site.Service, cfg *config.Config, root string) (string, error) {
	entries, err := collectSitemapEntries(root, cfg)
	if err != nil {
		return "", err
	}

	xmlOut, err := svc.RenderSitemap(ctx, entries)
	if err != nil {
		return "", err
	}

	outPath := filepath.Join(root, "sitemap.xml")
	if _, err := fileutil.WriteFileIfChanged(outPath, []byte(xmlOut), 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWritePage, err)
	}
	return fmt.Sprintf("%d URL(s)", len(entries)), nil
}

// collectSitemapEntries walks root for .html pages eligible for the sitemap.
func collectSitemapEntries(root string, cfg *config.Config) ([]md2site.SitemapEntry, error) {
	excluded := make(map[string]bool, len(cfg.Sitemap.ExcludeDirs))
	for _, dir := range cfg.Sitemap.ExcludeDirs {
		excluded[dir] = true
	}
	skipFiles := make(map[string]bool, len(cfg.Sitemap.SkipFiles))
	for _, name := range cfg.Sitemap.SkipFiles {
		skipFiles[name] = true
	}
	skipPaths := make(map[string]bool, len(cfg.Sitemap.SkipPaths))
	for _, rel := range cfg.Sitemap.SkipPaths {
		skipPaths[filepath.ToSlash(rel)] = true
	}

	var entries []md2site.SitemapEntry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if excluded[name] || name == "data" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".html") || skipFiles[name] {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if skipPaths[rel] {
			return nil
		}

		if strings.HasPrefix(rel, cfg.Articles.Dir+"/") && name == "index.html" && rel != cfg.Articles.Dir+"/index.html" {
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrReadSource, err)
			}
			meta := md2site.ExtractPageMeta(string(raw))
			if strings.EqualFold(meta.Status, md2site.StatusDraft) {
				return nil
			}
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		entries = append(entries, md2site.SitemapEntry{Path: rel, LastMod: info.ModTime()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// enhancePass retrofits head metadata onto legacy article pages in place.
func enhancePass(ctx context.Context, svc *md2site.Service, cfg *config.Config, root string) (string, error) {
	pages, err := collectPages(root, cfg.Articles.Dir)
	if err != nil {
		return "", err
	}

	changed := 0
	for _, page := range pages {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		enhanced, ok := svc.EnhanceLegacyPage(page.HTML)
		if !ok {
			continue
		}
		written, err := fileutil.WriteFileIfChanged(page.Path, []byte(enhanced), 0o644)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrWritePage, err)
		}
		if written {
			changed++
		}
	}
	return fmt.Sprintf("%d of %d page(s) updated", changed, len(pages)), nil
}
