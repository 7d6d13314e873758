package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// BuildResult records the outcome of building one article.
type BuildResult struct {
	Slug     string
	Path     string
	Err      error
	Duration time.Duration
	Written  bool
}

// buildBatch renders every source concurrently with a fixed worker pool.
// Results keep the order of sources regardless of completion order.
func buildBatch(ctx context.Context, svc *md2site.Service, sources []ArticleSource, workers int) []BuildResult {
	results := make([]BuildResult, len(sources))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = buildOne(ctx, svc, sources[i])
			}
		}()
	}

	for i := range sources {
		select {
		case jobs <- i:
		case <-ctx.Done():
			for j := i; j < len(sources); j++ {
				results[j] = BuildResult{Slug: sources[j].Slug, Err: ctx.Err()}
			}
			close(jobs)
			wg.Wait()
			return results
		}
	}
	close(jobs)
	wg.Wait()
	return results
}

// buildOne renders a single article and writes it next to its source.
func buildOne(ctx context.Context, svc *md2site.Service, src ArticleSource) BuildResult {
	start := time.Now()
	result := BuildResult{Slug: src.Slug}

	raw, err := os.ReadFile(src.Path)
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadSource, err)
		return result
	}

	article, err := svc.BuildArticle(ctx, md2site.Input{
		Markdown: string(raw),
		Slug:     src.Slug,
		ModTime:  src.ModTime,
	})
	if err != nil {
		result.Err = err
		return result
	}

	outPath := filepath.Join(filepath.Dir(src.Path), "index.html")
	written, err := fileutil.WriteFileIfChanged(outPath, []byte(article.Page), 0o644)
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
		return result
	}

	result.Path = outPath
	result.Written = written
	result.Duration = time.Since(start)
	return result
}

// printBuildResults reports per-article outcomes and returns the failure count.
func printBuildResults(results []BuildResult, quiet, verbose bool, env *Environment) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "fail %s: %v\n", r.Slug, r.Err)
			continue
		}
		if quiet {
			continue
		}
		state := "unchanged"
		if r.Written {
			state = "written"
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "ok %s: %s (%s, %v)\n", r.Slug, r.Path, state, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "ok %s: %s\n", r.Slug, state)
		}
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, "built %d article(s), %d failed\n", len(results)-failed, failed)
	}
	return failed
}
