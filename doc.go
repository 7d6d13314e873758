// Package md2site builds a static personal website from per-article
// Markdown sources: article pages, an articles index, an Atom feed and a
// sitemap.
//
// # Quick Start
//
// Create a service for a site and build an article:
//
//	svc, err := md2site.New(md2site.Site{
//	    Name:    "My Site",
//	    BaseURL: "https://example.com",
//	    Author:  "Jo Writer",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	article, err := svc.BuildArticle(ctx, md2site.Input{
//	    Markdown: src,
//	    Slug:     "why-go",
//	    ModTime:  info.ModTime(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("articles/why-go/index.html", []byte(article.Page), 0o644)
//
// # Pipeline
//
// BuildArticle runs these stages:
//
//  1. Front matter split (YAML, with a permissive fallback scanner)
//  2. Title, status and date resolution
//  3. Markdown rendering (RenderMarkdown)
//  4. Summary derivation for meta description and feed
//  5. Page assembly (embedded template, SEO head, JSON-LD, theme CSS)
//
// Site-level artifacts derive from built pages: RenderIndex, RenderFeed,
// RenderSitemap, and EnhanceLegacyPage for hand-written pages predating
// the generator.
//
// # Markdown Dialect
//
// The dialect is deliberately small: ATX headings, paragraphs, flat lists,
// blockquotes, horizontal rules, fenced code, inline code, emphasis, links
// and images, plus fenced `chat` transcripts rendered as conversation
// bubbles. Full CommonMark is a non-goal; RenderMarkdown never fails and
// degrades malformed input to literal text.
//
// # Customization
//
// Templates and the stylesheet are embedded. Override them per-site from a
// directory holding templates/ and styles/ subdirectories:
//
//	loader, err := assets.NewFilesystemLoader("/path/to/assets")
//	svc, err := md2site.New(site, md2site.WithAssetLoader(loader))
//
// # Concurrency
//
// A Service holds no mutable state after New. One instance may build many
// articles concurrently; the md2site CLI shares a single Service across
// its worker pool.
package md2site
