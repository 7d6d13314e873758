package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/hints"
)

// defaultConfigName is searched when no --config or MD2SITE_CONFIG is given.
const defaultConfigName = "md2site"

// runBuild builds every article and then runs the site-level passes.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args)
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
	if flags.workers > 0 {
		cfg.Build.Workers = flags.workers
	}

	root, err := resolveSiteRoot(positional)
	if err != nil {
		return err
	}

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	sources, err := discoverArticles(root, cfg.Articles.Dir)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("%w: no %s/*/index.md under %s%s",
			ErrNoArticles, cfg.Articles.Dir, root, hints.ForArticlesLayout(cfg.Articles.Dir))
	}

	workers := resolveWorkerCount(cfg.Build.Workers, len(sources))
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "building %d article(s) with %d worker(s)\n", len(sources), workers)
	}

	results := buildBatch(ctx, svc, sources, workers)
	failed := printBuildResults(results, flags.common.quiet, flags.common.verbose, env)

	if ctx.Err() != nil {
		return ctx.Err()
	}

	passErr := runSitePasses(ctx, svc, cfg, root, flags, env)

	if failed > 0 {
		return fmt.Errorf("%w: %d article(s)", errBuildFailed, failed)
	}
	return passErr
}

// runSitePasses runs the enhance, index, feed and sitemap passes after a
// build, honoring the --skip-* flags. The first failure stops the chain.
func runSitePasses(ctx context.Context, svc *md2site.Service, cfg *config.Config, root string, flags *buildFlags, env *Environment) error {
	passes := []struct {
		name string
		skip bool
		fn   passFunc
	}{
		{"enhance", flags.skipEnhance, enhancePass},
		{"index", flags.skipIndex, indexPass},
		{"feed", flags.skipFeed, feedPass},
		{"sitemap", flags.skipSitemap, sitemapPass},
	}

	for _, pass := range passes {
		if pass.skip {
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		start := time.Now()
		detail, err := pass.fn(ctx, svc, cfg, root)
		if err != nil {
			return fmt.Errorf("%s pass: %w", pass.name, err)
		}
		if !flags.common.quiet {
			if flags.common.verbose {
				fmt.Fprintf(env.Stdout, "ok %s: %s (%v)\n", pass.name, detail, time.Since(start).Round(time.Millisecond))
			} else {
				fmt.Fprintf(env.Stdout, "ok %s: %s\n", pass.name, detail)
			}
		}
	}
	return nil
}

// loadConfiguration resolves the effective config: an explicit name or path
// must load; otherwise the default name is tried and silently falls back to
// defaults. Environment overrides fill whatever is still unset.
func loadConfiguration(configFlag string, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig(env.Getenv)

	name := configFlag
	if name == "" {
		name = envCfg.ConfigPath
	}

	var cfg *config.Config
	switch {
	case name != "":
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(defaultConfigName)))
			}
			return nil, err
		}
		cfg = loaded
	default:
		loaded, err := config.LoadConfig(defaultConfigName)
		switch {
		case err == nil:
			cfg = loaded
		case errors.Is(err, config.ErrConfigNotFound):
			cfg = config.DefaultConfig()
		default:
			return nil, err
		}
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// newService builds the library service from the effective config.
func newService(cfg *config.Config) (*md2site.Service, error) {
	nav := make([]md2site.NavLink, len(cfg.Site.Nav))
	for i, link := range cfg.Site.Nav {
		nav[i] = md2site.NavLink{Label: link.Label, Href: link.Href}
	}

	var opts []md2site.Option
	if cfg.Theme.AssetsDir != "" {
		loader, err := assets.NewFilesystemLoader(cfg.Theme.AssetsDir)
		if err != nil {
			return nil, err
		}
		opts = append(opts, md2site.WithAssetLoader(loader))
	}

	svc, err := md2site.New(md2site.Site{
		Name:        cfg.Site.Name,
		BaseURL:     cfg.Site.BaseURL,
		Author:      cfg.Site.Author,
		Description: cfg.Site.Description,
		Nav:         nav,
		Theme: md2site.Theme{
			Accent:    cfg.Theme.Accent,
			MaxWidth:  cfg.Theme.MaxWidth,
			FontStack: cfg.Theme.FontStack,
		},
	}, opts...)
	if err != nil {
		if errors.Is(err, md2site.ErrMissingBaseURL) {
			return nil, fmt.Errorf("%w%s", err, hints.ForMissingBaseURL())
		}
		return nil, err
	}
	return svc, nil
}
