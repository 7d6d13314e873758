package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// errDoctorFailed marks a doctor run with at least one failed check.
var errDoctorFailed = errors.New("doctor found problems")

// runDoctor checks the site layout and configuration and reports
// ok / warn / fail lines. A warn does not fail the run; a fail does.
func runDoctor(args []string, env *Environment) error {
	flags, positional, err := parsePassFlags("doctor", args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownCommand, err)
	}

	failed := 0
	report := func(level, msg string) {
		if flags.common.quiet && level == "ok" {
			return
		}
		fmt.Fprintf(env.Stdout, "%-4s %s\n", level, msg)
		if level == "fail" {
			failed++
		}
	}

	cfg, err := loadConfiguration(flags.common.config, env)
	if err != nil {
		report("fail", fmt.Sprintf("config: %v", err))
		cfg = config.DefaultConfig()
	} else {
		report("ok", "config loads and validates")
	}
	if flags.baseURL != "" {
		cfg.Site.BaseURL = flags.baseURL
	}

	if cfg.Site.BaseURL == "" {
		report("warn", "site.base_url is not set; canonical URLs, feed and sitemap need it")
	} else {
		report("ok", fmt.Sprintf("base URL %s", cfg.Site.BaseURL))
	}

	root, err := resolveSiteRoot(positional)
	if err != nil {
		report("fail", err.Error())
		fmt.Fprintf(env.Stdout, "%d problem(s) found\n", failed)
		return errDoctorFailed
	}
	report("ok", fmt.Sprintf("site root %s", root))

	checkArticles(root, cfg, report)
	checkWritable(root, report)

	if failed > 0 {
		fmt.Fprintf(env.Stdout, "%d problem(s) found\n", failed)
		return errDoctorFailed
	}
	if !flags.common.quiet {
		fmt.Fprintln(env.Stdout, "all checks passed")
	}
	return nil
}

// checkArticles verifies the articles directory exists and holds sources.
func checkArticles(root string, cfg *config.Config, report func(level, msg string)) {
	dir := filepath.Join(root, cfg.Articles.Dir)
	if !fileutil.DirExists(dir) {
		report("fail", fmt.Sprintf("articles directory %s does not exist", dir))
		return
	}

	sources, err := discoverArticles(root, cfg.Articles.Dir)
	if err != nil {
		report("fail", fmt.Sprintf("articles directory %s is unreadable: %v", dir, err))
		return
	}
	if len(sources) == 0 {
		report("warn", fmt.Sprintf("no %s/*/index.md sources found", cfg.Articles.Dir))
		return
	}
	report("ok", fmt.Sprintf("%d article source(s) under %s", len(sources), dir))
}

// checkWritable verifies pages can actually be written under root.
func checkWritable(root string, report func(level, msg string)) {
	probe, err := os.CreateTemp(root, ".md2site-doctor-*")
	if err != nil {
		report("fail", fmt.Sprintf("site root %s is not writable: %v", root, err))
		return
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)
	report("ok", "site root is writable")
}
