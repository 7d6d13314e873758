package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	baseURL string
	workers int

	skipEnhance bool
	skipIndex   bool
	skipFeed    bool
	skipSitemap bool
}

// passFlags holds flags for the standalone pass commands
// (index, feed, sitemap, enhance).
type passFlags struct {
	common  commonFlags
	baseURL string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.baseURL, "base-url", "b", "", "absolute site root URL (overrides config)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel article builds (0 = auto)")
	fs.BoolVar(&f.skipEnhance, "skip-enhance", false, "skip the legacy SEO pass")
	fs.BoolVar(&f.skipIndex, "skip-index", false, "skip the articles index pass")
	fs.BoolVar(&f.skipFeed, "skip-feed", false, "skip the Atom feed pass")
	fs.BoolVar(&f.skipSitemap, "skip-sitemap", false, "skip the sitemap pass")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printBuildUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parsePassFlags parses flags for a standalone pass command.
func parsePassFlags(command string, args []string) (*passFlags, []string, error) {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	f := &passFlags{}

	fs.StringVarP(&f.baseURL, "base-url", "b", "", "absolute site root URL (overrides config)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printPassUsage(os.Stderr, command) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
