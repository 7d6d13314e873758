package main

import (
	"fmt"
	"io"
)

// printUsage writes the top-level help text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `md2site - build a static site from Markdown articles

Usage:
  md2site <command> [flags] [directory]

Commands:
  build       render every article, then run the site passes
  index       regenerate the articles index from built pages
  feed        regenerate the Atom feed from built pages
  sitemap     regenerate sitemap.xml from the site tree
  enhance     retrofit head metadata onto legacy article pages
  doctor      check the site layout and configuration
  completion  print a shell completion script
  version     print the version
  help        show help for a command

The directory argument is the site root and defaults to the current
directory. Articles live at <articles-dir>/<slug>/index.md and build to
index.html next to their source.

Environment:
  MD2SITE_CONFIG     config file name or path
  MD2SITE_BASE_URL   absolute site root URL
  MD2SITE_WORKERS    parallel article builds

Run "md2site help <command>" for command flags.
`)
}

// printBuildUsage writes help for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: md2site build [flags] [directory]

Render every article under <articles-dir>, then run the enhance, index,
feed and sitemap passes.

Flags:
  -c, --config string     config file name or path
  -b, --base-url string   absolute site root URL (overrides config)
  -w, --workers int       parallel article builds (0 = auto)
      --skip-enhance      skip the legacy SEO pass
      --skip-index        skip the articles index pass
      --skip-feed         skip the Atom feed pass
      --skip-sitemap      skip the sitemap pass
  -q, --quiet             only show errors
  -v, --verbose           show detailed timing
`)
}

// printPassUsage writes help for a standalone pass command.
func printPassUsage(w io.Writer, command string) {
	fmt.Fprintf(w, `Usage: md2site %s [flags] [directory]

Run the %s pass over the built pages under [directory].

Flags:
  -c, --config string     config file name or path
  -b, --base-url string   absolute site root URL (overrides config)
  -q, --quiet             only show errors
  -v, --verbose           show detailed timing
`, command, command)
}

// printDoctorUsage writes help for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: md2site doctor [flags] [directory]

Check that the site root, articles layout and configuration are usable.

Flags:
  -c, --config string     config file name or path
  -b, --base-url string   absolute site root URL (overrides config)
  -q, --quiet             only show errors
  -v, --verbose           show detailed timing
`)
}

// runHelp shows help for a specific command, or the top-level usage.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}
	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "index", "feed", "sitemap", "enhance":
		printPassUsage(env.Stdout, args[0])
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	default:
		printUsage(env.Stdout)
	}
}
