// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-md2site") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForMissingBaseURL returns a hint for builds without a base URL.
func ForMissingBaseURL() string {
	return format("set site.base_url in the config, --base-url, or MD2SITE_BASE_URL")
}

// ForArticlesLayout returns a hint for an empty or missing articles directory.
func ForArticlesLayout(dir string) string {
	return format("expected " + dir + "/<slug>/index.md; set articles.dir in the config to change the location")
}

// ForSiteRoot returns a hint for an unusable site root argument.
func ForSiteRoot() string {
	return format("pass the site root as the last argument, default is the current directory")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
