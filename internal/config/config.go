// Package config loads and validates the site configuration file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidBaseURL  = errors.New("invalid base URL")
	ErrInvalidWorkers  = errors.New("invalid worker count")
)

// Field length limits; generous, but they keep pathological configs out.
const (
	MaxNameLength  = 100  // site or author name
	MaxURLLength   = 2048 // browser limit
	MaxDescLength  = 300  // index meta description
	MaxLabelLength = 100  // nav link label
	MaxPathLength  = 255  // directory names, skip entries
	MaxWidthLength = 20   // "42rem", "720px"
	MaxFontLength  = 200  // font stack
	MaxNavLinks    = 20
	MaxWorkers     = 64
)

// Config holds all configuration for a site build.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Articles ArticlesConfig `yaml:"articles"`
	Theme    ThemeConfig    `yaml:"theme"`
	Sitemap  SitemapConfig  `yaml:"sitemap"`
	Build    BuildConfig    `yaml:"build"`
}

// SiteConfig identifies the site.
type SiteConfig struct {
	Name        string    `yaml:"name"`
	BaseURL     string    `yaml:"base_url"`
	Author      string    `yaml:"author"`
	Description string    `yaml:"description"` // index meta description (empty = derived from author)
	Nav         []NavLink `yaml:"nav"`         // extra nav links after Home/Articles
}

// NavLink is one extra navigation entry.
type NavLink struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// ArticlesConfig locates the article sources.
type ArticlesConfig struct {
	Dir string `yaml:"dir"` // relative to the site root (default: "articles")
}

// ThemeConfig defines stylesheet overrides.
type ThemeConfig struct {
	Accent    string `yaml:"accent"`
	MaxWidth  string `yaml:"max_width"`
	FontStack string `yaml:"font_stack"`
	AssetsDir string `yaml:"assets_dir"` // directory with templates/ and styles/ overrides
}

// SitemapConfig controls which pages the sitemap pass picks up.
type SitemapConfig struct {
	ExcludeDirs []string `yaml:"exclude_dirs"` // directory names skipped during the walk
	SkipFiles   []string `yaml:"skip_files"`   // file names skipped anywhere (e.g. 404.html)
	SkipPaths   []string `yaml:"skip_paths"`   // exact root-relative paths skipped
}

// BuildConfig controls the build pass.
type BuildConfig struct {
	Workers int `yaml:"workers"` // parallel article builds (0 = auto)
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Articles: ArticlesConfig{Dir: "articles"},
		Sitemap: SitemapConfig{
			ExcludeDirs: []string{"assets", "scripts"},
			SkipFiles:   []string{"404.html"},
		},
	}
}

// Validate checks field lengths and value shapes. BaseURL may be empty here
// (flags or environment may still supply it); when set it must be absolute.
func (c *Config) Validate() error {
	if err := validateFieldLength("site.name", c.Site.Name, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.author", c.Site.Author, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.description", c.Site.Description, MaxDescLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.base_url", c.Site.BaseURL, MaxURLLength); err != nil {
		return err
	}
	if c.Site.BaseURL != "" {
		if err := validateBaseURL(c.Site.BaseURL); err != nil {
			return err
		}
	}

	if len(c.Site.Nav) > MaxNavLinks {
		return fmt.Errorf("site.nav: too many links (%d, max %d)", len(c.Site.Nav), MaxNavLinks)
	}
	for i, link := range c.Site.Nav {
		if err := validateFieldLength(fmt.Sprintf("site.nav[%d].label", i), link.Label, MaxLabelLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("site.nav[%d].href", i), link.Href, MaxURLLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("articles.dir", c.Articles.Dir, MaxPathLength); err != nil {
		return err
	}
	if strings.ContainsAny(c.Articles.Dir, "\\\x00") || filepath.IsAbs(c.Articles.Dir) {
		return fmt.Errorf("articles.dir: must be a relative path, got %q", c.Articles.Dir)
	}

	if err := validateFieldLength("theme.accent", c.Theme.Accent, MaxWidthLength); err != nil {
		return err
	}
	if err := validateFieldLength("theme.max_width", c.Theme.MaxWidth, MaxWidthLength); err != nil {
		return err
	}
	if err := validateFieldLength("theme.font_stack", c.Theme.FontStack, MaxFontLength); err != nil {
		return err
	}
	if err := validateFieldLength("theme.assets_dir", c.Theme.AssetsDir, MaxPathLength); err != nil {
		return err
	}

	for i, p := range c.Sitemap.SkipPaths {
		if err := validateFieldLength(fmt.Sprintf("sitemap.skip_paths[%d]", i), p, MaxPathLength); err != nil {
			return err
		}
	}

	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers %d (must be 0-%d, 0 means auto)", ErrInvalidWorkers, c.Build.Workers, MaxWorkers)
	}

	return nil
}

// validateBaseURL requires an absolute http(s) URL.
func validateBaseURL(baseURL string) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q (must be absolute http or https)", ErrInvalidBaseURL, baseURL)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's searched in standard locations. Returns error if the file
// is not found; callers that want silent defaults use DefaultConfig.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations LoadConfig tries for a config name, in
// order. Exported so error hints can list them.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-md2site", name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations:
// current directory first, then the user config directory.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, path := range tried {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
