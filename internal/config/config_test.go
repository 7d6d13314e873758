package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "md2site.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Articles.Dir != "articles" {
		t.Errorf("Articles.Dir = %q", cfg.Articles.Dir)
	}
	if len(cfg.Sitemap.ExcludeDirs) == 0 {
		t.Error("default sitemap exclusions missing")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("full file", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, `
site:
  name: My Site
  base_url: https://example.com
  author: Jo Writer
  nav:
    - label: About
      href: /about/
articles:
  dir: posts
theme:
  accent: "#c33"
sitemap:
  skip_files:
    - 404.html
build:
  workers: 4
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Site.Name != "My Site" || cfg.Site.BaseURL != "https://example.com" {
			t.Errorf("site = %+v", cfg.Site)
		}
		if cfg.Articles.Dir != "posts" {
			t.Errorf("Articles.Dir = %q", cfg.Articles.Dir)
		}
		if len(cfg.Site.Nav) != 1 || cfg.Site.Nav[0].Label != "About" {
			t.Errorf("Nav = %+v", cfg.Site.Nav)
		}
		if cfg.Build.Workers != 4 {
			t.Errorf("Workers = %d", cfg.Build.Workers)
		}
		// Unset sections keep their defaults.
		if len(cfg.Sitemap.ExcludeDirs) == 0 {
			t.Error("defaults lost during load")
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "site:\n  nmae: typo\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "{broken")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "site:\n  base_url: not-a-url\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidBaseURL) {
			t.Errorf("error = %v, want ErrInvalidBaseURL", err)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.Site.Name = "Site"
		cfg.Site.BaseURL = "https://example.com"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty base url allowed", mutate: func(c *Config) { c.Site.BaseURL = "" }},
		{
			name:    "relative base url",
			mutate:  func(c *Config) { c.Site.BaseURL = "/blog" },
			wantErr: ErrInvalidBaseURL,
		},
		{
			name:    "name too long",
			mutate:  func(c *Config) { c.Site.Name = strings.Repeat("x", MaxNameLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Build.Workers = -1 },
			wantErr: ErrInvalidWorkers,
		},
		{
			name:    "too many workers",
			mutate:  func(c *Config) { c.Build.Workers = MaxWorkers + 1 },
			wantErr: ErrInvalidWorkers,
		},
		{
			name:    "nav label too long",
			mutate:  func(c *Config) { c.Site.Nav = []NavLink{{Label: strings.Repeat("x", MaxLabelLength+1)}} },
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("absolute articles dir rejected", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Articles.Dir = string(os.PathSeparator) + "abs"
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() accepted an absolute articles dir")
		}
	})
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("md2site")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() = %v", paths)
	}
	if paths[0] != "md2site.yaml" || paths[1] != "md2site.yml" {
		t.Errorf("local paths first: %v", paths)
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, "go-md2site") {
			t.Errorf("user config path %q missing app directory", p)
		}
	}
}
