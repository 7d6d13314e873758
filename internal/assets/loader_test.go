package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple name", input: "article", wantErr: false},
		{name: "hyphenated name", input: "my-theme", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "slash", input: "a/b", wantErr: true},
		{name: "backslash", input: `a\b`, wantErr: true},
		{name: "traversal", input: "..article", wantErr: true},
		{name: "null byte", input: "a\x00b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateAssetName(tt.input)
			if tt.wantErr && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateAssetName(%q) = %v, want ErrInvalidAssetName", tt.input, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateAssetName(%q) = %v", tt.input, err)
			}
		})
	}
}

func TestEmbeddedLoader(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	t.Run("article template", func(t *testing.T) {
		t.Parallel()
		content, err := loader.LoadTemplate("article")
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		for _, want := range []string{"<!doctype html>", "{{.Title}}", "{{.Body}}", `rel="canonical"`} {
			if !strings.Contains(content, want) {
				t.Errorf("article template missing %q", want)
			}
		}
	})

	t.Run("index template", func(t *testing.T) {
		t.Parallel()
		content, err := loader.LoadTemplate("index")
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if !strings.Contains(content, `class="article-list"`) {
			t.Error("index template missing article list")
		}
	})

	t.Run("site stylesheet", func(t *testing.T) {
		t.Parallel()
		content, err := loader.LoadStyle("site")
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if !strings.Contains(content, "var(--accent") {
			t.Error("stylesheet missing theme property usage")
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		t.Parallel()
		if _, err := loader.LoadTemplate("missing"); !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate(missing) error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()
		if _, err := loader.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle(missing) error = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("traversal rejected", func(t *testing.T) {
		t.Parallel()
		if _, err := loader.LoadTemplate("../etc/passwd"); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplate(traversal) error = %v, want ErrInvalidAssetName", err)
		}
	})
}
