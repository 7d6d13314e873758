package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	t.Run("mentions user config path", func(t *testing.T) {
		t.Parallel()
		hint := ForConfigNotFound([]string{"md2site.yaml", "/home/u/.config/go-md2site/md2site.yaml"})
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("bad prefix: %q", hint)
		}
		if !strings.Contains(hint, "--config") {
			t.Errorf("missing --config suggestion: %q", hint)
		}
		if !strings.Contains(hint, "/home/u/.config/go-md2site/md2site.yaml") {
			t.Errorf("missing creation path: %q", hint)
		}
	})

	t.Run("no user config path available", func(t *testing.T) {
		t.Parallel()
		hint := ForConfigNotFound([]string{"md2site.yaml"})
		if !strings.Contains(hint, "--config") {
			t.Errorf("missing --config suggestion: %q", hint)
		}
		if strings.Contains(hint, "create") {
			t.Errorf("unexpected creation path: %q", hint)
		}
	})
}

func TestHintFormatting(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"missing base url": ForMissingBaseURL(),
		"articles layout":  ForArticlesLayout("articles"),
		"site root":        ForSiteRoot(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s: bad prefix: %q", name, hint)
		}
	}

	if hint := ForArticlesLayout("posts"); !strings.Contains(hint, "posts/<slug>/index.md") {
		t.Errorf("articles hint missing layout: %q", hint)
	}
}
