package md2site

import (
	"strings"
	"testing"
)

func TestServiceURLs(t *testing.T) {
	t.Parallel()

	site := testSite()
	site.BaseURL = "https://example.com/" // trailing slash must not double up
	svc, err := New(site)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got, want := svc.articleURL("why-go"), "https://example.com/articles/why-go/"; got != want {
		t.Errorf("articleURL() = %q, want %q", got, want)
	}
	if got, want := svc.indexURL(), "https://example.com/articles/"; got != want {
		t.Errorf("indexURL() = %q, want %q", got, want)
	}
}

func TestNav(t *testing.T) {
	t.Parallel()

	site := testSite()
	site.Nav = []NavLink{{Label: "About", Href: "/about/"}}
	svc, err := New(site)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	nav := svc.nav()
	want := []NavLink{
		{Label: "Home", Href: "/"},
		{Label: "Articles", Href: "/articles/"},
		{Label: "About", Href: "/about/"},
	}
	if len(nav) != len(want) {
		t.Fatalf("nav() returned %d links, want %d", len(nav), len(want))
	}
	for i := range want {
		if nav[i] != want[i] {
			t.Errorf("nav()[%d] = %+v, want %+v", i, nav[i], want[i])
		}
	}
}

func TestJSONLDScript(t *testing.T) {
	t.Parallel()

	t.Run("wraps marshalled object", func(t *testing.T) {
		t.Parallel()
		got := string(jsonLDScript(jsonLDPerson{Type: "Person", Name: "Jo"}))
		want := `<script type="application/ld+json">{"@type":"Person","name":"Jo"}</script>`
		if got != want {
			t.Errorf("jsonLDScript() = %q, want %q", got, want)
		}
	})

	t.Run("html in values is escaped", func(t *testing.T) {
		t.Parallel()
		got := string(jsonLDScript(jsonLDPerson{Type: "Person", Name: "</script>"}))
		payload := strings.TrimSuffix(strings.TrimPrefix(got, `<script type="application/ld+json">`), "</script>")
		if strings.Contains(payload, "</") {
			t.Errorf("raw closing tag inside payload: %q", payload)
		}
		if !strings.Contains(payload, `</script>`) {
			t.Errorf("expected escaped tag in payload: %q", payload)
		}
	})
}

func TestLegacyJSONLDOmitsEmptyDates(t *testing.T) {
	t.Parallel()

	got := string(legacyJSONLD(testSite(), "Title", "Desc", "https://example.com/articles/a/", ""))
	if strings.Contains(got, "datePublished") {
		t.Errorf("empty datePublished should be omitted: %q", got)
	}

	dated := string(legacyJSONLD(testSite(), "Title", "Desc", "https://example.com/articles/a/", "2020-01-01"))
	for _, want := range []string{`"datePublished":"2020-01-01"`, `"dateModified":"2020-01-01"`, `"publisher":`} {
		if !strings.Contains(dated, want) {
			t.Errorf("missing %q in %q", want, dated)
		}
	}
}
