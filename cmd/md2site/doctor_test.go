package main

import (
	"errors"
	"strings"
	"testing"
)

func TestRunDoctor(t *testing.T) {
	t.Parallel()

	t.Run("healthy site", func(t *testing.T) {
		t.Parallel()
		root := makeSite(t, map[string]string{"post": "# Post\n\nBody."})
		env, stdout, _ := testEnv()
		if err := runDoctor([]string{"-b", "https://example.com", root}, env); err != nil {
			t.Fatalf("runDoctor() error = %v\noutput:\n%s", err, stdout.String())
		}
		out := stdout.String()
		for _, want := range []string{
			"base URL https://example.com",
			"1 article source(s)",
			"site root is writable",
			"all checks passed",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("missing base url warns", func(t *testing.T) {
		t.Parallel()
		root := makeSite(t, map[string]string{"post": "# Post"})
		env, stdout, _ := testEnv()
		if err := runDoctor([]string{root}, env); err != nil {
			t.Fatalf("runDoctor() error = %v", err)
		}
		if !strings.Contains(stdout.String(), "warn") {
			t.Errorf("expected a warning:\n%s", stdout.String())
		}
	})

	t.Run("missing articles directory fails", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := testEnv()
		err := runDoctor([]string{"-b", "https://example.com", t.TempDir()}, env)
		if !errors.Is(err, errDoctorFailed) {
			t.Errorf("error = %v, want errDoctorFailed", err)
		}
		if !strings.Contains(stdout.String(), "fail") {
			t.Errorf("failure not reported:\n%s", stdout.String())
		}
	})

	t.Run("bad site root fails", func(t *testing.T) {
		t.Parallel()
		env, _, _ := testEnv()
		if err := runDoctor([]string{"/no/such/site/root"}, env); !errors.Is(err, errDoctorFailed) {
			t.Errorf("error = %v, want errDoctorFailed", err)
		}
	})
}
