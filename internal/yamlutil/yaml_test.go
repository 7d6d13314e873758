package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type testDoc struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()
		var doc testDoc
		if err := Unmarshal([]byte("name: hello\ncount: 3"), &doc); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if doc.Name != "hello" || doc.Count != 3 {
			t.Errorf("doc = %+v", doc)
		}
	})

	t.Run("unknown fields tolerated", func(t *testing.T) {
		t.Parallel()
		var doc testDoc
		if err := Unmarshal([]byte("name: hello\nextra: ignored"), &doc); err != nil {
			t.Errorf("Unmarshal() error = %v", err)
		}
	})

	t.Run("empty data", func(t *testing.T) {
		t.Parallel()
		var doc testDoc
		if err := Unmarshal(nil, &doc); !errors.Is(err, ErrNilData) {
			t.Errorf("Unmarshal(nil) error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()
		if err := Unmarshal([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
			t.Errorf("Unmarshal(..., nil) error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		t.Parallel()
		var doc testDoc
		big := []byte("name: " + strings.Repeat("x", MaxInputSize))
		if err := Unmarshal(big, &doc); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("Unmarshal(big) error = %v, want ErrInputTooLarge", err)
		}
	})

	t.Run("malformed yaml reported", func(t *testing.T) {
		t.Parallel()
		var doc testDoc
		if err := Unmarshal([]byte("{broken"), &doc); err == nil {
			t.Error("Unmarshal() expected error for malformed input")
		}
	})
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()
		var doc testDoc
		if err := UnmarshalStrict([]byte("name: hello"), &doc); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
		if doc.Name != "hello" {
			t.Errorf("doc = %+v", doc)
		}
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		t.Parallel()
		var doc testDoc
		if err := UnmarshalStrict([]byte("name: hello\ntypo_field: x"), &doc); err == nil {
			t.Error("UnmarshalStrict() expected error for unknown field")
		}
	})
}
