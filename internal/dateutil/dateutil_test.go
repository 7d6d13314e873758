package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseSourceDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "iso format", input: "2024-02-10", want: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
		{name: "slash format", input: "2019/05/04", want: time.Date(2019, 5, 4, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding whitespace", input: "  2024-02-10  ", want: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "wrong order", input: "10-02-2024", wantErr: true},
		{name: "prose", input: "yesterday", wantErr: true},
		{name: "impossible date", input: "2024-13-45", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSourceDate(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("ParseSourceDate(%q) error = %v, want ErrInvalidDate", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSourceDate(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseSourceDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatting(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 9, 15, 30, 0, 0, time.UTC)

	if got, want := Display(ts), "Mar 9, 2024"; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
	if got := Display(time.Time{}); got != "" {
		t.Errorf("Display(zero) = %q, want empty", got)
	}

	if got, want := ISO(ts), "2024-03-09"; got != want {
		t.Errorf("ISO() = %q, want %q", got, want)
	}
	if got := ISO(time.Time{}); got != "" {
		t.Errorf("ISO(zero) = %q, want empty", got)
	}
}

func TestLastMod(t *testing.T) {
	t.Parallel()

	// A local timestamp close to midnight formats as its UTC date.
	local := time.Date(2024, 3, 10, 0, 30, 0, 0, time.FixedZone("X", 3600))
	if got, want := LastMod(local), "2024-03-09"; got != want {
		t.Errorf("LastMod() = %q, want %q", got, want)
	}
}
