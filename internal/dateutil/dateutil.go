// Package dateutil provides article date parsing and formatting.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate indicates a date value no source layout accepts.
var ErrInvalidDate = errors.New("invalid date")

// DisplayFormat renders dates for index rows and blurbs.
const DisplayFormat = "Jan 2, 2006"

// ISOFormat renders dates for metadata and the sitemap.
const ISOFormat = "2006-01-02"

// sourceLayouts are the accepted front matter date layouts, tried in order.
var sourceLayouts = []string{
	"2006-01-02",
	"2006/01/02",
}

// ParseSourceDate parses a front matter date value.
// Returns ErrInvalidDate when the value is blank or fits no layout.
func ParseSourceDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	for _, layout := range sourceLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q (expected %s)", ErrInvalidDate, value, strings.Join(sourceLayouts, " or "))
}

// Display formats a date for human-facing lists, e.g. "Jan 2, 2006".
func Display(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DisplayFormat)
}

// ISO formats a date as YYYY-MM-DD.
func ISO(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(ISOFormat)
}

// LastMod formats a timestamp for sitemap lastmod entries (UTC date).
func LastMod(t time.Time) string {
	return t.UTC().Format(ISOFormat)
}
