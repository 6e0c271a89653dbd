// Package resources instantiates the sync-store pattern for each remote
// resource the console manages and owns the mapping from wire records to
// the flat, display-ready rows the view consumes.
package resources

import (
	"strings"
	"time"
)

// Display fallbacks for absent fields.
const (
	fallbackUnknown        = "Unknown"
	fallbackUnknownVehicle = "Unknown Vehicle"
	fallbackNA             = "N/A"
)

const (
	displayDateTime = "2006-01-02 15:04"
	displayDate     = "2006-01-02"
)

// formatTimestamp renders an RFC 3339 timestamp for display. Input that is
// not RFC 3339 (including already-formatted output of this function) is
// returned unchanged, which keeps normalization idempotent.
func formatTimestamp(s string, layout string) string {
	if s == "" {
		return s
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.Format(layout)
}

// orFallback substitutes fb for an empty or whitespace-only value.
func orFallback(s string, fb string) string {
	if strings.TrimSpace(s) == "" {
		return fb
	}
	return s
}

// capitalize upper-cases the first rune. Already-capitalized input is
// unchanged.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
