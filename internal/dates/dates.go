// Package dates parses and formats the timestamp strings the program
// works with ("YYYY-MM-DD HH:MM:SS").
package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"vidmeta/internal/domain/consts"
)

// ParseCustomDate parses a user supplied creation date. The canonical
// "YYYY-MM-DD HH:MM:SS" layout is tried first, other recognizable date
// layouts are accepted and interpreted by dateparse.
func ParseCustomDate(date string) (time.Time, error) {
	trimmed := strings.TrimSpace(date)
	if t, err := time.Parse(consts.TimeFormat, trimmed); err == nil {
		return t, nil
	}

	t, err := dateparse.ParseAny(trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected format \"YYYY-MM-DD HH:MM:SS\": %w", date, err)
	}
	return t, nil
}

// NormalizeCustomDate parses a date string and renders it in the
// canonical layout the write backends expect.
func NormalizeCustomDate(date string) (string, error) {
	t, err := ParseCustomDate(date)
	if err != nil {
		return "", err
	}
	return FormatTimestamp(t), nil
}

// FormatTimestamp renders a time in the program's timestamp format.
func FormatTimestamp(t time.Time) string {
	return t.Format(consts.TimeFormat)
}
