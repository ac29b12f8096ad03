// Package validation checks user supplied files and values before any
// external tool is invoked.
package validation

import (
	"os"
	"path/filepath"
	"strings"

	"vidmeta/internal/dates"
	"vidmeta/internal/domain/consts"
	"vidmeta/internal/utils/logging"
)

// ValidInputFile returns true if the file exists and carries a supported
// video extension (case-insensitive).
func ValidInputFile(path string) bool {
	if _, err := os.Stat(path); err != nil {
		logging.E("Input file does not exist: %s", path)
		return false
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !consts.SupportedVideoExts[ext] {
		logging.E("Unsupported file format: %s", ext)
		return false
	}
	return true
}

// ValidateCustomDate checks that a custom creation date string parses.
func ValidateCustomDate(date string) error {
	_, err := dates.ParseCustomDate(date)
	return err
}
