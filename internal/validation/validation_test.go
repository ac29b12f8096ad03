package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestValidInputFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		file string
		want bool
	}{
		{"mp4 accepted", "clip.mp4", true},
		{"uppercase accepted", "clip.MP4", true},
		{"mov accepted", "clip.mov", true},
		{"mkv accepted", "clip.mkv", true},
		{"txt rejected", "notes.txt", false},
		{"no extension rejected", "clip", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := touch(t, dir, tc.file)
			assert.Equal(t, tc.want, ValidInputFile(path))
		})
	}
}

func TestValidInputFileMissing(t *testing.T) {
	assert.False(t, ValidInputFile(filepath.Join(t.TempDir(), "ghost.mp4")))
}

func TestValidateCustomDate(t *testing.T) {
	assert.NoError(t, ValidateCustomDate("2024-06-01 12:30:45"))

	// Recognizable non-canonical layouts pass, they are normalized
	// before reaching the backends.
	assert.NoError(t, ValidateCustomDate("2024-06-01"))

	assert.Error(t, ValidateCustomDate("not a date"))
	assert.Error(t, ValidateCustomDate(""))
}
