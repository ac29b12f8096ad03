// Package ffprobe reads video metadata by shelling out to FFprobe and
// merging in filesystem attributes.
package ffprobe

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"vidmeta/internal/dates"
	"vidmeta/internal/domain/consts"
	"vidmeta/internal/utils/logging"
)

// Document is the merged metadata description of a video file.
type Document map[string]any

// Reader probes files for metadata, caching one document per path for
// the life of the reader.
type Reader struct {
	mu    sync.Mutex
	cache map[string]Document

	// probe runs the external tool, swappable in tests.
	probe func(ctx context.Context, path string) ([]byte, error)
}

// NewReader creates a metadata reader with an empty cache.
func NewReader() *Reader {
	return &Reader{
		cache: make(map[string]Document),
		probe: runFFprobe,
	}
}

// Read returns the metadata document for a file, probing it on first
// access. Probe failures yield an empty document rather than an error,
// partial information is preferred over hard failure.
func (r *Reader) Read(ctx context.Context, path string) Document {
	r.mu.Lock()
	defer r.mu.Unlock()

	if doc, ok := r.cache[path]; ok {
		return doc
	}

	doc := Document{}
	output, err := r.probe(ctx, path)
	if err != nil {
		logging.E("Failed to read metadata for %q: %v", path, err)
		r.cache[path] = doc
		return doc
	}

	if err := json.Unmarshal(output, &doc); err != nil {
		logging.E("Failed to parse FFprobe output for %q: %v", path, err)
		doc = Document{}
		r.cache[path] = doc
		return doc
	}

	doc["file_info"] = fileInfo(path)
	r.cache[path] = doc
	return doc
}

// runFFprobe executes the FFprobe command for a file.
func runFFprobe(ctx context.Context, path string) ([]byte, error) {
	command := exec.CommandContext(
		ctx,
		consts.CommandFFprobe,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		"-show_chapters", "-show_packets",
		path,
	)

	logging.D(2, "Made command for FFprobe:\n\n%v", command.String())
	return command.Output()
}

// fileInfo derives the filesystem attributes merged into the document.
func fileInfo(path string) map[string]any {
	info := map[string]any{
		"file_name":   filepath.Base(path),
		"file_format": strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), ".")),
	}

	stat, err := os.Stat(path)
	if err != nil {
		logging.E("Failed to stat %q: %v", path, err)
		return info
	}

	info["file_size"] = float64(stat.Size()) / (1024 * 1024) // MB
	// File birth time is not portably available, the modification time
	// stands in for both timestamps.
	info["date_created"] = dates.FormatTimestamp(stat.ModTime())
	info["date_modified"] = dates.FormatTimestamp(stat.ModTime())
	return info
}
