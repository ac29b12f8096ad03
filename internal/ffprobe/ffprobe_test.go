package ffprobe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const probeJSON = `{
	"format": {"format_name": "mov,mp4,m4a,3gp,3g2,mj2", "tags": {"make": "Apple"}},
	"streams": [{"codec_type": "video"}, {"codec_type": "audio"}]
}`

func TestReadMergesFileInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(path, []byte("not a real video"), 0o644))

	r := NewReader()
	r.probe = func(_ context.Context, _ string) ([]byte, error) {
		return []byte(probeJSON), nil
	}

	doc := r.Read(context.Background(), path)
	require.Contains(t, doc, "format")
	require.Contains(t, doc, "streams")

	info, ok := doc["file_info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "clip.mp4", info["file_name"])
	assert.Equal(t, "MP4", info["file_format"])
	assert.Contains(t, info, "file_size")
	assert.Contains(t, info, "date_created")
	assert.Contains(t, info, "date_modified")
}

func TestReadCachesPerPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	calls := 0
	r := NewReader()
	r.probe = func(_ context.Context, _ string) ([]byte, error) {
		calls++
		return []byte(probeJSON), nil
	}

	first := r.Read(context.Background(), path)
	second := r.Read(context.Background(), path)

	assert.Equal(t, 1, calls, "probe must run once per path")
	assert.Equal(t, first["format"], second["format"])
}

func TestReadProbeFailureYieldsEmptyDocument(t *testing.T) {
	r := NewReader()
	r.probe = func(_ context.Context, _ string) ([]byte, error) {
		return nil, errors.New("boom")
	}

	doc := r.Read(context.Background(), "missing.mp4")
	assert.Empty(t, doc)

	// Failures are cached too.
	doc = r.Read(context.Background(), "missing.mp4")
	assert.Empty(t, doc)
}

func TestReadBadJSONYieldsEmptyDocument(t *testing.T) {
	r := NewReader()
	r.probe = func(_ context.Context, _ string) ([]byte, error) {
		return []byte("{truncated"), nil
	}

	doc := r.Read(context.Background(), "clip.mp4")
	assert.Empty(t, doc)
}
