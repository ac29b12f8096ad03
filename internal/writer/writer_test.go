package writer

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidmeta/internal/domain/enums"
	"vidmeta/internal/profiles"
)

// fakeRunner records invocations instead of spawning tools.
type fakeRunner struct {
	name string
	args []string
	n    int
	err  error
}

func (f *fakeRunner) run(_ context.Context, name string, args ...string) (string, error) {
	f.name = name
	f.args = args
	f.n++
	return "", f.err
}

func newTestWriter(f *fakeRunner) *Writer {
	return &Writer{run: f.run}
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		method string
		want   enums.WriteBackend
	}{
		{"ffmpeg", enums.BackendFFmpeg},
		{"exiftool", enums.BackendExifTool},
		{"mp4tag", enums.BackendMP4Tag},
		{"MP4Tag", enums.BackendMP4Tag},
		{"", enums.BackendFFmpeg},
		{"mutagen", enums.BackendFFmpeg},
		{"nonsense", enums.BackendFFmpeg},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseBackend(tc.method), "method %q", tc.method)
	}
}

func TestModifyUnknownBackendUsesFFmpeg(t *testing.T) {
	f := &fakeRunner{}
	w := newTestWriter(f)

	ok := w.Modify(context.Background(), Request{
		Input:   "clip.mp4",
		Output:  "clip_out.mp4",
		Profile: profiles.Profile{"make": "Apple"},
		Backend: ParseBackend("definitely-not-a-method"),
	})

	require.True(t, ok)
	assert.Equal(t, "ffmpeg", f.name)
}

func TestModifyFFmpegArgs(t *testing.T) {
	f := &fakeRunner{}
	w := newTestWriter(f)

	profile := profiles.Profile{
		"make":  "Apple",
		"model": "iPhone 14 Pro",
	}

	ok := w.Modify(context.Background(), Request{
		Input:   "clip.mp4",
		Output:  "clip_out.mp4",
		Profile: profile,
		Backend: enums.BackendFFmpeg,
	})

	require.True(t, ok)
	assert.Equal(t, "ffmpeg", f.name)
	assert.Equal(t, []string{
		"-i", "clip.mp4",
		"-c", "copy",
		"-map_metadata", "0",
		"-metadata", "make=Apple",
		"-metadata", "model=iPhone 14 Pro",
		"-y", "clip_out.mp4",
	}, f.args)
}

func TestModifyFFmpegCustomDate(t *testing.T) {
	f := &fakeRunner{}
	w := newTestWriter(f)

	ok := w.Modify(context.Background(), Request{
		Input:      "clip.mp4",
		Output:     "out.mp4",
		Profile:    profiles.Profile{"make": "Apple"},
		CustomDate: "2024-06-01 12:00:00",
		Backend:    enums.BackendFFmpeg,
	})

	require.True(t, ok)
	assert.Contains(t, f.args, "creation_time=2024-06-01 12:00:00")
}

func TestModifyFFmpegFailure(t *testing.T) {
	f := &fakeRunner{err: errors.New("exit status 1")}
	w := newTestWriter(f)

	ok := w.Modify(context.Background(), Request{
		Input:   "clip.mp4",
		Output:  "out.mp4",
		Profile: profiles.Profile{"make": "Apple"},
		Backend: enums.BackendFFmpeg,
	})
	assert.False(t, ok)
}

func TestStripArgs(t *testing.T) {
	f := &fakeRunner{}
	w := newTestWriter(f)

	ok := w.Strip(context.Background(), "clip.mov", "clean.mov")

	require.True(t, ok)
	assert.Equal(t, "ffmpeg", f.name)
	assert.Equal(t, []string{
		"-i", "clip.mov",
		"-c", "copy",
		"-map_metadata", "-1",
		"-y", "clean.mov",
	}, f.args)
}

func TestExifToolMissingInput(t *testing.T) {
	f := &fakeRunner{}
	w := newTestWriter(f)

	dir := t.TempDir()
	ok := w.Modify(context.Background(), Request{
		Input:   filepath.Join(dir, "missing.mp4"),
		Output:  filepath.Join(dir, "out.mp4"),
		Profile: profiles.Profile{"make": "Apple"},
		Backend: enums.BackendExifTool,
	})

	assert.False(t, ok)
	assert.Zero(t, f.n, "no external process may be invoked")
	assert.NoFileExists(t, filepath.Join(dir, "out.mp4"))
}

func TestMP4TagSkipsNonMP4(t *testing.T) {
	f := &fakeRunner{}
	w := newTestWriter(f)

	ok := w.Modify(context.Background(), Request{
		Input:   "clip.mkv",
		Output:  "out.mkv",
		Profile: profiles.Profile{"make": "Apple"},
		Backend: enums.BackendMP4Tag,
	})

	assert.False(t, ok)
	assert.Zero(t, f.n, "no external process may be invoked")
}
