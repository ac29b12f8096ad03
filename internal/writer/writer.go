// Package writer modifies or strips video metadata through one of three
// backends: an FFmpeg stream-copy remux, ExifTool per-tag rewriting, or
// in-process MP4 tag editing.
package writer

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"vidmeta/internal/domain/consts"
	"vidmeta/internal/domain/enums"
	"vidmeta/internal/profiles"
	"vidmeta/internal/utils/logging"
)

// Request describes one metadata write operation.
type Request struct {
	Input      string
	Output     string
	Profile    profiles.Profile
	CustomDate string
	Backend    enums.WriteBackend
}

// Writer dispatches metadata write operations to the selected backend.
type Writer struct {
	run commandRunner
}

// New creates a metadata writer.
func New() *Writer {
	return &Writer{run: runCommand}
}

// Modify writes the request's profile entries into the output file using
// the selected backend. Failures are logged and reported as false.
func (w *Writer) Modify(ctx context.Context, req Request) bool {
	switch req.Backend {
	case enums.BackendExifTool:
		return w.modifyExifTool(req)
	case enums.BackendMP4Tag:
		return w.modifyMP4Tag(req)
	default:
		return w.modifyFFmpeg(ctx, req)
	}
}

// modifyFFmpeg remuxes the file with stream copy, replacing the
// container metadata tags.
func (w *Writer) modifyFFmpeg(ctx context.Context, req Request) bool {
	builder := newFfCommandBuilder(req.Input, req.Output)
	builder.addAllMetadata(req.Profile, req.CustomDate)
	args := builder.buildModifyArgs()

	logging.I("Executing: %s %s", consts.CommandFFmpeg, strings.Join(args, " "))
	if stderr, err := w.run(ctx, consts.CommandFFmpeg, args...); err != nil {
		logging.E("FFmpeg error: %v\n%s", err, stderr)
		return false
	}

	logging.S("Metadata successfully modified with FFmpeg. Output saved to %s", req.Output)
	return true
}

// Strip removes all metadata from the input file while copying its
// streams verbatim. Always uses the FFmpeg backend.
func (w *Writer) Strip(ctx context.Context, input, output string) bool {
	builder := newFfCommandBuilder(input, output)
	args := builder.buildStripArgs()

	logging.I("Executing: %s %s", consts.CommandFFmpeg, strings.Join(args, " "))
	if stderr, err := w.run(ctx, consts.CommandFFmpeg, args...); err != nil {
		logging.E("FFmpeg error: %v\n%s", err, stderr)
		return false
	}

	logging.S("Metadata stripped. Output saved to %s", output)
	return true
}

// CheckTools verifies the required external tools are present. FFmpeg is
// mandatory, ExifTool only limits the available methods when missing.
func CheckTools() error {
	if _, err := exec.LookPath(consts.CommandFFmpeg); err != nil {
		return fmt.Errorf("FFmpeg is required but not found, please install FFmpeg: %w", err)
	}
	logging.I("FFmpeg is available")

	if _, err := exec.LookPath(consts.CommandExifTool); err != nil {
		logging.W("ExifTool not found. Some metadata features may be limited.")
	} else {
		logging.I("ExifTool is available")
	}
	return nil
}
