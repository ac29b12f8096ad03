package writer

import (
	"strings"

	"vidmeta/internal/domain/consts"
	"vidmeta/internal/domain/enums"
	"vidmeta/internal/utils/logging"
)

// ParseBackend maps a user entered method name to a write backend.
// Unrecognized names fall back to FFmpeg with a warning rather than
// failing, this permissive default is deliberate and mirrors the
// documented CLI behavior.
func ParseBackend(method string) enums.WriteBackend {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case consts.MethodFFmpeg, "":
		return enums.BackendFFmpeg
	case consts.MethodExifTool:
		return enums.BackendExifTool
	case consts.MethodMP4Tag:
		return enums.BackendMP4Tag
	default:
		logging.W("Unsupported method: %q. Falling back to FFmpeg.", method)
		return enums.BackendFFmpeg
	}
}
