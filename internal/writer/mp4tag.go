package writer

import (
	"maps"
	"path/filepath"
	"strings"

	mp4tag "github.com/Sorrow446/go-mp4tag"

	"vidmeta/internal/domain/consts"
	"vidmeta/internal/utils/logging"
)

// modifyMP4Tag copies the input to the output path and rewrites the MP4
// tag atoms in process. Restricted to MP4 containers, other extensions
// are skipped without spawning anything.
func (w *Writer) modifyMP4Tag(req Request) bool {
	if !strings.EqualFold(filepath.Ext(req.Input), consts.ExtMP4) {
		logging.W("The mp4tag method supports only MP4 files. Skipping.")
		return false
	}

	if err := copyFile(req.Input, req.Output); err != nil {
		logging.E("MP4 tag error: %v", err)
		return false
	}

	mp4, err := mp4tag.Open(req.Output)
	if err != nil {
		logging.E("Failed to open MP4 tags in %q: %v", req.Output, err)
		return false
	}
	defer mp4.Close()

	custom := maps.Clone(map[string]string(req.Profile))
	if custom == nil {
		custom = make(map[string]string, 1)
	}
	if req.CustomDate != "" {
		custom["creation_time"] = req.CustomDate
	}

	if err := mp4.Write(&mp4tag.MP4Tags{Custom: custom}, nil); err != nil {
		logging.E("Failed to write MP4 tags to %q: %v", req.Output, err)
		return false
	}

	logging.S("Metadata modified with MP4 tags. Output saved to %s", req.Output)
	return true
}
