package writer

import (
	"github.com/barasher/go-exiftool"

	"vidmeta/internal/utils/logging"
)

// modifyExifTool copies the input to the output path, then rewrites the
// output's tags in place with ExifTool, one assignment per profile entry.
func (w *Writer) modifyExifTool(req Request) bool {
	if err := copyFile(req.Input, req.Output); err != nil {
		logging.E("ExifTool error: %v", err)
		return false
	}

	et, err := exiftool.NewExiftool()
	if err != nil {
		logging.E("Failed to initialize ExifTool: %v", err)
		return false
	}
	defer func() {
		if err := et.Close(); err != nil {
			logging.E("Failed to close ExifTool: %v", err)
		}
	}()

	fm := exiftool.EmptyFileMetadata()
	fm.File = req.Output
	for key, value := range req.Profile {
		fm.SetString(key, value)
	}
	if req.CustomDate != "" {
		fm.SetString("CreateDate", req.CustomDate)
		fm.SetString("ModifyDate", req.CustomDate)
	}

	fms := []exiftool.FileMetadata{fm}
	et.WriteMetadata(fms)
	if fms[0].Err != nil {
		logging.E("ExifTool error: %v", fms[0].Err)
		return false
	}

	logging.S("Metadata modified with ExifTool. Output saved to %s", req.Output)
	return true
}
