// Package enums holds enumerated variables.
package enums

// WriteBackend is the mechanism used to write metadata into a video file.
type WriteBackend int

const (
	BackendFFmpeg WriteBackend = iota
	BackendExifTool
	BackendMP4Tag
)

// String returns the method name the user enters for this backend.
func (b WriteBackend) String() string {
	switch b {
	case BackendExifTool:
		return "exiftool"
	case BackendMP4Tag:
		return "mp4tag"
	default:
		return "ffmpeg"
	}
}
