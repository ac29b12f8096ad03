// Package consts holds constant values for use in the program.
package consts

// External tool commands
const (
	CommandFFmpeg   = "ffmpeg"
	CommandFFprobe  = "ffprobe"
	CommandExifTool = "exiftool"
)

// Method names entered by the user
const (
	MethodFFmpeg   = "ffmpeg"
	MethodExifTool = "exiftool"
	MethodMP4Tag   = "mp4tag"
)

// Misc strings
const (
	OutputSuffix = "_processed"
	TimeFormat   = "2006-01-02 15:04:05"
)
