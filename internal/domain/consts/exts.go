package consts

// Video extensions
const (
	Ext3GP = ".3gp"
	ExtAVI = ".avi"
	ExtM4V = ".m4v"
	ExtMKV = ".mkv"
	ExtMOV = ".mov"
	ExtMP4 = ".mp4"
)

// SupportedVideoExts contains the video extensions the program accepts as input.
var SupportedVideoExts = map[string]bool{
	Ext3GP: true,
	ExtAVI: true,
	ExtM4V: true,
	ExtMKV: true,
	ExtMOV: true,
	ExtMP4: true,
}
