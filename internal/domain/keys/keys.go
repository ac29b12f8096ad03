// Package keys holds the terminal flag keys used by Viper.
package keys

// Terminal keys
const (
	Input         string = "input"
	Output        string = "output"
	Device        string = "device"
	CustomProfile string = "custom-profile"
	CustomDate    string = "custom-date"
	Strip         string = "strip"
	ListDevices   string = "list-devices"
	GUI           string = "gui"
	ShowMetadata  string = "show-metadata"
	Method        string = "method"

	DebugLevel string = "debug-level"
)

// Primary program
const (
	Execute string = "execute"
)
