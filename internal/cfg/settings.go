package cfg

import (
	"errors"

	"github.com/spf13/viper"

	"vidmeta/internal/dates"
	"vidmeta/internal/domain/keys"
	"vidmeta/internal/validation"
)

// Settings holds the resolved flag values for one program run.
type Settings struct {
	Input         string
	Output        string
	Device        string
	CustomProfile string
	CustomDate    string
	Method        string
	ShowMetadata  string
	Strip         bool
	ListDevices   bool
	GUI           bool
}

var progSettings Settings

// execute more thoroughly handles settings created in the Viper init.
func execute() error {
	s := settingsFromViper()
	if err := validateSettings(s); err != nil {
		return err
	}

	// The backends always receive the canonical timestamp layout.
	if s.CustomDate != "" {
		normalized, err := dates.NormalizeCustomDate(s.CustomDate)
		if err != nil {
			return err
		}
		s.CustomDate = normalized
	}

	progSettings = s
	return nil
}

// GetSettings returns the validated settings for this run.
func GetSettings() Settings {
	return progSettings
}

// settingsFromViper collects the bound flag values.
func settingsFromViper() Settings {
	return Settings{
		Input:         viper.GetString(keys.Input),
		Output:        viper.GetString(keys.Output),
		Device:        viper.GetString(keys.Device),
		CustomProfile: viper.GetString(keys.CustomProfile),
		CustomDate:    viper.GetString(keys.CustomDate),
		Method:        viper.GetString(keys.Method),
		ShowMetadata:  viper.GetString(keys.ShowMetadata),
		Strip:         viper.GetBool(keys.Strip),
		ListDevices:   viper.GetBool(keys.ListDevices),
		GUI:           viper.GetBool(keys.GUI),
	}
}

// validateSettings checks flag combinations before any external process
// is invoked.
func validateSettings(s Settings) error {
	if s.Strip && (s.Device != "" || s.CustomProfile != "" || s.CustomDate != "") {
		return errors.New("--strip cannot be used with --device, --custom-profile, or --custom-date")
	}

	if s.CustomDate != "" {
		if err := validation.ValidateCustomDate(s.CustomDate); err != nil {
			return err
		}
	}

	// The listing, metadata display, and GUI modes need no file pair.
	if s.ListDevices || s.GUI || s.ShowMetadata != "" {
		return nil
	}

	if s.Input == "" || s.Output == "" {
		return errors.New("--input and --output are required for metadata modification or stripping")
	}

	if !s.Strip && s.Device == "" && s.CustomProfile == "" {
		return errors.New("either --device, --custom-profile, or --strip must be specified")
	}
	return nil
}
