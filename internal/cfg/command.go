// Package cfg initializes Viper, Cobra, and validates the user's flags.
package cfg

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vidmeta/internal/domain/keys"
	"vidmeta/internal/utils/logging"
)

var rootCmd = &cobra.Command{
	Use:   "vidmeta",
	Short: "Vidmeta modifies or strips video file metadata.",
	Long: `Vidmeta modifies or strips video file metadata to simulate different devices,
using FFmpeg, ExifTool, or in-process MP4 tag editing.`,
	Example: `  vidmeta --input video.mp4 --device "iPhone 14 Pro" --output modified.mp4 --method ffmpeg
  vidmeta --input video.mp4 --strip --output stripped.mp4
  vidmeta --gui`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// Set logging level
		logging.Level = min(max(viper.GetInt(keys.DebugLevel), 0), 3)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Lookup("help").Changed {
			return nil
		}
		viper.Set(keys.Execute, true)
		return execute()
	},
}

// Execute is the primary initializer of Viper.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}
