package cfg

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"vidmeta/internal/domain/consts"
	"vidmeta/internal/domain/keys"
)

// init sets the initial Viper settings.
func init() {
	// Env vars.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("_", "-"))

	initOrExit(initFilesDirs(), "files & dirs initialization failure")
	initOrExit(initMetaSettings(), "metadata setting initialization failure")
	initOrExit(initProgramFunctions(), "program function initialization failure")
}

// initOrExit aborts the program when flag registration fails.
func initOrExit(err error, msg string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
		os.Exit(1)
	}
}

// initFilesDirs initializes user flag settings for input and output files.
func initFilesDirs() error {
	rootCmd.PersistentFlags().StringP(keys.Input, "i", "", "Path to the input video file")
	if err := viper.BindPFlag(keys.Input, rootCmd.PersistentFlags().Lookup(keys.Input)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().StringP(keys.Output, "o", "", "Path to save the modified video file")
	if err := viper.BindPFlag(keys.Output, rootCmd.PersistentFlags().Lookup(keys.Output)); err != nil {
		return err
	}
	return nil
}

// initMetaSettings initializes user flag settings for the metadata to write.
func initMetaSettings() error {
	rootCmd.PersistentFlags().StringP(keys.Device, "p", "", "Device profile to apply")
	if err := viper.BindPFlag(keys.Device, rootCmd.PersistentFlags().Lookup(keys.Device)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().String(keys.CustomProfile, "", "Path to custom device profile JSON file")
	if err := viper.BindPFlag(keys.CustomProfile, rootCmd.PersistentFlags().Lookup(keys.CustomProfile)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().String(keys.CustomDate, "", "Custom creation date (YYYY-MM-DD HH:MM:SS)")
	if err := viper.BindPFlag(keys.CustomDate, rootCmd.PersistentFlags().Lookup(keys.CustomDate)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().BoolP(keys.Strip, "s", false, "Strip all metadata from the video")
	if err := viper.BindPFlag(keys.Strip, rootCmd.PersistentFlags().Lookup(keys.Strip)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().StringP(keys.Method, "m", consts.MethodFFmpeg, "Method to modify metadata (ffmpeg, exiftool, mp4tag)")
	if err := viper.BindPFlag(keys.Method, rootCmd.PersistentFlags().Lookup(keys.Method)); err != nil {
		return err
	}
	return nil
}

// initProgramFunctions initializes user flag settings for the program's modes.
func initProgramFunctions() error {
	rootCmd.PersistentFlags().Bool(keys.ListDevices, false, "List available device profiles")
	if err := viper.BindPFlag(keys.ListDevices, rootCmd.PersistentFlags().Lookup(keys.ListDevices)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().String(keys.ShowMetadata, "", "Show current metadata of a video file")
	if err := viper.BindPFlag(keys.ShowMetadata, rootCmd.PersistentFlags().Lookup(keys.ShowMetadata)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().Bool(keys.GUI, false, "Launch graphical user interface")
	if err := viper.BindPFlag(keys.GUI, rootCmd.PersistentFlags().Lookup(keys.GUI)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().IntP(keys.DebugLevel, "d", 0, "Level of debugging (0 - 3)")
	if err := viper.BindPFlag(keys.DebugLevel, rootCmd.PersistentFlags().Lookup(keys.DebugLevel)); err != nil {
		return err
	}
	return nil
}
