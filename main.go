// Package main is the main entrypoint of the program.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"github.com/spf13/viper"

	"vidmeta/internal/cfg"
	"vidmeta/internal/domain/keys"
	"vidmeta/internal/gui"
	"vidmeta/internal/processing"
	"vidmeta/internal/utils/logging"
	"vidmeta/internal/writer"
)

// main is the program entrypoint.
func main() {
	// Panic recovery with a clean exit code
	defer func() {
		if r := recover(); r != nil {
			logging.E("Panic recovered: %v", r)
			logging.E("Stack trace:\n\n%s", debug.Stack())
			os.Exit(1)
		}
	}()

	// Parse configuration
	if err := cfg.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Early exit if not executing (e.g. help was shown)
	if !viper.GetBool(keys.Execute) {
		return
	}

	s := cfg.GetSettings()
	setupLogging(s)

	// Setup context for cancellation
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if s.GUI {
		if err := writer.CheckTools(); err != nil {
			logging.E("Failed to launch GUI: %v", err)
			os.Exit(1)
		}
		gui.Run()
		return
	}

	if err := processing.Run(ctx, s); err != nil {
		logging.E("An error occurred: %v", err)
		os.Exit(1)
	}
}

// setupLogging opens the log file beside the input file when one was
// given, otherwise in the working directory.
func setupLogging(s cfg.Settings) {
	dir := "."
	if s.Input != "" {
		dir = filepath.Dir(s.Input)
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = "."
	}

	if err := logging.SetupLogging(dir); err != nil {
		fmt.Printf("\nNotice: Log file was not created\nReason: %s\n\n", err)
	}
}
