// Package processing routes a validated run to its operation.
package processing

import (
	"context"
	"errors"
	"fmt"

	"vidmeta/internal/cfg"
	"vidmeta/internal/ffprobe"
	"vidmeta/internal/profiles"
	"vidmeta/internal/utils/logging"
	"vidmeta/internal/utils/printout"
	"vidmeta/internal/validation"
	"vidmeta/internal/writer"
)

// ErrInvalidProfile signals that no usable profile could be resolved for
// a modify operation.
var ErrInvalidProfile = errors.New("invalid device profile")

// Run executes the operation selected by the user's flags.
func Run(ctx context.Context, s cfg.Settings) error {
	store := profiles.NewStore()

	switch {
	case s.ListDevices:
		printout.PrintDeviceList(store.List())
		return nil

	case s.ShowMetadata != "":
		return showMetadata(ctx, s.ShowMetadata)

	default:
		return processVideo(ctx, s, store)
	}
}

// showMetadata probes a file and prints its merged metadata document.
func showMetadata(ctx context.Context, path string) error {
	if err := writer.CheckTools(); err != nil {
		return err
	}

	if !validation.ValidInputFile(path) {
		return fmt.Errorf("invalid input file: %s", path)
	}

	reader := ffprobe.NewReader()
	return printout.PrintMetadata(reader.Read(ctx, path))
}

// processVideo performs the strip or modify operation.
func processVideo(ctx context.Context, s cfg.Settings, store *profiles.Store) error {
	if err := writer.CheckTools(); err != nil {
		return err
	}

	if !validation.ValidInputFile(s.Input) {
		return fmt.Errorf("invalid input file: %s", s.Input)
	}

	w := writer.New()

	if s.Strip {
		if !w.Strip(ctx, s.Input, s.Output) {
			return fmt.Errorf("failed to strip metadata from %s", s.Input)
		}
		logging.P("Successfully stripped metadata. Output saved to: %s", s.Output)
		return nil
	}

	profile, err := resolveProfile(s, store)
	if err != nil {
		return err
	}

	req := writer.Request{
		Input:      s.Input,
		Output:     s.Output,
		Profile:    profile,
		CustomDate: s.CustomDate,
		Backend:    writer.ParseBackend(s.Method),
	}
	if !w.Modify(ctx, req) {
		return fmt.Errorf("failed to modify metadata for %s", s.Input)
	}

	logging.P("Successfully modified metadata. Output saved to: %s", s.Output)
	return nil
}

// resolveProfile loads the custom profile file when given, otherwise the
// named built-in. An empty result fails the run.
func resolveProfile(s cfg.Settings, store *profiles.Store) (profiles.Profile, error) {
	if s.CustomProfile != "" {
		profile, err := profiles.LoadFile(s.CustomProfile)
		if err != nil {
			return nil, err
		}
		if len(profile) == 0 {
			return nil, ErrInvalidProfile
		}
		return profile, nil
	}

	profile, err := store.Get(s.Device)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	if len(profile) == 0 {
		return nil, ErrInvalidProfile
	}
	return profile, nil
}
