// Package profiles stores the built-in device profiles and loads or
// saves user supplied ones as JSON.
package profiles

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
)

// Profile is a flat mapping of metadata attribute names to values. The
// keys are free-form and interpreted by the downstream tool.
type Profile map[string]string

// ErrProfileNotFound is returned when a device name has no built-in profile.
var ErrProfileNotFound = errors.New("device profile not found")

// Store holds the built-in device profiles.
type Store struct {
	builtins map[string]Profile
	order    []string
}

// NewStore creates a profile store populated with the built-in devices.
func NewStore() *Store {
	s := &Store{
		builtins: make(map[string]Profile, len(builtinProfiles)),
		order:    make([]string, 0, len(builtinProfiles)),
	}
	for _, entry := range builtinProfiles {
		s.builtins[entry.name] = entry.profile
		s.order = append(s.order, entry.name)
	}
	return s
}

// List returns the built-in device names in their fixed order.
func (s *Store) List() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Get returns a copy of the named built-in profile. Profiles are
// immutable, callers receive a copy they can freely mutate.
func (s *Store) Get(name string) (Profile, error) {
	p, ok := s.builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return maps.Clone(p), nil
}

// LoadFile reads a custom device profile from a JSON file.
func LoadFile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %q: %w", path, err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile file %q: %w", path, err)
	}
	return p, nil
}

// SaveFile writes a device profile to a JSON file.
func SaveFile(p Profile, path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile file %q: %w", path, err)
	}
	return nil
}
