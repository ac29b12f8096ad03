package writer

import (
	"fmt"
	"sort"

	"vidmeta/internal/profiles"
)

// ffCommandBuilder handles FFmpeg command construction.
type ffCommandBuilder struct {
	inputFile   string
	outputFile  string
	metadataMap map[string]string
}

// newFfCommandBuilder creates a new FFmpeg command builder.
func newFfCommandBuilder(inputFile, outputFile string) *ffCommandBuilder {
	return &ffCommandBuilder{
		inputFile:   inputFile,
		outputFile:  outputFile,
		metadataMap: make(map[string]string),
	}
}

// addAllMetadata stores the profile entries and the optional creation
// date override as metadata tags.
func (b *ffCommandBuilder) addAllMetadata(profile profiles.Profile, customDate string) {
	for key, value := range profile {
		b.metadataMap[key] = value
	}
	if customDate != "" {
		b.metadataMap["creation_time"] = customDate
	}
}

// buildModifyArgs assembles the argument list for a stream-copy remux
// which replaces the container metadata tags.
func (b *ffCommandBuilder) buildModifyArgs() []string {
	args := make([]string, 0, 8+2*len(b.metadataMap))
	args = append(args,
		"-i", b.inputFile,
		"-c", "copy",
		"-map_metadata", "0",
	)

	// Sorted for a stable command line.
	keys := make([]string, 0, len(b.metadataMap))
	for key := range b.metadataMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		args = append(args, "-metadata", fmt.Sprintf("%s=%s", key, b.metadataMap[key]))
	}

	return append(args, "-y", b.outputFile)
}

// buildStripArgs assembles the argument list for a stream-copy remux
// which drops all container metadata.
func (b *ffCommandBuilder) buildStripArgs() []string {
	return []string{
		"-i", b.inputFile,
		"-c", "copy",
		"-map_metadata", "-1",
		"-y", b.outputFile,
	}
}
