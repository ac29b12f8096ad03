// Package printout renders program output for the terminal.
package printout

import (
	"encoding/json"
	"fmt"

	"vidmeta/internal/ffprobe"
)

// PrintDeviceList prints the available device profile names.
func PrintDeviceList(names []string) {
	fmt.Println("Available device profiles:")
	for _, name := range names {
		fmt.Printf("  - %s\n", name)
	}
}

// PrintMetadata pretty-prints a metadata document as indented JSON.
func PrintMetadata(doc ffprobe.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
