package writer

import (
	"fmt"
	"io"
	"os"
)

// copyFile duplicates src to dst. The ExifTool and MP4 tag backends
// rewrite tags in place, so the output file starts as a copy.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %q to %q: %w", src, dst, err)
	}
	return out.Close()
}
