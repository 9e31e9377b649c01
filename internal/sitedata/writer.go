package sitedata

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write serializes the document and overwrites path.
//
// The document is encoded fully in memory before the file is opened,
// so an encoding failure never touches an existing output file. The
// file handle is closed on every path, including write failure.
func Write(doc Document, path string) error {
	data, err := doc.Encode()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	return nil
}
