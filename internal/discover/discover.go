// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discover locates the transcript document in a directory.
package discover

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoDocumentFound is returned when no file in the directory has an
// accepted extension.
var ErrNoDocumentFound = errors.New("no transcript document found")

// DefaultExtensions is used when no extensions are configured.
var DefaultExtensions = []string{".pdf"}

// FindDocument returns the path of the first regular file in dir, in name
// order, whose extension matches one of exts case-insensitively. Extensions
// may be given with or without the leading dot.
func FindDocument(dir string, exts []string) (string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	want := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		want[e] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("scanning %s for transcripts: %w", dir, err)
	}

	// os.ReadDir returns entries sorted by filename.
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if want[strings.ToLower(filepath.Ext(entry.Name()))] {
			return filepath.Join(dir, entry.Name()), nil
		}
	}
	return "", fmt.Errorf("%w in %s (looked for %s)", ErrNoDocumentFound, dir, strings.Join(exts, ", "))
}
