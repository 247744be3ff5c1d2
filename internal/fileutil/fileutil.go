// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsTexFile returns true if the path has a .tex extension
// (case-insensitive).
func IsTexFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".tex")
}

// BaseName returns the final path element with its extension removed.
//
// Examples:
//   - "notes.tex" -> "notes"
//   - "/home/me/paper.v2.tex" -> "paper.v2"
//   - "README" -> "README"
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
