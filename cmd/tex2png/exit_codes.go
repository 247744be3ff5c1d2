package main

import (
	"errors"
	"os"

	"tex2png"
	"tex2png/internal/config"
)

// Exit codes for the tex2png CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitLatex   = 4 // Typesetting toolchain errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Toolchain errors (exit 4)
	if errors.Is(err, tex2png.ErrLatexNotFound) ||
		errors.Is(err, tex2png.ErrRenderFailed) {
		return ExitLatex
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, tex2png.ErrWriteImage) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, tex2png.ErrEmptyEquation) ||
		errors.Is(err, tex2png.ErrMissingDelimiters) ||
		errors.Is(err, tex2png.ErrInvalidDPI) ||
		errors.Is(err, tex2png.ErrUnterminatedMath) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidDPI) {
		return ExitUsage
	}

	return ExitGeneral
}
