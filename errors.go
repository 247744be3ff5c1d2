package tex2png

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyEquation     = errors.New("equation cannot be empty")
	ErrMissingDelimiters = errors.New("equation must be wrapped in $...$ or $$...$$")
	ErrInvalidDPI        = errors.New("dpi must be positive")
	ErrRenderFailed      = errors.New("LaTeX rendering failed")
	ErrLatexNotFound     = errors.New("LaTeX toolchain not found")
	ErrWriteImage        = errors.New("failed to write image")

	// Extraction errors.
	ErrUnterminatedMath = errors.New("unterminated math delimiter")
)
