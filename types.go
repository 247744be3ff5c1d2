package tex2png

import (
	"fmt"
	"strings"
)

// Default rendering parameters.
const (
	DefaultDPI            = 300
	DefaultCommand        = "pdflatex"
	DefaultOutputFilename = "output_equation.png"
	DefaultOutputDir      = "output_images"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// EquationSpan is a single math span located in a source document.
type EquationSpan struct {
	Start   int    // byte offset of the opening delimiter
	End     int    // byte offset just past the closing delimiter
	Body    string // math content without delimiters
	Display bool   // true for $$...$$ spans
}

// Raw returns the span wrapped in its original delimiters, which is the
// form the renderer expects.
func (s EquationSpan) Raw() string {
	if s.Display {
		return "$$" + s.Body + "$$"
	}
	return "$" + s.Body + "$"
}

// RenderRequest describes a single equation-to-PNG conversion.
type RenderRequest struct {
	Equation   string // delimiter-wrapped math, e.g. `$x+y=z$`
	OutputPath string // destination PNG path; parent directories are created
	DPI        int    // raster resolution; 0 means DefaultDPI
}

// withDefaults fills in zero-value fields.
func (r RenderRequest) withDefaults() RenderRequest {
	if r.OutputPath == "" {
		r.OutputPath = DefaultOutputFilename
	}
	if r.DPI == 0 {
		r.DPI = DefaultDPI
	}
	return r
}

// validate checks that the request can be rendered.
func (r RenderRequest) validate() error {
	if strings.TrimSpace(r.Equation) == "" {
		return ErrEmptyEquation
	}
	if !isWrapped(r.Equation) {
		return fmt.Errorf("%w: %q", ErrMissingDelimiters, r.Equation)
	}
	if r.DPI <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDPI, r.DPI)
	}
	return nil
}

// isWrapped reports whether the equation carries its math delimiters.
// `$x$` is the shortest valid inline form; a bare `$$` is two delimiters
// with no content, not a wrapped equation.
func isWrapped(equation string) bool {
	if len(equation) < 3 {
		return false
	}
	if !strings.HasPrefix(equation, "$") || !strings.HasSuffix(equation, "$") {
		return false
	}
	if strings.HasPrefix(equation, "$$") {
		return len(equation) >= 5 && strings.HasSuffix(equation, "$$")
	}
	return true
}
