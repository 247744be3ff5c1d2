package main

import (
	"fmt"
	"io"
)

// printUsage writes the top-level usage summary.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `tex2png - render LaTeX math equations to transparent PNG images

Usage:
  tex2png manual [flags] <equation>   render one $-wrapped equation
  tex2png file [flags] <input.tex>    render every equation found in a file
  tex2png doctor [--json]             check the LaTeX toolchain
  tex2png version                     print the version
  tex2png help                        show this help

Run tex2png without arguments for the interactive prompt.
Use "tex2png manual --help" or "tex2png file --help" for command flags.
`)
}

// printManualUsage writes usage for the manual command.
func printManualUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: tex2png manual [flags] <equation>

Renders one equation to a transparent PNG. The equation must be wrapped in
math delimiters: $...$ for inline, $$...$$ for display.

Example:
  tex2png manual -o sum.png -d 600 '$\sum_{i=0}^n i^2$'

Flags:
  -o, --output string   output image file (default: output_equation.png)
  -d, --dpi int         raster resolution in dots per inch (default: 300)
  -c, --config string   config file path
      --latex string    LaTeX binary to invoke (default: pdflatex)
  -q, --quiet           only show errors
  -v, --verbose         show per-equation progress
`)
}

// printFileUsage writes usage for the file command.
func printFileUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: tex2png file [flags] <input.tex>

Extracts every $...$ and $$...$$ math span from the file and renders each to
<output>/equation_<n>.png in document order. With --replace, also writes a
copy of the document with the spans replaced by \includegraphics commands.

Example:
  tex2png file -d 600 --replace notes.tex

Flags:
  -o, --output string   output image directory (default: output_images)
  -d, --dpi int         raster resolution in dots per inch (default: 300)
  -r, --replace         write a .tex copy with equations replaced by images
      --strict          fail on unterminated math delimiters
  -c, --config string   config file path
      --latex string    LaTeX binary to invoke (default: pdflatex)
  -q, --quiet           only show errors
  -v, --verbose         show per-equation progress
`)
}
