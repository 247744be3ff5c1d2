// Package tex2png renders LaTeX math expressions to standalone
// transparent-background PNG images.
//
// # Quick Start
//
// Render a single delimiter-wrapped equation:
//
//	svc := tex2png.NewService()
//	err := svc.RenderEquation(ctx, `$\sum_{i=0}^n i^2$`, "sum.png", 300)
//
// Or extract and render every math span from a .tex file:
//
//	report, err := svc.ConvertFile(ctx, tex2png.FileInput{
//	    SourcePath: "notes.tex",
//	    OutputDir:  "output_images",
//	    DPI:        300,
//	})
//
// The report records the outcome for each extracted span; a render failure
// for one equation does not stop the remaining ones.
//
// # Conversion Pipeline
//
// Each render follows these stages:
//
//  1. The equation (already wrapped in $...$ or $$...$$) is embedded in a
//     minimal standalone LaTeX document.
//  2. pdflatex typesets the document in a temporary directory.
//  3. The resulting one-page PDF is rasterized at the requested DPI via
//     MuPDF (go-fitz).
//  4. The white page background is keyed to zero alpha so only the glyphs
//     remain, and the image is written as a PNG.
//
// # Extraction
//
// Extract scans free-form text for inline ($...$) and display ($$...$$)
// math spans, honoring escaped \$ characters. By default a dangling
// delimiter at end of input is skipped; WithStrictDelimiters makes it an
// error instead.
//
// # Toolchain Requirements
//
// Rendering requires a LaTeX distribution (TeX Live, MiKTeX) providing the
// pdflatex binary on PATH, and the MuPDF library used by go-fitz. Use
// WithCommand to point at a different binary.
package tex2png
