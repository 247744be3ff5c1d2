package tex2png

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileInput configures a file-mode conversion.
type FileInput struct {
	SourcePath string // .tex file to scan for math spans
	OutputDir  string // image directory; "" means DefaultOutputDir
	DPI        int    // raster resolution; 0 means DefaultDPI
	Strict     bool   // fail extraction on dangling delimiters
	Replace    bool   // also write a copy with spans replaced by images
}

// EquationResult records the outcome of rendering one extracted span.
type EquationResult struct {
	Index int // 1-based position in extraction order
	Span  EquationSpan
	Path  string // destination image path
	Err   error  // nil on success
}

// FileReport summarizes a file-mode conversion.
type FileReport struct {
	Results     []EquationResult
	ReplacedTex string // path of the rewritten document, replace mode only
}

// Failed returns the results whose render failed, in extraction order.
func (r *FileReport) Failed() []EquationResult {
	var failed []EquationResult
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Rendered returns how many equations rendered successfully.
func (r *FileReport) Rendered() int {
	return len(r.Results) - len(r.Failed())
}

// Service orchestrates equation extraction and rendering.
type Service struct {
	renderer *Renderer
}

// NewService creates a Service. Options are forwarded to the underlying
// Renderer.
func NewService(opts ...RendererOption) *Service {
	return &Service{renderer: NewRenderer(opts...)}
}

// RenderEquation renders a single delimiter-wrapped equation (manual mode).
// Unlike file mode, any error aborts immediately.
func (s *Service) RenderEquation(ctx context.Context, equation, outputPath string, dpi int) error {
	if err := s.renderer.CheckToolchain(); err != nil {
		return err
	}
	return s.renderer.Render(ctx, RenderRequest{
		Equation:   equation,
		OutputPath: outputPath,
		DPI:        dpi,
	})
}

// ConvertFile extracts every math span from input.SourcePath and renders
// each to <OutputDir>/equation_<n>.png, sequentially and in document order.
// Filenames are numbered from 1 so outputs never collide.
//
// A render failure is recorded in the report and does not stop the
// remaining equations. A missing toolchain aborts before any rendering.
// A source with no math spans yields an empty report, not an error.
func (s *Service) ConvertFile(ctx context.Context, input FileInput) (*FileReport, error) {
	if input.OutputDir == "" {
		input.OutputDir = DefaultOutputDir
	}
	if input.DPI == 0 {
		input.DPI = DefaultDPI
	}

	raw, err := os.ReadFile(input.SourcePath) // #nosec G304 -- user-supplied input path
	if err != nil {
		return nil, fmt.Errorf("reading source file: %w", err)
	}
	content := string(raw)

	var extractOpts []ExtractOption
	if input.Strict {
		extractOpts = append(extractOpts, WithStrictDelimiters())
	}
	spans, err := Extract(content, extractOpts...)
	if err != nil {
		return nil, err
	}
	if len(spans) == 0 {
		return &FileReport{}, nil
	}

	if err := s.renderer.CheckToolchain(); err != nil {
		return nil, err
	}

	report := &FileReport{}
	for i, span := range spans {
		path := filepath.Join(input.OutputDir, fmt.Sprintf("equation_%d.png", i+1))
		renderErr := s.renderer.Render(ctx, RenderRequest{
			Equation:   span.Raw(),
			OutputPath: path,
			DPI:        input.DPI,
		})
		report.Results = append(report.Results, EquationResult{
			Index: i + 1,
			Span:  span,
			Path:  path,
			Err:   renderErr,
		})
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
	}

	if input.Replace {
		texPath, err := writeReplacedDocument(content, input.SourcePath, input.OutputDir, report.Results)
		if err != nil {
			return report, err
		}
		report.ReplacedTex = texPath
	}
	return report, nil
}
