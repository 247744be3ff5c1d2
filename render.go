package tex2png

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Jobname passed to pdflatex; determines the names of the files it writes
// in the work directory (equation.pdf, equation.log).
const renderJobname = "equation"

// CommandRunner abstracts subprocess execution to enable testing without a
// LaTeX installation.
type CommandRunner interface {
	Run(ctx context.Context, dir, stdin, name string, args ...string) (stdout, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir, stdin, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// rasterizer turns a one-page PDF file into an image at a given DPI.
type rasterizer interface {
	Rasterize(pdfPath string, dpi int) (image.Image, error)
}

// fitzRasterizer renders PDF pages through MuPDF.
type fitzRasterizer struct{}

func (fitzRasterizer) Rasterize(pdfPath string, dpi int) (image.Image, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening rendered PDF: %w", err)
	}
	defer doc.Close()

	img, err := doc.ImageDPI(0, float64(dpi))
	if err != nil {
		return nil, fmt.Errorf("rasterizing page: %w", err)
	}
	return img, nil
}

// Renderer converts one delimiter-wrapped equation at a time into a
// transparent PNG by driving an external LaTeX toolchain. Each Render call
// is stateless and one-shot; there is no retry.
type Renderer struct {
	command  string
	runner   CommandRunner
	raster   rasterizer
	lookPath func(string) (string, error)
}

// RendererOption customizes a Renderer.
type RendererOption func(*Renderer)

// WithCommand overrides the LaTeX binary invoked for typesetting.
// The default is pdflatex, resolved via PATH.
func WithCommand(command string) RendererOption {
	return func(r *Renderer) {
		if command != "" {
			r.command = command
		}
	}
}

// WithRunner overrides subprocess execution (used by tests).
func WithRunner(runner CommandRunner) RendererOption {
	return func(r *Renderer) {
		r.runner = runner
	}
}

// NewRenderer creates a Renderer with default configuration.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		command:  DefaultCommand,
		runner:   ExecRunner{},
		raster:   fitzRasterizer{},
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CheckToolchain verifies that the LaTeX binary is available. Callers
// should run this once before a batch so a missing toolchain is reported a
// single time, not per equation.
func (r *Renderer) CheckToolchain() error {
	if _, err := r.lookPath(r.command); err != nil {
		return fmt.Errorf("%w: %q is not installed or not on PATH", ErrLatexNotFound, r.command)
	}
	return nil
}

// Render typesets req.Equation and writes a transparent-background PNG to
// req.OutputPath, creating parent directories as needed. The context covers
// the whole call; callers needing a timeout pass a deadline context.
func (r *Renderer) Render(ctx context.Context, req RenderRequest) error {
	req = req.withDefaults()
	if err := req.validate(); err != nil {
		return err
	}

	workDir, err := os.MkdirTemp("", "tex2png-")
	if err != nil {
		return fmt.Errorf("creating work dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	args := []string{"-halt-on-error", "-interaction=nonstopmode", "-jobname=" + renderJobname}
	_, stderr, err := r.runner.Run(ctx, workDir, texDocument(req.Equation), r.command, args...)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s: %s", ErrRenderFailed, req.Equation, latexFailure(workDir, stderr))
	}

	img, err := r.raster.Rasterize(filepath.Join(workDir, renderJobname+".pdf"), req.DPI)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRenderFailed, req.Equation, err)
	}

	return writePNG(keyToTransparent(img), req.OutputPath)
}

// latexFailure extracts the error lines from the pdflatex log, falling back
// to stderr when no usable log was written.
func latexFailure(workDir, stderr string) string {
	lines := latexLogErrors(filepath.Join(workDir, renderJobname+".log"))
	if len(lines) > 0 {
		return strings.Join(lines, " | ")
	}
	if s := strings.TrimSpace(stderr); s != "" {
		return s
	}
	return "pdflatex exited with an error"
}

// latexLogErrors collects the error lines of a pdflatex log. Errors are
// reported on lines starting with "!"; "<*>" marks the offending input.
func latexLogErrors(logPath string) []string {
	f, err := os.Open(logPath) // #nosec G304 -- path is inside our own temp dir
	if err != nil {
		return nil
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "!") || strings.HasPrefix(line, "<*>") {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines
}
