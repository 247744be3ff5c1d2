package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"tex2png"
	"tex2png/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: ExitSuccess,
		},
		{
			name: "render failure",
			err:  tex2png.ErrRenderFailed,
			want: ExitLatex,
		},
		{
			name: "wrapped render failure",
			err:  fmt.Errorf("equation 2: %w", tex2png.ErrRenderFailed),
			want: ExitLatex,
		},
		{
			name: "missing toolchain",
			err:  tex2png.ErrLatexNotFound,
			want: ExitLatex,
		},
		{
			name: "missing file",
			err:  fmt.Errorf("reading source file: %w", os.ErrNotExist),
			want: ExitIO,
		},
		{
			name: "permission denied",
			err:  os.ErrPermission,
			want: ExitIO,
		},
		{
			name: "image write failure",
			err:  tex2png.ErrWriteImage,
			want: ExitIO,
		},
		{
			name: "empty equation",
			err:  tex2png.ErrEmptyEquation,
			want: ExitUsage,
		},
		{
			name: "missing delimiters",
			err:  tex2png.ErrMissingDelimiters,
			want: ExitUsage,
		},
		{
			name: "invalid dpi",
			err:  tex2png.ErrInvalidDPI,
			want: ExitUsage,
		},
		{
			name: "unterminated math",
			err:  fmt.Errorf("%w at offset 14", tex2png.ErrUnterminatedMath),
			want: ExitUsage,
		},
		{
			name: "config not found",
			err:  config.ErrConfigNotFound,
			want: ExitUsage,
		},
		{
			name: "config parse failure",
			err:  config.ErrConfigParse,
			want: ExitUsage,
		},
		{
			name: "unknown error",
			err:  errors.New("something else"),
			want: ExitGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
