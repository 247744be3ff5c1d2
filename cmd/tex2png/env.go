package main

import (
	"context"
	"io"
	"os"

	"tex2png"
)

// Converter is the surface of the conversion service used by commands.
type Converter interface {
	RenderEquation(ctx context.Context, equation, outputPath string, dpi int) error
	ConvertFile(ctx context.Context, input tex2png.FileInput) (*tex2png.FileReport, error)
}

// Compile-time interface implementation check.
var _ Converter = (*tex2png.Service)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdin        io.Reader
	Stdout       io.Writer
	Stderr       io.Writer
	NewConverter func(command string) Converter
}

// DefaultEnv returns production dependencies.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewConverter: func(command string) Converter {
			return tex2png.NewService(tex2png.WithCommand(command))
		},
	}
}
