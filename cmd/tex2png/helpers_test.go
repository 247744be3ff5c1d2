package main

import (
	"bytes"
	"context"
	"strings"

	"tex2png"
)

// mockConverter fakes the conversion service and records invocations.
type mockConverter struct {
	renderErr error
	report    *tex2png.FileReport
	fileErr   error

	renderCalls []renderCall
	fileCalls   []tex2png.FileInput
}

type renderCall struct {
	equation string
	output   string
	dpi      int
}

func (m *mockConverter) RenderEquation(_ context.Context, equation, outputPath string, dpi int) error {
	m.renderCalls = append(m.renderCalls, renderCall{equation, outputPath, dpi})
	return m.renderErr
}

func (m *mockConverter) ConvertFile(_ context.Context, input tex2png.FileInput) (*tex2png.FileReport, error) {
	m.fileCalls = append(m.fileCalls, input)
	if m.fileErr != nil {
		return nil, m.fileErr
	}
	if m.report != nil {
		return m.report, nil
	}
	return &tex2png.FileReport{}, nil
}

// testEnv builds an Environment wired to buffers and the given converter.
func testEnv(conv Converter, stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	env := &Environment{
		Stdin:  strings.NewReader(stdin),
		Stdout: stdout,
		Stderr: stderr,
		NewConverter: func(string) Converter {
			return conv
		},
	}
	return env, stdout, stderr
}
