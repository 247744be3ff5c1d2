package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"tex2png"
	"tex2png/internal/fileutil"
)

// How much of an equation to echo in failure summaries.
const equationSnippetLen = 50

// runFileCmd extracts and renders every math span of a .tex file.
func runFileCmd(args []string, env *Environment) int {
	flags, positional, err := parseFileFlags(args, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}
	if len(positional) != 1 {
		fmt.Fprintln(env.Stderr, "file mode takes exactly one .tex file argument")
		printFileUsage(env.Stderr)
		return ExitUsage
	}
	sourcePath := positional[0]
	if !fileutil.IsTexFile(sourcePath) {
		fmt.Fprintf(env.Stderr, "input must be a .tex file: %s\n", sourcePath)
		return ExitUsage
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	mergeCommonFlags(&flags.common, flags.dpi, cfg)
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.strict {
		cfg.Extract.Strict = true
	}
	if flags.replace {
		cfg.Extract.Replace = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	input := tex2png.FileInput{
		SourcePath: sourcePath,
		OutputDir:  cfg.Output.Dir,
		DPI:        cfg.Render.DPI,
		Strict:     cfg.Extract.Strict,
		Replace:    cfg.Extract.Replace,
	}
	return convertFile(env, logger, cfg.Render.Command, input)
}

// convertFile runs the file-mode conversion and prints the summary. Shared
// with the interactive prompt. Per-equation failures are collected and
// reported at the end; any failure makes the exit code non-zero.
func convertFile(env *Environment, logger zerolog.Logger, command string, input tex2png.FileInput) int {
	logger.Debug().Str("source", input.SourcePath).Str("output", input.OutputDir).
		Int("dpi", input.DPI).Msg("processing file")

	conv := env.NewConverter(command)
	report, err := conv.ConvertFile(context.Background(), input)
	if err != nil {
		logger.Error().Err(err).Str("source", input.SourcePath).Msg("conversion failed")
		return exitCodeFor(err)
	}

	if len(report.Results) == 0 {
		fmt.Fprintf(env.Stdout, "No equations found in %s\n", input.SourcePath)
		return ExitSuccess
	}

	for _, res := range report.Results {
		if res.Err == nil {
			logger.Debug().Int("equation", res.Index).Str("path", res.Path).Msg("rendered")
		}
	}

	failed := report.Failed()
	for _, res := range failed {
		fmt.Fprintf(env.Stderr, "equation %d (%s): %v\n", res.Index, snippet(res.Span.Raw()), res.Err)
	}

	fmt.Fprintf(env.Stdout, "Rendered %d/%d equations to %s\n",
		report.Rendered(), len(report.Results), input.OutputDir)
	if report.ReplacedTex != "" {
		fmt.Fprintf(env.Stdout, "Wrote %s\n", report.ReplacedTex)
	}

	if len(failed) > 0 {
		return exitCodeFor(failed[0].Err)
	}
	return ExitSuccess
}

// snippet truncates long equations for one-line summaries.
func snippet(s string) string {
	if len(s) <= equationSnippetLen {
		return s
	}
	return s[:equationSnippetLen] + "..."
}
