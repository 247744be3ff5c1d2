package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// runManualCmd renders a single equation given on the command line.
func runManualCmd(args []string, env *Environment) int {
	flags, positional, err := parseManualFlags(args, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}
	if len(positional) != 1 {
		fmt.Fprintln(env.Stderr, "manual mode takes exactly one equation argument")
		printManualUsage(env.Stderr)
		return ExitUsage
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	mergeCommonFlags(&flags.common, flags.dpi, cfg)
	if flags.output != "" {
		cfg.Output.Filename = flags.output
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	return renderManual(env, logger, cfg.Render.Command, positional[0], cfg.Output.Filename, cfg.Render.DPI)
}

// renderManual runs one render and reports the outcome. Shared with the
// interactive prompt. Manual-mode errors abort immediately.
func renderManual(env *Environment, logger zerolog.Logger, command, equation, output string, dpi int) int {
	logger.Debug().Str("equation", equation).Str("output", output).Int("dpi", dpi).Msg("rendering equation")

	conv := env.NewConverter(command)
	if err := conv.RenderEquation(context.Background(), equation, output, dpi); err != nil {
		logger.Error().Err(err).Str("equation", equation).Msg("render failed")
		return exitCodeFor(err)
	}

	fmt.Fprintf(env.Stdout, "Created %s\n", output)
	return ExitSuccess
}
