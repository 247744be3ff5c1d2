package main

import (
	"fmt"

	"tex2png/internal/config"
)

// run dispatches subcommands and returns the process exit code.
// Invoked with no arguments, the interactive prompt takes over.
func run(args []string, env *Environment) int {
	if len(args) == 0 {
		return runPrompt(env)
	}

	switch args[0] {
	case "manual":
		return runManualCmd(args[1:], env)
	case "file":
		return runFileCmd(args[1:], env)
	case "doctor":
		return runDoctorCmd(args[1:], env)
	case "version", "--version":
		fmt.Fprintln(env.Stdout, Version)
		return ExitSuccess
	case "help", "--help", "-h":
		printUsage(env.Stdout)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// loadConfig returns the defaults, overlaid with the config file if one was
// given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(path)
}

// mergeCommonFlags applies CLI overrides shared by both commands. CLI wins
// over the config file.
func mergeCommonFlags(f *commonFlags, dpi int, cfg *config.Config) {
	if f.latex != "" {
		cfg.Render.Command = f.latex
	}
	if dpi != 0 {
		cfg.Render.DPI = dpi
	}
}
