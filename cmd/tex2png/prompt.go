package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"tex2png"
	"tex2png/internal/config"
	"tex2png/internal/fileutil"
)

// runPrompt walks the interactive m/f/e menu. It is a thin adapter: every
// answer is collected here and handed to the same functions the manual and
// file subcommands use.
func runPrompt(env *Environment) int {
	fmt.Fprintln(env.Stdout, "LaTeX Math Equation to Image Converter")
	fmt.Fprintln(env.Stdout, "--------------------------------------")

	scanner := bufio.NewScanner(env.Stdin)
	code := ExitSuccess
	for {
		fmt.Fprint(env.Stdout, "Choose mode: (m) manual, (f) file, (e) exit: ")
		if !scanner.Scan() {
			return code
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "e":
			return code
		case "m":
			code = promptManual(scanner, env)
		case "f":
			code = promptFile(scanner, env)
		default:
			fmt.Fprintln(env.Stdout, "Invalid choice. Please enter m, f, or e.")
		}
	}
}

// promptManual collects manual-mode parameters and renders one equation.
func promptManual(scanner *bufio.Scanner, env *Environment) int {
	fmt.Fprintln(env.Stdout, "Enclose the equation in dollar signs, e.g. $\\alpha+\\beta=\\gamma$ or $$\\int_0^\\infty e^{-x^2} dx$$.")

	equation := ask(scanner, env, "Equation: ")
	if equation == "" {
		fmt.Fprintln(env.Stderr, "no equation entered")
		return ExitUsage
	}
	output := ask(scanner, env, fmt.Sprintf("Output filename (default %s): ", config.DefaultOutputFilename))
	if output == "" {
		output = config.DefaultOutputFilename
	}
	dpi := askDPI(scanner, env)

	logger := newLogger(env.Stderr, false, false)
	return renderManual(env, logger, config.DefaultCommand, equation, output, dpi)
}

// promptFile collects file-mode parameters and converts the file.
func promptFile(scanner *bufio.Scanner, env *Environment) int {
	path := ask(scanner, env, "Path to the .tex file: ")
	if !fileutil.FileExists(path) {
		fmt.Fprintf(env.Stderr, "file not found: %s\n", path)
		return ExitIO
	}
	dpi := askDPI(scanner, env)

	logger := newLogger(env.Stderr, false, false)
	return convertFile(env, logger, config.DefaultCommand, tex2png.FileInput{
		SourcePath: path,
		OutputDir:  config.DefaultOutputDir,
		DPI:        dpi,
	})
}

// ask prints a prompt and returns the trimmed answer, or "" at EOF.
func ask(scanner *bufio.Scanner, env *Environment, prompt string) string {
	fmt.Fprint(env.Stdout, prompt)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// askDPI asks for a DPI value, falling back to the default on empty or
// invalid input.
func askDPI(scanner *bufio.Scanner, env *Environment) int {
	answer := ask(scanner, env, fmt.Sprintf("DPI (default %d): ", config.DefaultDPI))
	if answer == "" {
		return config.DefaultDPI
	}
	dpi, err := strconv.Atoi(answer)
	if err != nil || dpi <= 0 {
		fmt.Fprintf(env.Stdout, "Invalid DPI. Using default %d.\n", config.DefaultDPI)
		return config.DefaultDPI
	}
	return dpi
}
