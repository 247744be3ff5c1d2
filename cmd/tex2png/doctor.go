package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"tex2png/internal/config"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "errors"
	Latex    latexInfo  `json:"latex"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// latexInfo holds LaTeX toolchain detection results.
type latexInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	Texinputs string `json:"texinputs,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor()

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor() *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			Texinputs: os.Getenv("TEXINPUTS"),
		},
	}

	checkLatex(result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	}
	return result
}

// checkLatex detects the pdflatex binary and its version.
func checkLatex(result *doctorResult) {
	path, err := exec.LookPath(config.DefaultCommand)
	if err != nil {
		result.Errors = append(result.Errors,
			"pdflatex not found on PATH; install TeX Live or MiKTeX")
		return
	}

	result.Latex.Found = true
	result.Latex.Path = path

	out, err := exec.Command(path, "--version").Output() // #nosec G204 -- path from LookPath
	if err != nil {
		result.Warnings = append(result.Warnings, "pdflatex --version failed: "+err.Error())
		return
	}
	if line, _, ok := strings.Cut(string(out), "\n"); ok {
		result.Latex.Version = strings.TrimSpace(line)
	}
}

// checkSystem verifies that the temp directory is writable, since every
// render compiles in a fresh temp dir.
func checkSystem(result *doctorResult) {
	probe := filepath.Join(os.TempDir(), "tex2png-doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o600); err != nil {
		result.Errors = append(result.Errors, "temp directory not writable: "+err.Error())
		return
	}
	_ = os.Remove(probe)
	result.System.TempWritable = true
}

// printDoctorResult writes a human-readable diagnostic report.
func printDoctorResult(w io.Writer, result *doctorResult) {
	fmt.Fprintf(w, "tex2png doctor\n\n")

	if result.Latex.Found {
		fmt.Fprintf(w, "  pdflatex: %s\n", result.Latex.Path)
		if result.Latex.Version != "" {
			fmt.Fprintf(w, "  version:  %s\n", result.Latex.Version)
		}
	} else {
		fmt.Fprintf(w, "  pdflatex: NOT FOUND\n")
	}

	fmt.Fprintf(w, "  system:   %s/%s, temp writable: %v\n",
		result.Env.OS, result.Env.Arch, result.System.TempWritable)
	if result.Env.Texinputs != "" {
		fmt.Fprintf(w, "  TEXINPUTS: %s\n", result.Env.Texinputs)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "\n  warning: %s\n", warning)
	}
	for _, errMsg := range result.Errors {
		fmt.Fprintf(w, "\n  error: %s\n", errMsg)
	}

	fmt.Fprintf(w, "\nStatus: %s\n", result.Status)
}
