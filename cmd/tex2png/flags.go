package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	latex   string
}

// manualFlags holds flags for the manual command.
type manualFlags struct {
	common commonFlags
	output string
	dpi    int
}

// fileFlags holds flags for the file command.
type fileFlags struct {
	common  commonFlags
	output  string
	dpi     int
	strict  bool
	replace bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-equation progress")
	fs.StringVar(&f.latex, "latex", "", "LaTeX binary to invoke (default: pdflatex)")
}

// parseManualFlags parses manual command flags and returns positional args.
func parseManualFlags(args []string, env *Environment) (*manualFlags, []string, error) {
	fs := flag.NewFlagSet("manual", flag.ContinueOnError)
	f := &manualFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output image file (default: output_equation.png)")
	fs.IntVarP(&f.dpi, "dpi", "d", 0, "raster resolution in dots per inch (default: 300)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printManualUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseFileFlags parses file command flags and returns positional args.
func parseFileFlags(args []string, env *Environment) (*fileFlags, []string, error) {
	fs := flag.NewFlagSet("file", flag.ContinueOnError)
	f := &fileFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output image directory (default: output_images)")
	fs.IntVarP(&f.dpi, "dpi", "d", 0, "raster resolution in dots per inch (default: 300)")
	fs.BoolVar(&f.strict, "strict", false, "fail on unterminated math delimiters")
	fs.BoolVarP(&f.replace, "replace", "r", false, "write a .tex copy with equations replaced by images")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printFileUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
