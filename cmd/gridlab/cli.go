package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// ExitError carries the process exit code for a failed invocation.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string { return e.Message }

// options is the parsed command line.
type options struct {
	RunFile   string
	Vars      map[string]string
	Only      string
	LogLevel  string
	LogFormat string
	View      string
	Floor     bool
	Delay     time.Duration
}

// varFlag collects repeated -var name=value flags.
type varFlag map[string]string

func (v varFlag) String() string {
	parts := make([]string, 0, len(v))
	for k, val := range v {
		parts = append(parts, k+"="+val)
	}
	return strings.Join(parts, ",")
}

func (v varFlag) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return fmt.Errorf("expected name=value, got %q", s)
	}
	v[strings.TrimSpace(name)] = value
	return nil
}

// parseArgs processes command-line arguments. It returns the options, whether
// the program should exit cleanly, or an ExitError.
func parseArgs(args []string, output io.Writer) (*options, bool, error) {
	fs := flag.NewFlagSet("gridlab", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
gridlab - grid search and simulation puzzles.

Usage:
  gridlab [options] RUN_FILE

Arguments:
  RUN_FILE
    Path to a .yaml or .hcl file listing the puzzles to solve.

Options:
`)
		fs.PrintDefaults()
	}

	vars := varFlag{}
	opts := &options{Vars: vars}
	fs.StringVar(&opts.RunFile, "config", "", "Path to the run file.")
	fs.StringVar(&opts.RunFile, "c", "", "Path to the run file (shorthand).")
	fs.Var(vars, "var", "HCL variable as name=value; may be repeated.")
	fs.StringVar(&opts.Only, "only", "", "Solve only the named puzzle.")
	fs.StringVar(&opts.LogLevel, "log-level", "info", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	fs.StringVar(&opts.LogFormat, "log-format", "text", "Log output format: 'text' or 'json'.")
	fs.StringVar(&opts.View, "view", "", "Animate the named sand puzzle in the terminal instead of solving.")
	fs.BoolVar(&opts.Floor, "floor", false, "Add the floor when animating a sand puzzle.")
	fs.DurationVar(&opts.Delay, "delay", 20*time.Millisecond, "Pause between grains when animating.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if opts.RunFile == "" && fs.NArg() > 0 {
		opts.RunFile = fs.Arg(0)
	}
	if opts.RunFile == "" {
		fs.Usage()
		return nil, true, nil
	}

	opts.LogFormat = strings.ToLower(opts.LogFormat)
	if opts.LogFormat != "text" && opts.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	opts.LogLevel = strings.ToLower(opts.LogLevel)
	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	if opts.Delay < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid delay: must not be negative"}
	}
	return opts, false, nil
}
