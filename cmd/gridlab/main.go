// Command gridlab solves the puzzles listed in a run file and prints their
// answers. With -view it animates a sand puzzle in the terminal instead.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/gridlab/config"
	"github.com/katalvlaran/gridlab/puzzle"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is main without the process concerns.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	opts, shouldExit, err := parseArgs(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	log := newLogger(errW, opts.LogLevel, opts.LogFormat)
	cfg, err := config.Load(opts.RunFile, opts.Vars)
	if err != nil {
		return err
	}
	log.WithField("puzzles", len(cfg.Puzzles)).Debug("run file loaded")

	if opts.View != "" {
		p, ok := cfg.Find(opts.View)
		if !ok {
			return &ExitError{Code: 2, Message: fmt.Sprintf("no puzzle named %q", opts.View)}
		}
		return view(ctx, p, opts, log)
	}

	if opts.Only != "" {
		p, ok := cfg.Find(opts.Only)
		if !ok {
			return &ExitError{Code: 2, Message: fmt.Sprintf("no puzzle named %q", opts.Only)}
		}
		cfg = &config.Config{Puzzles: []config.Puzzle{p}}
	}

	results, err := puzzle.NewRunner(log).Run(ctx, cfg)
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		fmt.Fprintf(outW, "%s: %s\n", res.Name, res.Answer)
	}
	return err
}
