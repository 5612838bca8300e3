package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridlab/config"
)

// Result is the outcome of one puzzle.
type Result struct {
	Name    string
	Kind    string
	Answer  Answer
	Elapsed time.Duration
	Err     error
}

// Runner solves configured puzzles.
type Runner struct {
	log logrus.FieldLogger
}

// NewRunner returns a Runner logging to log. A nil log discards output.
func NewRunner(log logrus.FieldLogger) *Runner {
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}
	return &Runner{log: log}
}

// Solve reads p's input and runs its solver.
func (r *Runner) Solve(ctx context.Context, p config.Puzzle) (Answer, error) {
	log := r.log.WithFields(logrus.Fields{"puzzle": p.Name, "kind": p.Kind})

	solve, err := Lookup(p.Kind)
	if err != nil {
		return Answer{}, err
	}
	lines, err := ReadFile(p.Input)
	if err != nil {
		return Answer{}, fmt.Errorf("puzzle %s: %w", p.Name, err)
	}
	log.WithFields(logrus.Fields{"input": p.Input, "lines": len(lines)}).Debug("input loaded")

	ans, err := solve(ctx, p, lines)
	if err != nil {
		return Answer{}, fmt.Errorf("puzzle %s: %w", p.Name, err)
	}
	return ans, nil
}

// Run solves every puzzle of cfg in order. Failures are logged and
// collected; the remaining puzzles still run unless ctx is done.
func (r *Runner) Run(ctx context.Context, cfg *config.Config) ([]Result, error) {
	results := make([]Result, 0, len(cfg.Puzzles))
	var errs []error
	for _, p := range cfg.Puzzles {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		start := time.Now()
		ans, err := r.Solve(ctx, p)
		res := Result{Name: p.Name, Kind: p.Kind, Answer: ans, Elapsed: time.Since(start), Err: err}
		results = append(results, res)

		log := r.log.WithFields(logrus.Fields{
			"puzzle":  p.Name,
			"kind":    p.Kind,
			"elapsed": res.Elapsed,
		})
		if err != nil {
			log.WithError(err).Error("puzzle failed")
			errs = append(errs, err)
			continue
		}
		fields := logrus.Fields{}
		for i, part := range ans.Parts {
			fields[fmt.Sprintf("part%d", i+1)] = part
		}
		log.WithFields(fields).Info("solved")
	}
	return results, errors.Join(errs...)
}
