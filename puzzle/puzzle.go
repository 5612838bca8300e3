package puzzle

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/katalvlaran/gridlab/config"
)

// ErrUnknownKind is returned for a puzzle kind with no registered solver.
var ErrUnknownKind = errors.New("puzzle: no solver for kind")

// Answer holds one result per part, in order.
type Answer struct {
	Parts []string
}

// String joins the parts with " | ".
func (a Answer) String() string { return strings.Join(a.Parts, " | ") }

// Solver computes the answer of p from its input lines.
type Solver func(ctx context.Context, p config.Puzzle, lines []string) (Answer, error)

var (
	mu      sync.RWMutex
	solvers = map[string]Solver{}
)

// Register makes s the solver for kind. Registering a kind twice panics.
func Register(kind string, s Solver) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := solvers[kind]; dup {
		panic(fmt.Sprintf("puzzle: solver for %q registered twice", kind))
	}
	solvers[kind] = s
}

// Lookup returns the solver for kind.
func Lookup(kind string) (Solver, error) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := solvers[kind]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
	return s, nil
}

// Kinds lists the registered kinds, sorted.
func Kinds() []string {
	mu.RLock()
	defer mu.RUnlock()
	kinds := make([]string, 0, len(solvers))
	for k := range solvers {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// ReadLines splits r into lines without their line endings.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ReadFile reads the lines of the file at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}
