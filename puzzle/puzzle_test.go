package puzzle_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridlab/config"
	"github.com/katalvlaran/gridlab/puzzle"
)

func TestKinds(t *testing.T) {
	assert.Equal(t, []string{"beacon", "heightmap", "rope", "sand"}, puzzle.Kinds())
	_, err := puzzle.Lookup("tetris")
	require.ErrorIs(t, err, puzzle.ErrUnknownKind)
}

func TestRegister_Duplicate(t *testing.T) {
	assert.Panics(t, func() {
		puzzle.Register(config.KindSand, nil)
	})
}

func TestReadLines(t *testing.T) {
	lines, err := puzzle.ReadLines(strings.NewReader("a\r\nbb\n\nccc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "bb", "", "ccc"}, lines)

	_, err = puzzle.ReadFile(filepath.Join("testdata", "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSolve_Examples(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "run.yaml"), nil)
	require.NoError(t, err)

	want := map[string][]string{
		"climb":      {"31", "29"},
		"knots":      {"13", "1"},
		"long-knots": {"36"},
		"cave":       {"24", "93"},
		"scan":       {"26", "56000011"},
	}
	r := puzzle.NewRunner(nil)
	for _, p := range cfg.Puzzles {
		t.Run(p.Name, func(t *testing.T) {
			ans, err := r.Solve(context.Background(), p)
			require.NoError(t, err)
			assert.Equal(t, want[p.Name], ans.Parts)
		})
	}
}

func TestRun_Logs(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "run.yaml"), nil)
	require.NoError(t, err)

	logger, hook := test.NewNullLogger()
	results, err := puzzle.NewRunner(logger).Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results, len(cfg.Puzzles))

	entries := hook.AllEntries()
	require.Len(t, entries, len(cfg.Puzzles))
	last := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, last.Level)
	assert.Equal(t, "solved", last.Message)
	assert.Equal(t, "scan", last.Data["puzzle"])
	assert.Equal(t, "26", last.Data["part1"])
	assert.Equal(t, "56000011", last.Data["part2"])
}

func TestRun_CollectsFailures(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("X 4\n"), 0o600))

	cfg := &config.Config{Puzzles: []config.Puzzle{
		{Name: "broken", Kind: config.KindRope, Input: bad},
		{Name: "missing", Kind: config.KindSand, Input: filepath.Join(dir, "nope.txt")},
		{Name: "ok", Kind: config.KindRope, Input: filepath.Join("testdata", "rope.txt")},
	}}

	var buf bytes.Buffer
	logger := logrus.New()
	logger.Out = &buf
	logger.Formatter = &logrus.JSONFormatter{}

	results, err := puzzle.NewRunner(logger).Run(context.Background(), cfg)
	require.Error(t, err)
	require.Len(t, results, 3)
	assert.Error(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, os.ErrNotExist)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, "13 | 1", results[2].Answer.String())
	assert.Contains(t, buf.String(), `"msg":"puzzle failed"`)
}

func TestRun_Cancelled(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "run.yaml"), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := puzzle.NewRunner(nil).Run(ctx, cfg)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestSolve_BeaconHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := config.Puzzle{Name: "scan", Kind: config.KindBeacon, Input: filepath.Join("testdata", "beacon.txt")}
	_, err := puzzle.NewRunner(nil).Solve(ctx, p)
	require.ErrorIs(t, err, context.Canceled)
}
