package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridlab/canvas"
	"github.com/katalvlaran/gridlab/config"
	"github.com/katalvlaran/gridlab/geom"
	"github.com/katalvlaran/gridlab/puzzle"
	"github.com/katalvlaran/gridlab/sand"
)

// PathSymbol marks the fall of the latest grain.
const PathSymbol = '*'

// display is the part of tcell.Screen the viewer draws with.
type display interface {
	canvas.Screen
	Clear()
	Show()
	Size() (int, int)
}

// view animates a sand puzzle until the simulation ends and a key is pressed,
// or until ctx is done.
func view(ctx context.Context, p config.Puzzle, opts *options, log logrus.FieldLogger) error {
	if p.Kind != config.KindSand {
		return &ExitError{Code: 2, Message: fmt.Sprintf("puzzle %q is %s, only sand puzzles can be viewed", p.Name, p.Kind)}
	}
	sim, err := newSandSimulation(ctx, p, opts.Floor)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	ticker := time.NewTicker(max(opts.Delay, time.Millisecond))
	defer ticker.Stop()

	pal := canvas.DefaultPalette()
	drawFrame(screen, sim, pal)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					log.WithField("settled", sim.Cave().Count()).Info("viewer closed")
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				drawFrame(screen, sim, pal)
			}
		case <-ticker.C:
			if sim.Done() {
				continue
			}
			if _, ok := sim.Next(); !ok {
				log.WithField("settled", sim.Cave().Count()).Info("simulation finished")
			}
			drawFrame(screen, sim, pal)
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(src interface{ PollEvent() tcell.Event }, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// newSandSimulation builds the simulation the viewer animates.
func newSandSimulation(ctx context.Context, p config.Puzzle, floor bool) (*sand.Simulation, error) {
	lines, err := puzzle.ReadFile(p.Input)
	if err != nil {
		return nil, err
	}
	structures, err := sand.ParseStructures(lines)
	if err != nil {
		return nil, err
	}
	source := sand.DefaultSource()
	if p.Source != nil {
		source = p.Source.Point()
	}
	opts := []sand.Option{sand.WithContext(ctx)}
	if floor {
		structures = sand.WithFloor(structures, source)
	} else {
		opts = append(opts, sand.WithStop(sand.Escaped))
	}
	return sand.NewSimulation(sand.NewCave(source, structures), opts...)
}

// drawFrame paints the cave and the fall of the latest grain centred on the
// screen, with a status line at the bottom.
func drawFrame(d display, sim *sand.Simulation, pal canvas.Palette) {
	cv := sim.Cave().Canvas()
	if path, err := sim.Trajectory(); err == nil && len(path) > 2 {
		for _, p := range path[1 : len(path)-1] {
			if !sim.Cave().Occupied(p) {
				cv.Draw(PathSymbol, p)
			}
		}
	}

	w, h := d.Size()
	left, top := frameOrigin(cv.Extent(), w, h)

	d.Clear()
	cv.Paint(d, left, top, pal)

	status := fmt.Sprintf("settled: %d  grain: %v", sim.Cave().Count(), sim.Grain())
	if sim.Done() {
		status += "  done, press q to quit"
	}
	for i, r := range status {
		d.SetContent(i, h-1, r, nil, pal.Default)
	}
	d.Show()
}

// frameOrigin is where drawFrame puts the canvas on a w x h display.
func frameOrigin(e geom.Extent, w, h int) (int, int) {
	return max(0, (w-e.Width())/2), max(0, (h-1-e.Height())/2)
}
