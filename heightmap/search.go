package heightmap

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/gridlab/geom"
	"github.com/katalvlaran/gridlab/trace"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  Cell
	depth int
}

// walker holds mutable search state.
type walker struct {
	grid    *Grid
	opts    Options
	queue   *queue.Queue[queueItem]
	visited mapset.Set[geom.Point]
	res     *Result
}

// Search runs a breadth-first traversal of g from start.
// Returns ErrGridNil, ErrStartNotFound or ErrOptionViolation for invalid
// input, or the context error if cancelled. On cancellation the partial
// Result is returned alongside the error.
func Search(g *Grid, start geom.Point, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	first, ok := g.At(start)
	if !ok {
		return nil, ErrStartNotFound
	}

	n := g.Width * g.Height
	w := &walker{
		grid:    g,
		opts:    o,
		queue:   queue.New[queueItem](),
		visited: mapset.New[geom.Point](),
		res: &Result{
			Order:  make([]geom.Point, 0, n),
			Depth:  make(map[geom.Point]int, n),
			record: trace.New(start),
		},
	}
	w.enqueue(first, 0)

	return w.res, w.loop()
}

// enqueue marks c visited at depth d and adds it to the queue.
func (w *walker) enqueue(c Cell, d int) {
	w.visited.Put(c.Pos)
	w.res.Depth[c.Pos] = d
	w.queue.Enqueue(queueItem{cell: c, depth: d})
}

// loop processes the queue until empty, halted or cancelled.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue.Dequeue()
		w.res.Order = append(w.res.Order, item.cell.Pos)
		w.opts.OnVisit(item.cell, item.depth)
		if w.opts.Stop(item.cell) {
			w.res.halted, w.res.halt = item.cell, true
			return nil
		}
		w.expand(item)
	}
	return nil
}

// expand enqueues every unseen, climbable neighbor of item.
func (w *walker) expand(item queueItem) {
	for next := range w.grid.neighbors(item.cell.Pos) {
		if w.visited.Has(next.Pos) || !w.opts.Mode.Climbable(item.cell, next) {
			continue
		}
		w.res.record.Link(next.Pos, item.cell.Pos)
		w.enqueue(next, item.depth+1)
	}
}
