package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/airroutes/network"
)

// queueItem pairs an airport with its BFS depth.
type queueItem struct {
	code  string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	net     *network.Network
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on n starting from start, applying any
// number of functional Options.
// Returns ErrNetworkNil or ErrStartAirportNotFound for invalid input,
// ErrOptionViolation for bad options, or an OnVisit/context error. On an
// OnVisit error the partial result is returned alongside it.
func BFS(n *network.Network, start string, opts ...Option) (*BFSResult, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !n.HasAirport(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartAirportNotFound, start)
	}

	size := n.AirportCount()
	w := &walker{
		net:     n,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, size),
		visited: make(map[string]bool, size),
		res: &BFSResult{
			Depth:  make(map[string]int, size),
			Parent: make(map[string]string, size),
		},
	}

	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// enqueue marks code visited at depth d, records its parent and queues it.
func (w *walker) enqueue(code string, d int, parent string) {
	w.visited[code] = true
	w.res.Depth[code] = d
	if parent != "" {
		w.res.Parent[code] = parent
	}
	w.queue = append(w.queue, queueItem{code: code, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

func (w *walker) visit(item queueItem) error {
	if err := w.opts.OnVisit(item.code, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.code, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen successor.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, to := range w.net.Destinations(item.code) {
		if w.visited[to] || !w.opts.FilterNeighbor(item.code, to) {
			continue
		}
		w.enqueue(to, next, item.code)
	}
}

// HopCounts is a convenience wrapper returning only the fewest-hop map.
func HopCounts(n *network.Network, start string, opts ...Option) (map[string]int, error) {
	res, err := BFS(n, start, opts...)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}
