// Package bfs provides tunable options and error definitions
// for breadth-first search over a network.Network.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartAirportNotFound is returned when the start airport is absent.
	ErrStartAirportNotFound = errors.New("bfs: start airport not found")

	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("bfs: network is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for an airport the search never reached.
	ErrNotReached = errors.New("bfs: airport not reached")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting an airport. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(code string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many hops.
	// A value of 0 disables the limit.
	MaxDepth int

	// FilterNeighbor skips the leg curr→next when it returns false.
	FilterNeighbor func(curr, next string) bool

	err error
}

// DefaultOptions returns a BFSOptions with:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering
//   - no-op OnVisit
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; an error stops the BFS.
func WithOnVisit(fn func(code string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond d hops.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips legs for which fn returns false.
func WithFilterNeighbor(fn func(curr, next string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Depth: hop count from the start for every reached airport.
//   - Parent: predecessor of every reached airport except the start.
type BFSResult struct {
	Depth  map[string]int
	Parent map[string]string
}

// Hops returns the fewest-hop count to code and whether it was reached.
func (r *BFSResult) Hops(code string) (int, bool) {
	d, ok := r.Depth[code]

	return d, ok
}

// PathTo reconstructs the airport sequence from the start to dest.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
