package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/airroutes/network"
)

// pathWalker encapsulates state during enumeration.
type pathWalker struct {
	net    *network.Network
	opts   PathOptions
	visit  func(path []string) error
	path   []string        // current airport sequence
	onPath map[string]bool // airports on the current path
}

// Walk enumerates simple paths from `from` and calls visit with a fresh copy
// of each one. Returning ErrStop from visit ends the walk with a nil error;
// any other error aborts it and is returned wrapped.
func Walk(n *network.Network, from string, visit func(path []string) error, opts ...Option) error {
	// 1. Validate input network and options
	if n == nil {
		return ErrNetworkNil
	}
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if o.err != nil {
		return o.err
	}

	// 2. Validate endpoints
	if !n.HasAirport(from) {
		return fmt.Errorf("%w: %q", ErrStartAirportNotFound, from)
	}
	if o.Target != "" && !n.HasAirport(o.Target) {
		return fmt.Errorf("%w: %q", ErrTargetAirportNotFound, o.Target)
	}

	// 3. A path to the origin itself is trivial and never reported;
	//    a bound below two airports admits no leg at all.
	if o.Target == from || o.MaxStops == 1 {
		return nil
	}

	w := &pathWalker{
		net:    n,
		opts:   o,
		visit:  visit,
		path:   []string{from},
		onPath: map[string]bool{from: true},
	}
	if err := w.extend(from); err != nil {
		if errors.Is(err, ErrStop) {
			return nil
		}

		return err
	}

	return nil
}

// Paths collects every path Walk would report.
func Paths(n *network.Network, from string, opts ...Option) ([][]string, error) {
	var out [][]string
	err := Walk(n, from, func(path []string) error {
		out = append(out, path)
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// extend tries every successor of code that keeps the path simple and within bounds.
func (w *pathWalker) extend(code string) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	var next string
	for _, next = range w.net.Destinations(code) {
		// 2. Simplicity and leg filtering
		if w.onPath[next] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(code, next) {
			continue
		}

		// 3. Push
		w.path = append(w.path, next)
		w.onPath[next] = true

		// 4. Report and/or recurse
		err := w.step(next)

		// 5. Pop
		w.onPath[next] = false
		w.path = w.path[:len(w.path)-1]

		if err != nil {
			return err
		}
	}

	return nil
}

// step handles the path that just gained `next` as its last airport.
func (w *pathWalker) step(next string) error {
	if w.opts.Target == "" || next == w.opts.Target {
		if err := w.report(); err != nil {
			return err
		}
	}
	if next == w.opts.Target {
		return nil
	}
	if w.opts.MaxStops > 0 && len(w.path) >= w.opts.MaxStops {
		return nil
	}

	return w.extend(next)
}

func (w *pathWalker) report() error {
	cp := make([]string, len(w.path))
	copy(cp, w.path)
	if err := w.visit(cp); err != nil {
		if errors.Is(err, ErrStop) {
			return err
		}

		return fmt.Errorf("dfs: visit %s: %w", JoinSig(cp), err)
	}

	return nil
}
