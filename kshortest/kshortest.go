package kshortest

import (
	"container/heap"
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/airroutes/dfs"
	"github.com/katalvlaran/airroutes/dijkstra"
	"github.com/katalvlaran/airroutes/network"
)

var (
	// ErrNilNetwork is returned when a nil network is passed.
	ErrNilNetwork = errors.New("kshortest: network is nil")

	// ErrAirportNotFound indicates that an endpoint is absent from the network.
	ErrAirportNotFound = errors.New("kshortest: airport not found")

	// ErrBadK is returned by Paths for k < 0.
	ErrBadK = errors.New("kshortest: k must be non-negative")

	// ErrBadMaxCost is returned by New for a negative fare ceiling.
	ErrBadMaxCost = errors.New("kshortest: max cost must be non-negative")
)

// Path is one enumerated route with its total fare.
type Path struct {
	Stops []string
	Cost  network.Price
}

// Option configures an Enumerator.
type Option func(*Enumerator)

// WithContext bounds every spur search by ctx. Passing nil has no effect.
func WithContext(ctx context.Context) Option {
	return func(e *Enumerator) {
		if ctx != nil {
			e.ctx = ctx
		}
	}
}

// WithMaxCost limits enumeration to routes costing at most maxCost. Spur
// searches stop exploring past the remaining budget, so dearer routes are
// never built.
func WithMaxCost(maxCost network.Price) Option {
	return func(e *Enumerator) {
		e.maxCost = maxCost
		e.capped = true
	}
}

// Enumerator yields routes from→to in non-decreasing fare. It is not safe
// for concurrent use; the network it reads may be shared.
type Enumerator struct {
	ctx      context.Context
	net      *network.Network
	from, to string
	maxCost  network.Price
	capped   bool

	found      []Path
	candidates candidateHeap
	seen       map[string]bool // signatures already produced or queued
	started    bool
	done       bool
	err        error
}

// New validates both endpoints and returns an Enumerator positioned before
// the first route.
func New(n *network.Network, from, to string, opts ...Option) (*Enumerator, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	if !n.HasAirport(from) {
		return nil, fmt.Errorf("%w: %q", ErrAirportNotFound, from)
	}
	if !n.HasAirport(to) {
		return nil, fmt.Errorf("%w: %q", ErrAirportNotFound, to)
	}

	e := &Enumerator{
		ctx:  context.Background(),
		net:  n,
		from: from,
		to:   to,
		seen: make(map[string]bool),
	}
	var opt Option
	for _, opt = range opts {
		opt(e)
	}
	if e.capped && e.maxCost < 0 {
		return nil, fmt.Errorf("%w: %s", ErrBadMaxCost, e.maxCost)
	}

	return e, nil
}

// Next returns the next cheapest route. The second result is false once
// every simple route has been produced or an error occurred (see Err).
func (e *Enumerator) Next() (Path, bool) {
	if e.done {
		return Path{}, false
	}

	if !e.started {
		e.started = true
		stops, cost, err := dijkstra.ShortestPath(e.net, e.from, e.to, e.budget(0)...)
		if err != nil {
			e.finish(err)
			return Path{}, false
		}
		e.queue(Path{Stops: stops, Cost: cost})
	} else if err := e.spur(e.found[len(e.found)-1].Stops); err != nil {
		e.finish(err)
		return Path{}, false
	}

	if e.candidates.Len() == 0 {
		e.finish(nil)
		return Path{}, false
	}
	p := heap.Pop(&e.candidates).(Path)
	e.found = append(e.found, p)

	return p, true
}

// Err returns the error that ended enumeration, if any.
// Exhausting the routes is not an error.
func (e *Enumerator) Err() error { return e.err }

// Paths returns up to k cheapest routes from→to.
func Paths(n *network.Network, from, to string, k int, opts ...Option) ([]Path, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadK, k)
	}
	e, err := New(n, from, to, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]Path, 0, k)
	for len(out) < k {
		p, ok := e.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}

	return out, e.Err()
}

// spur queues every deviation of prev.
func (e *Enumerator) spur(prev []string) error {
	var i int
	for i = 0; i < len(prev)-1; i++ {
		spurNode := prev[i]
		root := prev[:i+1]

		// 1. Legs already taken out of this root are closed.
		blocked := make(map[string]bool)
		var p Path
		for _, p = range e.found {
			if len(p.Stops) > i+1 && dfs.HasPrefix(p.Stops, root) {
				blocked[p.Stops[i+1]] = true
			}
		}

		// 2. Root airports before the spur node are closed.
		onRoot := func(code string) bool { return dfs.IndexOf(root[:i], code) >= 0 }
		closedLeg := func(from, to string) bool { return from == spurNode && blocked[to] }

		rootCost, err := e.cost(root)
		if err != nil {
			return err
		}
		if e.capped && rootCost > e.maxCost {
			continue
		}

		tail, tailCost, err := dijkstra.ShortestPath(e.net, spurNode, e.to, append(e.budget(rootCost),
			dijkstra.WithAvoidAirport(onRoot),
			dijkstra.WithAvoidLeg(closedLeg),
		)...)
		if errors.Is(err, dijkstra.ErrNoPath) {
			continue
		}
		if err != nil {
			return err
		}
		stops := make([]string, 0, len(root)+len(tail)-1)
		stops = append(stops, root...)
		stops = append(stops, tail[1:]...)
		e.queue(Path{Stops: stops, Cost: rootCost + tailCost})
	}

	return nil
}

// budget returns the search options for a tail that follows a root costing spent.
func (e *Enumerator) budget(spent network.Price) []dijkstra.Option {
	opts := []dijkstra.Option{dijkstra.WithContext(e.ctx)}
	if e.capped {
		opts = append(opts, dijkstra.WithMaxDistance(e.maxCost-spent))
	}

	return opts
}

// queue adds p unless the same airport sequence was seen before.
func (e *Enumerator) queue(p Path) {
	sig := dfs.JoinSig(p.Stops)
	if e.seen[sig] {
		return
	}
	e.seen[sig] = true
	heap.Push(&e.candidates, p)
}

// cost sums the cheapest fare of every leg of stops.
func (e *Enumerator) cost(stops []string) (network.Price, error) {
	var total network.Price
	var i int
	for i = 1; i < len(stops); i++ {
		f, err := e.net.CheapestFlight(stops[i-1], stops[i])
		if err != nil {
			return 0, err
		}
		total += e.net.Weight(f)
	}

	return total, nil
}

func (e *Enumerator) finish(err error) {
	e.done = true
	if err != nil && !errors.Is(err, dijkstra.ErrNoPath) {
		e.err = err
	}
	e.candidates = nil
}

// candidateHeap orders candidates by fare, then length, then signature.
type candidateHeap []Path

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].Cost != h[j].Cost {
		return h[i].Cost < h[j].Cost
	}
	if len(h[i].Stops) != len(h[j].Stops) {
		return len(h[i].Stops) < len(h[j].Stops)
	}

	return dfs.JoinSig(h[i].Stops) < dfs.JoinSig(h[j].Stops)
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(Path)) }

func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	p := old[n-1]
	*h = old[:n-1]

	return p
}
