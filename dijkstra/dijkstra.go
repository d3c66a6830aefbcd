// Package dijkstra implements Dijkstra's minimum-cost search over a flight network.
//
// Parallel flights between the same airport pair are relaxed independently,
// which is equivalent to traversing the cheapest of them. The heap orders
// entries by (distance, airport code) and only strict improvements update a
// predecessor, so equal-cost ties resolve the same way on every run.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/airroutes/network"
)

// Dijkstra computes the cheapest total fare from the source airport
// (Options.Source) to every airport in n.
//
// Returns:
//
//   - dist: map from airport code to minimum fare (Unreachable if not reached).
//   - prev: predecessor map if ReturnPath was requested (nil otherwise).
//     prev[v] == u means the cheapest route to v arrives from u.
//     For unreachable v and for the source, prev[v] == "".
//   - err:  error if inputs are invalid or the context ends.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance).
//  2. Source must be non-empty (ErrEmptySource).
//  3. n must be non-nil (ErrNilNetwork).
//  4. n must contain Source (ErrAirportNotFound).
func Dijkstra(n *network.Network, opts ...Option) (map[string]network.Price, map[string]string, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// 2) Validate Source is provided
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}

	// 3) Validate network is non-nil
	if n == nil {
		return nil, nil, ErrNilNetwork
	}

	// 4) Validate Source exists in the network
	if !n.HasAirport(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %q", ErrAirportNotFound, cfg.Source)
	}

	// 5) Prepare state and run
	airports := n.Airports()
	r := &runner{
		net:     n,
		options: cfg,
		dist:    make(map[string]network.Price, len(airports)),
		prev:    make(map[string]string, len(airports)),
		visited: make(map[string]bool, len(airports)),
		pq:      make(nodePQ, 0, len(airports)),
	}
	r.init(airports)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the airport sequence of the cheapest route from→to
// and its total fare. Options other than Source apply as for Dijkstra.
//
// Errors:
//   - ErrAirportNotFound if either endpoint is absent.
//   - ErrNoPath if the target cannot be reached (or from == to).
func ShortestPath(n *network.Network, from, to string, opts ...Option) ([]string, network.Price, error) {
	if n != nil && to != "" && !n.HasAirport(to) {
		return nil, 0, fmt.Errorf("%w: target %q", ErrAirportNotFound, to)
	}
	if from == to {
		return nil, 0, fmt.Errorf("%w: %s→%s", ErrNoPath, from, to)
	}

	all := make([]Option, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all, Source(from), WithReturnPath())
	dist, prev, err := Dijkstra(n, all...)
	if err != nil {
		return nil, 0, err
	}
	if dist[to] == Unreachable {
		return nil, 0, fmt.Errorf("%w: %s→%s", ErrNoPath, from, to)
	}

	// Walk predecessors back to the source, then reverse in place.
	path := []string{to}
	for at := to; at != from; {
		at = prev[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[to], nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	net     *network.Network         // The input network; read-only within Dijkstra.
	options Options                  // Configuration options.
	dist    map[string]network.Price // Airport code → current best fare from Source.
	prev    map[string]string        // Airport code → predecessor on the cheapest route.
	visited map[string]bool          // Tracks if an airport's fare is final.
	pq      nodePQ                   // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist[v] = Unreachable for every airport and pushes Source at 0.
func (r *runner) init(airports []string) {
	var v string
	for _, v = range airports {
		r.dist[v] = Unreachable
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly settles the cheapest unsettled airport and relaxes its
// departures. It stops when the heap empties or the next fare exceeds
// MaxDistance.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest item; skip stale entries.
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}

		// 2) Nothing further can be within the cap.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 3) Cancellation check
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// 4) Settle and relax
		r.visited[item.id] = true
		r.relax(item.id)
	}

	return nil
}

// relax tries every flight leaving u, parallel flights included.
func (r *runner) relax(u string) {
	var f *network.Flight
	var newDist network.Price
	for _, f = range r.net.Departures(u) {
		v := f.To
		if r.visited[v] {
			continue
		}
		if r.options.AvoidAirport != nil && r.options.AvoidAirport(v) {
			continue
		}
		if r.options.AvoidLeg != nil && r.options.AvoidLeg(u, v) {
			continue
		}

		newDist = r.dist[u] + r.net.Weight(f)
		if newDist > r.options.MaxDistance {
			continue
		}

		// Strict improvement only: the first settled predecessor keeps ties.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u

		// Lazy decrease-key: outdated entries are skipped when popped.
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents an airport and its tentative fare from the source.
type nodeItem struct {
	id   string        // airport code
	dist network.Price // fare from source
}

// nodePQ is a min-heap of *nodeItem ordered by fare, then airport code.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by fare; equal fares pop in code order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
