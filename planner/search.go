package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/airroutes/bfs"
	"github.com/katalvlaran/airroutes/dijkstra"
	"github.com/katalvlaran/airroutes/network"
	"github.com/katalvlaran/airroutes/route"
)

// maxStopsCeiling bounds fewest-hop searches to routes of at most 100 airports.
const maxStopsCeiling = 100

// LeastCost returns the cheapest route from→to.
func (p *Planner) LeastCost(ctx context.Context, from, to string) (*route.Route, error) {
	from, to, err := p.pair(from, to)
	if err != nil {
		return nil, err
	}

	return cheapest(ctx, p.net, from, to)
}

// LeastCostExcluding returns the cheapest route from→to that touches none of
// the excluded airports. The search runs on a restricted copy of the network.
func (p *Planner) LeastCostExcluding(ctx context.Context, from, to string, excluded []string) (*route.Route, error) {
	from, to, err := p.pair(from, to)
	if err != nil {
		return nil, err
	}
	ex := NewExclusion(excluded...)
	if ex.Contains(from) || ex.Contains(to) {
		return nil, fmt.Errorf("%w: %s→%s: endpoint excluded", ErrNoRouteExists, from, to)
	}

	return cheapest(ctx, p.exclusions.restricted(p.net, ex), from, to)
}

// LeastHop returns a route from→to with the fewest legs.
func (p *Planner) LeastHop(ctx context.Context, from, to string) (*route.Route, error) {
	from, to, err := p.pair(from, to)
	if err != nil {
		return nil, err
	}

	return fewestHops(ctx, p.net, from, to, Exclusion{})
}

// LeastHopExcluding returns a route from→to with the fewest legs among the
// routes that touch none of the excluded airports.
func (p *Planner) LeastHopExcluding(ctx context.Context, from, to string, excluded []string) (*route.Route, error) {
	from, to, err := p.pair(from, to)
	if err != nil {
		return nil, err
	}
	ex := NewExclusion(excluded...)
	if ex.Contains(from) || ex.Contains(to) {
		return nil, fmt.Errorf("%w: %s→%s: endpoint excluded", ErrNoRouteExists, from, to)
	}

	return fewestHops(ctx, p.net, from, to, ex)
}

func cheapest(ctx context.Context, n *network.Network, from, to string) (*route.Route, error) {
	stops, _, err := dijkstra.ShortestPath(n, from, to, dijkstra.WithContext(ctx))
	if errors.Is(err, dijkstra.ErrNoPath) {
		return nil, fmt.Errorf("%w: %s→%s", ErrNoRouteExists, from, to)
	}
	if err != nil {
		return nil, fmt.Errorf("planner: least cost %s→%s: %w", from, to, err)
	}

	return route.New(n, stops)
}

// errReached stops the hop search once the destination is dequeued.
var errReached = errors.New("planner: destination reached")

// fewestHops runs a breadth-first search from `from` and reads the route off
// the search tree. Successors are explored in code order, so the tree path is
// the alphabetically first of the fewest-hop routes: the same route a bounded
// enumeration would find first when its bound grows from two airports.
func fewestHops(ctx context.Context, n *network.Network, from, to string, ex Exclusion) (*route.Route, error) {
	res, err := bfs.BFS(n, from,
		bfs.WithContext(ctx),
		bfs.WithFilterNeighbor(ex.allows),
		bfs.WithMaxDepth(maxStopsCeiling-1),
		bfs.WithOnVisit(func(code string, _ int) error {
			if code == to {
				return errReached
			}
			return nil
		}),
	)
	if err != nil && !errors.Is(err, errReached) {
		return nil, fmt.Errorf("planner: least hop %s→%s: %w", from, to, err)
	}

	stops, err := res.PathTo(to)
	if errors.Is(err, bfs.ErrNotReached) {
		return nil, fmt.Errorf("%w: %s→%s", ErrNoRouteExists, from, to)
	}
	if err != nil {
		return nil, fmt.Errorf("planner: least hop %s→%s: %w", from, to, err)
	}

	return route.New(n, stops)
}
