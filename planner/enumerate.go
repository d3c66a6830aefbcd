package planner

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/airroutes/dfs"
	"github.com/katalvlaran/airroutes/kshortest"
	"github.com/katalvlaran/airroutes/network"
	"github.com/katalvlaran/airroutes/route"
)

// AllRoutesCost returns every route from→to costing at most maxCost that
// touches none of the excluded airports, in non-decreasing fare.
//
// Routes are drawn cheapest first and never above maxCost; excluded ones are
// dropped after the fact. Enumeration ends when no route within the ceiling
// is left.
func (p *Planner) AllRoutesCost(ctx context.Context, from, to string, excluded []string, maxCost network.Price) ([]*route.Route, error) {
	from, to, err := p.pair(from, to)
	if err != nil {
		return nil, err
	}
	out := []*route.Route{}
	if maxCost < 0 {
		return out, nil
	}
	ex := NewExclusion(excluded...)

	e, err := kshortest.New(p.net, from, to, kshortest.WithContext(ctx), kshortest.WithMaxCost(maxCost))
	if err != nil {
		return nil, fmt.Errorf("planner: all routes by cost %s→%s: %w", from, to, err)
	}
	for {
		path, ok := e.Next()
		if !ok || path.Cost > maxCost {
			break
		}
		if ex.Rejects(path.Stops) {
			continue
		}
		r, err := route.New(p.net, path.Stops)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := e.Err(); err != nil {
		return nil, fmt.Errorf("planner: all routes by cost %s→%s: %w", from, to, err)
	}

	return out, nil
}

// AllRoutesHop returns every route from→to with at most maxHop legs that
// touches none of the excluded airports, in non-decreasing hop count.
// Routes with equal hop counts keep enumeration order.
func (p *Planner) AllRoutesHop(ctx context.Context, from, to string, excluded []string, maxHop int) ([]*route.Route, error) {
	from, to, err := p.pair(from, to)
	if err != nil {
		return nil, err
	}
	out := []*route.Route{}
	if maxHop < 1 {
		return out, nil
	}
	ex := NewExclusion(excluded...)

	paths, err := dfs.Paths(p.net, from,
		dfs.WithContext(ctx),
		dfs.WithTarget(to),
		dfs.WithMaxStops(maxHop+1),
	)
	if err != nil {
		return nil, fmt.Errorf("planner: all routes by hops %s→%s: %w", from, to, err)
	}

	kept := paths[:0]
	var path []string
	for _, path = range paths {
		if !ex.Rejects(path) {
			kept = append(kept, path)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return len(kept[i]) < len(kept[j]) })

	for _, path = range kept {
		r, err := route.New(p.net, path)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}
