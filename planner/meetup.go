package planner

import (
	"cmp"
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/airroutes/bfs"
	"github.com/katalvlaran/airroutes/clock"
	"github.com/katalvlaran/airroutes/dfs"
	"github.com/katalvlaran/airroutes/dijkstra"
	"github.com/katalvlaran/airroutes/route"
)

// timeMeetUpMaxStops bounds the routes the time-aware meet-up considers to
// three legs.
const timeMeetUpMaxStops = 4

// LeastCostMeetUp returns the airport, other than a and b, minimizing the sum
// of the cheapest fares from a and from b. Ties go to the alphabetically
// first airport.
func (p *Planner) LeastCostMeetUp(ctx context.Context, a, b string) (string, error) {
	codes, err := p.endpoints(a, b)
	if err != nil {
		return "", err
	}
	a, b = codes[0], codes[1]

	distA, _, err := dijkstra.Dijkstra(p.net, dijkstra.Source(a), dijkstra.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("planner: cost meet-up from %s: %w", a, err)
	}
	distB, _, err := dijkstra.Dijkstra(p.net, dijkstra.Source(b), dijkstra.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("planner: cost meet-up from %s: %w", b, err)
	}

	return pick(p.net.Airports(), a, b, func(code string) (int64, bool) {
		da, db := distA[code], distB[code]
		if da == dijkstra.Unreachable || db == dijkstra.Unreachable {
			return 0, false
		}
		return int64(da + db), true
	})
}

// LeastHopMeetUp returns the airport, other than a and b, minimizing the sum
// of the fewest hops from a and from b.
func (p *Planner) LeastHopMeetUp(ctx context.Context, a, b string) (string, error) {
	codes, err := p.endpoints(a, b)
	if err != nil {
		return "", err
	}
	a, b = codes[0], codes[1]

	hopsA, err := bfs.HopCounts(p.net, a, bfs.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("planner: hop meet-up from %s: %w", a, err)
	}
	hopsB, err := bfs.HopCounts(p.net, b, bfs.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("planner: hop meet-up from %s: %w", b, err)
	}

	return pick(p.net.Airports(), a, b, func(code string) (int, bool) {
		ha, okA := hopsA[code]
		hb, okB := hopsB[code]
		return ha + hb, okA && okB
	})
}

// LeastTimeMeetUp returns the airport, other than a and b, where both
// travellers, setting off at start, have arrived soonest.
//
// For each traveller and airport the best route is the one of at most three
// legs minimizing the wait from start until its first departure plus its
// total time. Both must arrive, so an airport scores the later of the two.
func (p *Planner) LeastTimeMeetUp(ctx context.Context, a, b string, start clock.Time) (string, error) {
	codes, err := p.endpoints(a, b)
	if err != nil {
		return "", err
	}
	a, b = codes[0], codes[1]

	bestA, err := p.earliest(ctx, a, "", start)
	if err != nil {
		return "", err
	}
	bestB, err := p.earliest(ctx, b, "", start)
	if err != nil {
		return "", err
	}

	return pick(p.net.Airports(), a, b, func(code string) (time.Duration, bool) {
		ea, okA := bestA[code]
		eb, okB := bestB[code]
		return max(ea.done, eb.done), okA && okB
	})
}

// EarliestRoute returns the route from→to, of at most three legs, that
// arrives soonest for a traveller ready at start, and the time from start
// until its arrival.
func (p *Planner) EarliestRoute(ctx context.Context, from, to string, start clock.Time) (*route.Route, time.Duration, error) {
	from, to, err := p.pair(from, to)
	if err != nil {
		return nil, 0, err
	}

	best, err := p.earliest(ctx, from, to, start)
	if err != nil {
		return nil, 0, err
	}
	e, ok := best[to]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s→%s within %d legs", ErrNoRouteExists, from, to, timeMeetUpMaxStops-1)
	}

	return e.route, e.done, nil
}

// arrival is the best known route to one airport and its completion time.
type arrival struct {
	route *route.Route
	done  time.Duration
}

// earliest walks every route of at most three legs from origin (only those
// ending at target, if set) and keeps the soonest completion per destination.
// Equal completions keep the route found first.
func (p *Planner) earliest(ctx context.Context, origin, target string, start clock.Time) (map[string]arrival, error) {
	best := make(map[string]arrival)
	err := dfs.Walk(p.net, origin, func(path []string) error {
		r, err := route.New(p.net, path)
		if err != nil {
			return err
		}
		done := start.Until(r.Departure()) + r.TotalTime()
		dest := r.Destination()
		if cur, ok := best[dest]; !ok || done < cur.done {
			best[dest] = arrival{route: r, done: done}
		}
		return nil
	},
		dfs.WithContext(ctx),
		dfs.WithTarget(target),
		dfs.WithMaxStops(timeMeetUpMaxStops),
	)
	if err != nil {
		return nil, fmt.Errorf("planner: earliest routes from %s: %w", origin, err)
	}

	return best, nil
}

// pick returns the airport other than a and b with the strictly smallest
// score, scanning airports in sorted order. Airports without a score are
// skipped; if none has one, ErrNoMeetUpAirport is returned.
func pick[T cmp.Ordered](airports []string, a, b string, score func(code string) (T, bool)) (string, error) {
	var best string
	var bestScore T
	var code string
	for _, code = range airports {
		if code == a || code == b {
			continue
		}
		s, ok := score(code)
		if !ok {
			continue
		}
		if best == "" || s < bestScore {
			best, bestScore = code, s
		}
	}
	if best == "" {
		return "", fmt.Errorf("%w: %s and %s", ErrNoMeetUpAirport, a, b)
	}

	return best, nil
}
