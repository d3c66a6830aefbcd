// Package dijkstra defines core types and configuration options
// for Dijkstra's minimum-cost search over a flight network.
//
// Dijkstra computes the cheapest total fare from a single source airport to
// every other reachable airport. Flight prices are non-negative by
// construction (network.AddFlight rejects negative prices), so no pre-scan
// is needed.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |airports|, E = |flights|
//	   • Each airport is extracted from the priority queue at most once.
//	   • Each flight relaxation may push into the priority queue (up to E pushes).
//	– Space: O(V + E)
//
// Options:
//
//	– Source:       code of the starting airport (must be non-empty and present).
//	– ReturnPath:   if true, return the predecessor map for path reconstruction.
//	– MaxDistance:  optional fare cap; airports beyond it are not settled.
//	– AvoidAirport: airports for which the predicate holds are never entered.
//	– AvoidLeg:     legs for which the predicate holds are never relaxed.
//	– Ctx:          cancellation, checked once per settled airport.
//
// Errors (sentinel):
//
//	– ErrEmptySource      if the provided source code is empty.
//	– ErrNilNetwork       if the provided network pointer is nil.
//	– ErrAirportNotFound  if the source (or ShortestPath target) is absent.
//	– ErrBadMaxDistance   if MaxDistance < 0.
//	– ErrNoPath           if ShortestPath cannot reach the target.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/airroutes/network"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source airport code is empty.
	ErrEmptySource = errors.New("dijkstra: source airport code is empty")

	// ErrNilNetwork indicates that a nil *network.Network was passed.
	ErrNilNetwork = errors.New("dijkstra: network is nil")

	// ErrAirportNotFound indicates that the source or target airport does not
	// exist in the provided network.
	ErrAirportNotFound = errors.New("dijkstra: airport not found in network")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that the target is unreachable under the given options.
	ErrNoPath = errors.New("dijkstra: no path to target")
)

// Unreachable is the distance reported for airports the search never settled.
const Unreachable network.Price = math.MaxInt64

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Ctx          context.Context            // Cancellation; defaults to context.Background()
	Source       string                     // The code of the source airport
	ReturnPath   bool                       // Whether to return the predecessor map
	MaxDistance  network.Price              // Maximum total fare to explore
	AvoidAirport func(code string) bool     // Airports never entered (the source is exempt)
	AvoidLeg     func(from, to string) bool // Legs never relaxed

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting airport. Must be supplied.
func Source(code string) Option {
	return func(o *Options) {
		o.Source = code
	}
}

// WithContext sets the context checked once per settled airport.
// Passing nil has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum total fare. Airports whose cheapest fare
// would exceed it stay Unreachable. Negative values cause ErrBadMaxDistance.
func WithMaxDistance(max network.Price) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: %s", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithAvoidAirport makes the search treat every airport for which fn
// returns true as absent. The source itself is never avoided.
func WithAvoidAirport(fn func(code string) bool) Option {
	return func(o *Options) {
		o.AvoidAirport = fn
	}
}

// WithAvoidLeg makes the search ignore every flight from→to for which fn
// returns true, including all parallel flights of that pair.
func WithAvoidLeg(fn func(from, to string) bool) Option {
	return func(o *Options) {
		o.AvoidLeg = fn
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source airport.
//
// Defaults:
//   - Ctx:         context.Background().
//   - ReturnPath:  false.
//   - MaxDistance: Unreachable (no cap).
//   - no avoidance predicates.
func DefaultOptions(source string) Options {
	return Options{
		Ctx:         context.Background(),
		Source:      source,
		ReturnPath:  false,
		MaxDistance: Unreachable,
	}
}
