// Package route turns an airport sequence into a Route: the stops, the
// flight chosen for each leg and the fare and time metrics derived from them.
//
// Each leg resolves to the cheapest flight serving the pair (ties go to the
// flight added first). Times use wrap-around clock arithmetic, so a leg
// departing 2300 and arriving 0100 takes two hours.
package route

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/airroutes/clock"
	"github.com/katalvlaran/airroutes/network"
)

var (
	// ErrTooShort is returned for a sequence with fewer than two airports.
	ErrTooShort = errors.New("route: need at least two airports")

	// ErrRepeatedAirport is returned when a sequence visits an airport twice.
	ErrRepeatedAirport = errors.New("route: airport repeated")

	// ErrNilNetwork is returned when a nil network is passed.
	ErrNilNetwork = errors.New("route: network is nil")
)

// Route is an immutable view over an airport sequence in one network.
// All accessors are pure: repeated calls return equal values.
type Route struct {
	stops []string
	legs  []*network.Flight
}

// New validates stops against n and resolves every leg to its cheapest flight.
//
// Errors:
//   - ErrNilNetwork, ErrTooShort, ErrRepeatedAirport.
//   - network.ErrUnknownAirport for a code absent from n.
//   - network.ErrNoDirectConnection (wrapped) when two consecutive airports
//     are not connected; search results never trigger this.
func New(n *network.Network, stops []string) (*Route, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooShort, len(stops))
	}

	seen := make(map[string]bool, len(stops))
	var code string
	for _, code = range stops {
		if !n.HasAirport(code) {
			return nil, fmt.Errorf("route: %w: %q", network.ErrUnknownAirport, code)
		}
		if seen[code] {
			return nil, fmt.Errorf("%w: %s", ErrRepeatedAirport, code)
		}
		seen[code] = true
	}

	legs := make([]*network.Flight, 0, len(stops)-1)
	var i int
	for i = 1; i < len(stops); i++ {
		f, err := n.CheapestFlight(stops[i-1], stops[i])
		if err != nil {
			return nil, fmt.Errorf("route: leg %d: %w", i, err)
		}
		legs = append(legs, f)
	}

	cp := make([]string, len(stops))
	copy(cp, stops)

	return &Route{stops: cp, legs: legs}, nil
}

// Stops returns a copy of the airport sequence.
func (r *Route) Stops() []string {
	out := make([]string, len(r.stops))
	copy(out, r.stops)

	return out
}

// Origin is the first airport.
func (r *Route) Origin() string { return r.stops[0] }

// Destination is the last airport.
func (r *Route) Destination() string { return r.stops[len(r.stops)-1] }

// Legs returns the chosen flight for each leg, in order. The flights are shared
// with the network and must not be modified.
func (r *Route) Legs() []*network.Flight {
	out := make([]*network.Flight, len(r.legs))
	copy(out, r.legs)

	return out
}

// Flights returns the flight code of each leg.
func (r *Route) Flights() []string {
	out := make([]string, len(r.legs))
	for i, f := range r.legs {
		out[i] = f.Code
	}

	return out
}

// TotalCost sums the fare of every leg.
func (r *Route) TotalCost() network.Price {
	var total network.Price
	var f *network.Flight
	for _, f = range r.legs {
		total += f.Price
	}

	return total
}

// Hops is the number of legs.
func (r *Route) Hops() int { return len(r.stops) - 1 }

// Departure is the departure time of the first leg.
func (r *Route) Departure() clock.Time { return r.legs[0].Departure }

// Arrival is the arrival time of the last leg.
func (r *Route) Arrival() clock.Time { return r.legs[len(r.legs)-1].Arrival }

// AirTime sums the wrap-around flight time of every leg.
func (r *Route) AirTime() time.Duration {
	var total time.Duration
	var f *network.Flight
	for _, f = range r.legs {
		total += f.Departure.Until(f.Arrival)
	}

	return total
}

// ConnectingTime sums, over every intermediate airport, the wrap-around wait
// between the incoming arrival and the outgoing departure.
func (r *Route) ConnectingTime() time.Duration {
	var total time.Duration
	var i int
	for i = 1; i < len(r.legs); i++ {
		total += r.legs[i-1].Arrival.Until(r.legs[i].Departure)
	}

	return total
}

// TotalTime is AirTime plus ConnectingTime.
func (r *Route) TotalTime() time.Duration { return r.AirTime() + r.ConnectingTime() }
