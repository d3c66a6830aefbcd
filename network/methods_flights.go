// File: methods_flights.go
// Role: Flight lifecycle & queries: AddFlight, FlightsBetween, Destinations,
//       Departures, CheapestFlight, Weight, Flights, FlightCount. Also nextFlightID().
//
// Determinism:
//   - Flights(), FlightsBetween() and Departures() preserve insertion order.
//   - Destinations() is sorted ascending.
//   - CheapestFlight() breaks price ties by insertion order (first added wins).
//
// Concurrency:
//   - Mutations under muFlights write lock; queries under muFlights read lock.
package network

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/katalvlaran/airroutes/clock"
)

// flightIDPrefix is the textual prefix of flight identifiers ("f1", "f2", ...).
const flightIDPrefix = 'f'

// AddFlight adds a directed flight from→to departing at dep, arriving at arr.
//
// Steps:
//  1. Validate endpoints exist (ErrUnknownAirport), differ (ErrSelfLoop), price ≥ 0.
//  2. Lock muFlights, generate the flight ID, apply options.
//  3. Append to the catalog, the insertion order and adjacency[from][to].
//
// Parallel flights are always accepted: a city pair is commonly served by
// several flights at different times and prices.
//
// Complexity: O(1) amortized.
func (n *Network) AddFlight(code, from, to string, dep, arr clock.Time, price Price, opts ...FlightOption) (*Flight, error) {
	if !n.HasAirport(from) {
		return nil, fmt.Errorf("%w: %q (flight %s)", ErrUnknownAirport, from, code)
	}
	if !n.HasAirport(to) {
		return nil, fmt.Errorf("%w: %q (flight %s)", ErrUnknownAirport, to, code)
	}
	if from == to {
		return nil, fmt.Errorf("%w: %s (flight %s)", ErrSelfLoop, from, code)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: %s (flight %s)", ErrNegativePrice, price, code)
	}

	n.muFlights.Lock()
	defer n.muFlights.Unlock()

	f := &Flight{
		ID:        nextFlightID(n),
		Code:      code,
		From:      from,
		To:        to,
		Departure: dep,
		Arrival:   arr,
		Price:     price,
	}
	var opt FlightOption
	for _, opt = range opts {
		opt(f)
	}

	n.flights[f.ID] = f
	n.order = append(n.order, f)
	if _, ok := n.adjacency[from]; !ok {
		n.adjacency[from] = make(map[string][]*Flight)
	}
	n.adjacency[from][to] = append(n.adjacency[from][to], f)

	return f, nil
}

// HasFlight reports whether at least one flight serves from→to.
// Complexity: O(1).
func (n *Network) HasFlight(from, to string) bool {
	n.muFlights.RLock()
	defer n.muFlights.RUnlock()

	return len(n.adjacency[from][to]) > 0
}

// FlightsBetween returns the parallel flights from→to in insertion order.
// The result is a fresh slice (possibly empty); the flights are read-only.
// Complexity: O(k) for k parallel flights.
func (n *Network) FlightsBetween(from, to string) []*Flight {
	n.muFlights.RLock()
	defer n.muFlights.RUnlock()

	bucket := n.adjacency[from][to]
	out := make([]*Flight, len(bucket))
	copy(out, bucket)

	return out
}

// Destinations returns the distinct airports reachable from `from` by one
// flight, sorted ascending. Unknown airports yield an empty slice.
// Complexity: O(d log d) for out-degree d.
func (n *Network) Destinations(from string) []string {
	n.muFlights.RLock()
	defer n.muFlights.RUnlock()

	out := make([]string, 0, len(n.adjacency[from]))
	var to string
	var bucket []*Flight
	for to, bucket = range n.adjacency[from] {
		if len(bucket) > 0 {
			out = append(out, to)
		}
	}
	sort.Strings(out)

	return out
}

// Departures returns every flight leaving `from`, grouped by destination in
// ascending order and, within a destination, in insertion order.
func (n *Network) Departures(from string) []*Flight {
	dests := n.Destinations(from)

	n.muFlights.RLock()
	defer n.muFlights.RUnlock()

	out := make([]*Flight, 0, len(dests))
	var to string
	for _, to = range dests {
		out = append(out, n.adjacency[from][to]...)
	}

	return out
}

// CheapestFlight resolves the parallel flights from→to to the one with the
// minimum price; equal prices resolve to the earliest inserted flight.
//
// Errors:
//   - ErrNoDirectConnection if no flight serves the pair.
//
// Complexity: O(k) for k parallel flights.
func (n *Network) CheapestFlight(from, to string) (*Flight, error) {
	n.muFlights.RLock()
	defer n.muFlights.RUnlock()

	bucket := n.adjacency[from][to]
	if len(bucket) == 0 {
		return nil, fmt.Errorf("%w: %s→%s", ErrNoDirectConnection, from, to)
	}

	best := bucket[0]
	var f *Flight
	for _, f = range bucket[1:] {
		if f.Price < best.Price { // strict: ties keep the earlier flight
			best = f
		}
	}

	return best, nil
}

// Weight returns the edge weight of f, its price.
func (n *Network) Weight(f *Flight) Price { return f.Price }

// Flights returns all flights in insertion order.
// Complexity: O(E).
func (n *Network) Flights() []*Flight {
	n.muFlights.RLock()
	defer n.muFlights.RUnlock()

	out := make([]*Flight, len(n.order))
	copy(out, n.order)

	return out
}

// FlightCount returns the total number of flights.
func (n *Network) FlightCount() int {
	n.muFlights.RLock()
	defer n.muFlights.RUnlock()

	return len(n.flights)
}

// Stats produces a snapshot of catalog sizes.
// Complexity: O(V + P) for P served pairs.
func (n *Network) Stats() Stats {
	s := Stats{Airports: n.AirportCount()}

	n.muFlights.RLock()
	defer n.muFlights.RUnlock()

	s.Flights = len(n.flights)
	var inner map[string][]*Flight
	var bucket []*Flight
	for _, inner = range n.adjacency {
		for _, bucket = range inner {
			switch {
			case len(bucket) > 1:
				s.ParallelPairs++
				s.ServedPairs++
			case len(bucket) == 1:
				s.ServedPairs++
			}
		}
	}

	return s
}

// nextFlightID returns a new unique textual flight ID.
// Monotonic counter, "f" + decimal digits; the caller holds muFlights.
func nextFlightID(n *Network) string {
	seq := atomic.AddUint64(&n.nextFlightID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, flightIDPrefix)
	buf = strconv.AppendUint(buf, seq, 10)

	return string(buf)
}
