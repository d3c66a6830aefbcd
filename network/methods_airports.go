// File: methods_airports.go
// Role: Airport lifecycle & queries.
//
// Determinism:
//   - Airports() returns codes sorted lexicographically ascending.
//
// Concurrency:
//   - Airport catalog protected by muAirports.
//   - Adjacency bootstrap under muFlights.
package network

import (
	"fmt"
	"sort"
)

// AddAirport inserts an airport if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty code (ErrEmptyAirportCode).
//   - Stage 2: Under muAirports write lock, register the airport unless present.
//   - Stage 3: Under muFlights write lock, bootstrap its adjacency bucket.
//
// Behavior highlights:
//   - Re-adding an existing code is a no-op; the first registration's details win.
//   - Codes are stored verbatim; normalization is the caller's job.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
//
// Notes:
//   - Lock order is muAirports -> muFlights, the same order every mutating path uses.
func (n *Network) AddAirport(code string, opts ...AirportOption) error {
	if code == "" {
		return ErrEmptyAirportCode
	}

	n.muAirports.Lock()
	defer n.muAirports.Unlock()

	if _, exists := n.airports[code]; exists {
		return nil
	}

	a := &Airport{Code: code}
	var opt AirportOption
	for _, opt = range opts {
		opt(a)
	}
	n.airports[code] = a

	n.muFlights.Lock()
	if _, ok := n.adjacency[code]; !ok {
		n.adjacency[code] = make(map[string][]*Flight)
	}
	n.muFlights.Unlock()

	return nil
}

// HasAirport reports whether code is a known airport (empty code ⇒ false).
// Complexity: O(1). Concurrency: read lock on muAirports.
func (n *Network) HasAirport(code string) bool {
	if code == "" {
		return false
	}
	n.muAirports.RLock()
	defer n.muAirports.RUnlock()

	_, ok := n.airports[code]

	return ok
}

// Airport returns the catalog entry for code, or ErrUnknownAirport.
// The returned *Airport must be treated as read-only.
func (n *Network) Airport(code string) (*Airport, error) {
	n.muAirports.RLock()
	defer n.muAirports.RUnlock()

	a, ok := n.airports[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAirport, code)
	}

	return a, nil
}

// Airports returns every airport code sorted ascending.
// Complexity: O(V log V). Concurrency: read lock on muAirports.
func (n *Network) Airports() []string {
	n.muAirports.RLock()
	defer n.muAirports.RUnlock()

	out := make([]string, 0, len(n.airports))
	var code string
	for code = range n.airports {
		out = append(out, code)
	}
	sort.Strings(out)

	return out
}

// AirportCount returns the number of airports.
func (n *Network) AirportCount() int {
	n.muAirports.RLock()
	defer n.muAirports.RUnlock()

	return len(n.airports)
}
