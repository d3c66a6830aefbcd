// Package network defines the flight network: a directed, weighted multigraph
// whose vertices are airports and whose edges are scheduled flights.
//
// Several flights may serve the same ordered airport pair (parallel edges).
// They are all kept, in insertion order, so that schedule and price
// information survives until a concrete route is materialized; the search
// algorithms treat each of them as an independent weighted transition.
//
// All Network methods are safe for concurrent use. muAirports guards the
// airport catalog; muFlights guards the flight catalog and adjacency, the
// same split the lock layout of a general graph store uses to keep readers
// of one side from blocking writers of the other.
//
// Errors:
//
//	ErrEmptyAirportCode   - airport code is the empty string.
//	ErrUnknownAirport     - referenced airport does not exist.
//	ErrSelfLoop           - flight departs from and arrives at the same airport.
//	ErrNegativePrice      - flight price is below zero.
//	ErrBadPrice           - price string is not a decimal amount.
//	ErrNoDirectConnection - no flight connects the requested airport pair.
package network

import (
	"errors"
	"sync"

	"github.com/katalvlaran/airroutes/clock"
)

// Sentinel errors for network operations.
var (
	// ErrEmptyAirportCode indicates that an airport code is empty.
	ErrEmptyAirportCode = errors.New("network: airport code is empty")

	// ErrUnknownAirport indicates an operation referenced an airport absent from the network.
	ErrUnknownAirport = errors.New("network: unknown airport")

	// ErrSelfLoop indicates a flight whose origin equals its destination.
	ErrSelfLoop = errors.New("network: flight origin equals destination")

	// ErrNegativePrice indicates a flight price below zero.
	ErrNegativePrice = errors.New("network: negative flight price")

	// ErrBadPrice indicates a price string that is not a plain decimal amount.
	ErrBadPrice = errors.New("network: malformed price")

	// ErrNoDirectConnection indicates that no flight serves an airport pair.
	// Route materialization only asks for pairs a search already found
	// adjacent, so seeing this error means a caller broke that contract.
	ErrNoDirectConnection = errors.New("network: no direct connection")
)

// Airport is a network vertex. Code identifies it uniquely; City and Name are
// descriptive metadata carried from the dataset and never used for routing.
type Airport struct {
	Code string
	City string
	Name string
}

// Flight is a directed network edge.
//
// ID is unique within one Network and increases with insertion order
// ("f1", "f2", ...). Price is the edge weight.
type Flight struct {
	ID        string
	Code      string
	Airline   string
	From      string
	To        string
	Departure clock.Time
	Arrival   clock.Time
	Price     Price
}

// AirportOption configures an Airport when it is added.
type AirportOption func(*Airport)

// WithAirportDetails records the city and display name of an airport.
func WithAirportDetails(city, name string) AirportOption {
	return func(a *Airport) {
		a.City = city
		a.Name = name
	}
}

// FlightOption configures a Flight when it is added.
type FlightOption func(*Flight)

// WithAirline sets the operating airline code of a flight.
func WithAirline(code string) FlightOption {
	return func(f *Flight) { f.Airline = code }
}

// Network is the in-memory flight multigraph.
//
// adjacency[from][to] lists every flight from→to in insertion order;
// insertion order is the "first encountered" order used for tie-breaks.
type Network struct {
	muAirports sync.RWMutex // guards airports
	muFlights  sync.RWMutex // guards flights, order and adjacency

	nextFlightID uint64 // atomic flight ID generator

	airports  map[string]*Airport
	flights   map[string]*Flight
	order     []*Flight // all flights in insertion order
	adjacency map[string]map[string][]*Flight
}

// New creates an empty Network.
// Complexity: O(1)
func New() *Network {
	return &Network{
		airports:  make(map[string]*Airport),
		flights:   make(map[string]*Flight),
		adjacency: make(map[string]map[string][]*Flight),
	}
}

// Stats is a read-only snapshot of catalog sizes.
type Stats struct {
	Airports      int // number of airports
	Flights       int // number of flights
	ServedPairs   int // ordered airport pairs with at least one flight
	ParallelPairs int // ordered airport pairs served by more than one flight
}
