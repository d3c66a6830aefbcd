package planner

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/airroutes/clock"
	"github.com/katalvlaran/airroutes/dataset"
	"github.com/katalvlaran/airroutes/network"
)

// DefaultExclusionCacheSize is the number of restricted networks kept in memory.
const DefaultExclusionCacheSize = 32

// Planner runs route queries against one network.
type Planner struct {
	net        *network.Network
	exclusions *exclusionCache
}

type settings struct {
	cacheSize int
}

// Option configures a Planner.
type Option func(*settings)

// WithExclusionCacheSize sets how many restricted networks are memoized.
// The size must be positive.
func WithExclusionCacheSize(size int) Option {
	return func(s *settings) { s.cacheSize = size }
}

// New wraps an already built network.
func New(n *network.Network, opts ...Option) (*Planner, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	s := settings{cacheSize: DefaultExclusionCacheSize}
	var opt Option
	for _, opt = range opts {
		opt(&s)
	}

	cache, err := newExclusionCache(s.cacheSize)
	if err != nil {
		return nil, err
	}

	return &Planner{net: n, exclusions: cache}, nil
}

// Populate builds the network from dataset records and wraps it in a Planner.
//
// Every airport record becomes an airport; every flight record becomes a
// flight between two of them. When airlines is non-empty, each flight must be
// operated by one of them.
//
// Errors:
//   - dataset.ErrMalformedRecord (wrapped) for a bad clock time or price.
//   - ErrUnknownAirport (wrapped) for a flight between unlisted airports.
//   - dataset.ErrMissingAirline (wrapped) for a flight of an unlisted airline.
func Populate(airlines []dataset.Airline, airports []dataset.Airport, flights []dataset.Flight, opts ...Option) (*Planner, error) {
	n := network.New()

	known := make(map[string]bool, len(airlines))
	var al dataset.Airline
	for _, al = range airlines {
		known[normalize(al.Code)] = true
	}

	var ap dataset.Airport
	for _, ap = range airports {
		if err := n.AddAirport(normalize(ap.Code), network.WithAirportDetails(ap.City, ap.Name)); err != nil {
			return nil, fmt.Errorf("planner: airport %q: %w", ap.Code, err)
		}
	}

	var rec dataset.Flight
	for _, rec = range flights {
		if err := addFlight(n, rec, known); err != nil {
			return nil, err
		}
	}

	return New(n, opts...)
}

func addFlight(n *network.Network, rec dataset.Flight, known map[string]bool) error {
	dep, err := clock.Parse(rec.Departure)
	if err != nil {
		return fmt.Errorf("%w: flight %s departure: %w", dataset.ErrMalformedRecord, rec.Code, err)
	}
	arr, err := clock.Parse(rec.Arrival)
	if err != nil {
		return fmt.Errorf("%w: flight %s arrival: %w", dataset.ErrMalformedRecord, rec.Code, err)
	}
	price, err := network.ParsePrice(rec.Price)
	if err != nil {
		return fmt.Errorf("%w: flight %s price: %w", dataset.ErrMalformedRecord, rec.Code, err)
	}

	airline := normalize(rec.Airline)
	if airline == "" {
		airline = dataset.AirlineOf(rec.Code)
	}
	if len(known) > 0 && !known[airline] {
		return fmt.Errorf("%w: flight %s operated by %s", dataset.ErrMissingAirline, rec.Code, airline)
	}

	_, err = n.AddFlight(rec.Code, normalize(rec.From), normalize(rec.To), dep, arr, price, network.WithAirline(airline))
	if err != nil {
		return fmt.Errorf("planner: flight %s: %w", rec.Code, err)
	}

	return nil
}

// Network returns the primary network. It must be treated as read-only.
func (p *Planner) Network() *network.Network { return p.net }

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// endpoints normalizes codes and checks each one is a known airport.
func (p *Planner) endpoints(codes ...string) ([]string, error) {
	out := make([]string, len(codes))
	var i int
	for i = range codes {
		out[i] = normalize(codes[i])
		if !p.net.HasAirport(out[i]) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAirport, out[i])
		}
	}

	return out, nil
}

// pair is endpoints for an origin and a distinct destination.
func (p *Planner) pair(from, to string) (string, string, error) {
	codes, err := p.endpoints(from, to)
	if err != nil {
		return "", "", err
	}
	if codes[0] == codes[1] {
		return "", "", fmt.Errorf("%w: %s", ErrSameAirport, codes[0])
	}

	return codes[0], codes[1], nil
}
