package planner

import (
	"errors"

	"github.com/katalvlaran/airroutes/network"
)

var (
	// ErrUnknownAirport is returned when a query names an airport that is not in the network.
	ErrUnknownAirport = network.ErrUnknownAirport

	// ErrNoRouteExists is returned when the destination cannot be reached.
	ErrNoRouteExists = errors.New("planner: no route exists")

	// ErrNoMeetUpAirport is returned when no airport is reachable from both origins.
	ErrNoMeetUpAirport = errors.New("planner: no meet-up airport reachable from both origins")

	// ErrSameAirport is returned when origin and destination are the same airport.
	ErrSameAirport = errors.New("planner: origin and destination are the same airport")

	// ErrNilNetwork is returned by New for a nil network.
	ErrNilNetwork = errors.New("planner: network is nil")
)
