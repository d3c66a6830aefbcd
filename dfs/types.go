package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNetworkNil is returned when a nil network is passed.
	ErrNetworkNil = errors.New("dfs: network is nil")

	// ErrStartAirportNotFound indicates that the origin does not exist in the network.
	ErrStartAirportNotFound = errors.New("dfs: start airport not found")

	// ErrTargetAirportNotFound indicates that the target does not exist in the network.
	ErrTargetAirportNotFound = errors.New("dfs: target airport not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrStop may be returned by a visit callback to end the walk early
	// without reporting an error.
	ErrStop = errors.New("dfs: stop walk")
)

// Option configures path enumeration.
type Option func(*PathOptions)

// PathOptions holds configurable parameters for path enumeration.
type PathOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Target, if non-empty, restricts reported paths to those ending at Target.
	// Paths never continue past the target.
	Target string

	// MaxStops bounds the number of airports in a path (hops + 1).
	// Zero means no bound beyond simplicity itself.
	MaxStops int

	// FilterNeighbor, if non-nil, is called for each leg curr→next before
	// extending a path; returning false skips the leg.
	FilterNeighbor func(curr, next string) bool

	err error
}

// DefaultOptions returns PathOptions with a background context, no target,
// no bound and no filter.
func DefaultOptions() PathOptions {
	return PathOptions{
		Ctx:      context.Background(),
		MaxStops: 0,
	}
}

// WithContext sets the context checked at every step of the walk.
// Passing nil has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *PathOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTarget restricts enumeration to paths ending at code.
func WithTarget(code string) Option {
	return func(o *PathOptions) { o.Target = code }
}

// WithMaxStops bounds paths to at most limit airports.
func WithMaxStops(limit int) Option {
	return func(o *PathOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxStops cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxStops = limit
	}
}

// WithFilterNeighbor installs a leg filter.
func WithFilterNeighbor(fn func(curr, next string) bool) Option {
	return func(o *PathOptions) { o.FilterNeighbor = fn }
}
