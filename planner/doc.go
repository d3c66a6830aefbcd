// Package planner answers route queries over a flight network: cheapest and
// fewest-hop routes (optionally avoiding airports), every route under a fare
// or hop ceiling, and the best meet-up airport for two travellers.
//
// Airport codes are trimmed and upper-cased at this boundary. Every query
// checks its airports first and fails with ErrUnknownAirport before any
// search runs.
//
// A Planner is safe for concurrent use: the network is read-only after
// population, and restricted networks built for exclusion sets are memoized
// and never mutated.
package planner
