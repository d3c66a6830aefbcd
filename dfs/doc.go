// Package dfs implements bounded depth-first enumeration of simple paths in a
// flight network.
//
// What:
//
//   - Paths / Walk: every simple path (no repeated airport) starting at an
//     origin, visiting successors in ascending code order. Supports:
//   - A target airport (paths end there) or open-ended enumeration
//     (every path of two or more airports is reported)
//   - A bound on the number of airports per path (hops + 1)
//   - Leg filtering
//   - Cancellation via context.Context
//   - Streaming through a visit callback, with ErrStop for early exit
//
// Why:
//
//   - Fewest-changeover routes: the first path found under the smallest
//     bound that yields any path.
//   - Listing every route within a hop ceiling.
//   - One open-ended walk from an origin covers every candidate meeting
//     airport at once.
//
// Paths are airport sequences, not flight sequences: parallel flights between
// the same pair produce one path. Which flight serves each leg is decided
// later when the path becomes a route.
//
// Complexity:
//
//   - Time:   O(b^k) for branching factor b and bound k (exhaustive by nature).
//   - Memory: O(k) for the walk itself, plus the collected paths for Paths.
//
// Errors:
//
//   - ErrNetworkNil             if the network is nil.
//   - ErrStartAirportNotFound   if the origin is missing.
//   - ErrTargetAirportNotFound  if a target is set and missing.
//   - ErrOptionViolation        for a negative bound.
//   - context.Canceled / DeadlineExceeded if the context ends.
//   - any error returned by the visit callback other than ErrStop.
package dfs
