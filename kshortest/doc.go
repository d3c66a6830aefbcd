// Package kshortest enumerates simple routes between two airports in
// non-decreasing total fare, one route per call (Yen's algorithm).
//
// The first route is the Dijkstra optimum. Every later route is the cheapest
// candidate built from a root (a prefix of an already produced route) and a
// spur (a cheapest continuation that leaves the root through a leg no earlier
// route with the same root used, and never revisits a root airport).
//
// Routes are airport sequences: parallel flights collapse into one leg whose
// fare is the cheapest of them, so each sequence is produced exactly once.
//
// Determinism: candidates are ordered by (fare, length, signature).
//
// Complexity: each Next after the first runs at most L Dijkstra searches for
// a previous route of L airports.
package kshortest
