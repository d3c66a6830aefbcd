// Package bfs provides breadth-first search over a flight network, returning
// fewest-hop distances and parent links.
//
// What
//
//   - Explore airports in non-decreasing hop count from a start airport.
//   - Returns a BFSResult containing:
//   - Depth: map from airport → number of flights from the start
//   - Parent: map from airport → its predecessor in the BFS tree
//   - PathTo rebuilds the tree path to any reached airport.
//   - OnVisit runs as each airport is dequeued; an error ends the search
//     early with the partial result.
//   - Allows pruning of individual legs via WithFilterNeighbor.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Fewest-hop counts from one origin to every airport in O(V + E).
//   - Fewest-hop routes: with successors in code order, the tree path is the
//     alphabetically first route among those with the fewest flights.
//
// Determinism
//
//	network.Destinations returns successors sorted by code and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//	Parallel flights collapse into one successor: hops do not depend on
//	which of them is taken.
//
// Complexity (V = airports, E = served airport pairs)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
