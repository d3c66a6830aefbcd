// Package dijkstra provides minimum-cost search over a network.Network,
// where the cost of a route is the sum of its flight prices.
//
// Overview:
//
//   - Dijkstra computes the cheapest fare from one airport to every reachable
//     airport in O((V + E) log V) time, V = |airports| and E = |flights|.
//   - ShortestPath reconstructs the cheapest airport sequence to one target.
//   - Parallel flights are relaxed one by one, so the cheapest of them decides.
//
// Key features:
//
//   - Functional options keep the signature stable.
//   - ReturnPath: return a predecessor map to rebuild routes.
//   - MaxDistance: stop settling airports past a fare cap.
//   - AvoidAirport / AvoidLeg: hide airports or legs without copying the
//     network; the k-shortest enumerator relies on these for spur searches.
//
// Determinism:
//
//   - Heap entries are ordered by (fare, airport code).
//   - A predecessor changes only on a strictly cheaper fare.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilNetwork, ErrAirportNotFound for bad inputs.
//   - ErrBadMaxDistance for a negative cap.
//   - ErrNoPath from ShortestPath when the target is unreachable.
//
// API reference:
//
//	func Dijkstra(n *network.Network, opts ...Option) (dist map[string]network.Price, prev map[string]string, err error)
//	func ShortestPath(n *network.Network, from, to string, opts ...Option) ([]string, network.Price, error)
package dijkstra
