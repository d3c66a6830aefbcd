// File: view.go
// Role: Non-mutating network views.
//
// Determinism:
//   - Restrict preserves flight IDs, insertion order and prices of kept flights,
//     so cheapest-flight tie-breaks resolve identically in the view.
//
// Concurrency:
//   - Read locks on the source; the result is a fresh, unshared Network.
package network

import "sync/atomic"

// Restrict returns a new Network induced by removing the excluded airports:
// it holds every airport not in excluded and every flight whose endpoints
// are both kept. The receiver is not mutated.
//
// The view carries the source's flight ID counter so flights added to it
// later can never collide with copied IDs.
//
// Complexity: O(V + E).
func (n *Network) Restrict(excluded map[string]bool) *Network {
	out := New()

	n.muAirports.RLock()
	var code string
	var a *Airport
	for code, a = range n.airports {
		if excluded[code] {
			continue
		}
		out.airports[code] = &Airport{Code: a.Code, City: a.City, Name: a.Name}
		out.adjacency[code] = make(map[string][]*Flight)
	}
	n.muAirports.RUnlock()

	n.muFlights.RLock()
	srcNext := atomic.LoadUint64(&n.nextFlightID)
	var f *Flight
	for _, f = range n.order {
		if excluded[f.From] || excluded[f.To] {
			continue
		}
		cp := *f
		out.flights[cp.ID] = &cp
		out.order = append(out.order, &cp)
		out.adjacency[cp.From][cp.To] = append(out.adjacency[cp.From][cp.To], &cp)
	}
	n.muFlights.RUnlock()

	atomic.StoreUint64(&out.nextFlightID, srcNext)

	return out
}
