// Package airroutes finds flight routes over an in-memory airline network:
// cheapest and fewest-hop itineraries, the same searches with airports
// closed, every route under a fare or hop ceiling, and the best airport for
// two travellers to meet.
//
// 🚀 What's inside?
//
//	A thread-safe, directed flight multigraph plus the searches that run on it:
//		• network/   : airports, parallel flights, cheapest-leg resolution, restricted views
//		• clock/     : HHMM times with wrap-around differences
//		• bfs/, dfs/ : hop distances and bounded simple-path enumeration
//		• dijkstra/  : minimum-fare search with airport and leg avoidance
//		• kshortest/ : routes in non-decreasing fare order (Yen)
//		• route/     : legs, fares, air and connecting time of one itinerary
//		• planner/   : the query surface: searches, exclusions, meet-ups
//		• dataset/   : CSV and SQL loaders for airline, airport and flight records
//
// Binaries:
//
//	cmd/airroutes  : interactive menu over a CSV dataset folder
//	cmd/airroutesd : JSON HTTP API (internal/httpapi), configured from the
//	                 environment or a .env file (internal/config)
//
// Quick ASCII example:
//
//	  [EDI] --80--> [LHR] --284--> [DXB]
//	    \                            ^
//	     `--99--> [AMS] ----270-----'
//
// The cheapest EDI→DXB route goes through LHR for 364.00; closing LHR moves
// it through AMS for 369.00.
//
//	go get github.com/katalvlaran/airroutes
package airroutes
