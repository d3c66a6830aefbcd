package planner_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airroutes/clock"
	"github.com/katalvlaran/airroutes/dataset"
	"github.com/katalvlaran/airroutes/network"
	"github.com/katalvlaran/airroutes/planner"
	"github.com/katalvlaran/airroutes/route"
)

var ctx = context.Background()

func TestLeastCost(t *testing.T) {
	def := newPlanner(t, dataset.AirlineCodes)
	more := newPlanner(t, dataset.MoreAirlineCodes)

	r, err := def.LeastCost(ctx, "EDI", "DXB")
	require.NoError(t, err)
	assert.Equal(t, network.Units(364), r.TotalCost())
	assert.Equal(t, []string{"EDI", "LHR", "DXB"}, r.Stops())
	assert.Equal(t, []string{"BA0001", "EK0001"}, r.Flights())

	r, err = more.LeastCost(ctx, "edi", " dxb ")
	require.NoError(t, err)
	assert.Equal(t, network.Units(363), r.TotalCost())
	assert.Equal(t, []string{"EDI", "FRA", "DXB"}, r.Stops())
}

func TestLeastCost_Errors(t *testing.T) {
	p := newPlanner(t, dataset.AirlineCodes)

	_, err := p.LeastCost(ctx, "EDI", "XXX")
	assert.ErrorIs(t, err, planner.ErrUnknownAirport)
	_, err = p.LeastCost(ctx, "XXX", "EDI")
	assert.ErrorIs(t, err, planner.ErrUnknownAirport)
	_, err = p.LeastCost(ctx, "EDI", "edi")
	assert.ErrorIs(t, err, planner.ErrSameAirport)

	iso := isolated(t)
	_, err = iso.LeastCost(ctx, "A", "B")
	assert.ErrorIs(t, err, planner.ErrNoRouteExists)
}

func TestLeastCostExcluding(t *testing.T) {
	p := newPlanner(t, dataset.MoreAirlineCodes)

	r, err := p.LeastCostExcluding(ctx, "EDI", "DXB", []string{"LHR", "FRA"})
	require.NoError(t, err)
	assert.Equal(t, network.Units(369), r.TotalCost())
	assert.Equal(t, []string{"EDI", "AMS", "DXB"}, r.Stops())
	assert.Equal(t, 1, planner.CachedNetworks(p))

	// Same set in another spelling reuses the restricted network.
	_, err = p.LeastCostExcluding(ctx, "EDI", "DXB", []string{"fra", "LHR", "FRA", ""})
	require.NoError(t, err)
	assert.Equal(t, 1, planner.CachedNetworks(p))

	// An empty set searches the primary network.
	r, err = p.LeastCostExcluding(ctx, "EDI", "DXB", nil)
	require.NoError(t, err)
	assert.Equal(t, network.Units(363), r.TotalCost())
	assert.Equal(t, 1, planner.CachedNetworks(p))

	_, err = p.LeastCostExcluding(ctx, "EDI", "DXB", []string{"LHR", "FRA", "AMS"})
	assert.ErrorIs(t, err, planner.ErrNoRouteExists)
	_, err = p.LeastCostExcluding(ctx, "EDI", "DXB", []string{"DXB"})
	assert.ErrorIs(t, err, planner.ErrNoRouteExists)
	_, err = p.LeastCostExcluding(ctx, "EDI", "ZZZ", []string{"LHR"})
	assert.ErrorIs(t, err, planner.ErrUnknownAirport)
}

func TestLeastCostExcluding_Concurrent(t *testing.T) {
	p := newPlanner(t, dataset.MoreAirlineCodes)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := p.LeastCostExcluding(ctx, "EDI", "DXB", []string{"LHR", "FRA"})
			if assert.NoError(t, err) {
				assert.Equal(t, network.Units(369), r.TotalCost())
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, planner.CachedNetworks(p))
}

func TestLeastHop(t *testing.T) {
	p := newPlanner(t, dataset.MoreAirlineCodes)

	r, err := p.LeastHop(ctx, "DXB", "LGA")
	require.NoError(t, err)
	assert.Equal(t, 2, r.Hops())
	assert.Equal(t, []string{"DXB", "LHR", "LGA"}, r.Stops())

	r, err = p.LeastHop(ctx, "DXB", "EDI")
	require.NoError(t, err)
	assert.Equal(t, []string{"DXB", "LCY", "EDI"}, r.Stops(), "first two-leg route in airport order")

	_, err = p.LeastHop(ctx, "LGA", "EDI")
	assert.ErrorIs(t, err, planner.ErrNoRouteExists)
}

func TestLeastHop_TieTakesFirstInCodeOrder(t *testing.T) {
	n := network.New()
	for _, code := range []string{"EDI", "LHR", "AMS", "DXB", "CDG"} {
		require.NoError(t, n.AddAirport(code))
	}
	add := func(code, from, to string) {
		_, err := n.AddFlight(code, from, to, 600, 720, network.Units(100))
		require.NoError(t, err)
	}
	add("BA1", "EDI", "LHR")
	add("KL1", "EDI", "AMS")
	add("EK1", "LHR", "DXB")
	add("KL2", "AMS", "DXB")
	add("AF1", "EDI", "CDG")
	add("AF2", "CDG", "AMS")
	p, err := planner.New(n)
	require.NoError(t, err)

	r, err := p.LeastHop(ctx, "EDI", "DXB")
	require.NoError(t, err)
	assert.Equal(t, []string{"EDI", "AMS", "DXB"}, r.Stops())

	r, err = p.LeastHopExcluding(ctx, "EDI", "DXB", []string{"AMS"})
	require.NoError(t, err)
	assert.Equal(t, []string{"EDI", "LHR", "DXB"}, r.Stops())
}

func TestLeastHopExcluding(t *testing.T) {
	p := newPlanner(t, dataset.MoreAirlineCodes)
	excluded := []string{"LHR", "LCY", "LGW", "NCL", "FRA", "AMS"}

	r, err := p.LeastHopExcluding(ctx, "DXB", "EDI", excluded)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Hops())
	assert.Equal(t, []string{"DXB", "DOH", "MAN", "EDI"}, r.Stops())

	_, err = p.LeastHopExcluding(ctx, "DXB", "EDI", append(excluded, "DOH"))
	assert.ErrorIs(t, err, planner.ErrNoRouteExists)
	_, err = p.LeastHopExcluding(ctx, "DXB", "EDI", []string{"edi"})
	assert.ErrorIs(t, err, planner.ErrNoRouteExists)
}

func TestAllRoutesCost(t *testing.T) {
	p := newPlanner(t, dataset.AirlineCodes)

	routes, err := p.AllRoutesCost(ctx, "DXB", "EDI", []string{"LGW", "NCL"}, network.Units(405))
	require.NoError(t, err)
	require.Len(t, routes, 3)
	assert.Equal(t, []string{"DXB", "LHR", "EDI"}, routes[0].Stops())
	assert.Equal(t, network.Units(340), routes[0].TotalCost())
	assert.Equal(t, network.Units(365), routes[1].TotalCost())
	assert.Equal(t, network.Units(395), routes[2].TotalCost())

	// Excluded routes priced under the ceiling do not end enumeration.
	routes, err = p.AllRoutesCost(ctx, "DXB", "EDI", []string{"LGW", "NCL"}, network.Units(364))
	require.NoError(t, err)
	require.Len(t, routes, 1)

	routes, err = p.AllRoutesCost(ctx, "DXB", "EDI", nil, -1)
	require.NoError(t, err)
	assert.Empty(t, routes)

	_, err = p.AllRoutesCost(ctx, "DXB", "XXX", nil, 100)
	assert.ErrorIs(t, err, planner.ErrUnknownAirport)
}

func TestAllRoutesCost_NonDecreasingAndExcluded(t *testing.T) {
	p := newPlanner(t, dataset.MoreAirlineCodes)
	excluded := []string{"LHR"}

	routes, err := p.AllRoutesCost(ctx, "DXB", "EDI", excluded, network.Units(10000))
	require.NoError(t, err)
	require.NotEmpty(t, routes)
	for i, r := range routes {
		assertAvoids(t, r, excluded)
		if i > 0 {
			assert.LessOrEqual(t, routes[i-1].TotalCost(), r.TotalCost())
		}
	}
}

func TestAllRoutesHop(t *testing.T) {
	p := newPlanner(t, dataset.MoreAirlineCodes)

	routes, err := p.AllRoutesHop(ctx, "DXB", "EDI", []string{"NCL"}, 2)
	require.NoError(t, err)
	require.Len(t, routes, 3)
	for _, r := range routes {
		assert.Equal(t, 2, r.Hops())
		assertAvoids(t, r, []string{"NCL"})
	}

	routes, err = p.AllRoutesHop(ctx, "DXB", "EDI", []string{"NCL"}, 3)
	require.NoError(t, err)
	require.Len(t, routes, 5)
	for i := 1; i < len(routes); i++ {
		assert.LessOrEqual(t, routes[i-1].Hops(), routes[i].Hops())
	}
	assert.Equal(t, []string{"DXB", "DOH", "MAN", "EDI"}, routes[3].Stops())

	routes, err = p.AllRoutesHop(ctx, "DXB", "EDI", nil, 0)
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestLeastCostMeetUp(t *testing.T) {
	p := newPlanner(t, dataset.AirlineCodes)

	code, err := p.LeastCostMeetUp(ctx, "DXB", "EDI")
	require.NoError(t, err)
	assert.Equal(t, "LHR", code)

	_, err = p.LeastCostMeetUp(ctx, "DXB", "XXX")
	assert.ErrorIs(t, err, planner.ErrUnknownAirport)

	_, err = isolated(t).LeastCostMeetUp(ctx, "A", "B")
	assert.ErrorIs(t, err, planner.ErrNoMeetUpAirport)
}

func TestLeastHopMeetUp(t *testing.T) {
	p := newPlanner(t, dataset.AirlineCodes)

	// LCY and LHR are both one leg from each origin; the tie goes to LCY.
	code, err := p.LeastHopMeetUp(ctx, "dxb", "edi")
	require.NoError(t, err)
	assert.Equal(t, "LCY", code)

	_, err = isolated(t).LeastHopMeetUp(ctx, "A", "B")
	assert.ErrorIs(t, err, planner.ErrNoMeetUpAirport)
}

func TestLeastTimeMeetUp(t *testing.T) {
	p := newPlanner(t, dataset.AirlineCodes)

	code, err := p.LeastTimeMeetUp(ctx, "DXB", "EDI", clock.MustParse("0900"))
	require.NoError(t, err)
	assert.Equal(t, "LHR", code)

	code, err = p.LeastTimeMeetUp(ctx, "DXB", "EDI", clock.MustParse("2100"))
	require.NoError(t, err)
	assert.Equal(t, "LCY", code)

	_, err = p.LeastTimeMeetUp(ctx, "XXX", "EDI", 0)
	assert.ErrorIs(t, err, planner.ErrUnknownAirport)
}

func TestEarliestRoute(t *testing.T) {
	p := newPlanner(t, dataset.AirlineCodes)

	r, done, err := p.EarliestRoute(ctx, "EDI", "LCY", clock.MustParse("0900"))
	require.NoError(t, err)
	assert.Equal(t, []string{"EDI", "LHR", "LCY"}, r.Stops())
	assert.Equal(t, 9*time.Hour+40*time.Minute, done)

	r, done, err = p.EarliestRoute(ctx, "EDI", "LCY", clock.MustParse("2100"))
	require.NoError(t, err)
	assert.Equal(t, []string{"EDI", "LCY"}, r.Stops())
	assert.Equal(t, 2*time.Hour+20*time.Minute, done)

	_, _, err = isolated(t).EarliestRoute(ctx, "A", "B", 0)
	assert.ErrorIs(t, err, planner.ErrNoRouteExists)
}

func TestQueries_Canceled(t *testing.T) {
	p := newPlanner(t, dataset.AirlineCodes)
	cctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.LeastCost(cctx, "EDI", "DXB")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = p.LeastHop(cctx, "EDI", "DXB")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = p.LeastTimeMeetUp(cctx, "DXB", "EDI", 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPopulate_Errors(t *testing.T) {
	airlines := []dataset.Airline{{Code: "BA"}}
	airports := []dataset.Airport{{Code: "EDI"}, {Code: "LHR"}}
	good := dataset.Flight{Code: "BA1", Airline: "BA", From: "EDI", Departure: "0700", To: "LHR", Arrival: "0820", Price: "80"}

	bad := good
	bad.Departure = "7:00"
	_, err := planner.Populate(airlines, airports, []dataset.Flight{bad})
	assert.ErrorIs(t, err, dataset.ErrMalformedRecord)
	assert.ErrorIs(t, err, clock.ErrBadClock)

	bad = good
	bad.Price = "eighty"
	_, err = planner.Populate(airlines, airports, []dataset.Flight{bad})
	assert.ErrorIs(t, err, network.ErrBadPrice)

	bad = good
	bad.To = "JFK"
	_, err = planner.Populate(airlines, airports, []dataset.Flight{bad})
	assert.ErrorIs(t, err, planner.ErrUnknownAirport)

	bad = good
	bad.Code, bad.Airline = "EK1", ""
	_, err = planner.Populate(airlines, airports, []dataset.Flight{bad})
	assert.ErrorIs(t, err, dataset.ErrMissingAirline)

	p, err := planner.Populate(airlines, airports, []dataset.Flight{good})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Network().FlightCount())
}

func TestNew_Errors(t *testing.T) {
	_, err := planner.New(nil)
	assert.ErrorIs(t, err, planner.ErrNilNetwork)
	_, err = planner.New(network.New(), planner.WithExclusionCacheSize(0))
	assert.Error(t, err)
}

func TestExclusion(t *testing.T) {
	ex := planner.NewExclusion("lhr", " FRA ", "LHR", "")
	assert.Equal(t, []string{"FRA", "LHR"}, ex.Codes())
	assert.Equal(t, "FRA,LHR", ex.Key())
	assert.Equal(t, 2, ex.Len())
	assert.True(t, ex.Contains("LHR"))
	assert.True(t, ex.Rejects([]string{"EDI", "LHR", "DXB"}))
	assert.False(t, ex.Rejects([]string{"EDI", "AMS", "DXB"}))
	assert.False(t, planner.Exclusion{}.Rejects([]string{"EDI"}))
}

// isolated is a planner over two airports with no flights.
func isolated(t *testing.T) *planner.Planner {
	t.Helper()
	n := network.New()
	require.NoError(t, n.AddAirport("A"))
	require.NoError(t, n.AddAirport("B"))
	require.NoError(t, n.AddAirport("C"))
	p, err := planner.New(n)
	require.NoError(t, err)

	return p
}

func assertAvoids(t *testing.T, r *route.Route, excluded []string) {
	t.Helper()
	for _, stop := range r.Stops() {
		assert.NotContains(t, excluded, stop, "route %v", r.Stops())
	}
}
