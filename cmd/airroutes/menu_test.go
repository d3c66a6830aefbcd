package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airroutes/dataset"
	"github.com/katalvlaran/airroutes/planner"
)

func testPlanner(t *testing.T) *planner.Planner {
	t.Helper()
	p, err := planner.Populate(
		[]dataset.Airline{{Code: "BA"}, {Code: "EK"}, {Code: "KL"}},
		[]dataset.Airport{{Code: "EDI"}, {Code: "LHR"}, {Code: "DXB"}, {Code: "AMS"}, {Code: "SYD"}},
		[]dataset.Flight{
			{Code: "BA0001", From: "EDI", Departure: "1000", To: "LHR", Arrival: "1120", Price: "80"},
			{Code: "EK0001", From: "LHR", Departure: "1300", To: "DXB", Arrival: "2000", Price: "284"},
			{Code: "KL0001", From: "EDI", Departure: "0600", To: "AMS", Arrival: "0820", Price: "99"},
			{Code: "KL0002", From: "AMS", Departure: "1000", To: "DXB", Arrival: "1700", Price: "270"},
			{Code: "EK0002", From: "DXB", Departure: "1000", To: "LHR", Arrival: "1700", Price: "250"},
		},
	)
	require.NoError(t, err)

	return p
}

func session(t *testing.T, lines ...string) string {
	t.Helper()
	var out strings.Builder
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, newMenu(testPlanner(t), in, &out).run(context.Background()))

	return out.String()
}

func TestMenu_Cheapest(t *testing.T) {
	out := session(t, "1", "EDI", "DXB", "0")

	assert.Contains(t, out, "Route for EDI to DXB")
	assert.Contains(t, out, "Leg  Leave  At")
	assert.Contains(t, out, "BA0001")
	assert.Contains(t, out, "EK0001")
	assert.Contains(t, out, "Total Journey Cost = 364.00")
	assert.Contains(t, out, "Total time in the air = 500 minutes.")
	assert.Contains(t, out, "Connecting time = 100 minutes.")
	assert.Contains(t, out, "Total time of the route = 600 minutes.")
}

func TestMenu_Excluding(t *testing.T) {
	out := session(t, "3", "EDI", "DXB", "LHR", "4", "EDI", "DXB", "AMS", "0")

	assert.Contains(t, out, "Total Journey Cost = 369.00")
	assert.Contains(t, out, "A route with fewest changeovers from EDI to DXB excluding (AMS)")
	assert.Contains(t, out, "Total Journey Cost = 364.00")
}

func TestMenu_Lists(t *testing.T) {
	out := session(t, "5", "EDI", "DXB", "", "400", "6", "EDI", "DXB", "SYD", "1", "0")

	assert.Contains(t, out, "maximum price of 400.00")
	assert.Equal(t, 2, strings.Count(out, "Total Journey Cost = 36"))
	assert.Contains(t, out, "No routes qualify.")
}

func TestMenu_MeetUps(t *testing.T) {
	out := session(t, "7", "EDI", "DXB", "8", "EDI", "DXB", "9", "EDI", "DXB", "0900", "0")

	assert.Contains(t, out, "Cheapest meet-up airport for EDI and DXB is LHR")
	assert.Contains(t, out, "Least hop meet-up airport for EDI and DXB is LHR")
	assert.Contains(t, out, "Least time meet-up airport for EDI and DXB for the time of 0900 is LHR")
	assert.Contains(t, out, "Arrival 480 minutes after 0900.")
}

func TestMenu_Errors(t *testing.T) {
	out := session(t, "1", "EDI", "SYD", "2", "EDI", "XXX", "9", "EDI", "DXB", "25:00", "x", "0")

	assert.Contains(t, out, "No route exists between these two airports.")
	assert.Contains(t, out, "unknown airport")
	assert.Contains(t, out, "malformed HHMM time")
	assert.Contains(t, out, `Unknown option "x".`)
}

func TestMenu_EndOfInput(t *testing.T) {
	out := session(t)
	assert.Contains(t, out, "(0) End.")
}
