package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airroutes/dataset"
	"github.com/katalvlaran/airroutes/internal/httpapi"
	"github.com/katalvlaran/airroutes/planner"
)

type legBody struct {
	Flight  string `json:"flight"`
	Airline string `json:"airline"`
	Price   string `json:"price"`
}

type routeBody struct {
	Stops        []string  `json:"stops"`
	Legs         []legBody `json:"legs"`
	Hops         int       `json:"hops"`
	TotalCost    string    `json:"total_cost"`
	Departure    string    `json:"departure"`
	TotalMinutes int       `json:"total_minutes"`
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	airlines := []dataset.Airline{{Code: "BA"}, {Code: "EK"}, {Code: "KL"}}
	airports := []dataset.Airport{{Code: "EDI"}, {Code: "LHR"}, {Code: "DXB"}, {Code: "AMS"}, {Code: "SYD"}}
	flights := []dataset.Flight{
		{Code: "BA0001", From: "EDI", Departure: "1000", To: "LHR", Arrival: "1120", Price: "80"},
		{Code: "EK0001", From: "LHR", Departure: "1300", To: "DXB", Arrival: "2000", Price: "284"},
		{Code: "KL0001", From: "EDI", Departure: "0600", To: "AMS", Arrival: "0820", Price: "99"},
		{Code: "KL0002", From: "AMS", Departure: "1000", To: "DXB", Arrival: "1700", Price: "270"},
		{Code: "EK0002", From: "DXB", Departure: "1000", To: "LHR", Arrival: "1700", Price: "250"},
	}
	p, err := planner.Populate(airlines, airports, flights)
	require.NoError(t, err)

	return httpapi.NewRouter(httpapi.NewHandler(p))
}

func get(t *testing.T, r *gin.Engine, target string, out any) int {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}

	return w.Code
}

func TestHealth(t *testing.T) {
	r := newRouter(t)
	var body map[string]string
	assert.Equal(t, http.StatusOK, get(t, r, "/healthz", &body))
	assert.Equal(t, "ok", body["status"])

	assert.Equal(t, http.StatusNotFound, get(t, r, "/nowhere", &body))
	assert.NotEmpty(t, body["error"])
}

func TestRouter_IgnoresForwardedFor(t *testing.T) {
	r := newRouter(t)
	r.GET("/client-ip", func(c *gin.Context) { c.String(http.StatusOK, c.ClientIP()) })

	req := httptest.NewRequest(http.MethodGet, "/client-ip", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "10.0.0.1", w.Body.String(), "no proxy is trusted")
}

func TestCheapest(t *testing.T) {
	r := newRouter(t)

	var body routeBody
	require.Equal(t, http.StatusOK, get(t, r, "/routes/cheapest?from=edi&to=DXB", &body))
	assert.Equal(t, []string{"EDI", "LHR", "DXB"}, body.Stops)
	assert.Equal(t, "364.00", body.TotalCost)
	assert.Equal(t, 2, body.Hops)
	assert.Equal(t, "1000", body.Departure)
	require.Len(t, body.Legs, 2)
	assert.Equal(t, "BA0001", body.Legs[0].Flight)
	assert.Equal(t, "BA", body.Legs[0].Airline)
	assert.Equal(t, "80.00", body.Legs[0].Price)

	require.Equal(t, http.StatusOK, get(t, r, "/routes/cheapest?from=EDI&to=DXB&exclude=LHR", &body))
	assert.Equal(t, []string{"EDI", "AMS", "DXB"}, body.Stops)
	assert.Equal(t, "369.00", body.TotalCost)
}

func TestFewestHops(t *testing.T) {
	r := newRouter(t)

	var body routeBody
	require.Equal(t, http.StatusOK, get(t, r, "/routes/fewest-hops?from=EDI&to=DXB", &body))
	assert.Equal(t, 2, body.Hops)

	require.Equal(t, http.StatusOK, get(t, r, "/routes/fewest-hops?from=EDI&to=DXB&exclude=AMS", &body))
	assert.Equal(t, []string{"EDI", "LHR", "DXB"}, body.Stops)
}

func TestByCostAndHops(t *testing.T) {
	r := newRouter(t)

	var body struct {
		Routes []routeBody `json:"routes"`
	}
	require.Equal(t, http.StatusOK, get(t, r, "/routes/by-cost?from=EDI&to=DXB&max_cost=400", &body))
	require.Len(t, body.Routes, 2)
	assert.Equal(t, "364.00", body.Routes[0].TotalCost)
	assert.Equal(t, "369.00", body.Routes[1].TotalCost)

	require.Equal(t, http.StatusOK, get(t, r, "/routes/by-cost?from=EDI&to=DXB&max_cost=365", &body))
	assert.Len(t, body.Routes, 1)

	require.Equal(t, http.StatusOK, get(t, r, "/routes/by-hops?from=EDI&to=DXB&max_hops=2&exclude=AMS", &body))
	require.Len(t, body.Routes, 1)
	assert.Equal(t, []string{"EDI", "LHR", "DXB"}, body.Routes[0].Stops)
}

func TestEarliest(t *testing.T) {
	r := newRouter(t)

	var body struct {
		Route             routeBody `json:"route"`
		CompletionMinutes int       `json:"completion_minutes"`
	}
	require.Equal(t, http.StatusOK, get(t, r, "/routes/earliest?from=EDI&to=DXB&start=0500", &body))
	assert.Equal(t, []string{"EDI", "AMS", "DXB"}, body.Route.Stops)
	assert.Equal(t, 720, body.CompletionMinutes)
}

func TestMeetUp(t *testing.T) {
	r := newRouter(t)

	var body map[string]string
	for _, target := range []string{
		"/meetup/cost?a=EDI&b=DXB",
		"/meetup/hops?a=EDI&b=DXB",
		"/meetup/time?a=EDI&b=DXB&start=0900",
	} {
		require.Equal(t, http.StatusOK, get(t, r, target, &body), target)
		assert.Equal(t, "LHR", body["airport"], target)
	}
}

func TestErrors(t *testing.T) {
	r := newRouter(t)

	cases := map[string]int{
		"/routes/cheapest?from=EDI":                       http.StatusBadRequest,
		"/routes/cheapest?from=EDI&to=EDI":                http.StatusBadRequest,
		"/routes/cheapest?from=EDI&to=XXX":                http.StatusNotFound,
		"/routes/cheapest?from=EDI&to=SYD":                http.StatusUnprocessableEntity,
		"/routes/fewest-hops?from=EDI&to=DXB&exclude=DXB": http.StatusUnprocessableEntity,
		"/routes/by-cost?from=EDI&to=DXB&max_cost=cheap":  http.StatusBadRequest,
		"/routes/by-hops?from=EDI&to=DXB&max_hops=two":    http.StatusBadRequest,
		"/routes/earliest?from=EDI&to=DXB&start=2500":     http.StatusBadRequest,
		"/meetup/time?a=EDI&b=DXB":                        http.StatusBadRequest,
		"/meetup/cost?a=EDI&b=ZZZ":                        http.StatusNotFound,
	}
	for target, want := range cases {
		var body map[string]string
		assert.Equal(t, want, get(t, r, target, &body), target)
		assert.NotEmpty(t, body["error"], target)
	}
}
