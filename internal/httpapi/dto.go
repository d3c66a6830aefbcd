package httpapi

import (
	"time"

	"github.com/katalvlaran/airroutes/route"
)

type legResponse struct {
	Flight    string `json:"flight"`
	Airline   string `json:"airline,omitempty"`
	From      string `json:"from"`
	Departure string `json:"departure"`
	To        string `json:"to"`
	Arrival   string `json:"arrival"`
	Price     string `json:"price"`
}

type routeResponse struct {
	Stops             []string      `json:"stops"`
	Legs              []legResponse `json:"legs"`
	Hops              int           `json:"hops"`
	TotalCost         string        `json:"total_cost"`
	Departure         string        `json:"departure"`
	Arrival           string        `json:"arrival"`
	AirMinutes        int           `json:"air_minutes"`
	ConnectingMinutes int           `json:"connecting_minutes"`
	TotalMinutes      int           `json:"total_minutes"`
}

type routesResponse struct {
	Routes []routeResponse `json:"routes"`
}

type earliestResponse struct {
	Route             routeResponse `json:"route"`
	CompletionMinutes int           `json:"completion_minutes"`
}

type airportResponse struct {
	Airport string `json:"airport"`
}

func newRouteResponse(r *route.Route) routeResponse {
	legs := r.Legs()
	out := routeResponse{
		Stops:             r.Stops(),
		Legs:              make([]legResponse, len(legs)),
		Hops:              r.Hops(),
		TotalCost:         r.TotalCost().String(),
		Departure:         r.Departure().String(),
		Arrival:           r.Arrival().String(),
		AirMinutes:        minutes(r.AirTime()),
		ConnectingMinutes: minutes(r.ConnectingTime()),
		TotalMinutes:      minutes(r.TotalTime()),
	}
	for i, f := range legs {
		out.Legs[i] = legResponse{
			Flight:    f.Code,
			Airline:   f.Airline,
			From:      f.From,
			Departure: f.Departure.String(),
			To:        f.To,
			Arrival:   f.Arrival.String(),
			Price:     f.Price.String(),
		}
	}

	return out
}

func newRoutesResponse(rs []*route.Route) routesResponse {
	out := routesResponse{Routes: make([]routeResponse, len(rs))}
	for i, r := range rs {
		out.Routes[i] = newRouteResponse(r)
	}

	return out
}

func minutes(d time.Duration) int { return int(d / time.Minute) }
