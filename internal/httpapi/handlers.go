package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/airroutes/clock"
	"github.com/katalvlaran/airroutes/network"
	"github.com/katalvlaran/airroutes/route"
)

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Cheapest serves GET /routes/cheapest?from=&to=&exclude=.
func (h *Handler) Cheapest(c *gin.Context) {
	h.single(c, func(ctx context.Context, from, to string, excluded []string) (*route.Route, error) {
		if len(excluded) == 0 {
			return h.planner.LeastCost(ctx, from, to)
		}
		return h.planner.LeastCostExcluding(ctx, from, to, excluded)
	})
}

// FewestHops serves GET /routes/fewest-hops?from=&to=&exclude=.
func (h *Handler) FewestHops(c *gin.Context) {
	h.single(c, func(ctx context.Context, from, to string, excluded []string) (*route.Route, error) {
		if len(excluded) == 0 {
			return h.planner.LeastHop(ctx, from, to)
		}
		return h.planner.LeastHopExcluding(ctx, from, to, excluded)
	})
}

// ByCost serves GET /routes/by-cost?from=&to=&exclude=&max_cost=.
func (h *Handler) ByCost(c *gin.Context) {
	from, to, ok := endpoints(c, "from", "to")
	if !ok {
		return
	}
	maxCost, err := network.ParsePrice(c.Query("max_cost"))
	if err != nil {
		respondError(c, fmt.Errorf("max_cost: %w", err))
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	routes, err := h.planner.AllRoutesCost(ctx, from, to, excludeParam(c), maxCost)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRoutesResponse(routes))
}

// ByHops serves GET /routes/by-hops?from=&to=&exclude=&max_hops=.
func (h *Handler) ByHops(c *gin.Context) {
	from, to, ok := endpoints(c, "from", "to")
	if !ok {
		return
	}
	maxHops, err := strconv.Atoi(strings.TrimSpace(c.Query("max_hops")))
	if err != nil {
		respondError(c, fmt.Errorf("%w: max_hops must be an integer", errBadRequest))
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	routes, err := h.planner.AllRoutesHop(ctx, from, to, excludeParam(c), maxHops)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRoutesResponse(routes))
}

// Earliest serves GET /routes/earliest?from=&to=&start=.
func (h *Handler) Earliest(c *gin.Context) {
	from, to, ok := endpoints(c, "from", "to")
	if !ok {
		return
	}
	start, err := clock.Parse(strings.TrimSpace(c.Query("start")))
	if err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	r, completion, err := h.planner.EarliestRoute(ctx, from, to, start)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, earliestResponse{Route: newRouteResponse(r), CompletionMinutes: minutes(completion)})
}

// MeetUpCost serves GET /meetup/cost?a=&b=.
func (h *Handler) MeetUpCost(c *gin.Context) {
	h.meetUp(c, func(ctx context.Context, a, b string) (string, error) {
		return h.planner.LeastCostMeetUp(ctx, a, b)
	})
}

// MeetUpHops serves GET /meetup/hops?a=&b=.
func (h *Handler) MeetUpHops(c *gin.Context) {
	h.meetUp(c, func(ctx context.Context, a, b string) (string, error) {
		return h.planner.LeastHopMeetUp(ctx, a, b)
	})
}

// MeetUpTime serves GET /meetup/time?a=&b=&start=.
func (h *Handler) MeetUpTime(c *gin.Context) {
	start, err := clock.Parse(strings.TrimSpace(c.Query("start")))
	if err != nil {
		respondError(c, err)
		return
	}
	h.meetUp(c, func(ctx context.Context, a, b string) (string, error) {
		return h.planner.LeastTimeMeetUp(ctx, a, b, start)
	})
}

func (h *Handler) single(c *gin.Context, query func(ctx context.Context, from, to string, excluded []string) (*route.Route, error)) {
	from, to, ok := endpoints(c, "from", "to")
	if !ok {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	r, err := query(ctx, from, to, excludeParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRouteResponse(r))
}

func (h *Handler) meetUp(c *gin.Context, query func(ctx context.Context, a, b string) (string, error)) {
	a, b, ok := endpoints(c, "a", "b")
	if !ok {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	airport, err := query(ctx, a, b)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airportResponse{Airport: airport})
}

func (h *Handler) context(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// endpoints reads two required airport parameters.
func endpoints(c *gin.Context, first, second string) (string, string, bool) {
	a := strings.TrimSpace(c.Query(first))
	b := strings.TrimSpace(c.Query(second))
	if a == "" || b == "" {
		respondError(c, fmt.Errorf("%w: %s and %s are required", errBadRequest, first, second))
		return "", "", false
	}

	return a, b, true
}

// excludeParam splits the comma-separated exclude parameter. It may repeat.
func excludeParam(c *gin.Context) []string {
	var out []string
	for _, raw := range c.QueryArray("exclude") {
		for _, code := range strings.Split(raw, ",") {
			if code = strings.TrimSpace(code); code != "" {
				out = append(out, code)
			}
		}
	}

	return out
}
