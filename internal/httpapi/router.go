// Package httpapi exposes planner queries as a JSON HTTP API.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/airroutes/planner"
)

// DefaultQueryTimeout bounds a single planner query.
const DefaultQueryTimeout = 10 * time.Second

// Handler serves planner queries.
type Handler struct {
	planner *planner.Planner
	timeout time.Duration
}

// Option configures a Handler.
type Option func(*Handler)

// WithQueryTimeout sets the per-request deadline. Non-positive values are ignored.
func WithQueryTimeout(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// NewHandler wraps p.
func NewHandler(p *planner.Planner, opts ...Option) *Handler {
	h := &Handler{planner: p, timeout: DefaultQueryTimeout}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		MaxAge:          12 * time.Hour,
	}))
	if err := r.SetTrustedProxies(nil); err != nil {
		slog.Warn("failed to set trusted proxies", "error", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	r.GET("/healthz", h.Health)

	routes := r.Group("/routes")
	{
		routes.GET("/cheapest", h.Cheapest)
		routes.GET("/fewest-hops", h.FewestHops)
		routes.GET("/by-cost", h.ByCost)
		routes.GET("/by-hops", h.ByHops)
		routes.GET("/earliest", h.Earliest)
	}

	meetup := r.Group("/meetup")
	{
		meetup.GET("/cost", h.MeetUpCost)
		meetup.GET("/hops", h.MeetUpHops)
		meetup.GET("/time", h.MeetUpTime)
	}

	return r
}
