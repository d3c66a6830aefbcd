package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/airroutes/clock"
	"github.com/katalvlaran/airroutes/network"
	"github.com/katalvlaran/airroutes/planner"
)

// errBadRequest marks a malformed query parameter.
var errBadRequest = errors.New("bad request")

func writeError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// respondError maps a planner error to a status code.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrUnknownAirport):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, planner.ErrNoRouteExists), errors.Is(err, planner.ErrNoMeetUpAirport):
		writeError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errBadRequest),
		errors.Is(err, planner.ErrSameAirport),
		errors.Is(err, clock.ErrBadClock),
		errors.Is(err, network.ErrBadPrice):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(c, http.StatusGatewayTimeout, "query timed out")
	default:
		slog.ErrorContext(c.Request.Context(), "query failed", "path", c.FullPath(), "error", err)
		writeError(c, http.StatusInternalServerError, "internal server error")
	}
}
