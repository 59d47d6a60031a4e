package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pixelrelay/upscaled/pkg/planner"
	"github.com/pixelrelay/upscaled/pkg/provider"
	"github.com/pixelrelay/upscaled/pkg/services"
)

// respondError maps domain errors onto the uniform error shape and the HTTP
// codes the surface contract promises.
func respondError(c *gin.Context, err error) {
	var (
		valErr   *services.ValidationError
		scaleErr *planner.ScaleError
		capErr   *services.PlanCapError
	)

	switch {
	case errors.As(err, &scaleErr):
		msg := scaleErr.Error()
		if len(scaleErr.Suggestions) > 0 {
			msg += "; " + scaleErr.Suggestions[0]
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:       "invalid_scale",
			Message:     msg,
			ValidScales: scaleErr.ValidScales,
		})
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: valErr.Error(),
		})
	case errors.Is(err, planner.ErrUnscalable):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:       "unscalable",
			Message:     err.Error(),
			ValidScales: planner.ValidScales,
		})
	case errors.As(err, &capErr):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Error:   "plan_cap_exceeded",
			Message: capErr.Error(),
		})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "job_not_found",
		})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "state_conflict",
			Message: "the job is not in a state that allows this operation",
		})
	case errors.Is(err, provider.ErrStageTimeout):
		c.JSON(http.StatusGatewayTimeout, ErrorResponse{
			Error:   "stage_timeout",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "internal_error",
		})
	}
}

// respondUnauthorized rejects requests without a principal.
func respondUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Error:   "unauthorized",
		Message: "userId is required",
	})
}
