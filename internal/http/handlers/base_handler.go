// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rentbus/internal/modules/pricing"
	"rentbus/internal/modules/testimonial"
	"rentbus/internal/modules/tripplan"
	"rentbus/internal/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeQuoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pricing.ErrMissingField), errors.Is(err, pricing.ErrInvalidPassengers):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeTestimonialError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, testimonial.ErrInvalid):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, testimonial.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeTripPlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tripplan.ErrMissingField), errors.Is(err, tripplan.ErrInvalidPassengers):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		// Upstream model or maps failures surface as a bad gateway so the
		// frontend can distinguish them from our own errors.
		writeError(c, http.StatusBadGateway, "trip plan unavailable")
	}
}

func requestLanguage(c *gin.Context) types.Language {
	return types.ParseLanguage(c.Query("lang"))
}
