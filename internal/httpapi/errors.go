package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/foodcart/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidOption),
		errors.Is(err, domain.ErrInvalidDetails),
		errors.Is(err, domain.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCheckoutSettled),
		errors.Is(err, domain.ErrCartLocked),
		errors.Is(err, domain.ErrCartChanged):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps domain errors to a status code. Internal errors are
// logged in full and hidden from the client.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	status := statusOf(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		log := loggerFrom(c)
		log.Error().Err(err).Msg("request failed")
		message = "internal error"
	}

	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}
