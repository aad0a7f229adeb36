// Package httpapi serves the companion features as a JSON API for web clients.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/player"
	"github.com/aliskhannn/nurul-islam-bot/internal/service"
)

type apiError struct {
	Code    int
	Message string
}

func (e *apiError) Error() string { return e.Message }

type handlerFunc func(c *gin.Context) (any, *apiError)

// resolve writes the handler's result as JSON, or its error as {"error": ...}.
func resolve(h handlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, apiErr := h(c)
		if apiErr != nil {
			c.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func badRequest(msg string) *apiError {
	return &apiError{Code: http.StatusBadRequest, Message: msg}
}

func notFound(msg string) *apiError {
	return &apiError{Code: http.StatusNotFound, Message: msg}
}

// fromError maps domain errors onto status codes.
func fromError(err error) *apiError {
	switch {
	case errors.Is(err, entities.ErrInvalidCoordinate),
		errors.Is(err, entities.ErrInvalidPosition),
		errors.Is(err, service.ErrInvalidMethod),
		errors.Is(err, service.ErrInvalidLanguage):
		return badRequest(err.Error())
	case errors.Is(err, service.ErrSurahNotFound),
		errors.Is(err, service.ErrHadithBookNotFound):
		return notFound(err.Error())
	case errors.Is(err, entities.ErrProviderFailure),
		errors.Is(err, entities.ErrPlaybackFailure):
		return &apiError{Code: http.StatusBadGateway, Message: err.Error()}
	case errors.Is(err, player.ErrStaleEvent):
		return &apiError{Code: http.StatusConflict, Message: err.Error()}
	case errors.Is(err, player.ErrUnknownSession):
		return notFound("session not found")
	case errors.Is(err, player.ErrTooManySessions):
		return &apiError{Code: http.StatusServiceUnavailable, Message: err.Error()}
	default:
		return &apiError{Code: http.StatusInternalServerError, Message: "internal error"}
	}
}
