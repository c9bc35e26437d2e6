package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"booktracker-backend/internal/shared/policy"
)

// RenderError maps a domain error onto the uniform envelope.
// Field-keyed validation errors become a 400 with the field map
// as details; ownership failures become 401/403; everything the
// domain declared in statuses is rendered by category; anything
// else is logged and hidden behind a generic 500.
func RenderError(c *gin.Context, err error, statuses map[error]int) {
	var fieldErrors validation.Errors
	if errors.As(err, &fieldErrors) {
		ValidationFailed(c, fieldErrors)
		return
	}

	if errors.Is(err, policy.ErrAnonymous) {
		Unauthenticated(c)
		return
	}
	if errors.Is(err, policy.ErrNotOwner) {
		Forbidden(c)
		return
	}

	for sentinel, status := range statuses {
		if errors.Is(err, sentinel) {
			renderStatus(c, status, err)
			return
		}
	}

	log.Error().
		Str("request_id", c.GetString("request_id")).
		Err(err).
		Msg("Unhandled domain error")
	Internal(c)
}

func renderStatus(c *gin.Context, status int, err error) {
	details := gin.H{"detail": err.Error()}

	switch status {
	case http.StatusBadRequest:
		BadRequest(c, details)
	case http.StatusUnauthorized:
		Unauthenticated(c)
	case http.StatusForbidden:
		Forbidden(c)
	case http.StatusNotFound:
		NotFound(c, details)
	case http.StatusMethodNotAllowed:
		MethodNotAllowed(c, details)
	case http.StatusConflict:
		Conflict(c, details)
	default:
		Internal(c)
	}
}
