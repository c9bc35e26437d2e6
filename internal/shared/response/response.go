package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform error shape attached to every
// non-2xx response: {error, message, details}.
type Envelope struct {
	Error   bool        `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Page is the list response shape
type Page struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// Fixed messages, one per status category. Validation failures
// carry the specific field errors in Details.
const (
	msgValidation       = "Validation failed"
	msgBadRequest       = "Bad request"
	msgUnauthenticated  = "Authentication credentials were not provided or are invalid"
	msgForbidden        = "You do not have permission to perform this action"
	msgNotFound         = "Resource not found"
	msgMethodNotAllowed = "Method not allowed on this endpoint"
	msgConflict         = "Resource conflicts with existing data"
	msgInternal         = "Internal server error"
)

func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Paginated(c *gin.Context, count int64, next, previous *string, results interface{}) {
	c.JSON(http.StatusOK, Page{
		Count:    count,
		Next:     next,
		Previous: previous,
		Results:  results,
	})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func fail(c *gin.Context, statusCode int, message string, details interface{}) {
	c.AbortWithStatusJSON(statusCode, Envelope{
		Error:   true,
		Message: message,
		Details: details,
	})
}

// ValidationFailed renders a 400 with a field-keyed error map
func ValidationFailed(c *gin.Context, details interface{}) {
	fail(c, http.StatusBadRequest, msgValidation, details)
}

func BadRequest(c *gin.Context, details interface{}) {
	fail(c, http.StatusBadRequest, msgBadRequest, details)
}

func Unauthenticated(c *gin.Context) {
	fail(c, http.StatusUnauthorized, msgUnauthenticated, nil)
}

func Forbidden(c *gin.Context) {
	fail(c, http.StatusForbidden, msgForbidden, nil)
}

func NotFound(c *gin.Context, details interface{}) {
	fail(c, http.StatusNotFound, msgNotFound, details)
}

func MethodNotAllowed(c *gin.Context, details interface{}) {
	fail(c, http.StatusMethodNotAllowed, msgMethodNotAllowed, details)
}

func Conflict(c *gin.Context, details interface{}) {
	fail(c, http.StatusConflict, msgConflict, details)
}

func Internal(c *gin.Context) {
	// Never leak internal error detail to the caller
	fail(c, http.StatusInternalServerError, msgInternal, nil)
}
