package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booktracker-backend/internal/shared/policy"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/books", nil)
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestPaginatedShape(t *testing.T) {
	c, w := testContext(t)

	next := "http://example.com/api/v1/books?page=2"
	Paginated(c, 42, &next, nil, []string{"a", "b"})

	body := decodeEnvelope(t, w)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(42), body["count"])
	assert.Equal(t, next, body["next"])
	assert.Nil(t, body["previous"])
	assert.Len(t, body["results"], 2)
}

func TestErrorEnvelopeShape(t *testing.T) {
	c, w := testContext(t)

	NotFound(c, gin.H{"detail": "book not found"})

	body := decodeEnvelope(t, w)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "Resource not found", body["message"])
	assert.NotNil(t, body["details"])
}

func TestRenderErrorValidation(t *testing.T) {
	c, w := testContext(t)

	RenderError(c, validation.Errors{"isbn": errors.New("bad isbn")}, nil)

	body := decodeEnvelope(t, w)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation failed", body["message"])

	details, ok := body["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, details, "isbn")
}

func TestRenderErrorOwnership(t *testing.T) {
	t.Run("anonymous gets 401", func(t *testing.T) {
		c, w := testContext(t)
		RenderError(c, policy.ErrAnonymous, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-owner gets 403", func(t *testing.T) {
		c, w := testContext(t)
		RenderError(c, policy.ErrNotOwner, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRenderErrorSentinelMap(t *testing.T) {
	errTaken := errors.New("already exists")

	c, w := testContext(t)
	RenderError(c, errTaken, map[error]int{errTaken: http.StatusConflict})

	body := decodeEnvelope(t, w)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Resource conflicts with existing data", body["message"])
}

func TestRenderErrorUnknownHidesDetail(t *testing.T) {
	c, w := testContext(t)

	RenderError(c, errors.New("pq: connection reset"), nil)

	body := decodeEnvelope(t, w)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", body["message"])
	assert.NotContains(t, w.Body.String(), "connection reset")
}
