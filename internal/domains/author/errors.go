package author

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"booktracker-backend/internal/shared/response"
)

var ErrAuthorNotFound = errors.New("author not found")

var errorStatus = map[error]int{
	ErrAuthorNotFound: http.StatusNotFound,
}

func HandleError(c *gin.Context, err error) {
	response.RenderError(c, err, errorStatus)
}
