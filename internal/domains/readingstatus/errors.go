package readingstatus

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"booktracker-backend/internal/shared/response"
)

var (
	ErrStatusNotFound  = errors.New("reading status not found")
	ErrDuplicateStatus = errors.New("you already track a reading status for this book")
	ErrBookNotFound    = errors.New("the specified book does not exist")
)

var errorStatus = map[error]int{
	ErrStatusNotFound:  http.StatusNotFound,
	ErrDuplicateStatus: http.StatusConflict,
	ErrBookNotFound:    http.StatusBadRequest,
}

func HandleError(c *gin.Context, err error) {
	response.RenderError(c, err, errorStatus)
}
