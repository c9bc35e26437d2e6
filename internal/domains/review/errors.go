package review

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"booktracker-backend/internal/shared/response"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("you have already reviewed this book")
	ErrBookNotFound    = errors.New("book not found")
)

var errorStatus = map[error]int{
	ErrReviewNotFound:  http.StatusNotFound,
	ErrDuplicateReview: http.StatusConflict,
	ErrBookNotFound:    http.StatusNotFound,
}

func HandleError(c *gin.Context, err error) {
	response.RenderError(c, err, errorStatus)
}
