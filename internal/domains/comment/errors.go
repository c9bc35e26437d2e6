package comment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"booktracker-backend/internal/shared/response"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrReviewNotFound  = errors.New("review not found")

	// Parent-related violations are surfaced as field errors on
	// parent_comment by the service.
	ErrParentNotFound        = errors.New("parent comment does not exist")
	ErrParentDifferentReview = errors.New("parent comment must belong to the same review")
	ErrParentCycle           = errors.New("a comment cannot be its own ancestor")
)

var errorStatus = map[error]int{
	ErrCommentNotFound: http.StatusNotFound,
	ErrReviewNotFound:  http.StatusNotFound,
}

func HandleError(c *gin.Context, err error) {
	response.RenderError(c, err, errorStatus)
}
