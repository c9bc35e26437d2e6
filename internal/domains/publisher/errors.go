package publisher

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"booktracker-backend/internal/shared/response"
)

var (
	ErrPublisherNotFound = errors.New("publisher not found")
	ErrNameTaken         = errors.New("a publisher with this name already exists")
	ErrPublisherInUse    = errors.New("publisher cannot be deleted while books reference it")
)

var errorStatus = map[error]int{
	ErrPublisherNotFound: http.StatusNotFound,
	ErrNameTaken:         http.StatusConflict,
	ErrPublisherInUse:    http.StatusConflict,
}

func HandleError(c *gin.Context, err error) {
	response.RenderError(c, err, errorStatus)
}
