package book

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"booktracker-backend/internal/shared/response"
)

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrISBNTaken         = errors.New("a book with this ISBN already exists")
	ErrPublisherNotFound = errors.New("the specified publisher does not exist")
	ErrAuthorNotFound    = errors.New("one or more specified authors do not exist")
	ErrGenreNotFound     = errors.New("one or more specified genres do not exist")
	ErrNoAuthors         = errors.New("the book must have at least one author")
)

var errorStatus = map[error]int{
	ErrBookNotFound:      http.StatusNotFound,
	ErrISBNTaken:         http.StatusConflict,
	ErrPublisherNotFound: http.StatusBadRequest,
	ErrAuthorNotFound:    http.StatusBadRequest,
	ErrGenreNotFound:     http.StatusBadRequest,
	ErrNoAuthors:         http.StatusBadRequest,
}

func HandleError(c *gin.Context, err error) {
	response.RenderError(c, err, errorStatus)
}
