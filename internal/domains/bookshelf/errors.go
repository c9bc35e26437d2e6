package bookshelf

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"booktracker-backend/internal/shared/response"
)

var (
	ErrShelfNotFound  = errors.New("bookshelf not found")
	ErrNameTaken      = errors.New("you already have a bookshelf with this name")
	ErrBookOnShelf    = errors.New("this book is already on the shelf")
	ErrBookNotOnShelf = errors.New("this book is not on the shelf")
	ErrBookNotFound   = errors.New("the specified book does not exist")
)

var errorStatus = map[error]int{
	ErrShelfNotFound:  http.StatusNotFound,
	ErrNameTaken:      http.StatusConflict,
	ErrBookOnShelf:    http.StatusConflict,
	ErrBookNotOnShelf: http.StatusNotFound,
	ErrBookNotFound:   http.StatusBadRequest,
}

func HandleError(c *gin.Context, err error) {
	response.RenderError(c, err, errorStatus)
}
