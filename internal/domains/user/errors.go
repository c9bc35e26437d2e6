package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"booktracker-backend/internal/shared/response"
)

var (
	ErrUsernameTaken      = errors.New("this username is already in use")
	ErrEmailTaken         = errors.New("this email is already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username/email or password")
	ErrInvalidRefresh     = errors.New("refresh token is invalid or expired")
)

var errorStatus = map[error]int{
	ErrUsernameTaken:      http.StatusConflict,
	ErrEmailTaken:         http.StatusConflict,
	ErrUserNotFound:       http.StatusNotFound,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrInvalidRefresh:     http.StatusUnauthorized,
}

func HandleError(c *gin.Context, err error) {
	response.RenderError(c, err, errorStatus)
}
