package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booktracker-backend/internal/domains/user"
	"booktracker-backend/internal/shared/response"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates a new account
// POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gin.H{"detail": "request body must be valid JSON"})
		return
	}

	resp, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		user.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, resp)
}

// Login authenticates by username or email and issues a token pair
// POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gin.H{"detail": "request body must be valid JSON"})
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		user.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

// Refresh exchanges a refresh token for a new pair
// POST /api/v1/auth/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var req user.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gin.H{"detail": "request body must be valid JSON"})
		return
	}

	resp, err := h.userService.Refresh(c.Request.Context(), req)
	if err != nil {
		user.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}
