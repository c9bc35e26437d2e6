package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"booktracker-backend/internal/domains/genre"
	"booktracker-backend/internal/shared/query"
	"booktracker-backend/internal/shared/response"
)

type GenreHandler struct {
	genreService    genre.Service
	defaultPageSize int
	maxPageSize     int
}

func NewGenreHandler(genreService genre.Service, defaultPageSize, maxPageSize int) *GenreHandler {
	return &GenreHandler{
		genreService:    genreService,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// GET /api/v1/genres
func (h *GenreHandler) List(c *gin.Context) {
	p := query.ParsePagination(c, h.defaultPageSize, h.maxPageSize)

	genres, count, err := h.genreService.List(c.Request.Context(), p)
	if err != nil {
		genre.HandleError(c, err)
		return
	}

	next, previous := query.PageLinks(c, p, count)
	response.Paginated(c, count, next, previous, genres)
}

// GET /api/v1/genres/:id
func (h *GenreHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid genre ID"})
		return
	}

	g, err := h.genreService.Get(c.Request.Context(), id)
	if err != nil {
		genre.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, g)
}

// POST /api/v1/genres
func (h *GenreHandler) Create(c *gin.Context) {
	var req genre.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gin.H{"detail": "request body must be valid JSON"})
		return
	}

	g, err := h.genreService.Create(c.Request.Context(), req)
	if err != nil {
		genre.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, g)
}

// PUT /api/v1/genres/:id
func (h *GenreHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid genre ID"})
		return
	}

	var req genre.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gin.H{"detail": "request body must be valid JSON"})
		return
	}

	g, err := h.genreService.Update(c.Request.Context(), id, req)
	if err != nil {
		genre.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, g)
}

// DELETE /api/v1/genres/:id
func (h *GenreHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid genre ID"})
		return
	}

	if err := h.genreService.Delete(c.Request.Context(), id); err != nil {
		genre.HandleError(c, err)
		return
	}

	response.NoContent(c)
}
