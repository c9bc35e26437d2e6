package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"booktracker-backend/internal/domains/author"
	"booktracker-backend/internal/shared/query"
	"booktracker-backend/internal/shared/response"
)

type AuthorHandler struct {
	authorService   author.Service
	defaultPageSize int
	maxPageSize     int
}

func NewAuthorHandler(authorService author.Service, defaultPageSize, maxPageSize int) *AuthorHandler {
	return &AuthorHandler{
		authorService:   authorService,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// List returns authors ordered by name
// GET /api/v1/authors
func (h *AuthorHandler) List(c *gin.Context) {
	p := query.ParsePagination(c, h.defaultPageSize, h.maxPageSize)

	authors, count, err := h.authorService.List(c.Request.Context(), p)
	if err != nil {
		author.HandleError(c, err)
		return
	}

	next, previous := query.PageLinks(c, p, count)
	response.Paginated(c, count, next, previous, authors)
}

// Get returns a single author
// GET /api/v1/authors/:id
func (h *AuthorHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid author ID"})
		return
	}

	a, err := h.authorService.Get(c.Request.Context(), id)
	if err != nil {
		author.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, a)
}

// Create adds an author
// POST /api/v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gin.H{"detail": "request body must be valid JSON"})
		return
	}

	a, err := h.authorService.Create(c.Request.Context(), req)
	if err != nil {
		author.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, a)
}

// Update replaces an author's fields
// PUT /api/v1/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid author ID"})
		return
	}

	var req author.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gin.H{"detail": "request body must be valid JSON"})
		return
	}

	a, err := h.authorService.Update(c.Request.Context(), id, req)
	if err != nil {
		author.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, a)
}

// Delete removes an author
// DELETE /api/v1/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid author ID"})
		return
	}

	if err := h.authorService.Delete(c.Request.Context(), id); err != nil {
		author.HandleError(c, err)
		return
	}

	response.NoContent(c)
}
