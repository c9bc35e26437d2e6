package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"booktracker-backend/internal/domains/publisher"
	"booktracker-backend/internal/shared/query"
	"booktracker-backend/internal/shared/response"
)

type PublisherHandler struct {
	publisherService publisher.Service
	defaultPageSize  int
	maxPageSize      int
}

func NewPublisherHandler(publisherService publisher.Service, defaultPageSize, maxPageSize int) *PublisherHandler {
	return &PublisherHandler{
		publisherService: publisherService,
		defaultPageSize:  defaultPageSize,
		maxPageSize:      maxPageSize,
	}
}

// GET /api/v1/publishers
func (h *PublisherHandler) List(c *gin.Context) {
	p := query.ParsePagination(c, h.defaultPageSize, h.maxPageSize)

	publishers, count, err := h.publisherService.List(c.Request.Context(), p)
	if err != nil {
		publisher.HandleError(c, err)
		return
	}

	next, previous := query.PageLinks(c, p, count)
	response.Paginated(c, count, next, previous, publishers)
}

// GET /api/v1/publishers/:id
func (h *PublisherHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid publisher ID"})
		return
	}

	p, err := h.publisherService.Get(c.Request.Context(), id)
	if err != nil {
		publisher.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, p)
}

// POST /api/v1/publishers
func (h *PublisherHandler) Create(c *gin.Context) {
	var req publisher.PublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gin.H{"detail": "request body must be valid JSON"})
		return
	}

	p, err := h.publisherService.Create(c.Request.Context(), req)
	if err != nil {
		publisher.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, p)
}

// PUT /api/v1/publishers/:id
func (h *PublisherHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid publisher ID"})
		return
	}

	var req publisher.PublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gin.H{"detail": "request body must be valid JSON"})
		return
	}

	p, err := h.publisherService.Update(c.Request.Context(), id, req)
	if err != nil {
		publisher.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, p)
}

// DELETE /api/v1/publishers/:id
// Rejected with a conflict while books still reference the publisher.
func (h *PublisherHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid publisher ID"})
		return
	}

	if err := h.publisherService.Delete(c.Request.Context(), id); err != nil {
		publisher.HandleError(c, err)
		return
	}

	response.NoContent(c)
}
