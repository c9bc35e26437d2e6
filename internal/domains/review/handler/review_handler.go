package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"booktracker-backend/internal/domains/review"
	"booktracker-backend/internal/shared/middleware"
	"booktracker-backend/internal/shared/query"
	"booktracker-backend/internal/shared/response"
)

type ReviewHandler struct {
	reviewService   review.Service
	defaultPageSize int
	maxPageSize     int
}

func NewReviewHandler(reviewService review.Service, defaultPageSize, maxPageSize int) *ReviewHandler {
	return &ReviewHandler{
		reviewService:   reviewService,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// List returns the requester's own reviews. An anonymous caller
// gets an empty page.
// GET /api/v1/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	f := &review.Filter{
		ReviewText:    c.Query("review_text"),
		User:          c.Query("user"),
		Book:          c.Query("book"),
		CreatedAfter:  query.Date(c, "created_after"),
		CreatedBefore: query.Date(c, "created_before"),
		UserID:        middleware.UserID(c),
	}
	f.OrderBy = review.ReviewSort.OrderBy(c.Query("ordering"))
	f.Pagination = query.ParsePagination(c, h.defaultPageSize, h.maxPageSize)

	reviews, count, err := h.reviewService.List(c.Request.Context(), f)
	if err != nil {
		review.HandleError(c, err)
		return
	}

	next, previous := query.PageLinks(c, f.Pagination, count)
	response.Paginated(c, count, next, previous, reviews)
}

// Get returns a single review; reviews are publicly readable
// GET /api/v1/reviews/:id
func (h *ReviewHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid review ID"})
		return
	}

	r, err := h.reviewService.Get(c.Request.Context(), id)
	if err != nil {
		review.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, r)
}

// Create adds a review under the book in the path
// POST /api/v1/books/:id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid book ID"})
		return
	}

	var req review.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gin.H{"detail": "request body must be valid JSON"})
		return
	}

	r, err := h.reviewService.Create(c.Request.Context(), middleware.UserID(c), bookID, req)
	if err != nil {
		review.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, r)
}

// CreateTopLevel exists to reject review creation outside the
// nested book path.
// POST /api/v1/reviews
func (h *ReviewHandler) CreateTopLevel(c *gin.Context) {
	response.MethodNotAllowed(c, gin.H{"detail": "reviews are created under /books/{book_id}/reviews"})
}

// Update replaces the requester's own review text
// PUT /api/v1/reviews/:id
func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid review ID"})
		return
	}

	var req review.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gin.H{"detail": "request body must be valid JSON"})
		return
	}

	r, err := h.reviewService.Update(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		review.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, r)
}

// Delete removes the requester's own review and its comment thread
// DELETE /api/v1/reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid review ID"})
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		review.HandleError(c, err)
		return
	}

	response.NoContent(c)
}
