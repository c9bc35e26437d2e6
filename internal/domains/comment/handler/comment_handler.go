package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"booktracker-backend/internal/domains/comment"
	"booktracker-backend/internal/shared/middleware"
	"booktracker-backend/internal/shared/query"
	"booktracker-backend/internal/shared/response"
)

type CommentHandler struct {
	commentService  comment.Service
	defaultPageSize int
	maxPageSize     int
}

func NewCommentHandler(commentService comment.Service, defaultPageSize, maxPageSize int) *CommentHandler {
	return &CommentHandler{
		commentService:  commentService,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// List returns comments; comments are publicly readable
// GET /api/v1/comments
func (h *CommentHandler) List(c *gin.Context) {
	h.list(c, uuid.Nil)
}

// ListForReview returns one review's thread, oldest first
// GET /api/v1/reviews/:id/comments
func (h *CommentHandler) ListForReview(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid review ID"})
		return
	}
	h.list(c, reviewID)
}

func (h *CommentHandler) list(c *gin.Context, reviewID uuid.UUID) {
	f := &comment.Filter{
		CommentText:   c.Query("comment_text"),
		User:          c.Query("user"),
		CreatedAfter:  query.Date(c, "created_after"),
		CreatedBefore: query.Date(c, "created_before"),
		ReviewID:      reviewID,
	}
	f.OrderBy = comment.CommentSort.OrderBy(c.Query("ordering"))
	f.Pagination = query.ParsePagination(c, h.defaultPageSize, h.maxPageSize)

	comments, count, err := h.commentService.List(c.Request.Context(), f)
	if err != nil {
		comment.HandleError(c, err)
		return
	}

	next, previous := query.PageLinks(c, f.Pagination, count)
	response.Paginated(c, count, next, previous, comments)
}

// Get returns a single comment
// GET /api/v1/comments/:id
func (h *CommentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid comment ID"})
		return
	}

	cm, err := h.commentService.Get(c.Request.Context(), id)
	if err != nil {
		comment.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, cm)
}

// Create adds a comment under the review in the path
// POST /api/v1/reviews/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid review ID"})
		return
	}

	var req comment.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gin.H{"detail": "request body must be valid JSON"})
		return
	}

	cm, err := h.commentService.Create(c.Request.Context(), middleware.UserID(c), reviewID, req)
	if err != nil {
		comment.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, cm)
}

// CreateTopLevel exists to reject comment creation outside the
// nested review path.
// POST /api/v1/comments
func (h *CommentHandler) CreateTopLevel(c *gin.Context) {
	response.MethodNotAllowed(c, gin.H{"detail": "comments are created under /reviews/{review_id}/comments"})
}

// Update replaces the requester's own comment
// PUT /api/v1/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid comment ID"})
		return
	}

	var req comment.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gin.H{"detail": "request body must be valid JSON"})
		return
	}

	cm, err := h.commentService.Update(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		comment.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, cm)
}

// Delete removes the requester's own comment and its replies
// DELETE /api/v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid comment ID"})
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		comment.HandleError(c, err)
		return
	}

	response.NoContent(c)
}
