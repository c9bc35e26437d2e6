package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"booktracker-backend/internal/domains/readingstatus"
	"booktracker-backend/internal/shared/middleware"
	"booktracker-backend/internal/shared/query"
	"booktracker-backend/internal/shared/response"
)

type ReadingStatusHandler struct {
	statusService   readingstatus.Service
	defaultPageSize int
	maxPageSize     int
}

func NewReadingStatusHandler(statusService readingstatus.Service, defaultPageSize, maxPageSize int) *ReadingStatusHandler {
	return &ReadingStatusHandler{
		statusService:   statusService,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// List returns the requester's reading list
// GET /api/v1/reading-statuses
func (h *ReadingStatusHandler) List(c *gin.Context) {
	f := &readingstatus.Filter{
		Status:         c.Query("status"),
		Book:           c.Query("book"),
		MinRating:      queryDecimal(c, "min_rating"),
		MaxRating:      queryDecimal(c, "max_rating"),
		StartedAfter:   query.Date(c, "started_after"),
		StartedBefore:  query.Date(c, "started_before"),
		FinishedAfter:  query.Date(c, "finished_after"),
		FinishedBefore: query.Date(c, "finished_before"),
		UserID:         middleware.UserID(c),
	}
	f.OrderBy = readingstatus.ReadingStatusSort.OrderBy(c.Query("ordering"))
	f.Pagination = query.ParsePagination(c, h.defaultPageSize, h.maxPageSize)

	statuses, count, err := h.statusService.List(c.Request.Context(), f)
	if err != nil {
		readingstatus.HandleError(c, err)
		return
	}

	next, previous := query.PageLinks(c, f.Pagination, count)
	response.Paginated(c, count, next, previous, statuses)
}

// Get returns one of the requester's reading statuses
// GET /api/v1/reading-statuses/:id
func (h *ReadingStatusHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid reading status ID"})
		return
	}

	rs, err := h.statusService.Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		readingstatus.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, rs)
}

// Create adds a book to the requester's reading list
// POST /api/v1/reading-statuses
func (h *ReadingStatusHandler) Create(c *gin.Context) {
	var req readingstatus.ReadingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gin.H{"detail": "request body must be valid JSON"})
		return
	}

	rs, err := h.statusService.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		readingstatus.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, rs)
}

// Update replaces one of the requester's reading statuses
// PUT /api/v1/reading-statuses/:id
func (h *ReadingStatusHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid reading status ID"})
		return
	}

	var req readingstatus.ReadingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gin.H{"detail": "request body must be valid JSON"})
		return
	}

	rs, err := h.statusService.Update(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		readingstatus.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, rs)
}

// Delete removes a reading status from the requester's list
// DELETE /api/v1/reading-statuses/:id
func (h *ReadingStatusHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid reading status ID"})
		return
	}

	if err := h.statusService.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		readingstatus.HandleError(c, err)
		return
	}

	response.NoContent(c)
}

func queryDecimal(c *gin.Context, name string) *decimal.Decimal {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}
