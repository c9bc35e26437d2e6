package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"booktracker-backend/internal/domains/bookshelf"
	"booktracker-backend/internal/shared/middleware"
	"booktracker-backend/internal/shared/query"
	"booktracker-backend/internal/shared/response"
)

type BookshelfHandler struct {
	shelfService    bookshelf.Service
	defaultPageSize int
	maxPageSize     int
}

func NewBookshelfHandler(shelfService bookshelf.Service, defaultPageSize, maxPageSize int) *BookshelfHandler {
	return &BookshelfHandler{
		shelfService:    shelfService,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// List returns the requester's shelves
// GET /api/v1/bookshelves
func (h *BookshelfHandler) List(c *gin.Context) {
	f := &bookshelf.Filter{
		Name:          c.Query("name"),
		Description:   c.Query("description"),
		CreatedAfter:  query.Date(c, "created_after"),
		CreatedBefore: query.Date(c, "created_before"),
		UserID:        middleware.UserID(c),
	}
	f.OrderBy = bookshelf.BookshelfSort.OrderBy(c.Query("ordering"))
	f.Pagination = query.ParsePagination(c, h.defaultPageSize, h.maxPageSize)

	shelves, count, err := h.shelfService.List(c.Request.Context(), f)
	if err != nil {
		bookshelf.HandleError(c, err)
		return
	}

	next, previous := query.PageLinks(c, f.Pagination, count)
	response.Paginated(c, count, next, previous, shelves)
}

// Get returns one of the requester's shelves
// GET /api/v1/bookshelves/:id
func (h *BookshelfHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid bookshelf ID"})
		return
	}

	shelf, err := h.shelfService.Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		bookshelf.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, shelf)
}

// Create adds a shelf for the requester
// POST /api/v1/bookshelves
func (h *BookshelfHandler) Create(c *gin.Context) {
	var req bookshelf.BookshelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gin.H{"detail": "request body must be valid JSON"})
		return
	}

	shelf, err := h.shelfService.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		bookshelf.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, shelf)
}

// Update renames a shelf or changes its description
// PUT /api/v1/bookshelves/:id
func (h *BookshelfHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid bookshelf ID"})
		return
	}

	var req bookshelf.BookshelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gin.H{"detail": "request body must be valid JSON"})
		return
	}

	shelf, err := h.shelfService.Update(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		bookshelf.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, shelf)
}

// Delete removes a shelf and its entries
// DELETE /api/v1/bookshelves/:id
func (h *BookshelfHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid bookshelf ID"})
		return
	}

	if err := h.shelfService.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		bookshelf.HandleError(c, err)
		return
	}

	response.NoContent(c)
}

// AddBook puts a book on the shelf
// POST /api/v1/bookshelves/:id/books
func (h *BookshelfHandler) AddBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid bookshelf ID"})
		return
	}

	var req bookshelf.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gin.H{"detail": "request body must be valid JSON"})
		return
	}

	shelf, err := h.shelfService.AddBook(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		bookshelf.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, shelf)
}

// RemoveBook takes a book off the shelf; the book comes as a query
// parameter so the route carries no body.
// DELETE /api/v1/bookshelves/:id/books?book_id=...
func (h *BookshelfHandler) RemoveBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid bookshelf ID"})
		return
	}

	bookID, err := uuid.Parse(c.Query("book_id"))
	if err != nil {
		response.BadRequest(c, gin.H{"book_id": "a valid book_id query parameter is required"})
		return
	}

	if err := h.shelfService.RemoveBook(c.Request.Context(), middleware.UserID(c), id, bookID); err != nil {
		bookshelf.HandleError(c, err)
		return
	}

	response.NoContent(c)
}

// ListBooks returns the books on a shelf in the book read shape
// GET /api/v1/bookshelves/:id/books
func (h *BookshelfHandler) ListBooks(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid bookshelf ID"})
		return
	}

	p := query.ParsePagination(c, h.defaultPageSize, h.maxPageSize)

	books, count, err := h.shelfService.ListBooks(c.Request.Context(), middleware.UserID(c), id, p)
	if err != nil {
		bookshelf.HandleError(c, err)
		return
	}

	next, previous := query.PageLinks(c, p, count)
	response.Paginated(c, count, next, previous, books)
}
