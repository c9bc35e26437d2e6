package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"booktracker-backend/internal/domains/book"
	"booktracker-backend/internal/shared/query"
	"booktracker-backend/internal/shared/response"
)

type BookHandler struct {
	bookService     book.Service
	defaultPageSize int
	maxPageSize     int
}

func NewBookHandler(bookService book.Service, defaultPageSize, maxPageSize int) *BookHandler {
	return &BookHandler{
		bookService:     bookService,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// List returns the catalog, filtered and ordered per query params
// GET /api/v1/books
func (h *BookHandler) List(c *gin.Context) {
	f := parseFilter(c)
	f.Pagination = query.ParsePagination(c, h.defaultPageSize, h.maxPageSize)

	books, count, err := h.bookService.List(c.Request.Context(), f)
	if err != nil {
		book.HandleError(c, err)
		return
	}

	next, previous := query.PageLinks(c, f.Pagination, count)
	response.Paginated(c, count, next, previous, books)
}

// Get returns a single book in the read shape
// GET /api/v1/books/:id
func (h *BookHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid book ID"})
		return
	}

	b, err := h.bookService.Get(c.Request.Context(), id)
	if err != nil {
		book.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, b)
}

// Create adds a book to the catalog
// POST /api/v1/books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gin.H{"detail": "request body must be valid JSON"})
		return
	}

	b, err := h.bookService.Create(c.Request.Context(), req)
	if err != nil {
		book.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, b)
}

// Update replaces a book's fields and its author/genre links
// PUT /api/v1/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid book ID"})
		return
	}

	var req book.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, gin.H{"detail": "request body must be valid JSON"})
		return
	}

	b, err := h.bookService.Update(c.Request.Context(), id, req)
	if err != nil {
		book.HandleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, b)
}

// Delete removes a book and, through cascades, everything hanging
// off it
// DELETE /api/v1/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, gin.H{"detail": "invalid book ID"})
		return
	}

	if err := h.bookService.Delete(c.Request.Context(), id); err != nil {
		book.HandleError(c, err)
		return
	}

	response.NoContent(c)
}

func parseFilter(c *gin.Context) *book.Filter {
	f := &book.Filter{
		Title:           c.Query("title"),
		Genres:          c.Query("genres"),
		Authors:         c.Query("authors"),
		Publisher:       c.Query("publisher"),
		ISBN:            c.Query("isbn"),
		PublicationYear: query.Int(c, "publication_year"),
		MinPages:        query.Int(c, "min_pages"),
		MaxPages:        query.Int(c, "max_pages"),
		Search:          c.Query("search"),
	}
	f.OrderBy = book.BookSort.OrderBy(c.Query("ordering"))
	return f
}
