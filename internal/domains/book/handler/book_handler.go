package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authormodel "bookshelf-backend/internal/domains/author/model"
	authorservice "bookshelf-backend/internal/domains/author/service"
	"bookshelf-backend/internal/domains/book/model"
	"bookshelf-backend/internal/domains/book/service"
	"bookshelf-backend/internal/shared/response"
)

// BookHandler serves the books-by-author page and the book JSON endpoints.
// The JSON endpoints keep the original wire contract of the client script:
// {"books": [...]} on list, the bare book object on create, empty 204 on
// delete.
type BookHandler struct {
	books   service.Service
	authors authorservice.Service
}

func NewBookHandler(books service.Service, authors authorservice.Service) *BookHandler {
	return &BookHandler{books: books, authors: authors}
}

// ShowBooksByAuthor handles GET /authorBooks?id= and returns the page view
// model: the author plus their books.
func (h *BookHandler) ShowBooksByAuthor(c *gin.Context) {
	id, ok := queryID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	a, err := h.authors.GetAuthorByID(ctx, id)
	if err != nil {
		if errors.Is(err, authormodel.ErrAuthorNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	books, err := h.books.GetBooksByAuthorID(ctx, id)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"author": a.ToResponse(len(books)),
		"books":  model.ToListResponse(books).Books,
	})
}

// GetBooksByAuthor handles GET /books?authorId=.
func (h *BookHandler) GetBooksByAuthor(c *gin.Context) {
	authorID, ok := queryID(c, "authorId")
	if !ok {
		return
	}

	books, err := h.books.GetBooksByAuthorID(c.Request.Context(), authorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.ToListResponse(books))
}

// AddBook handles POST /books?authorId= with body {title, year}.
func (h *BookHandler) AddBook(c *gin.Context) {
	authorID, ok := queryID(c, "authorId")
	if !ok {
		return
	}

	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.books.CreateBook(c.Request.Context(), req.Title, req.Year, authorID)
	if err != nil {
		if errors.Is(err, authormodel.ErrAuthorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "author not found"})
			return
		}
		c.JSON(model.ToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created.ToResponse())
}

// DeleteBook handles DELETE /books/delete?bookId=, responding 204 whether
// or not the book existed.
func (h *BookHandler) DeleteBook(c *gin.Context) {
	bookID, ok := queryID(c, "bookId")
	if !ok {
		return
	}

	if err := h.books.DeleteBook(c.Request.Context(), bookID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func queryID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
