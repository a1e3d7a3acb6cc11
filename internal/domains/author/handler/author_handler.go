package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookshelf-backend/internal/domains/author/model"
	"bookshelf-backend/internal/domains/author/service"
	"bookshelf-backend/internal/shared/response"
)

// AuthorHandler serves the author pages. View rendering is out of scope;
// each page endpoint returns its view model as a JSON envelope, form posts
// answer with a redirect on success and field errors on validation failure.
type AuthorHandler struct {
	service service.Service
}

func NewAuthorHandler(svc service.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// Index handles GET / and lists all authors with their book counts.
func (h *AuthorHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	authors, err := h.service.GetAllAuthors(ctx)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	// Book counts are joined here, per author, keeping the repository
	// interfaces storage-symmetric.
	items := make([]model.AuthorResponse, 0, len(authors))
	for _, a := range authors {
		count, err := h.service.GetBookCountByAuthorID(ctx, a.ID)
		if err != nil {
			response.InternalServerError(c, err.Error())
			return
		}
		items = append(items, a.ToResponse(count))
	}

	response.Success(c, http.StatusOK, items)
}

// CreateForm handles GET /createAuthor.
func (h *AuthorHandler) CreateForm(c *gin.Context) {
	response.Success(c, http.StatusOK, model.AuthorForm{})
}

// Create handles POST /createAuthor.
func (h *AuthorHandler) Create(c *gin.Context) {
	var form model.AuthorForm
	if err := c.ShouldBind(&form); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	if err := h.service.CreateAuthor(c.Request.Context(), form.FirstName, form.LastName); err != nil {
		h.writeError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// EditForm handles GET /editAuthor?id=.
func (h *AuthorHandler) EditForm(c *gin.Context) {
	id, ok := h.authorID(c)
	if !ok {
		return
	}

	a, err := h.service.GetAuthorByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a)
}

// Update handles POST /editAuthor?id=.
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := h.authorID(c)
	if !ok {
		return
	}

	var form model.AuthorForm
	if err := c.ShouldBind(&form); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	if err := h.service.UpdateAuthor(c.Request.Context(), id, form.FirstName, form.LastName); err != nil {
		h.writeError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// DeleteForm handles GET /deleteAuthor?id= and returns the confirm model.
func (h *AuthorHandler) DeleteForm(c *gin.Context) {
	id, ok := h.authorID(c)
	if !ok {
		return
	}

	a, err := h.service.GetAuthorByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a)
}

// Delete handles POST /deleteAuthor?id= and cascades to the author's books.
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := h.authorID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteAuthor(c.Request.Context(), id); err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthorHandler) authorID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", "invalid author id")
		return 0, false
	}
	return id, true
}

func (h *AuthorHandler) writeError(c *gin.Context, err error) {
	switch status := model.ToHTTPStatus(err); status {
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	case http.StatusUnprocessableEntity:
		response.ErrorWithDetails(c, status, model.ToErrorCode(err), "invalid author data", err)
	default:
		response.InternalServerError(c, err.Error())
	}
}
