package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	authorrepo "bookshelf-backend/internal/domains/author/repository"
	authorservice "bookshelf-backend/internal/domains/author/service"
	"bookshelf-backend/internal/domains/book/model"
	bookrepo "bookshelf-backend/internal/domains/book/repository"
	"bookshelf-backend/internal/domains/book/service"
	"bookshelf-backend/internal/session"
	"bookshelf-backend/pkg/database"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sm := scs.New()
	store := session.NewStore(sm)

	authorRepo := authorrepo.NewSessionRepository(store)
	bookRepo := bookrepo.NewSessionRepository(store)
	authorSvc := authorservice.NewAuthorService(authorRepo, bookRepo, database.NewNoopTransactor())
	bookSvc := service.NewBookService(bookRepo, authorRepo)
	h := NewBookHandler(bookSvc, authorSvc)

	r := gin.New()
	r.Use(session.LoadAndSave(sm))

	r.GET("/authorBooks", h.ShowBooksByAuthor)
	r.GET("/books", h.GetBooksByAuthor)
	r.POST("/books", h.AddBook)
	r.DELETE("/books/delete", h.DeleteBook)

	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, target string, body io.Reader, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetBooksByAuthor(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/books?authorId=1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The list endpoint answers with the bare books wrapper, not the
	// page envelope.
	var resp model.BookListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Books, 3)
	require.Equal(t, "Book Title 1", resp.Books[0].Title)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Contains(t, raw, "books")
	require.NotContains(t, raw, "success")
}

func TestGetBooksByAuthorEmpty(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/books?authorId=42", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// An unknown author yields an empty array, never null.
	require.JSONEq(t, `{"books": []}`, w.Body.String())
}

func TestGetBooksByAuthorBadID(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/books?authorId=abc", nil, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodGet, "/books", nil, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddBook(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	body := strings.NewReader(`{"title": "The Analytical Engine", "year": 1843}`)
	w := doRequest(t, r, http.MethodPost, "/books?authorId=2", body, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// Creation answers with the bare book object.
	var created model.BookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, model.BookResponse{ID: 5, Title: "The Analytical Engine", Year: 1843, AuthorID: 2}, created)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	w = doRequest(t, r, http.MethodGet, "/books?authorId=2", nil, cookies)
	var resp model.BookListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Books, 2)
}

func TestAddBookUnknownAuthor(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	body := strings.NewReader(`{"title": "Orphan", "year": 2021}`)
	w := doRequest(t, r, http.MethodPost, "/books?authorId=42", body, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error": "author not found"}`, w.Body.String())
}

func TestAddBookInvalid(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	body := strings.NewReader(`{"title": "", "year": 2021}`)
	w := doRequest(t, r, http.MethodPost, "/books?authorId=1", body, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body = strings.NewReader(`{"title": "No Year"}`)
	w = doRequest(t, r, http.MethodPost, "/books?authorId=1", body, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body = strings.NewReader(`not json`)
	w = doRequest(t, r, http.MethodPost, "/books?authorId=1", body, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteBook(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodDelete, "/books/delete?bookId=2", nil, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())

	cookies := w.Result().Cookies()

	w = doRequest(t, r, http.MethodGet, "/books?authorId=2", nil, cookies)
	require.JSONEq(t, `{"books": []}`, w.Body.String())

	// Deleting again is still 204.
	w = doRequest(t, r, http.MethodDelete, "/books/delete?bookId=2", nil, cookies)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestShowBooksByAuthor(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/authorBooks?id=1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Success bool `json:"success"`
		Data    struct {
			Author struct {
				ID        int64  `json:"id"`
				FullName  string `json:"fullName"`
				BookCount int    `json:"bookCount"`
			} `json:"author"`
			Books []model.BookResponse `json:"books"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, env.Success)
	require.Equal(t, "Sofija Dokmanovic", env.Data.Author.FullName)
	require.Equal(t, 3, env.Data.Author.BookCount)
	require.Len(t, env.Data.Books, 3)
}

func TestShowBooksByAuthorMissing(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/authorBooks?id=42", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
