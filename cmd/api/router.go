package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf-backend/internal/session"
	"bookshelf-backend/internal/shared/middleware"
	"bookshelf-backend/pkg/container"
)

// SetupRouter builds the dispatch table: exact paths, method-scoped, no
// path parameters beyond the query string ids. Unmatched paths fall
// through to gin's 404.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	// The session backend needs the per-request session scope loaded
	// before any repository touches it.
	if c.Sessions != nil {
		router.Use(session.LoadAndSave(c.Sessions))
	}

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	})

	// Author pages
	router.GET("/", c.AuthorHandler.Index)
	router.GET("/createAuthor", c.AuthorHandler.CreateForm)
	router.POST("/createAuthor", c.AuthorHandler.Create)
	router.GET("/editAuthor", c.AuthorHandler.EditForm)
	router.POST("/editAuthor", c.AuthorHandler.Update)
	router.GET("/deleteAuthor", c.AuthorHandler.DeleteForm)
	router.POST("/deleteAuthor", c.AuthorHandler.Delete)

	// Books page + JSON endpoints
	router.GET("/authorBooks", c.BookHandler.ShowBooksByAuthor)
	router.GET("/books", c.BookHandler.GetBooksByAuthor)
	router.POST("/books", c.BookHandler.AddBook)
	router.DELETE("/books/delete", c.BookHandler.DeleteBook)

	return router
}
