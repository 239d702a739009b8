package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(SecurityHeadersMiddleware())

	health := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.BookStore)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Books API endpoints
	router.GET("/books/getBooks", booksController.GetAllBooks)
	router.GET("/books/getBook/:id", booksController.GetBook)
	router.POST("/books/insert", booksController.InsertBook)
	router.PUT("/books/update", booksController.UpdateBook)
	router.POST("/books/update", booksController.UpdateBook)
	router.DELETE("/books/delete/:id", booksController.DeleteBook)

	return router
}
