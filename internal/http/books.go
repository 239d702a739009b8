package http

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/booksinventory/internal/database/books"
)

// BooksController serves the /books endpoints on top of a BookStore.
type BooksController struct {
	store BookStore
}

// NewBooksController creates a controller backed by store.
func NewBooksController(store BookStore) *BooksController {
	return &BooksController{
		store: store,
	}
}

// insertRequest is the form submitted to POST /books/insert.
// Nil fields were not part of the request.
type insertRequest struct {
	Title        *string `form:"title" json:"title"`
	Author       *string `form:"author" json:"author"`
	Genre        *string `form:"genre" json:"genre"`
	Shelf        *string `form:"shelf" json:"shelf"`
	ProdYear     *string `form:"prod_year" json:"prod_year"`
	Language     *string `form:"language" json:"language"`
	Confirmation string  `form:"confirmation" json:"confirmation"`
}

// updateRequest is the form submitted to PUT/POST /books/update.
type updateRequest struct {
	ID          *string `form:"id" json:"id"`
	KeyToUpdate string  `form:"key_to_update" json:"key_to_update"`
	New         *string `form:"new" json:"new"`
}

// GetAllBooks lists every book.
// GET /books/getBooks
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	all, err := controller.store.GetAll(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, all)
}

// GetBook returns a single book.
// GET /books/getBook/:id
func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// InsertBook adds a book, refusing unconfirmed duplicates.
// POST /books/insert
func (controller *BooksController) InsertBook(c *gin.Context) {
	var req insertRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	fields := books.Fields{
		Title:          req.Title,
		Author:         req.Author,
		Genre:          req.Genre,
		Shelf:          req.Shelf,
		ProductionYear: req.ProdYear,
		Language:       req.Language,
	}
	confirmed := isConfirmed(req.Confirmation) || isConfirmed(c.Query("confirmation"))

	id, err := controller.store.Insert(c.Request.Context(), fields, confirmed)
	if err != nil {
		respondStoreError(c, err, "insert book")
		return
	}

	log.Printf("Inserted book %d", id)
	respondCreated(c, "Book inserted successfully")
}

// UpdateBook changes one field of a book, creating it when the id is unknown.
// PUT/POST /books/update
func (controller *BooksController) UpdateBook(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	id, ok := parseFormID(c, req.ID, "id", "ID to update is required")
	if !ok {
		return
	}

	outcome, err := controller.store.Update(c.Request.Context(), id, req.KeyToUpdate, req.New)
	if err != nil {
		respondStoreError(c, err, "update book")
		return
	}

	if outcome == books.OutcomeCreated {
		respondSuccess(c, "book added successfully, please fill in the missing values later manually")
		return
	}
	respondSuccess(c, fmt.Sprintf("Book %s updated successfully", req.KeyToUpdate))
}

// DeleteBook permanently removes a book.
// DELETE /books/delete/:id
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "delete book")
		return
	}

	log.Printf("Deleted book %d", id)
	respondCreated(c, "Book deleted successfully")
}
