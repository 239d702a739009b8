package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/booksinventory/internal/database/books"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is a standard success response with a message.
type SuccessResponse struct {
	Message string `json:"message"`
}

const (
	msgBookNotFound = "Book not found"
	msgDuplicate    = "Book already exists in the database. Please confirm to proceed."
	msgIDConflict   = "id already exists, choose a different one"
)

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondError sends an error response with the given status code.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// respondStoreError maps a book store error to its status code.
func respondStoreError(c *gin.Context, err error, context string) {
	var verr *books.ValidationError
	switch {
	case errors.As(err, &verr):
		respondBadRequest(c, verr.Message)
	case errors.Is(err, books.ErrDuplicate):
		respondBadRequest(c, msgDuplicate)
	case errors.Is(err, books.ErrConflict):
		respondBadRequest(c, msgIDConflict)
	case errors.Is(err, books.ErrNotFound):
		respondError(c, http.StatusNotFound, msgBookNotFound)
	default:
		respondInternalError(c, err, context)
	}
}

// --- Success Response Helpers ---

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// respondCreated sends a 201 Created response with a message.
func respondCreated(c *gin.Context, message string) {
	c.JSON(http.StatusCreated, SuccessResponse{Message: message})
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates a non-negative integer ID from URL parameters.
// Zero is passed through so the store can report it as a missing id.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (int64, bool) {
	return parseID(c, c.Param(paramName), paramName)
}

// parseFormID is parseIDParam for an optional form value.
// A missing or blank value is reported with missingMessage.
func parseFormID(c *gin.Context, raw *string, paramName, missingMessage string) (int64, bool) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		respondBadRequest(c, missingMessage)
		return 0, false
	}
	return parseID(c, strings.TrimSpace(*raw), paramName)
}

func parseID(c *gin.Context, idStr, paramName string) (int64, bool) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 0 {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return id, true
}

// isConfirmed interprets a duplicate confirmation flag.
func isConfirmed(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true":
		return true
	default:
		return false
	}
}
