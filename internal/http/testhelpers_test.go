package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/booksinventory/internal/database"
	"github.com/mrlokans/booksinventory/internal/database/books"
	"github.com/mrlokans/booksinventory/internal/entities"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupBooksTestStore opens a fresh database with an initialized, empty books table.
func setupBooksTestStore(t *testing.T) (*database.Database, *books.Repository) {
	t.Helper()

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "books.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := books.NewRepository(db.DB)
	require.NoError(t, repo.Initialize(context.Background()))
	require.NoError(t, db.DB.Where("1 = 1").Delete(&entities.Book{}).Error)
	return db, repo
}

func setupBooksRouter(t *testing.T) (*gin.Engine, *books.Repository) {
	t.Helper()
	db, repo := setupBooksTestStore(t)
	router := NewRouter(RouterConfig{BookStore: repo, Database: db, Version: "test"})
	return router, repo
}

func doRequest(router *gin.Engine, method, path string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req, _ = http.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
