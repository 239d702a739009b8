package http

import (
	"context"

	"github.com/mrlokans/booksinventory/internal/database/books"
	"github.com/mrlokans/booksinventory/internal/entities"
)

// BookStore provides validated access to the book inventory.
type BookStore interface {
	Insert(ctx context.Context, fields books.Fields, confirmDuplicate bool) (int64, error)
	GetAll(ctx context.Context) ([]entities.Book, error)
	GetByID(ctx context.Context, id int64) (*entities.Book, error)
	Update(ctx context.Context, id int64, key string, newValue *string) (books.Outcome, error)
	Delete(ctx context.Context, id int64) error
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
