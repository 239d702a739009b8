// Package interfaces documents the core abstractions used throughout the application.
//
// # Data Access Interfaces
//
//   - BookStore: validated book CRUD (internal/http/stores.go),
//     implemented by books.Repository (internal/database/books)
//   - Pinger: store connectivity for the health endpoint (internal/http/stores.go),
//     implemented by database.Database
//
// # Adding a Store Backend
//
// A different backend only has to satisfy BookStore:
//
//	type Repository struct { db *gorm.DB }
//
//	func (r *Repository) Insert(ctx context.Context, fields books.Fields, confirmDuplicate bool) (int64, error)
//	func (r *Repository) GetAll(ctx context.Context) ([]entities.Book, error)
//	func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Book, error)
//	func (r *Repository) Update(ctx context.Context, id int64, key string, newValue *string) (books.Outcome, error)
//	func (r *Repository) Delete(ctx context.Context, id int64) error
//
// Errors must use the books package sentinels (ErrNotFound, ErrDuplicate,
// ErrConflict) and *books.ValidationError so the HTTP layer can map them to
// status codes.
//
// # Compile-Time Interface Checks
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces
