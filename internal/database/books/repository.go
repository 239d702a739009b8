// Package books provides the book inventory store.
//
// # Interface Implementation
//
//	var _ http.BookStore = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	if err := repo.Initialize(ctx); err != nil { ... }
//	id, err := repo.Insert(ctx, fields, false)
//
// # Update Policy
//
// Update on an id that does not exist inserts a partial record holding only
// that id and the single updated field, and reports OutcomeCreated. Updating
// the "id" key renames the primary key after checking the new id is free.
//
// The duplicate check in Insert and the write that follows are separate
// statements, so two concurrent inserts of the same book can both succeed.
package books

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/mrlokans/booksinventory/internal/entities"
)

// Outcome tells a regular update apart from an update that created a record.
type Outcome int

const (
	OutcomeUpdated Outcome = iota
	OutcomeCreated
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Initialize creates the books table if it is missing and seeds it when empty.
// Safe to call on every start.
func (r *Repository) Initialize(ctx context.Context) error {
	db := r.db.WithContext(ctx)

	if err := db.AutoMigrate(&entities.Book{}); err != nil {
		return fmt.Errorf("failed to create books table: %w", err)
	}

	var count int64
	if err := db.Model(&entities.Book{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count books: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed := initialBooks()
	if err := db.Create(&seed).Error; err != nil {
		return fmt.Errorf("failed to seed books: %w", err)
	}
	log.Printf("Seeded %d initial books", len(seed))
	return nil
}

// Insert validates fields and stores them as a new book, returning its id.
// A book matching an existing one on title, author, language and production
// year is rejected with ErrDuplicate unless confirmDuplicate is set.
func (r *Repository) Insert(ctx context.Context, fields Fields, confirmDuplicate bool) (int64, error) {
	book, err := fields.toBook()
	if err != nil {
		return 0, err
	}

	db := r.db.WithContext(ctx)

	var existing entities.Book
	err = db.Where("title = ? AND author = ? AND language = ? AND production_year = ?",
		book.Title, book.Author, book.Language, book.ProductionYear).
		Take(&existing).Error
	switch {
	case err == nil:
		if !confirmDuplicate {
			return 0, ErrDuplicate
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return 0, fmt.Errorf("failed to check for duplicate book: %w", err)
	}

	if err := db.Create(&book).Error; err != nil {
		return 0, fmt.Errorf("failed to insert book: %w", err)
	}
	return book.ID, nil
}

// GetAll returns every book ordered by id.
func (r *Repository) GetAll(ctx context.Context) ([]entities.Book, error) {
	books := []entities.Book{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// GetByID retrieves a single book.
func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Book, error) {
	if id <= 0 {
		return nil, invalid("id is required")
	}

	var book entities.Book
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book %d: %w", id, err)
	}
	return &book, nil
}

// Update sets a single field of the book with the given id. A nil newValue
// is rejected; an empty string is a valid value for text fields.
func (r *Repository) Update(ctx context.Context, id int64, key string, newValue *string) (Outcome, error) {
	if id <= 0 {
		return 0, invalid("ID to update is required")
	}
	if key == "" {
		return 0, invalid("Key to update is required")
	}
	updater, ok := fieldUpdaters[key]
	if !ok {
		return 0, invalid("Invalid key to update")
	}
	if newValue == nil {
		return 0, invalid(fmt.Sprintf("New value for key '%s' is required", key))
	}

	update, err := updater(*newValue)
	if err != nil {
		return 0, err
	}

	db := r.db.WithContext(ctx)

	if key == FieldID {
		var renamed entities.Book
		update.apply(&renamed)
		taken, err := r.exists(db, renamed.ID)
		if err != nil {
			return 0, err
		}
		if taken {
			return 0, ErrConflict
		}
	}

	found, err := r.exists(db, id)
	if err != nil {
		return 0, err
	}

	if !found {
		book := entities.Book{ID: id}
		update.apply(&book)
		if err := db.Create(&book).Error; err != nil {
			if isConstraintViolation(err) {
				return 0, ErrConflict
			}
			return 0, fmt.Errorf("failed to create book %d: %w", book.ID, err)
		}
		if err := r.syncIDSequence(db); err != nil {
			return 0, err
		}
		log.Printf("Update targeted missing book %d, created partial record %d", id, book.ID)
		return OutcomeCreated, nil
	}

	err = db.Model(&entities.Book{}).Where("id = ?", id).Update(update.column, update.value).Error
	if err != nil {
		if isConstraintViolation(err) {
			return 0, ErrConflict
		}
		return 0, fmt.Errorf("failed to update %s of book %d: %w", key, id, err)
	}
	if key == FieldID {
		if err := r.syncIDSequence(db); err != nil {
			return 0, err
		}
	}
	return OutcomeUpdated, nil
}

// Delete permanently removes a book.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return invalid("id is required")
	}

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Book{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete book %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) exists(db *gorm.DB, id int64) (bool, error) {
	var count int64
	if err := db.Model(&entities.Book{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to look up book %d: %w", id, err)
	}
	return count > 0, nil
}

// syncIDSequence moves the postgres id sequence past ids written explicitly
// by Update, so the next Insert does not draw a taken id. SQLite's
// AUTOINCREMENT tracks the largest id on its own.
func (r *Repository) syncIDSequence(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	err := db.Exec(`SELECT setval(pg_get_serial_sequence('books', 'id'), (SELECT MAX(id) FROM books))`).Error
	if err != nil {
		return fmt.Errorf("failed to resync book id sequence: %w", err)
	}
	return nil
}

// isConstraintViolation reports a primary key or unique collision, e.g. when
// a concurrent request took the id between check and write. Handles opened
// with TranslateError report gorm.ErrDuplicatedKey for every dialect; raw
// SQLite errors are recognised for handles opened without it.
func isConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
