package books

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mrlokans/booksinventory/internal/entities"
)

// Names of the book fields accepted by Update.
const (
	FieldID             = "id"
	FieldTitle          = "title"
	FieldAuthor         = "author"
	FieldGenre          = "genre"
	FieldShelf          = "shelf"
	FieldProductionYear = "production_year"
	FieldLanguage       = "language"
)

const (
	msgMissingFields = "At least one of the required fields is missing"
	msgNegativeYear  = "Production year must be a positive integer"
	msgNegativeShelf = "Shelf must be a non-negative integer"
)

var validate = validator.New()

// Fields holds the raw, unparsed values of a book submitted for insertion.
// A nil pointer means the field was not supplied.
type Fields struct {
	Title          *string
	Author         *string
	Genre          *string
	Shelf          *string
	ProductionYear *string
	Language       *string
}

func (f Fields) empty() bool {
	return f.Title == nil && f.Author == nil && f.Genre == nil &&
		f.Shelf == nil && f.ProductionYear == nil && f.Language == nil
}

// toBook normalizes and validates the submitted fields.
func (f Fields) toBook() (entities.Book, error) {
	if f.empty() {
		return entities.Book{}, invalid(msgMissingFields)
	}

	shelf, err := parseCount(FieldShelf, f.Shelf)
	if err != nil {
		return entities.Book{}, err
	}
	year, err := parseCount(FieldProductionYear, f.ProductionYear)
	if err != nil {
		return entities.Book{}, err
	}

	book := entities.Book{
		Title:          valueOf(f.Title),
		Author:         valueOf(f.Author),
		Genre:          valueOf(f.Genre),
		Shelf:          shelf,
		ProductionYear: year,
		Language:       valueOf(f.Language),
	}
	if err := checkRanges(book); err != nil {
		return entities.Book{}, err
	}
	return book, nil
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// parseCount parses an optional integer field. Absent and blank values are 0.
func parseCount(field string, raw *string) (int64, error) {
	if raw == nil {
		return 0, nil
	}
	return parseInteger(field, *raw)
}

func parseInteger(field, raw string) (int64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, invalid(fmt.Sprintf("Invalid data type for %s", field))
	}
	return n, nil
}

// checkRanges reports a negative production year before a negative shelf.
func checkRanges(book entities.Book) error {
	err := validate.Struct(book)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var shelfErr error
	for _, fe := range verrs {
		switch fe.Field() {
		case "ProductionYear":
			return invalid(msgNegativeYear)
		case "Shelf":
			shelfErr = invalid(msgNegativeShelf)
		}
	}
	if shelfErr != nil {
		return shelfErr
	}
	return err
}

// columnUpdate is a single column assignment produced from a validated value.
type columnUpdate struct {
	column string
	value  any
	apply  func(*entities.Book)
}

type fieldUpdater func(raw string) (columnUpdate, error)

// fieldUpdaters is the fixed set of columns Update may touch. Column names
// come from this table only, never from the caller.
var fieldUpdaters = map[string]fieldUpdater{
	FieldTitle:          textColumn("title", func(b *entities.Book, v string) { b.Title = v }),
	FieldAuthor:         textColumn("author", func(b *entities.Book, v string) { b.Author = v }),
	FieldGenre:          textColumn("genre", func(b *entities.Book, v string) { b.Genre = v }),
	FieldLanguage:       textColumn("language", func(b *entities.Book, v string) { b.Language = v }),
	FieldShelf:          countColumn(FieldShelf, "shelf", msgNegativeShelf, func(b *entities.Book, v int64) { b.Shelf = v }),
	FieldProductionYear: countColumn(FieldProductionYear, "production_year", msgNegativeYear, func(b *entities.Book, v int64) { b.ProductionYear = v }),
	FieldID:             idColumn,
}

func textColumn(column string, set func(*entities.Book, string)) fieldUpdater {
	return func(raw string) (columnUpdate, error) {
		return columnUpdate{
			column: column,
			value:  raw,
			apply:  func(b *entities.Book) { set(b, raw) },
		}, nil
	}
}

func countColumn(field, column, negativeMsg string, set func(*entities.Book, int64)) fieldUpdater {
	return func(raw string) (columnUpdate, error) {
		n, err := parseInteger(field, raw)
		if err != nil {
			return columnUpdate{}, err
		}
		if validate.Var(n, "gte=0") != nil {
			return columnUpdate{}, invalid(negativeMsg)
		}
		return columnUpdate{
			column: column,
			value:  n,
			apply:  func(b *entities.Book) { set(b, n) },
		}, nil
	}
}

func idColumn(raw string) (columnUpdate, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return columnUpdate{}, invalid("Invalid data type for id")
	}
	if id <= 0 {
		return columnUpdate{}, invalid("id must be a positive integer")
	}
	return columnUpdate{
		column: "id",
		value:  id,
		apply:  func(b *entities.Book) { b.ID = id },
	}, nil
}
