// internal/data/models.go
package data

import (
	"errors"
	"strings"

	"github.com/aoideee/bookshelf/internal/validator"
)

// Models is a top-level container that groups all model types together.
// It is passed around the application via applicationDependencies so every
// handler reaches the store through the same handle.
type Models struct {
	Books *BookStore // In-memory collection of book records
}

// NewModels constructs a Models value around the given store.
// Call this once during application startup and store the result in applicationDependencies.
func NewModels(books *BookStore) Models {
	return Models{
		Books: books,
	}
}

var (
	// ErrRecordNotFound is returned when no book has the requested id.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidInput is matched by every *ValidationError.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsertFailed is returned when a freshly inserted book cannot be found
	// in the collection afterwards.
	ErrInsertFailed = errors.New("book could not be inserted")
)

// ValidationError describes the first input rule a write violated.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is reports ValidationError as a kind of ErrInvalidInput.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// Boolean query tokens accepted by the list filters.
const (
	tokenFalse = "0"
	tokenTrue  = "1"
)

// ParseBoolToken maps "1" to true and "0" to false. Any other value,
// including the empty string, yields nil so the filter stays inactive.
func ParseBoolToken(s string) *bool {
	if !validator.In(s, tokenFalse, tokenTrue) {
		return nil
	}
	b := s == tokenTrue
	return &b
}

// BookFilters holds the optional list filters extracted from URL query strings.
// A nil field means the filter is not applied.
type BookFilters struct {
	Name     *string // Case-insensitive substring of the book name
	Reading  *bool   // Exact match on Reading
	Finished *bool   // Exact match on Finished
}

func (f BookFilters) match(b *Book) bool {
	if f.Name != nil {
		needle := strings.ToLower(strings.TrimSpace(*f.Name))
		if !strings.Contains(strings.ToLower(b.Name), needle) {
			return false
		}
	}
	if f.Reading != nil && b.Reading != *f.Reading {
		return false
	}
	if f.Finished != nil && b.Finished != *f.Finished {
		return false
	}
	return true
}

// validateBook runs the input guards in the given order and returns the
// first failure as a *ValidationError.
func validateBook(checks ...func(*validator.Validator, BookInput)) func(BookInput) error {
	return func(input BookInput) error {
		v := validator.New()
		for _, check := range checks {
			check(v, input)
			if f, failed := v.First(); failed {
				return &ValidationError{Field: f.Key, Message: f.Message}
			}
		}
		return nil
	}
}

func checkName(v *validator.Validator, input BookInput) {
	v.Check(input.Name != "", "name", "name required")
}

func checkReadPage(v *validator.Validator, input BookInput) {
	v.Check(input.ReadPage <= input.PageCount, "readPage", "readPage exceeds pageCount")
}

var (
	validateInsert = validateBook(checkName, checkReadPage)
	validateUpdate = validateBook(checkReadPage, checkName)
)
