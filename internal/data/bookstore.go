// internal/data/bookstore.go
package data

import (
	"slices"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// idLength is the number of characters in a generated book id.
const idLength = 16

// IDGenerator returns a fresh book identifier.
type IDGenerator func() (string, error)

// NanoID generates a 16-character URL-safe random id.
func NanoID() (string, error) {
	return gonanoid.New(idLength)
}

// Option configures a BookStore.
type Option func(*BookStore)

// WithIDGenerator replaces the default nanoid generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *BookStore) { s.newID = gen }
}

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *BookStore) { s.now = now }
}

// BookStore keeps book records in insertion order and provides methods for
// creating, reading, updating, and deleting them. It is safe for concurrent use.
type BookStore struct {
	mu    sync.RWMutex
	books []*Book
	newID IDGenerator
	now   func() time.Time
}

// NewBookStore returns an empty store.
func NewBookStore(opts ...Option) *BookStore {
	s := &BookStore{
		newID: NanoID,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Insert validates input and appends a new book to the collection.
// The returned copy carries the generated id, the derived Finished flag,
// and the InsertedAt/UpdatedAt timestamps.
func (s *BookStore) Insert(input BookInput) (*Book, error) {
	if err := validateInsert(input); err != nil {
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	book := &Book{
		ID:         id,
		Finished:   input.ReadPage == input.PageCount,
		InsertedAt: now,
		UpdatedAt:  now,
	}
	book.apply(input)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) != -1 {
		return nil, ErrInsertFailed
	}
	s.books = append(s.books, book)

	// The record must be reachable by id before we report success.
	if s.indexOf(id) == -1 {
		return nil, ErrInsertFailed
	}

	stored := *book
	return &stored, nil
}

// Get retrieves a copy of the book with the given id.
// Returns ErrRecordNotFound if no book with that id exists.
func (s *BookStore) Get(id string) (*Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i == -1 {
		return nil, ErrRecordNotFound
	}
	book := *s.books[i]
	return &book, nil
}

// GetAll returns the summaries of every book passing all active filters,
// in insertion order. The result is never nil.
func (s *BookStore) GetAll(filters BookFilters) []BookSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := []BookSummary{}
	for _, b := range s.books {
		if filters.match(b) {
			summaries = append(summaries, b.summary())
		}
	}
	return summaries
}

// Update replaces the writable fields of the book with the given id and
// refreshes UpdatedAt. Input is validated before the id is looked up, so
// invalid input is reported even for an unknown id. Finished keeps the value
// computed at insert time.
func (s *BookStore) Update(id string, input BookInput) (*Book, error) {
	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return nil, ErrRecordNotFound
	}

	book := s.books[i]
	book.apply(input)
	book.UpdatedAt = s.now().UTC()

	updated := *book
	return &updated, nil
}

// Delete removes the book with the given id, keeping the order of the rest.
// Returns ErrRecordNotFound if no matching record exists.
func (s *BookStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return ErrRecordNotFound
	}
	s.books = slices.Delete(s.books, i, i+1)
	return nil
}

// Len returns the number of stored books.
func (s *BookStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}

// indexOf returns the position of id in the collection, or -1.
// Callers must hold s.mu.
func (s *BookStore) indexOf(id string) int {
	return slices.IndexFunc(s.books, func(b *Book) bool { return b.ID == id })
}
