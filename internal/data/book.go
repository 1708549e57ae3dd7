// Package data provides the book model and the in-memory store
// backing the bookshelf API.
package data

import "time"

// Book represents a single book record held by the BookStore.
type Book struct {
	ID         string    `json:"id"`         // 16-character random token assigned on insert
	Name       string    `json:"name"`       // Title of the book, never empty
	Year       int       `json:"year"`       // Publication year
	Author     string    `json:"author"`     // Author name
	Summary    string    `json:"summary"`    // Short description
	Publisher  string    `json:"publisher"`  // Name of the publishing company
	PageCount  int       `json:"pageCount"`  // Total number of pages
	ReadPage   int       `json:"readPage"`   // Pages read so far, never above PageCount
	Finished   bool      `json:"finished"`   // ReadPage == PageCount when the book was inserted
	Reading    bool      `json:"reading"`    // Whether the book is currently being read
	InsertedAt time.Time `json:"insertedAt"` // Timestamp when the record was created
	UpdatedAt  time.Time `json:"updatedAt"`  // Timestamp when the record was last modified
}

// BookInput holds the fields a client supplies when creating or replacing a book.
// Update replaces every one of these fields, so there is no partial variant.
type BookInput struct {
	Name      string `json:"name"`
	Year      int    `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount"`
	ReadPage  int    `json:"readPage"`
	Reading   bool   `json:"reading"`
}

// BookSummary is the reduced view returned by list queries.
type BookSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

func (b *Book) summary() BookSummary {
	return BookSummary{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}

func (b *Book) apply(input BookInput) {
	b.Name = input.Name
	b.Year = input.Year
	b.Author = input.Author
	b.Summary = input.Summary
	b.Publisher = input.Publisher
	b.PageCount = input.PageCount
	b.ReadPage = input.ReadPage
	b.Reading = input.Reading
}
