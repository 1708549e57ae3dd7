// cmd/api/handlers.go
// This file contains all HTTP request handlers for the books resource.
// Each handler is a method on *applicationDependencies so it has access
// to the logger and the book store.
package main

import (
	"errors"
	"net/http"

	"github.com/aoideee/bookshelf/internal/data"
)

// createBookHandler handles POST /books.
// It reads the book fields from the JSON body, inserts the book, and responds
// with the new id and a 201 Created status.
func (app *applicationDependencies) createBookHandler(w http.ResponseWriter, r *http.Request) {
	var input data.BookInput

	// Decode the body; keys other than the eight book fields are ignored.
	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// Insert validates the input and stamps the id and timestamps.
	book, err := app.models.Books.Insert(input)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrInvalidInput):
			app.failResponse(w, r, http.StatusBadRequest, "failed to add book: "+err.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	// Only the new id is returned; clients fetch the full record separately.
	env := envelope{
		"status":  statusSuccess,
		"message": "book added successfully",
		"data":    envelope{"bookId": book.ID},
	}
	err = app.writeJSON(w, http.StatusCreated, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listBooksHandler handles GET /books.
// Optional query parameters: name (substring), reading and finished ("0" or "1").
func (app *applicationDependencies) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	filters := data.BookFilters{
		Name:     app.readOptionalString(qs, "name"),
		Reading:  app.readBoolToken(qs, "reading"),
		Finished: app.readBoolToken(qs, "finished"),
	}

	// Absent filters stay nil and match every book.
	books := app.models.Books.GetAll(filters)

	env := envelope{
		"status": statusSuccess,
		"data":   envelope{"books": books},
	}
	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showBookHandler handles GET /books/:bookId.
// Responds 404 if no book with that id exists.
func (app *applicationDependencies) showBookHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readIDParam(r)

	// Get returns a copy of the stored record.
	book, err := app.models.Books.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.failResponse(w, r, http.StatusNotFound, "book not found")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	env := envelope{
		"status": statusSuccess,
		"data":   envelope{"book": book},
	}
	err = app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// updateBookHandler handles PUT /books/:bookId.
// Every writable field is replaced by the body. Invalid input is reported
// before an unknown id.
func (app *applicationDependencies) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readIDParam(r)

	var input data.BookInput
	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// The store reports invalid input before it looks the id up.
	_, err = app.models.Books.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrInvalidInput):
			app.failResponse(w, r, http.StatusBadRequest, "failed to update book: "+err.Error())
		case errors.Is(err, data.ErrRecordNotFound):
			app.failResponse(w, r, http.StatusNotFound, "failed to update book: id not found")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	env := envelope{"status": statusSuccess, "message": "book updated successfully"}
	err = app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// deleteBookHandler handles DELETE /books/:bookId.
// Responds 404 if no book with that id exists.
func (app *applicationDependencies) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readIDParam(r)

	// Remove the book; the order of the remaining books is kept.
	err := app.models.Books.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.failResponse(w, r, http.StatusNotFound, "failed to delete book: id not found")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	env := envelope{"status": statusSuccess, "message": "book deleted successfully"}
	err = app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// healthcheckHandler handles GET /v1/healthcheck.
func (app *applicationDependencies) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"status": "available",
		"system_info": envelope{
			"environment": app.config.environment,
			"version":     appVersion,
			"books":       app.models.Books.Len(),
		},
	}
	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
