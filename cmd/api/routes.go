// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured router wrapped
// in the middleware chain.
//
// Middleware chain (outermost → innermost):
//
//	recoverPanic → logRequests → rateLimit → router
//
// Current endpoints:
//
//	POST   /books            – add a new book
//	GET    /books            – list book summaries, filtered by name, reading, finished
//	GET    /books/:bookId    – retrieve a single book
//	PUT    /books/:bookId    – replace the writable fields of a book
//	DELETE /books/:bookId    – delete a book
//	GET    /v1/healthcheck   – report service status
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthcheckHandler)

	router.HandlerFunc(http.MethodPost, "/books", app.createBookHandler)
	router.HandlerFunc(http.MethodGet, "/books", app.listBooksHandler)
	router.HandlerFunc(http.MethodGet, "/books/:bookId", app.showBookHandler)
	router.HandlerFunc(http.MethodPut, "/books/:bookId", app.updateBookHandler)
	router.HandlerFunc(http.MethodDelete, "/books/:bookId", app.deleteBookHandler)

	return app.recoverPanic(app.logRequests(app.rateLimit(router)))
}
