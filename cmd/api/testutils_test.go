package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aoideee/bookshelf/internal/data"
)

func newTestApplication(t *testing.T) *applicationDependencies {
	t.Helper()

	var cfg serverConfig
	cfg.environment = "testing"

	return &applicationDependencies{
		config: cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		models: data.NewModels(data.NewBookStore()),
	}
}

type response struct {
	Status     string         `json:"status"`
	Message    string         `json:"message"`
	Data       map[string]any `json:"data"`
	SystemInfo map[string]any `json:"system_info"`
	code       int
	header     http.Header
}

func do(t *testing.T, h http.Handler, method, target, body string) response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var res response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res), rr.Body.String())
	res.code = rr.Code
	res.header = rr.Header()
	return res
}

func createBook(t *testing.T, h http.Handler, body string) string {
	t.Helper()

	res := do(t, h, http.MethodPost, "/books", body)
	require.Equal(t, http.StatusCreated, res.code, res.Message)
	id, ok := res.Data["bookId"].(string)
	require.True(t, ok)
	return id
}
