// cmd/api/helpers.go
// This file contains general-purpose helper functions for the application.
// Error-response helpers live in errors.go; only non-error utilities are here.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"

	"github.com/aoideee/bookshelf/internal/data"
)

// json mirrors encoding/json behaviour (field tags, HTML escaping, sorted map keys).
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// envelope is the JSON object wrapping API responses and nested payloads,
// e.g. {"status": "success", "data": {"book": {...}}}.
type envelope map[string]any

// Response statuses carried in the envelope.
const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

// readIDParam extracts the ":bookId" URL parameter added by httprouter.
// Any value is accepted; unknown ids are reported by the store as not found.
func (app *applicationDependencies) readIDParam(r *http.Request) string {
	params := httprouter.ParamsFromContext(r.Context())
	return params.ByName("bookId")
}

// readOptionalString returns a pointer to the query parameter value when key
// is present in qs, even if empty, and nil when it is absent.
func (app *applicationDependencies) readOptionalString(qs url.Values, key string) *string {
	if !qs.Has(key) {
		return nil
	}
	s := qs.Get(key)
	return &s
}

// readBoolToken reads a "0"/"1" query parameter. Absent or unrecognised
// values yield nil.
func (app *applicationDependencies) readBoolToken(qs url.Values, key string) *bool {
	return data.ParseBoolToken(qs.Get(key))
}

// writeJSON marshals data to indented JSON, applies any custom headers,
// sets Content-Type to "application/json", writes the status code, and
// streams the body to the client.
func (app *applicationDependencies) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)
	return nil
}

// maxBodyBytes caps request bodies at 1 MB.
const maxBodyBytes = 1_048_576

// readJSON decodes a single JSON value from the request body into dst.
// It enforces a 1 MB size limit, ignores keys dst does not declare, and
// ensures the body contains exactly one JSON value (trailing whitespace is
// allowed). Decode failures are reported with client-safe messages.
func (app *applicationDependencies) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesError):
			return errors.New("body must not be larger than 1MB")
		default:
			return err
		}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return errors.New("body must not be empty")
	}

	// Syntax is checked up front so every later decode failure is a type mismatch.
	if !json.Valid(body) {
		return errors.New("body contains badly-formed JSON")
	}

	src := bytes.NewReader(body)
	dec := json.NewDecoder(src)

	err = dec.Decode(dst)
	if err != nil {
		return mismatchedField(body, dst)
	}

	// Whatever the decoder has not consumed must be whitespace.
	rest, err := io.ReadAll(io.MultiReader(dec.Buffered(), src))
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(rest)) != 0 {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

// mismatchedField finds the first top-level key of body, in sorted order,
// whose value cannot be decoded into the matching field of dst.
func mismatchedField(body []byte, dst any) error {
	var fields map[string]jsoniter.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return errors.New("body contains incorrect JSON type")
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	target := reflect.TypeOf(dst).Elem()
	for _, k := range keys {
		single, err := json.Marshal(map[string]jsoniter.RawMessage{k: fields[k]})
		if err != nil {
			return err
		}
		if err := json.Unmarshal(single, reflect.New(target).Interface()); err != nil {
			return fmt.Errorf("body contains incorrect JSON type for field %q", k)
		}
	}

	return errors.New("body contains incorrect JSON type")
}
