// Package validator provides a Validator type for running ordered guard
// checks and reporting the first one that failed.
package validator

// Failure is a single failed check.
type Failure struct {
	Key     string
	Message string
}

// Validator records failed checks in the order they were made.
// A Validator with no failures is considered valid.
type Validator struct {
	Failures []Failure
}

// New creates and returns a fresh, empty Validator.
func New() *Validator {
	return &Validator{}
}

// Valid returns true if no check has failed.
func (v *Validator) Valid() bool {
	return len(v.Failures) == 0
}

// AddError records key as failing with the given message.
// If key already has a failure it is not recorded again, so the first
// failure for a field is always the one that is reported.
func (v *Validator) AddError(key, message string) {
	for _, f := range v.Failures {
		if f.Key == key {
			return
		}
	}
	v.Failures = append(v.Failures, Failure{Key: key, Message: message})
}

// Check adds a failure for key with message only when ok is false.
// Use this as a single-line guard:
//
//	v.Check(input.Name != "", "name", "name required")
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// First returns the earliest recorded failure and true, or a zero
// Failure and false when the validator is valid.
func (v *Validator) First() (Failure, bool) {
	if v.Valid() {
		return Failure{}, false
	}
	return v.Failures[0], true
}

// In returns true if value is present in the list slice.
func In(value string, list ...string) bool {
	for _, item := range list {
		if value == item {
			return true
		}
	}
	return false
}
