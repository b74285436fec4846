package errors

import (
	// Go Internal Packages
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies an error so callers can decide whether it is fatal.
type Kind uint8

const (
	Other       Kind = iota // Unclassified error.
	Invalid                 // Invalid configuration or input.
	Unavailable             // Messaging backend rejected or could not be reached.
	Internal                // Unexpected failure inside the simulator.
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Unavailable:
		return "unavailable"
	case Internal:
		return "internal"
	}
	return "other"
}

// Error is the error type used across the simulator.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// E builds an *Error of the given kind wrapping err.
func E(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain is an *Error of the given kind.
func Is(kind Kind, err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	if e.Kind == kind {
		return true
	}
	return Is(kind, e.Err)
}

// ValidationErrors collects per-field validation messages.
type ValidationErrors struct {
	fields map[string][]string
}

func ValidationErrs() *ValidationErrors {
	return &ValidationErrors{fields: make(map[string][]string)}
}

// Add records msg against field.
func (ve *ValidationErrors) Add(field, msg string) {
	ve.fields[field] = append(ve.fields[field], msg)
}

// Err returns nil when nothing was added, otherwise an error listing every field in sorted order.
func (ve *ValidationErrors) Err() error {
	if len(ve.fields) == 0 {
		return nil
	}
	return ve
}

// Fields returns the field names that failed validation, sorted.
func (ve *ValidationErrors) Fields() []string {
	keys := make([]string, 0, len(ve.fields))
	for k := range ve.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (ve *ValidationErrors) Error() string {
	parts := make([]string, 0, len(ve.fields))
	for _, field := range ve.Fields() {
		parts = append(parts, fmt.Sprintf("%s %s", field, strings.Join(ve.fields[field], ", ")))
	}
	return strings.Join(parts, "; ")
}
