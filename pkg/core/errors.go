package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is checks. Only two error kinds exist: something the
// caller named does not exist, or the request itself is malformed. Both are
// detected before any write.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// NotFoundKind names what was missing.
type NotFoundKind string

const (
	KindDocument NotFoundKind = "document"
	KindSection  NotFoundKind = "section"
	KindItem     NotFoundKind = "item"
)

// NotFoundError reports a missing document, section, or item. For sections,
// Available carries the document's current section names to aid correction.
type NotFoundError struct {
	Kind      NotFoundKind
	ID        string
	Available []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s %q not found", e.Kind, e.ID)
	if len(e.Available) > 0 {
		msg += fmt.Sprintf(" (available sections: %s)", strings.Join(e.Available, ", "))
	}
	return msg
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ValidationError reports a missing required argument or an invalid flag
// value, with the offending field embedded in the message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
