// Package apperr defines the error taxonomy shared by services and adapters.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError reports input that fails a domain rule (blank required
// field, empty agenda on commit).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an operation targeting an unknown id.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// NotFound builds a NotFoundError for the given entity and id.
func NotFound(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// RangeError reports an out-of-bounds index in agenda reordering.
type RangeError struct {
	Index  int
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Length)
}

// IOError reports a file problem: missing import source, unsupported
// extension, failed read or write.
type IOError struct {
	Msg string
	Err error
}

func (e *IOError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *IOError) Unwrap() error { return e.Err }

// IO wraps err as an IOError.
func IO(msg string, err error) error {
	return &IOError{Msg: msg, Err: err}
}

// RenderError reports a document-generation failure.
type RenderError struct {
	Msg string
	Err error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *RenderError) Unwrap() error { return e.Err }

// Render wraps err as a RenderError.
func Render(msg string, err error) error {
	return &RenderError{Msg: msg, Err: err}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}

// IsRange reports whether err is a RangeError.
func IsRange(err error) bool {
	var r *RangeError
	return errors.As(err, &r)
}
