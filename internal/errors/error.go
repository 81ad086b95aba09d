package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryCLI      Category = "cli"
	CategoryConfig   Category = "config"
	CategoryRegistry Category = "registry"
	CategoryIO       Category = "io"
)

// CrosskitError is a structured error with suggestions and documentation.
type CrosskitError struct {
	// Code is a unique error identifier (e.g., "E201").
	Code string

	// Category is the error type (cli, config, registry, io).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *CrosskitError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *CrosskitError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *CrosskitError) WithSuggestion(s string) *CrosskitError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *CrosskitError) WithDetail(d string) *CrosskitError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *CrosskitError) Wrap(err error) *CrosskitError {
	e.Wrapped = err
	if e.Detail == "" && err != nil {
		e.Detail = err.Error()
	}
	return e
}

// New creates a CrosskitError from a registered error code.
func New(code string) *CrosskitError {
	template, ok := registry[code]
	if !ok {
		return &CrosskitError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &CrosskitError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new CrosskitError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *CrosskitError {
	return &CrosskitError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a CrosskitError.
func FromError(err error, code string) *CrosskitError {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*CrosskitError); ok {
		return ce
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err is a CrosskitError carrying the given code.
func HasCode(err error, code string) bool {
	ce, ok := err.(*CrosskitError)
	return ok && ce.Code == code
}
