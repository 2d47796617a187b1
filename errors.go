package jsontransform

import (
	"errors"
	"fmt"
)

// Sentinel errors recorded against a path during a transformation. Match
// them with errors.Is on Result entries.
var (
	// ErrInvalidCode rejects a registration whose code is not one or more
	// lowercase letters.
	ErrInvalidCode = errors.New("invalid transformation code")

	// ErrPathNotFound marks a command whose target or source path does not
	// exist in the document it addresses.
	ErrPathNotFound = errors.New("path not found")

	// ErrShapeMismatch marks a command applied to a value of the wrong kind,
	// such as iterating a scalar or removing the document root.
	ErrShapeMismatch = errors.New("shape mismatch")
)

// ParseError reports that one of the textual inputs to TransformString was
// not valid JSON. Input names the offending document, "source" or
// "transformation".
type ParseError struct {
	Input string
	Err   error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s document: %v", e.Input, e.Err)
}

// Unwrap exposes the underlying parser error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
