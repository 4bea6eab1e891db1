package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrParse        = errors.New("malformed adjacency line")
	ErrNodeNotFound = errors.New("node not found")
	ErrEmptyGraph   = errors.New("graph has no nodes")
)

// GraphError provides structured error information for graph operations.
type GraphError struct {
	Op    string // Operation that failed (e.g., "Build", "Neighbors")
	Label string // Node label (if applicable)
	Line  int    // 1-based input line number (for parse errors)
	Cause error  // Underlying error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s line %d: %v", e.Op, e.Line, e.Cause)
	}
	if e.Label != "" {
		return fmt.Sprintf("%s node %q: %v", e.Op, e.Label, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// ErrorBuilder provides a fluent interface for building GraphErrors.
type ErrorBuilder struct {
	err GraphError
}

// NewError creates a new error builder with the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: GraphError{Op: op}}
}

// Label sets the node label the error refers to.
func (b *ErrorBuilder) Label(label string) *ErrorBuilder {
	b.err.Label = label
	return b
}

// Line sets the input line number for parse errors.
func (b *ErrorBuilder) Line(n int) *ErrorBuilder {
	b.err.Line = n
	return b
}

// Cause sets the underlying error cause.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Err returns the error as an error interface.
func (b *ErrorBuilder) Err() error {
	return &b.err
}

// Convenience constructors for common error patterns

func parseError(line int, cause error) error {
	return NewError("parse").Line(line).Cause(cause).Err()
}

func notFoundError(op, label string) error {
	return NewError(op).Label(label).Cause(ErrNodeNotFound).Err()
}

// IsNotFound reports whether err is a node lookup failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNodeNotFound)
}

// IsParse reports whether err is a parse failure.
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}
