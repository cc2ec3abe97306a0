package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors (e.g., ErrArticleNotFound, ErrCommentNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput is returned when a value supplied to a query cannot be
	// interpreted by the storage engine, such as a non-integer identifier
	// where an integer column is expected.
	ErrInvalidInput = errors.New("invalid input for query")

	// ErrInvalidSortColumn is returned when an article list request names a
	// sort column outside the allow-list.
	ErrInvalidSortColumn = errors.New("unsupported sort column")

	// ErrInvalidSortOrder is returned when an article list request names a
	// sort direction other than ASC or DESC.
	ErrInvalidSortOrder = errors.New("unsupported sort order")

	// Entity-specific "not found" errors

	// ErrArticleNotFound indicates that the requested article does not exist.
	ErrArticleNotFound = fmt.Errorf("%w: article", ErrNotFound)

	// ErrCommentNotFound indicates that the requested comment does not exist.
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)

	// ErrTopicNotFound indicates that a topic filter named a slug that is not
	// present in the topics table.
	ErrTopicNotFound = fmt.Errorf("%w: topic", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// This includes the generic ErrNotFound and all entity-specific variants.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "article", "comment")
	Operation string // The operation that failed (e.g., "list", "delete")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
