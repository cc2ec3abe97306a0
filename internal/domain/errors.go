// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the base error for domain entities that fail validation.
// The specific errors below wrap it, so callers can match either the exact
// failure or the whole category with errors.Is.
var ErrValidation = errors.New("validation failed")

var (
	// ErrEmptyCommentAuthor is returned when a comment is created without an author.
	ErrEmptyCommentAuthor = fmt.Errorf("%w: comment author cannot be empty", ErrValidation)

	// ErrEmptyCommentBody is returned when a comment is created without a body.
	ErrEmptyCommentBody = fmt.Errorf("%w: comment body cannot be empty", ErrValidation)

	// ErrInvalidVoteIncrement is returned when a vote update carries a
	// non-numeric increment.
	ErrInvalidVoteIncrement = fmt.Errorf("%w: vote increment must be numeric", ErrValidation)
)
