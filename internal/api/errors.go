package api

import (
	"errors"
	"net/http"

	"github.com/dailyolive/olive-api/internal/domain"
	"github.com/dailyolive/olive-api/internal/store"
)

// Client-visible error messages. These are the only strings an error
// response body ever carries.
const (
	MsgBadRequest          = "Bad Request"
	MsgPageNotFound        = "Page Not Found"
	MsgCommentNotFound     = "Comment Not Found"
	MsgRequiredFieldsEmpty = "Required fields empty"
	MsgInvalidDataType     = "Invalid Data Type"
	MsgInternalServerError = "Internal Server Error"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
//
// The checks run in a fixed priority: storage-level invalid-input signals
// first, then the typed rejections raised by the stores, then the catch-all
// internal error. Every error lands in exactly one branch.
func MapErrorToStatusCode(err error) int {
	switch {
	// Invalid input surfaced by the storage engine, e.g. a non-integer
	// value bound to an integer identifier column
	case errors.Is(err, store.ErrInvalidInput):
		return http.StatusBadRequest

	// Client input errors raised before any query executes
	case errors.Is(err, store.ErrTopicNotFound),
		errors.Is(err, store.ErrInvalidSortColumn),
		errors.Is(err, store.ErrInvalidSortOrder),
		errors.Is(err, domain.ErrEmptyCommentAuthor),
		errors.Is(err, domain.ErrEmptyCommentBody),
		errors.Is(err, domain.ErrInvalidVoteIncrement):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, store.ErrArticleNotFound),
		errors.Is(err, store.ErrCommentNotFound):
		return http.StatusNotFound

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the sanitized, user-facing message for the
// error type. The raw error never reaches the client.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgInternalServerError
	}

	switch {
	case errors.Is(err, store.ErrInvalidInput),
		errors.Is(err, store.ErrTopicNotFound),
		errors.Is(err, store.ErrInvalidSortColumn),
		errors.Is(err, store.ErrInvalidSortOrder):
		return MsgBadRequest

	case errors.Is(err, domain.ErrEmptyCommentAuthor),
		errors.Is(err, domain.ErrEmptyCommentBody):
		return MsgRequiredFieldsEmpty

	case errors.Is(err, domain.ErrInvalidVoteIncrement):
		return MsgInvalidDataType

	case errors.Is(err, store.ErrArticleNotFound):
		return MsgPageNotFound

	case errors.Is(err, store.ErrCommentNotFound):
		return MsgCommentNotFound

	default:
		return MsgInternalServerError
	}
}
