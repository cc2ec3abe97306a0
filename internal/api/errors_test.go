package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dailyolive/olive-api/internal/domain"
	"github.com/dailyolive/olive-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid input from storage", store.ErrInvalidInput, http.StatusBadRequest},
		{"unknown topic filter", store.ErrTopicNotFound, http.StatusBadRequest},
		{"unsupported sort column", store.ErrInvalidSortColumn, http.StatusBadRequest},
		{"unsupported sort order", store.ErrInvalidSortOrder, http.StatusBadRequest},
		{"empty comment author", domain.ErrEmptyCommentAuthor, http.StatusBadRequest},
		{"empty comment body", domain.ErrEmptyCommentBody, http.StatusBadRequest},
		{"bad vote increment", domain.ErrInvalidVoteIncrement, http.StatusBadRequest},
		{"missing article", store.ErrArticleNotFound, http.StatusNotFound},
		{"missing comment", store.ErrCommentNotFound, http.StatusNotFound},
		{"unclassified error", errors.New("connection reset"), http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestMapErrorToStatusCodeWrappedErrors(t *testing.T) {
	// Wrapping must not change classification.
	wrapped := fmt.Errorf("list articles: %w", store.ErrTopicNotFound)
	assert.Equal(t, http.StatusBadRequest, MapErrorToStatusCode(wrapped))

	wrapped = fmt.Errorf("get article: %w", store.ErrArticleNotFound)
	assert.Equal(t, http.StatusNotFound, MapErrorToStatusCode(wrapped))
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"invalid input from storage", store.ErrInvalidInput, MsgBadRequest},
		{"unknown topic filter", store.ErrTopicNotFound, MsgBadRequest},
		{"unsupported sort column", store.ErrInvalidSortColumn, MsgBadRequest},
		{"unsupported sort order", store.ErrInvalidSortOrder, MsgBadRequest},
		{"empty comment author", domain.ErrEmptyCommentAuthor, MsgRequiredFieldsEmpty},
		{"empty comment body", domain.ErrEmptyCommentBody, MsgRequiredFieldsEmpty},
		{"bad vote increment", domain.ErrInvalidVoteIncrement, MsgInvalidDataType},
		{"missing article", store.ErrArticleNotFound, MsgPageNotFound},
		{"missing comment", store.ErrCommentNotFound, MsgCommentNotFound},
		{"unclassified error", errors.New("pq: out of memory"), MsgInternalServerError},
		{"nil error", nil, MsgInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestSafeMessageNeverEchoesInternalDetail(t *testing.T) {
	err := errors.New(`pq: SELECT * FROM secrets failed at host db.internal:5432`)
	msg := GetSafeErrorMessage(err)
	assert.Equal(t, MsgInternalServerError, msg)
}
