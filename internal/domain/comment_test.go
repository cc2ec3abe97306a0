package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	t.Run("valid fields", func(t *testing.T) {
		comment, err := NewComment(1, "butter_bridge", "Great read")
		require.NoError(t, err)
		require.NotNil(t, comment)

		assert.Equal(t, 1, comment.ArticleID)
		assert.Equal(t, "butter_bridge", comment.Author)
		assert.Equal(t, "Great read", comment.Body)

		// IDs, votes, and timestamps are assigned on insert
		assert.Zero(t, comment.CommentID)
		assert.Zero(t, comment.Votes)
		assert.True(t, comment.CreatedAt.IsZero())
	})

	t.Run("empty author", func(t *testing.T) {
		comment, err := NewComment(1, "", "Great read")
		assert.Nil(t, comment)
		assert.ErrorIs(t, err, ErrEmptyCommentAuthor)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("empty body", func(t *testing.T) {
		comment, err := NewComment(1, "butter_bridge", "")
		assert.Nil(t, comment)
		assert.ErrorIs(t, err, ErrEmptyCommentBody)
	})
}

func TestCommentValidate(t *testing.T) {
	comment := &Comment{ArticleID: 1, Author: "icellusedkars", Body: "Fruit pastilles"}
	assert.NoError(t, comment.Validate())

	// Author is checked before body
	empty := &Comment{ArticleID: 1}
	assert.ErrorIs(t, empty.Validate(), ErrEmptyCommentAuthor)
}
