package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailyolive/olive-api/internal/domain"
	"github.com/dailyolive/olive-api/internal/platform/postgres"
	"github.com/dailyolive/olive-api/internal/store"
	"github.com/dailyolive/olive-api/internal/testdb"
)

func TestCommentStoreListByArticle(t *testing.T) {
	db := testdb.MustOpen(t)
	testdb.Seed(t, db)
	comments := postgres.NewCommentStore(db, nil)
	ctx := context.Background()

	t.Run("newest first", func(t *testing.T) {
		got, err := comments.ListByArticle(ctx, 1)
		require.NoError(t, err)
		require.Len(t, got, 3)

		assert.Equal(t, "The beautiful thing about treasure is that it exists.", got[0].Body)
		assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))
		assert.True(t, got[1].CreatedAt.After(got[2].CreatedAt))
		for _, c := range got {
			assert.Equal(t, 1, c.ArticleID)
		}
	})

	t.Run("article with zero comments yields empty slice", func(t *testing.T) {
		got, err := comments.ListByArticle(ctx, 4)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("unknown article", func(t *testing.T) {
		_, err := comments.ListByArticle(ctx, 9999)
		assert.ErrorIs(t, err, store.ErrArticleNotFound)
	})
}

func TestCommentStoreCreate(t *testing.T) {
	db := testdb.MustOpen(t)
	ctx := context.Background()

	t.Run("valid comment", func(t *testing.T) {
		testdb.Seed(t, db)
		comments := postgres.NewCommentStore(db, nil)

		comment, err := domain.NewComment(1, "butter_bridge", "Great read")
		require.NoError(t, err)

		created, err := comments.Create(ctx, comment)
		require.NoError(t, err)

		assert.NotZero(t, created.CommentID)
		assert.Equal(t, 1, created.ArticleID)
		assert.Equal(t, "butter_bridge", created.Author)
		assert.Equal(t, "Great read", created.Body)
		assert.Zero(t, created.Votes)
		assert.False(t, created.CreatedAt.IsZero())

		got, err := comments.ListByArticle(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, got, 4)
	})

	t.Run("unknown article", func(t *testing.T) {
		testdb.Seed(t, db)
		comments := postgres.NewCommentStore(db, nil)

		comment, err := domain.NewComment(9999, "butter_bridge", "Great read")
		require.NoError(t, err)

		_, err = comments.Create(ctx, comment)
		assert.ErrorIs(t, err, store.ErrArticleNotFound)
	})

	t.Run("unknown author violates the foreign key", func(t *testing.T) {
		testdb.Seed(t, db)
		comments := postgres.NewCommentStore(db, nil)

		comment, err := domain.NewComment(1, "not_a_user", "Great read")
		require.NoError(t, err)

		_, err = comments.Create(ctx, comment)
		require.Error(t, err)
		assert.True(t, postgres.IsForeignKeyViolation(err))

		// The transaction must have rolled back the insert
		got, err := comments.ListByArticle(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("invalid comment never reaches the database", func(t *testing.T) {
		testdb.Seed(t, db)
		comments := postgres.NewCommentStore(db, nil)

		_, err := comments.Create(ctx, &domain.Comment{ArticleID: 1, Author: "butter_bridge"})
		assert.ErrorIs(t, err, domain.ErrEmptyCommentBody)
	})
}

func TestCommentStoreDelete(t *testing.T) {
	db := testdb.MustOpen(t)
	testdb.Seed(t, db)
	comments := postgres.NewCommentStore(db, nil)
	ctx := context.Background()

	require.NoError(t, comments.Delete(ctx, 4))

	got, err := comments.ListByArticle(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Repeating the delete reports not found
	assert.ErrorIs(t, comments.Delete(ctx, 4), store.ErrCommentNotFound)
}
