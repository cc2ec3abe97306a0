package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailyolive/olive-api/internal/store"
)

func TestBuildArticleListQueryDefaults(t *testing.T) {
	query, args, err := buildArticleListQuery(store.ArticleListOptions{})
	require.NoError(t, err)

	assert.Empty(t, args, "no topic filter means no bound parameters")
	assert.Contains(t, query, "LEFT JOIN comments")
	assert.Contains(t, query, "GROUP BY articles.article_id")
	assert.Contains(t, query, "ORDER BY articles.created_at DESC")
	assert.NotContains(t, query, "WHERE")
}

func TestBuildArticleListQuerySortColumns(t *testing.T) {
	columns := []string{"article_id", "title", "topic", "author", "body", "created_at", "votes"}

	for _, col := range columns {
		for _, order := range []string{"asc", "desc", "ASC", "DESC", "Asc"} {
			query, args, err := buildArticleListQuery(store.ArticleListOptions{
				SortBy: col,
				Order:  order,
			})
			require.NoError(t, err, "sort_by=%s order=%s", col, order)
			assert.Empty(t, args)
			assert.Contains(t, query, "ORDER BY articles."+col)
		}
	}
}

func TestBuildArticleListQueryOrderNormalized(t *testing.T) {
	query, _, err := buildArticleListQuery(store.ArticleListOptions{Order: "asc"})
	require.NoError(t, err)
	assert.Contains(t, query, "ORDER BY articles.created_at ASC")
}

func TestBuildArticleListQueryTopicBound(t *testing.T) {
	query, args, err := buildArticleListQuery(store.ArticleListOptions{Topic: "cats"})
	require.NoError(t, err)

	// The topic value must appear only as a bound parameter, never in the
	// query text itself.
	assert.Contains(t, query, "WHERE articles.topic = $1")
	assert.NotContains(t, query, "cats")
	require.Len(t, args, 1)
	assert.Equal(t, "cats", args[0])
}

func TestBuildArticleListQueryRejectsUnknownSortColumn(t *testing.T) {
	for _, sortBy := range []string{"votes; DROP TABLE articles", "comment_count", "slug", "banana"} {
		query, args, err := buildArticleListQuery(store.ArticleListOptions{SortBy: sortBy})
		require.Error(t, err, "sort_by=%q", sortBy)
		assert.ErrorIs(t, err, store.ErrInvalidSortColumn)
		assert.Empty(t, query)
		assert.Empty(t, args)
	}
}

func TestBuildArticleListQueryRejectsUnknownOrder(t *testing.T) {
	for _, order := range []string{"sideways", "ASC; DROP TABLE comments", "descending"} {
		query, args, err := buildArticleListQuery(store.ArticleListOptions{Order: order})
		require.Error(t, err, "order=%q", order)
		assert.ErrorIs(t, err, store.ErrInvalidSortOrder)
		assert.Empty(t, query)
		assert.Empty(t, args)
	}
}

func TestBuildArticleListQueryInvalidSortAndOrder(t *testing.T) {
	// Both parameters invalid still yields exactly one rejection, and the
	// sort column is checked first.
	_, _, err := buildArticleListQuery(store.ArticleListOptions{
		SortBy: "banana",
		Order:  "sideways",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrInvalidSortColumn)
	assert.NotErrorIs(t, err, store.ErrInvalidSortOrder)
}

func TestBuildArticleListQueryTopicWithSort(t *testing.T) {
	query, args, err := buildArticleListQuery(store.ArticleListOptions{
		SortBy: "votes",
		Order:  "asc",
		Topic:  "mitch",
	})
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE articles.topic = $1")
	assert.Contains(t, query, "ORDER BY articles.votes ASC")
	require.Len(t, args, 1)
	assert.Equal(t, "mitch", args[0])
}
