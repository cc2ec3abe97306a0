package postgres

import (
	"fmt"
	"strings"

	"github.com/dailyolive/olive-api/internal/store"
)

// articleListSelect is the invariant head of the article list query: every
// article exactly once, joined against its comment count. Articles with no
// comments appear with comment_count = 0 thanks to the LEFT JOIN.
const articleListSelect = `SELECT articles.article_id, articles.title, articles.topic, articles.author, ` +
	`articles.created_at, articles.votes, articles.article_img_url, ` +
	`COUNT(comments.comment_id)::INT AS comment_count ` +
	`FROM articles LEFT JOIN comments ON articles.article_id = comments.article_id`

// articleSortColumns maps each permitted sort_by value to the column
// expression placed in the ORDER BY clause. Only values drawn from this map
// ever reach the query text; the request value itself is used solely as a
// lookup key.
var articleSortColumns = map[string]string{
	"article_id": "articles.article_id",
	"title":      "articles.title",
	"topic":      "articles.topic",
	"author":     "articles.author",
	"body":       "articles.body",
	"created_at": "articles.created_at",
	"votes":      "articles.votes",
}

// buildArticleListQuery assembles the article list statement from the
// optional sort/order/topic parameters. The topic value is always bound as a
// positional parameter, never spliced into the SQL text, and the sort column
// and direction tokens come only from fixed allow-lists.
//
// Defaults: sort by created_at, descending. Returns ErrInvalidSortColumn or
// ErrInvalidSortOrder without building a query when a parameter is outside
// its allow-list. Whether the topic itself exists is checked by the caller
// against the topics table before this function runs.
func buildArticleListQuery(opts store.ArticleListOptions) (string, []any, error) {
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	column, ok := articleSortColumns[sortBy]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", store.ErrInvalidSortColumn, opts.SortBy)
	}

	direction := strings.ToUpper(opts.Order)
	if direction == "" {
		direction = string(store.SortDescending)
	}
	if direction != string(store.SortAscending) && direction != string(store.SortDescending) {
		return "", nil, fmt.Errorf("%w: %q", store.ErrInvalidSortOrder, opts.Order)
	}

	var sb strings.Builder
	sb.WriteString(articleListSelect)

	var args []any
	if opts.Topic != "" {
		sb.WriteString(" WHERE articles.topic = $1")
		args = append(args, opts.Topic)
	}

	sb.WriteString(" GROUP BY articles.article_id")
	sb.WriteString(" ORDER BY ")
	sb.WriteString(column)
	sb.WriteString(" ")
	sb.WriteString(direction)

	return sb.String(), args, nil
}
