package store

import (
	"context"

	"github.com/dailyolive/olive-api/internal/domain"
)

// SortOrder is a validated sort direction for article list queries.
type SortOrder string

// Sort directions accepted by ArticleStore.List.
const (
	SortAscending  SortOrder = "ASC"
	SortDescending SortOrder = "DESC"
)

// ArticleListOptions carries the raw, optional query parameters of the
// article list operation. Empty fields fall back to defaults: sort by
// created_at, descending, no topic filter. Values are validated by the
// store before any SQL is issued.
type ArticleListOptions struct {
	SortBy string
	Order  string
	Topic  string
}

// ArticleStore defines the interface for article data persistence.
type ArticleStore interface {
	// GetByID retrieves a single article by its ID.
	// Returns ErrArticleNotFound if the article does not exist.
	GetByID(ctx context.Context, articleID int) (*domain.Article, error)

	// List retrieves articles joined with their comment counts, filtered
	// and ordered per opts.
	// Returns ErrInvalidSortColumn or ErrInvalidSortOrder for allow-list
	// violations, and ErrTopicNotFound when the topic filter names an
	// unknown slug. Validation short-circuits on the topic filter first;
	// no query is executed when any option is rejected.
	List(ctx context.Context, opts ArticleListOptions) ([]domain.ArticleWithCount, error)

	// IncrementVotes adds delta (which may be negative) to an article's vote
	// count and returns the updated article. The update is a single
	// conditional statement, so there is no window between an existence
	// check and the write.
	// Returns ErrArticleNotFound if the article does not exist.
	IncrementVotes(ctx context.Context, articleID, delta int) (*domain.Article, error)

	// Exists reports whether an article with the given ID is present.
	Exists(ctx context.Context, articleID int) (bool, error)
}
