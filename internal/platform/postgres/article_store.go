package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dailyolive/olive-api/internal/domain"
	"github.com/dailyolive/olive-api/internal/store"
)

// ArticleStore implements the store.ArticleStore interface
// using a PostgreSQL database as the storage backend.
type ArticleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewArticleStore creates a new PostgreSQL implementation of the ArticleStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller.
func NewArticleStore(db store.DBTX, logger *slog.Logger) *ArticleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ArticleStore{
		db:     db,
		logger: logger.With(slog.String("component", "article_store")),
	}
}

// Ensure ArticleStore implements store.ArticleStore interface
var _ store.ArticleStore = (*ArticleStore)(nil)

// GetByID implements store.ArticleStore.GetByID.
// Returns store.ErrArticleNotFound if the article does not exist.
func (s *ArticleStore) GetByID(ctx context.Context, articleID int) (*domain.Article, error) {
	query := `SELECT article_id, title, topic, author, body, created_at, votes, article_img_url
		FROM articles WHERE article_id = $1`

	var article domain.Article
	err := s.db.QueryRowContext(ctx, query, articleID).Scan(
		&article.ArticleID,
		&article.Title,
		&article.Topic,
		&article.Author,
		&article.Body,
		&article.CreatedAt,
		&article.Votes,
		&article.ArticleImgURL,
	)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrArticleNotFound
		}
		return nil, MapError(err)
	}

	return &article, nil
}

// List implements store.ArticleStore.List.
//
// Validation short-circuits on the topic filter before the sort parameters
// are considered, and no SQL is issued for a rejected request. The set of
// filterable topics is whatever the topics table currently holds, so newly
// seeded topics are filterable without a code change.
func (s *ArticleStore) List(
	ctx context.Context,
	opts store.ArticleListOptions,
) ([]domain.ArticleWithCount, error) {
	if opts.Topic != "" {
		var exists bool
		err := s.db.QueryRowContext(
			ctx,
			`SELECT EXISTS(SELECT 1 FROM topics WHERE slug = $1)`,
			opts.Topic,
		).Scan(&exists)
		if err != nil {
			return nil, MapError(err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: %q", store.ErrTopicNotFound, opts.Topic)
		}
	}

	query, args, err := buildArticleListQuery(opts)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	articles := []domain.ArticleWithCount{}
	for rows.Next() {
		var a domain.ArticleWithCount
		if err := rows.Scan(
			&a.ArticleID,
			&a.Title,
			&a.Topic,
			&a.Author,
			&a.CreatedAt,
			&a.Votes,
			&a.ArticleImgURL,
			&a.CommentCount,
		); err != nil {
			return nil, MapError(err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return articles, nil
}

// IncrementVotes implements store.ArticleStore.IncrementVotes.
//
// The existence check and the write are one conditional statement: a missing
// article simply returns no row, so a concurrent delete cannot slip between a
// check and the update.
func (s *ArticleStore) IncrementVotes(
	ctx context.Context,
	articleID, delta int,
) (*domain.Article, error) {
	query := `UPDATE articles SET votes = votes + $1 WHERE article_id = $2
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url`

	var article domain.Article
	err := s.db.QueryRowContext(ctx, query, delta, articleID).Scan(
		&article.ArticleID,
		&article.Title,
		&article.Topic,
		&article.Author,
		&article.Body,
		&article.CreatedAt,
		&article.Votes,
		&article.ArticleImgURL,
	)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrArticleNotFound
		}
		return nil, MapError(err)
	}

	return &article, nil
}

// Exists implements store.ArticleStore.Exists.
func (s *ArticleStore) Exists(ctx context.Context, articleID int) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)`,
		articleID,
	).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}
