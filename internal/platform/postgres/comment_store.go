package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/dailyolive/olive-api/internal/domain"
	"github.com/dailyolive/olive-api/internal/store"
)

// CommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
//
// Unlike the read-only stores it holds a *sql.DB rather than a store.DBTX,
// because Create opens its own transaction around the article existence
// check and the insert.
type CommentStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewCommentStore creates a new PostgreSQL implementation of the
// CommentStore interface. It accepts a database connection that should be
// initialized and managed by the caller.
func NewCommentStore(db *sql.DB, logger *slog.Logger) *CommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure CommentStore implements store.CommentStore interface
var _ store.CommentStore = (*CommentStore)(nil)

// ListByArticle implements store.CommentStore.ListByArticle.
//
// The article existence check is independent of the comment select, so an
// existing article with no comments yields an empty slice rather than a
// not-found error.
func (s *CommentStore) ListByArticle(ctx context.Context, articleID int) ([]domain.Comment, error) {
	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)`,
		articleID,
	).Scan(&exists)
	if err != nil {
		return nil, MapError(err)
	}
	if !exists {
		return nil, store.ErrArticleNotFound
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT comment_id, article_id, body, votes, author, created_at
			FROM comments WHERE article_id = $1 ORDER BY created_at DESC, comment_id DESC`,
		articleID,
	)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(
			&c.CommentID,
			&c.ArticleID,
			&c.Body,
			&c.Votes,
			&c.Author,
			&c.CreatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return comments, nil
}

// Create implements store.CommentStore.Create.
//
// The existence check and the insert share one transaction, so a concurrent
// article delete cannot invalidate the check before the insert commits.
func (s *CommentStore) Create(
	ctx context.Context,
	comment *domain.Comment,
) (*domain.Comment, error) {
	if err := comment.Validate(); err != nil {
		return nil, err
	}

	var created domain.Comment
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRowContext(
			ctx,
			`SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)`,
			comment.ArticleID,
		).Scan(&exists); err != nil {
			return MapError(err)
		}
		if !exists {
			return store.ErrArticleNotFound
		}

		return MapError(tx.QueryRowContext(
			ctx,
			`INSERT INTO comments (article_id, author, body) VALUES ($1, $2, $3)
				RETURNING comment_id, article_id, body, votes, author, created_at`,
			comment.ArticleID,
			comment.Author,
			comment.Body,
		).Scan(
			&created.CommentID,
			&created.ArticleID,
			&created.Body,
			&created.Votes,
			&created.Author,
			&created.CreatedAt,
		))
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// Delete implements store.CommentStore.Delete.
//
// A single DELETE doubles as the existence check: zero affected rows means
// the comment was already gone, reported as store.ErrCommentNotFound.
func (s *CommentStore) Delete(ctx context.Context, commentID int) error {
	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM comments WHERE comment_id = $1`,
		commentID,
	)
	if err != nil {
		return store.NewStoreError("comment", "delete", "failed to execute delete", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrCommentNotFound)
}
