package store

import (
	"context"

	"github.com/dailyolive/olive-api/internal/domain"
)

// CommentStore defines the interface for comment data persistence.
type CommentStore interface {
	// ListByArticle retrieves all comments attached to the given article.
	// Returns ErrArticleNotFound if the article itself does not exist; an
	// existing article with no comments yields an empty (non-nil) slice.
	ListByArticle(ctx context.Context, articleID int) ([]domain.Comment, error)

	// Create inserts a new comment and returns it with its assigned ID and
	// timestamp. The article existence check and the insert run in a single
	// transaction so a concurrent article delete cannot slip between them.
	// Returns ErrArticleNotFound if the referenced article does not exist,
	// and the comment's validation error if author or body is empty.
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)

	// Delete removes a comment by its ID.
	// Returns ErrCommentNotFound if the comment does not exist, which makes
	// a repeated delete of the same ID surface as not-found rather than
	// silently succeeding.
	Delete(ctx context.Context, commentID int) error
}
