package mocks

import (
	"context"

	"github.com/dailyolive/olive-api/internal/domain"
	"github.com/dailyolive/olive-api/internal/store"
)

// MockCommentStore implements store.CommentStore for testing
type MockCommentStore struct {
	// Function fields for customizable behavior
	ListByArticleFn func(ctx context.Context, articleID int) ([]domain.Comment, error)
	CreateFn        func(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	DeleteFn        func(ctx context.Context, commentID int) error

	// Data for default implementation
	Comments      map[int]*domain.Comment
	KnownArticles map[int]bool
	nextID        int
}

// NewMockCommentStore creates a new mock store with initialized defaults
func NewMockCommentStore() *MockCommentStore {
	return &MockCommentStore{
		Comments:      make(map[int]*domain.Comment),
		KnownArticles: make(map[int]bool),
		nextID:        1,
	}
}

// Ensure MockCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*MockCommentStore)(nil)

// ListByArticle implements the CommentStore interface
func (m *MockCommentStore) ListByArticle(ctx context.Context, articleID int) ([]domain.Comment, error) {
	if m.ListByArticleFn != nil {
		return m.ListByArticleFn(ctx, articleID)
	}

	if !m.KnownArticles[articleID] {
		return nil, store.ErrArticleNotFound
	}

	comments := []domain.Comment{}
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			comments = append(comments, *c)
		}
	}
	return comments, nil
}

// Create implements the CommentStore interface
func (m *MockCommentStore) Create(
	ctx context.Context,
	comment *domain.Comment,
) (*domain.Comment, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}
	if !m.KnownArticles[comment.ArticleID] {
		return nil, store.ErrArticleNotFound
	}

	created := *comment
	created.CommentID = m.nextID
	m.nextID++
	m.Comments[created.CommentID] = &created
	return &created, nil
}

// Delete implements the CommentStore interface
func (m *MockCommentStore) Delete(ctx context.Context, commentID int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, commentID)
	}

	if _, ok := m.Comments[commentID]; !ok {
		return store.ErrCommentNotFound
	}
	delete(m.Comments, commentID)
	return nil
}
