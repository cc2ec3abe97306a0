package mocks

import (
	"context"

	"github.com/dailyolive/olive-api/internal/domain"
	"github.com/dailyolive/olive-api/internal/store"
)

// MockArticleStore implements store.ArticleStore for testing
type MockArticleStore struct {
	// Function fields for customizable behavior
	GetByIDFn        func(ctx context.Context, articleID int) (*domain.Article, error)
	ListFn           func(ctx context.Context, opts store.ArticleListOptions) ([]domain.ArticleWithCount, error)
	IncrementVotesFn func(ctx context.Context, articleID, delta int) (*domain.Article, error)
	ExistsFn         func(ctx context.Context, articleID int) (bool, error)

	// Data for default implementation
	Articles map[int]*domain.Article
}

// NewMockArticleStore creates a new mock store with initialized defaults
func NewMockArticleStore() *MockArticleStore {
	return &MockArticleStore{
		Articles: make(map[int]*domain.Article),
	}
}

// Ensure MockArticleStore implements store.ArticleStore interface
var _ store.ArticleStore = (*MockArticleStore)(nil)

// GetByID implements the ArticleStore interface
func (m *MockArticleStore) GetByID(ctx context.Context, articleID int) (*domain.Article, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, articleID)
	}

	article, ok := m.Articles[articleID]
	if !ok {
		return nil, store.ErrArticleNotFound
	}
	return article, nil
}

// List implements the ArticleStore interface
func (m *MockArticleStore) List(
	ctx context.Context,
	opts store.ArticleListOptions,
) ([]domain.ArticleWithCount, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, opts)
	}

	articles := []domain.ArticleWithCount{}
	for _, a := range m.Articles {
		if opts.Topic != "" && a.Topic != opts.Topic {
			continue
		}
		articles = append(articles, domain.ArticleWithCount{
			ArticleID:     a.ArticleID,
			Title:         a.Title,
			Topic:         a.Topic,
			Author:        a.Author,
			CreatedAt:     a.CreatedAt,
			Votes:         a.Votes,
			ArticleImgURL: a.ArticleImgURL,
		})
	}
	return articles, nil
}

// IncrementVotes implements the ArticleStore interface
func (m *MockArticleStore) IncrementVotes(
	ctx context.Context,
	articleID, delta int,
) (*domain.Article, error) {
	if m.IncrementVotesFn != nil {
		return m.IncrementVotesFn(ctx, articleID, delta)
	}

	article, ok := m.Articles[articleID]
	if !ok {
		return nil, store.ErrArticleNotFound
	}
	article.Votes += delta
	return article, nil
}

// Exists implements the ArticleStore interface
func (m *MockArticleStore) Exists(ctx context.Context, articleID int) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, articleID)
	}

	_, ok := m.Articles[articleID]
	return ok, nil
}
