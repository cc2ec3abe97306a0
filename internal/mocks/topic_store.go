package mocks

import (
	"context"

	"github.com/dailyolive/olive-api/internal/domain"
	"github.com/dailyolive/olive-api/internal/store"
)

// MockTopicStore implements store.TopicStore for testing
type MockTopicStore struct {
	// Function fields for customizable behavior
	ListFn   func(ctx context.Context) ([]domain.Topic, error)
	ExistsFn func(ctx context.Context, slug string) (bool, error)

	// Data for default implementation
	Topics []domain.Topic
}

// NewMockTopicStore creates a new mock store with initialized defaults
func NewMockTopicStore() *MockTopicStore {
	return &MockTopicStore{}
}

// Ensure MockTopicStore implements store.TopicStore interface
var _ store.TopicStore = (*MockTopicStore)(nil)

// List implements the TopicStore interface
func (m *MockTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Topics, nil
}

// Exists implements the TopicStore interface
func (m *MockTopicStore) Exists(ctx context.Context, slug string) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, slug)
	}

	for _, t := range m.Topics {
		if t.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}
