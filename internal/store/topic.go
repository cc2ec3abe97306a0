package store

import (
	"context"

	"github.com/dailyolive/olive-api/internal/domain"
)

// TopicStore defines the interface for topic data persistence.
type TopicStore interface {
	// List retrieves all topics in insertion order.
	List(ctx context.Context) ([]domain.Topic, error)

	// Exists reports whether a topic with the given slug is present.
	// The article list operation consults this before applying a topic
	// filter, so the set of filterable topics always tracks the live table.
	Exists(ctx context.Context, slug string) (bool, error)
}
