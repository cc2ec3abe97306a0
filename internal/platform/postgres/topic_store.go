package postgres

import (
	"context"
	"log/slog"

	"github.com/dailyolive/olive-api/internal/domain"
	"github.com/dailyolive/olive-api/internal/store"
)

// TopicStore implements the store.TopicStore interface
// using a PostgreSQL database as the storage backend.
type TopicStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTopicStore creates a new PostgreSQL implementation of the TopicStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller.
func NewTopicStore(db store.DBTX, logger *slog.Logger) *TopicStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TopicStore{
		db:     db,
		logger: logger.With(slog.String("component", "topic_store")),
	}
}

// Ensure TopicStore implements store.TopicStore interface
var _ store.TopicStore = (*TopicStore)(nil)

// List implements store.TopicStore.List.
func (s *TopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slug, description, img_url FROM topics`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	topics := []domain.Topic{}
	for rows.Next() {
		var t domain.Topic
		if err := rows.Scan(&t.Slug, &t.Description, &t.ImgURL); err != nil {
			return nil, MapError(err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return topics, nil
}

// Exists implements store.TopicStore.Exists.
func (s *TopicStore) Exists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM topics WHERE slug = $1)`,
		slug,
	).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}
