package main

import (
	"database/sql"
	"log/slog"

	"github.com/dailyolive/olive-api/internal/config"
	"github.com/dailyolive/olive-api/internal/platform/postgres"
	"github.com/dailyolive/olive-api/internal/store"
)

// application holds the shared dependencies of the HTTP handlers. All stores
// receive the same injected connection pool; nothing in the process reaches
// for global database state.
type application struct {
	config *config.Config
	logger *slog.Logger

	topicStore   store.TopicStore
	userStore    store.UserStore
	articleStore store.ArticleStore
	commentStore store.CommentStore
}

// newApplication builds the application dependency graph on top of an open
// database pool.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	return &application{
		config:       cfg,
		logger:       logger,
		topicStore:   postgres.NewTopicStore(db, logger),
		userStore:    postgres.NewUserStore(db, logger),
		articleStore: postgres.NewArticleStore(db, logger),
		commentStore: postgres.NewCommentStore(db, logger),
	}
}
