package api

import (
	"log/slog"
	"net/http"

	"github.com/dailyolive/olive-api/internal/api/shared"
	"github.com/dailyolive/olive-api/internal/store"
)

// TopicHandler handles topic-related HTTP requests
type TopicHandler struct {
	topics store.TopicStore
	logger *slog.Logger
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(topics store.TopicStore, logger *slog.Logger) *TopicHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TopicHandler")
	}

	return &TopicHandler{
		topics: topics,
		logger: logger.With(slog.String("component", "topic_handler")),
	}
}

// ListTopics handles GET /api/topics requests.
func (h *TopicHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topics.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TopicsResponse{Topics: topics})
}
