package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/dailyolive/olive-api/internal/api/shared"
	"github.com/dailyolive/olive-api/internal/store"
)

// newTestRouter mounts the handlers on the same route table the server uses,
// so tests exercise path parameter extraction exactly as production does.
func newTestRouter(
	topics store.TopicStore,
	users store.UserStore,
	articles store.ArticleStore,
	comments store.CommentStore,
) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/", GetEndpoints)

		if topics != nil {
			r.Get("/topics", NewTopicHandler(topics, logger).ListTopics)
		}
		if users != nil {
			r.Get("/users", NewUserHandler(users, logger).ListUsers)
		}
		if articles != nil {
			h := NewArticleHandler(articles, logger)
			r.Get("/articles", h.ListArticles)
			r.Get("/articles/{article_id}", h.GetArticleByID)
			r.Patch("/articles/{article_id}", h.PatchArticleVotes)
		}
		if comments != nil {
			h := NewCommentHandler(comments, logger)
			r.Get("/articles/{article_id}/comments", h.ListArticleComments)
			r.Post("/articles/{article_id}/comments", h.CreateComment)
			r.Delete("/comments/{comment_id}", h.DeleteComment)
		}
	})

	return r
}

// doRequest executes the request against the router and returns the recorder.
func doRequest(t *testing.T, router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeErrorBody asserts the response body is the standard error shape and
// returns its msg field.
func decodeErrorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Msg
}
