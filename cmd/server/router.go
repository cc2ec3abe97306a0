package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dailyolive/olive-api/internal/api"
	apiMiddleware "github.com/dailyolive/olive-api/internal/api/middleware"
)

// requestTimeout is the per-request deadline applied at the router boundary.
const requestTimeout = 15 * time.Second

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(apiMiddleware.TraceMiddleware)

	topicHandler := api.NewTopicHandler(app.topicStore, app.logger)
	userHandler := api.NewUserHandler(app.userStore, app.logger)
	articleHandler := api.NewArticleHandler(app.articleStore, app.logger)
	commentHandler := api.NewCommentHandler(app.commentStore, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", api.GetEndpoints)

		r.Get("/topics", topicHandler.ListTopics)
		r.Get("/users", userHandler.ListUsers)

		r.Get("/articles", articleHandler.ListArticles)
		r.Get("/articles/{article_id}", articleHandler.GetArticleByID)
		r.Patch("/articles/{article_id}", articleHandler.PatchArticleVotes)
		r.Get("/articles/{article_id}/comments", commentHandler.ListArticleComments)
		r.Post("/articles/{article_id}/comments", commentHandler.CreateComment)

		r.Delete("/comments/{comment_id}", commentHandler.DeleteComment)
	})

	// Liveness endpoint
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
