// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dailyolive/olive-api/internal/api/shared"
	"github.com/dailyolive/olive-api/internal/domain"
	"github.com/dailyolive/olive-api/internal/platform/logger"
	"github.com/dailyolive/olive-api/internal/store"
)

// ArticleHandler handles article-related HTTP requests
type ArticleHandler struct {
	articles store.ArticleStore
	logger   *slog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articles store.ArticleStore, logger *slog.Logger) *ArticleHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ArticleHandler")
	}

	return &ArticleHandler{
		articles: articles,
		logger:   logger.With(slog.String("component", "article_handler")),
	}
}

// articleIDParam extracts and parses the article_id path parameter.
// A syntactically non-integer value is a client error, reported before any
// store call is made.
func articleIDParam(r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "article_id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

// GetArticleByID handles GET /api/articles/{article_id} requests.
func (h *ArticleHandler) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, ok := articleIDParam(r)
	if !ok {
		log.Debug("non-integer article ID", slog.String("article_id", chi.URLParam(r, "article_id")))
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgBadRequest)
		return
	}

	article, err := h.articles.GetByID(r.Context(), articleID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ArticleByIDResponse{Articles: article})
}

// ListArticles handles GET /api/articles requests. The optional sort_by,
// order, and topic query parameters are passed to the store untouched; all
// validation lives behind the ArticleStore.List contract.
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	opts := store.ArticleListOptions{
		SortBy: r.URL.Query().Get("sort_by"),
		Order:  r.URL.Query().Get("order"),
		Topic:  r.URL.Query().Get("topic"),
	}

	articles, err := h.articles.List(r.Context(), opts)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ArticleListResponse{Articles: articles})
}

// PatchArticleRequest represents the request body for a vote update.
// The pointer distinguishes a missing inc_votes from an explicit zero.
type PatchArticleRequest struct {
	IncVotes *int `json:"inc_votes"`
}

// PatchArticleVotes handles PATCH /api/articles/{article_id} requests.
// It adds inc_votes (which may be negative) to the article's vote count and
// returns the updated article.
func (h *ArticleHandler) PatchArticleVotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, ok := articleIDParam(r)
	if !ok {
		log.Debug("non-integer article ID", slog.String("article_id", chi.URLParam(r, "article_id")))
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgBadRequest)
		return
	}

	var req PatchArticleRequest
	if err := shared.DecodeJSON(r, &req); err != nil || req.IncVotes == nil {
		err = domain.ErrInvalidVoteIncrement
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidDataType, err)
		return
	}

	article, err := h.articles.IncrementVotes(r.Context(), articleID, *req.IncVotes)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("article votes updated",
		slog.Int("article_id", articleID),
		slog.Int("votes", article.Votes))
	shared.RespondWithJSON(w, r, http.StatusOK, ArticleResponse{Article: article})
}
