package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dailyolive/olive-api/internal/api/shared"
	"github.com/dailyolive/olive-api/internal/domain"
	"github.com/dailyolive/olive-api/internal/platform/logger"
	"github.com/dailyolive/olive-api/internal/redact"
	"github.com/dailyolive/olive-api/internal/store"
)

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	comments store.CommentStore
	logger   *slog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(comments store.CommentStore, logger *slog.Logger) *CommentHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CommentHandler")
	}

	return &CommentHandler{
		comments: comments,
		logger:   logger.With(slog.String("component", "comment_handler")),
	}
}

// ListArticleComments handles GET /api/articles/{article_id}/comments
// requests. An existing article with no comments yields 200 and an empty
// list; only a missing article is a 404.
func (h *CommentHandler) ListArticleComments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, ok := articleIDParam(r)
	if !ok {
		log.Debug("non-integer article ID", slog.String("article_id", chi.URLParam(r, "article_id")))
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgBadRequest)
		return
	}

	comments, err := h.comments.ListByArticle(r.Context(), articleID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CommentsResponse{Comments: comments})
}

// CreateCommentRequest represents the request body for posting a comment.
type CreateCommentRequest struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body" validate:"required"`
}

// CreateComment handles POST /api/articles/{article_id}/comments requests.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, ok := articleIDParam(r)
	if !ok {
		log.Debug("non-integer article ID", slog.String("article_id", chi.URLParam(r, "article_id")))
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgBadRequest)
		return
	}

	var req CreateCommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid request body", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgBadRequest)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgRequiredFieldsEmpty, err)
		return
	}

	comment, err := domain.NewComment(articleID, req.Username, req.Body)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	created, err := h.comments.Create(r.Context(), comment)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("comment created",
		slog.Int("comment_id", created.CommentID),
		slog.Int("article_id", created.ArticleID))
	shared.RespondWithJSON(w, r, http.StatusCreated, CommentResponse{Comment: created})
}

// DeleteComment handles DELETE /api/comments/{comment_id} requests.
// A successful delete responds 204 with an empty body; deleting the same
// comment again responds 404.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	raw := chi.URLParam(r, "comment_id")
	commentID, err := strconv.Atoi(raw)
	if err != nil {
		log.Debug("non-integer comment ID", slog.String("comment_id", raw))
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgBadRequest)
		return
	}

	if err := h.comments.Delete(r.Context(), commentID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
