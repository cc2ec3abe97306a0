package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailyolive/olive-api/internal/domain"
	"github.com/dailyolive/olive-api/internal/mocks"
	"github.com/dailyolive/olive-api/internal/store"
)

func testArticle(id int, votes int) *domain.Article {
	return &domain.Article{
		ArticleID:     id,
		Title:         "Living in the shadow of a great man",
		Topic:         "mitch",
		Author:        "butter_bridge",
		Body:          "I find this existence challenging",
		CreatedAt:     time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC),
		Votes:         votes,
		ArticleImgURL: "",
	}
}

func TestGetArticleByID(t *testing.T) {
	articles := mocks.NewMockArticleStore()
	articles.Articles[1] = testArticle(1, 100)
	router := newTestRouter(nil, nil, articles, nil)

	t.Run("existing article", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/articles/1", nil)
		rr := doRequest(t, router, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var body ArticleByIDResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.NotNil(t, body.Articles)
		assert.Equal(t, 1, body.Articles.ArticleID)
		assert.Equal(t, "butter_bridge", body.Articles.Author)
		assert.Equal(t, 100, body.Articles.Votes)
	})

	t.Run("non-integer id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/articles/garlic", nil)
		rr := doRequest(t, router, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, MsgBadRequest, decodeErrorBody(t, rr))
	})

	t.Run("unknown id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/articles/9999", nil)
		rr := doRequest(t, router, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, MsgPageNotFound, decodeErrorBody(t, rr))
	})
}

func TestListArticles(t *testing.T) {
	t.Run("passes query parameters through to the store", func(t *testing.T) {
		articles := mocks.NewMockArticleStore()
		var gotOpts store.ArticleListOptions
		articles.ListFn = func(ctx context.Context, opts store.ArticleListOptions) ([]domain.ArticleWithCount, error) {
			gotOpts = opts
			return []domain.ArticleWithCount{}, nil
		}
		router := newTestRouter(nil, nil, articles, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/articles?sort_by=votes&order=asc&topic=cats", nil)
		rr := doRequest(t, router, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, store.ArticleListOptions{SortBy: "votes", Order: "asc", Topic: "cats"}, gotOpts)
	})

	t.Run("success envelope", func(t *testing.T) {
		articles := mocks.NewMockArticleStore()
		articles.ListFn = func(ctx context.Context, opts store.ArticleListOptions) ([]domain.ArticleWithCount, error) {
			return []domain.ArticleWithCount{
				{ArticleID: 1, Title: "A", Topic: "mitch", Author: "butter_bridge", CommentCount: 3},
				{ArticleID: 4, Title: "B", Topic: "mitch", Author: "butter_bridge", CommentCount: 0},
			}, nil
		}
		router := newTestRouter(nil, nil, articles, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
		rr := doRequest(t, router, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var body ArticleListResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.Len(t, body.Articles, 2)
		assert.Equal(t, 3, body.Articles[0].CommentCount)
		assert.Equal(t, 0, body.Articles[1].CommentCount)

		// comment_count must be present even when zero
		assert.Contains(t, rr.Body.String(), `"comment_count":0`)
	})

	t.Run("store rejections map to 400", func(t *testing.T) {
		rejections := []error{
			store.ErrInvalidSortColumn,
			store.ErrInvalidSortOrder,
			store.ErrTopicNotFound,
		}

		for _, rejection := range rejections {
			articles := mocks.NewMockArticleStore()
			articles.ListFn = func(ctx context.Context, opts store.ArticleListOptions) ([]domain.ArticleWithCount, error) {
				return nil, rejection
			}
			router := newTestRouter(nil, nil, articles, nil)

			req := httptest.NewRequest(http.MethodGet, "/api/articles?sort_by=banana", nil)
			rr := doRequest(t, router, req)

			require.Equal(t, http.StatusBadRequest, rr.Code, "rejection %v", rejection)
			assert.Equal(t, MsgBadRequest, decodeErrorBody(t, rr))
		}
	})

	t.Run("unclassified store error maps to 500", func(t *testing.T) {
		articles := mocks.NewMockArticleStore()
		articles.ListFn = func(ctx context.Context, opts store.ArticleListOptions) ([]domain.ArticleWithCount, error) {
			return nil, assert.AnError
		}
		router := newTestRouter(nil, nil, articles, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
		rr := doRequest(t, router, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, MsgInternalServerError, decodeErrorBody(t, rr))
	})
}

func TestPatchArticleVotes(t *testing.T) {
	patch := func(t *testing.T, router http.Handler, target, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodPatch, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return doRequest(t, router, req)
	}

	t.Run("increments votes", func(t *testing.T) {
		articles := mocks.NewMockArticleStore()
		articles.Articles[1] = testArticle(1, 100)
		router := newTestRouter(nil, nil, articles, nil)

		rr := patch(t, router, "/api/articles/1", `{"inc_votes": 1}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var body ArticleResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.NotNil(t, body.Article)
		assert.Equal(t, 101, body.Article.Votes)
	})

	t.Run("decrements votes", func(t *testing.T) {
		articles := mocks.NewMockArticleStore()
		articles.Articles[1] = testArticle(1, 100)
		router := newTestRouter(nil, nil, articles, nil)

		rr := patch(t, router, "/api/articles/1", `{"inc_votes": -1}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var body ArticleResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, 99, body.Article.Votes)
	})

	t.Run("non-numeric inc_votes", func(t *testing.T) {
		articles := mocks.NewMockArticleStore()
		articles.Articles[1] = testArticle(1, 100)
		router := newTestRouter(nil, nil, articles, nil)

		rr := patch(t, router, "/api/articles/1", `{"inc_votes": "banana"}`)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, MsgInvalidDataType, decodeErrorBody(t, rr))
	})

	t.Run("missing inc_votes", func(t *testing.T) {
		articles := mocks.NewMockArticleStore()
		articles.Articles[1] = testArticle(1, 100)
		router := newTestRouter(nil, nil, articles, nil)

		rr := patch(t, router, "/api/articles/1", `{}`)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, MsgInvalidDataType, decodeErrorBody(t, rr))
	})

	t.Run("non-integer id", func(t *testing.T) {
		router := newTestRouter(nil, nil, mocks.NewMockArticleStore(), nil)

		rr := patch(t, router, "/api/articles/garlic", `{"inc_votes": 1}`)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, MsgBadRequest, decodeErrorBody(t, rr))
	})

	t.Run("unknown article", func(t *testing.T) {
		router := newTestRouter(nil, nil, mocks.NewMockArticleStore(), nil)

		rr := patch(t, router, "/api/articles/9999", `{"inc_votes": 1}`)
		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, MsgPageNotFound, decodeErrorBody(t, rr))
	})
}
