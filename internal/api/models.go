package api

import "github.com/dailyolive/olive-api/internal/domain"

// Response envelopes. Every successful response nests its payload under a
// field named for the resource.

// TopicsResponse wraps the topic list.
type TopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

// UsersResponse wraps the user list.
type UsersResponse struct {
	Users []domain.User `json:"users"`
}

// ArticleListResponse wraps the article list with comment counts.
type ArticleListResponse struct {
	Articles []domain.ArticleWithCount `json:"articles"`
}

// ArticleByIDResponse wraps a single article fetched by ID. The field is
// named "articles" (plural) to preserve the API's published response shape.
type ArticleByIDResponse struct {
	Articles *domain.Article `json:"articles"`
}

// ArticleResponse wraps a single article returned by the vote update.
type ArticleResponse struct {
	Article *domain.Article `json:"article"`
}

// CommentsResponse wraps an article's comment list.
type CommentsResponse struct {
	Comments []domain.Comment `json:"comments"`
}

// CommentResponse wraps a newly created comment.
type CommentResponse struct {
	Comment *domain.Comment `json:"comment"`
}
