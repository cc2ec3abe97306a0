package domain

import "time"

// Article is a published piece of content with an author, topic, vote count,
// and creation timestamp. The only mutation applied to an article after
// creation is a vote increment.
type Article struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
}

// ArticleWithCount is the list-endpoint projection of an Article: the article
// columns minus the body, plus the number of comments attached to it. An
// article with no comments reports a count of zero. It is computed per query
// and never persisted.
type ArticleWithCount struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}
