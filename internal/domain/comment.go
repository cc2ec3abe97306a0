package domain

import "time"

// Comment is a reply to an article, authored by a user. Comments are created
// and deleted but never updated.
type Comment struct {
	CommentID int       `json:"comment_id"`
	ArticleID int       `json:"article_id"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment builds a comment for the given article from user-supplied
// author and body fields. Returns a validation error if either field is
// empty; timestamps and IDs are assigned by the store on insert.
func NewComment(articleID int, author, body string) (*Comment, error) {
	c := &Comment{
		ArticleID: articleID,
		Author:    author,
		Body:      body,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks that the comment carries the fields required at insert time.
func (c *Comment) Validate() error {
	if c.Author == "" {
		return ErrEmptyCommentAuthor
	}
	if c.Body == "" {
		return ErrEmptyCommentBody
	}
	return nil
}
