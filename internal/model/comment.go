package model

import "time"

// MaxCommentLength bounds Comment.Content, counted in runes.
const MaxCommentLength = 500

// Comment 评论
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	AuthorID  string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *Comment) EntityID() string { return c.ID }
