package model

import "time"

// MaxPostLength bounds Post.Content, counted in runes.
const MaxPostLength = 1000

// Post 内容主体
type Post struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p *Post) EntityID() string { return p.ID }
