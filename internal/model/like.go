package model

import "time"

// Like 点赞（同一用户对同一帖子至多一条）
type Like struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (l *Like) EntityID() string { return l.ID }
