package repository

import (
	"time"

	"github.com/d60-Lab/orkud/internal/model"
)

// Table rows for GormSink. Position keeps collection insertion order.

type userRow struct {
	ID        string     `gorm:"primaryKey;type:varchar(36)"`
	Position  int        `gorm:"index;not null"`
	Username  string     `gorm:"type:varchar(64);not null"`
	Email     string     `gorm:"type:varchar(255)"`
	Bio       string     `gorm:"type:text"`
	CreatedAt time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
}

func (userRow) TableName() string { return "users" }

type postRow struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Position  int       `gorm:"index;not null"`
	AuthorID  string    `gorm:"type:varchar(36);index:idx_post_author;not null"`
	Content   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

func (postRow) TableName() string { return "posts" }

type commentRow struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Position  int       `gorm:"index;not null"`
	PostID    string    `gorm:"type:varchar(36);index:idx_comment_post;not null"`
	AuthorID  string    `gorm:"type:varchar(36);not null"`
	Content   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

func (commentRow) TableName() string { return "comments" }

// likeRow 复合唯一键 idx_like_pair = (post_id, user_id)
type likeRow struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Position  int       `gorm:"index;not null"`
	PostID    string    `gorm:"type:varchar(36);not null;index:idx_like_pair,unique"`
	UserID    string    `gorm:"type:varchar(36);not null;index:idx_like_pair,unique"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

func (likeRow) TableName() string { return "likes" }

// followRow 复合唯一键 idx_follow_pair = (follower_id, following_id)
type followRow struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	Position    int       `gorm:"index;not null"`
	FollowerID  string    `gorm:"type:varchar(36);not null;index:idx_follow_pair,unique"`
	FollowingID string    `gorm:"type:varchar(36);not null;index:idx_follow_pair,unique"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
}

func (followRow) TableName() string { return "follows" }

type ticketRow struct {
	ID        string     `gorm:"primaryKey;type:varchar(36)"`
	Position  int        `gorm:"index;not null"`
	Subject   string     `gorm:"type:varchar(255);not null"`
	Message   string     `gorm:"type:text;not null"`
	UserID    *string    `gorm:"type:varchar(36);index"`
	Status    string     `gorm:"type:varchar(16);index;not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
}

func (ticketRow) TableName() string { return "support_tickets" }

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func toUserRow(i int, u *model.User) userRow {
	return userRow{ID: u.ID, Position: i, Username: u.Username, Email: u.Email, Bio: u.Bio, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt}
}

func (r userRow) model() *model.User {
	return &model.User{ID: r.ID, Username: r.Username, Email: r.Email, Bio: r.Bio, CreatedAt: r.CreatedAt.UTC(), UpdatedAt: utcPtr(r.UpdatedAt)}
}

func toPostRow(i int, p *model.Post) postRow {
	return postRow{ID: p.ID, Position: i, AuthorID: p.AuthorID, Content: p.Content, CreatedAt: p.CreatedAt}
}

func (r postRow) model() *model.Post {
	return &model.Post{ID: r.ID, AuthorID: r.AuthorID, Content: r.Content, CreatedAt: r.CreatedAt.UTC()}
}

func toCommentRow(i int, c *model.Comment) commentRow {
	return commentRow{ID: c.ID, Position: i, PostID: c.PostID, AuthorID: c.AuthorID, Content: c.Content, CreatedAt: c.CreatedAt}
}

func (r commentRow) model() *model.Comment {
	return &model.Comment{ID: r.ID, PostID: r.PostID, AuthorID: r.AuthorID, Content: r.Content, CreatedAt: r.CreatedAt.UTC()}
}

func toLikeRow(i int, l *model.Like) likeRow {
	return likeRow{ID: l.ID, Position: i, PostID: l.PostID, UserID: l.UserID, CreatedAt: l.CreatedAt}
}

func (r likeRow) model() *model.Like {
	return &model.Like{ID: r.ID, PostID: r.PostID, UserID: r.UserID, CreatedAt: r.CreatedAt.UTC()}
}

func toFollowRow(i int, f *model.Follow) followRow {
	return followRow{ID: f.ID, Position: i, FollowerID: f.FollowerID, FollowingID: f.FollowingID, CreatedAt: f.CreatedAt}
}

func (r followRow) model() *model.Follow {
	return &model.Follow{ID: r.ID, FollowerID: r.FollowerID, FollowingID: r.FollowingID, CreatedAt: r.CreatedAt.UTC()}
}

func toTicketRow(i int, t *model.SupportTicket) ticketRow {
	return ticketRow{ID: t.ID, Position: i, Subject: t.Subject, Message: t.Message, UserID: t.UserID, Status: string(t.Status), CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}

func (r ticketRow) model() *model.SupportTicket {
	return &model.SupportTicket{ID: r.ID, Subject: r.Subject, Message: r.Message, UserID: r.UserID, Status: model.TicketStatus(r.Status), CreatedAt: r.CreatedAt.UTC(), UpdatedAt: utcPtr(r.UpdatedAt)}
}
