package model

import "time"

// Profile field limits, counted in runes.
const (
	MaxUsernameLength = 64
	MaxEmailLength    = 255
	MaxBioLength      = 200
)

// User 用户
type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Bio       string     `json:"bio"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (u *User) EntityID() string { return u.ID }

// AuthorRef is the minimal user projection embedded in post and comment views.
type AuthorRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Ref returns the author projection of u, or nil when u is nil.
func (u *User) Ref() *AuthorRef {
	if u == nil {
		return nil
	}
	return &AuthorRef{ID: u.ID, Username: u.Username}
}
