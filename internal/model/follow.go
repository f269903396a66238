package model

import "time"

// Follow 关注关系（A 关注 B）
// (FollowerID, FollowingID) is unique and FollowerID != FollowingID.
type Follow struct {
	ID          string    `json:"id"`
	FollowerID  string    `json:"followerId"`
	FollowingID string    `json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (f *Follow) EntityID() string { return f.ID }
