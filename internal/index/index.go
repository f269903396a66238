// Package index derives relationship facts (counts, membership, threads)
// from the raw collections of a store.Dataset. It keeps no state: every
// answer is a fresh scan, so it can never drift from the records.
package index

import (
	"sort"

	"github.com/d60-Lab/orkud/internal/model"
	"github.com/d60-Lab/orkud/internal/store"
)

// Index answers relationship queries over one dataset. Callers hold the
// store lock for as long as they use it.
type Index struct {
	d *store.Dataset
}

func New(d *store.Dataset) Index { return Index{d: d} }

// LikeSet is the set of likes on one post.
type LikeSet struct {
	likes []*model.Like
}

// Count returns the number of likes.
func (s LikeSet) Count() int { return len(s.likes) }

// Has reports whether userID is among the likers.
func (s LikeSet) Has(userID string) bool {
	for _, l := range s.likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// LikesOf returns the likes on postID.
func (x Index) LikesOf(postID string) LikeSet {
	return LikeSet{likes: x.d.Likes.FindAll(func(l *model.Like) bool { return l.PostID == postID })}
}

// LikeOf returns the like userID left on postID, if any.
func (x Index) LikeOf(postID, userID string) (*model.Like, bool) {
	return x.d.Likes.Find(func(l *model.Like) bool { return l.PostID == postID && l.UserID == userID })
}

// CommentsOf returns the comments on postID, oldest first. Comments with
// equal timestamps keep insertion order.
func (x Index) CommentsOf(postID string) []*model.Comment {
	cs := x.d.Comments.FindAll(func(c *model.Comment) bool { return c.PostID == postID })
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].CreatedAt.Before(cs[j].CreatedAt) })
	return cs
}

// CommentCount returns the number of comments on postID.
func (x Index) CommentCount(postID string) int {
	return x.d.Comments.Count(func(c *model.Comment) bool { return c.PostID == postID })
}

// FollowersOf counts users following userID.
func (x Index) FollowersOf(userID string) int {
	return x.d.Follows.Count(func(f *model.Follow) bool { return f.FollowingID == userID })
}

// FollowingOf counts users userID follows.
func (x Index) FollowingOf(userID string) int {
	return x.d.Follows.Count(func(f *model.Follow) bool { return f.FollowerID == userID })
}

// FollowOf returns the follow edge followerID -> followingID, if any.
func (x Index) FollowOf(followerID, followingID string) (*model.Follow, bool) {
	return x.d.Follows.Find(func(f *model.Follow) bool {
		return f.FollowerID == followerID && f.FollowingID == followingID
	})
}

// IsFollowing reports whether followerID follows followingID.
func (x Index) IsFollowing(followerID, followingID string) bool {
	_, ok := x.FollowOf(followerID, followingID)
	return ok
}

// PostCount returns the number of posts authored by userID.
func (x Index) PostCount(userID string) int {
	return x.d.Posts.Count(func(p *model.Post) bool { return p.AuthorID == userID })
}

// FollowerIDs lists the users following userID, in follow order.
func (x Index) FollowerIDs(userID string) []string {
	ids := []string{}
	for _, f := range x.d.Follows.FindAll(func(f *model.Follow) bool { return f.FollowingID == userID }) {
		ids = append(ids, f.FollowerID)
	}
	return ids
}

// FollowingIDs lists the users userID follows, in follow order.
func (x Index) FollowingIDs(userID string) []string {
	ids := []string{}
	for _, f := range x.d.Follows.FindAll(func(f *model.Follow) bool { return f.FollowerID == userID }) {
		ids = append(ids, f.FollowingID)
	}
	return ids
}
