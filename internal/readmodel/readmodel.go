// Package readmodel joins raw records with index facts into the views
// returned to API callers.
package readmodel

import (
	"sort"
	"time"

	"github.com/d60-Lab/orkud/internal/index"
	"github.com/d60-Lab/orkud/internal/model"
	"github.com/d60-Lab/orkud/internal/store"
)

// PostView is a post with author and engagement counts. IsLiked is set only
// when the view was built for a viewer.
type PostView struct {
	ID            string           `json:"id"`
	Content       string           `json:"content"`
	AuthorID      string           `json:"userId"`
	CreatedAt     time.Time        `json:"createdAt"`
	Author        *model.AuthorRef `json:"author"`
	LikesCount    int              `json:"likesCount"`
	CommentsCount int              `json:"commentsCount"`
	IsLiked       *bool            `json:"isLiked,omitempty"`
}

// CommentView is a comment with its author.
type CommentView struct {
	ID        string           `json:"id"`
	PostID    string           `json:"postId"`
	AuthorID  string           `json:"userId"`
	Content   string           `json:"content"`
	CreatedAt time.Time        `json:"createdAt"`
	Author    *model.AuthorRef `json:"author"`
}

// PostDetailView is a post view with its comment thread, oldest first.
type PostDetailView struct {
	PostView
	Comments []CommentView `json:"comments"`
}

// UserView is a user profile with graph counts.
type UserView struct {
	model.User
	PostsCount     int `json:"postsCount"`
	FollowersCount int `json:"followersCount"`
	FollowingCount int `json:"followingCount"`
}

// Assembler builds views from one dataset. Like index.Index it must only be
// used while the store lock is held.
type Assembler struct {
	d   *store.Dataset
	idx index.Index
}

func New(d *store.Dataset) Assembler {
	return Assembler{d: d, idx: index.New(d)}
}

// Index exposes the underlying relationship index.
func (a Assembler) Index() index.Index { return a.idx }

func (a Assembler) author(id string) *model.AuthorRef {
	u, _ := a.d.Users.FindByID(id)
	return u.Ref()
}

// Post builds the view of p. viewerID, when non-empty, fills IsLiked.
func (a Assembler) Post(p *model.Post, viewerID string) PostView {
	likes := a.idx.LikesOf(p.ID)
	v := PostView{
		ID:            p.ID,
		Content:       p.Content,
		AuthorID:      p.AuthorID,
		CreatedAt:     p.CreatedAt,
		Author:        a.author(p.AuthorID),
		LikesCount:    likes.Count(),
		CommentsCount: a.idx.CommentCount(p.ID),
	}
	if viewerID != "" {
		liked := likes.Has(viewerID)
		v.IsLiked = &liked
	}
	return v
}

// Posts builds views of ps, keeping their order.
func (a Assembler) Posts(ps []*model.Post, viewerID string) []PostView {
	out := make([]PostView, 0, len(ps))
	for _, p := range ps {
		out = append(out, a.Post(p, viewerID))
	}
	return out
}

// Feed returns views of every post, newest first. Posts sharing a timestamp
// are ordered by reverse insertion.
func (a Assembler) Feed(viewerID string) []PostView {
	ps := a.d.Posts.FindAll(nil)
	for i, j := 0, len(ps)-1; i < j; i, j = i+1, j-1 {
		ps[i], ps[j] = ps[j], ps[i]
	}
	views := a.Posts(ps, viewerID)
	SortNewestFirst(views)
	return views
}

// PostDetail builds the detail view of p.
func (a Assembler) PostDetail(p *model.Post, viewerID string) PostDetailView {
	comments := a.idx.CommentsOf(p.ID)
	thread := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		thread = append(thread, a.Comment(c))
	}
	v := PostDetailView{PostView: a.Post(p, viewerID), Comments: thread}
	v.CommentsCount = len(thread)
	return v
}

// Comment builds the view of c.
func (a Assembler) Comment(c *model.Comment) CommentView {
	return CommentView{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		Author:    a.author(c.AuthorID),
	}
}

// User builds the profile view of u.
func (a Assembler) User(u *model.User) UserView {
	return UserView{
		User:           *u,
		PostsCount:     a.idx.PostCount(u.ID),
		FollowersCount: a.idx.FollowersOf(u.ID),
		FollowingCount: a.idx.FollowingOf(u.ID),
	}
}

// SortNewestFirst orders views by CreatedAt descending; ties keep their order.
func SortNewestFirst(views []PostView) {
	sort.SliceStable(views, func(i, j int) bool { return views[i].CreatedAt.After(views[j].CreatedAt) })
}
