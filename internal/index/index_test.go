package index

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/orkud/internal/model"
	"github.com/d60-Lab/orkud/internal/store"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func graph() *store.Dataset {
	d := store.NewDataset()
	for _, id := range []string{"a", "b", "c"} {
		d.Users.Insert(&model.User{ID: id, Username: id})
	}
	d.Posts.Insert(&model.Post{ID: "p1", AuthorID: "a", CreatedAt: t0})
	d.Posts.Insert(&model.Post{ID: "p2", AuthorID: "b", CreatedAt: t0})
	d.Posts.Insert(&model.Post{ID: "p3", AuthorID: "a", CreatedAt: t0})

	d.Likes.Insert(&model.Like{ID: "l1", PostID: "p1", UserID: "b"})
	d.Likes.Insert(&model.Like{ID: "l2", PostID: "p1", UserID: "c"})
	d.Likes.Insert(&model.Like{ID: "l3", PostID: "p2", UserID: "a"})

	// inserted out of time order on purpose
	d.Comments.Insert(&model.Comment{ID: "c2", PostID: "p1", AuthorID: "c", CreatedAt: t0.Add(2 * time.Minute)})
	d.Comments.Insert(&model.Comment{ID: "c1", PostID: "p1", AuthorID: "b", CreatedAt: t0.Add(time.Minute)})
	d.Comments.Insert(&model.Comment{ID: "c3", PostID: "p1", AuthorID: "a", CreatedAt: t0.Add(2 * time.Minute)})
	d.Comments.Insert(&model.Comment{ID: "c4", PostID: "p2", AuthorID: "a", CreatedAt: t0})

	d.Follows.Insert(&model.Follow{ID: "f1", FollowerID: "b", FollowingID: "a"})
	d.Follows.Insert(&model.Follow{ID: "f2", FollowerID: "c", FollowingID: "a"})
	d.Follows.Insert(&model.Follow{ID: "f3", FollowerID: "a", FollowingID: "b"})
	return d
}

func TestIndex_Likes(t *testing.T) {
	x := New(graph())

	set := x.LikesOf("p1")
	assert.Equal(t, 2, set.Count())
	assert.True(t, set.Has("b"))
	assert.False(t, set.Has("a"))
	assert.Zero(t, x.LikesOf("missing").Count())

	l, ok := x.LikeOf("p2", "a")
	require.True(t, ok)
	assert.Equal(t, "l3", l.ID)
	_, ok = x.LikeOf("p2", "b")
	assert.False(t, ok)
}

func TestIndex_CommentsOldestFirstStable(t *testing.T) {
	x := New(graph())

	var ids []string
	for _, c := range x.CommentsOf("p1") {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"c1", "c2", "c3"}, ids)
	assert.Equal(t, 3, x.CommentCount("p1"))
	assert.Equal(t, 1, x.CommentCount("p2"))
	assert.Empty(t, x.CommentsOf("p3"))
}

func TestIndex_Follows(t *testing.T) {
	x := New(graph())

	assert.Equal(t, 2, x.FollowersOf("a"))
	assert.Equal(t, 1, x.FollowingOf("a"))
	assert.Equal(t, 0, x.FollowersOf("c"))

	assert.True(t, x.IsFollowing("b", "a"))
	assert.False(t, x.IsFollowing("a", "c"))
	f, ok := x.FollowOf("a", "b")
	require.True(t, ok)
	assert.Equal(t, "f3", f.ID)

	assert.Equal(t, []string{"b", "c"}, x.FollowerIDs("a"))
	assert.Equal(t, []string{"b"}, x.FollowingIDs("a"))
	assert.NotNil(t, x.FollowerIDs("c"))
	assert.Empty(t, x.FollowingIDs("c"))
}

func TestIndex_Posts(t *testing.T) {
	x := New(graph())

	assert.Equal(t, 2, x.PostCount("a"))
	assert.Zero(t, x.PostCount("c"))
}
