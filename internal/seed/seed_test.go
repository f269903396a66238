package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/orkud/internal/repository"
	"github.com/d60-Lab/orkud/internal/service"
	"github.com/d60-Lab/orkud/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(context.Background(), repository.NewMemorySink())
	require.NoError(t, err)
	return st
}

func TestDemoFixture_Applies(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)
	fx, err := Demo()
	require.NoError(t, err)

	res, err := NewSeeder(st).Apply(ctx, fx)
	require.NoError(t, err)
	assert.Equal(t, Result{Users: 3, Posts: 3, Comments: 3, Likes: 4, Follows: 4, Tickets: 2}, res,
		"demo_user already exists and is reused")

	users := service.NewUserService(st)
	list, err := users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 4)

	feed, err := service.NewPostService(st).ListPosts(ctx, "")
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, "bob", feed[0].Author.Username)

	tickets, err := service.NewTicketService(st).ListTickets(ctx, "")
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Nil(t, tickets[1].UserID)
	assert.EqualValues(t, "in-progress", tickets[1].Status)
}

func TestApply_ReusesUsersAndKeepsEdges(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)
	fx, err := Parse([]byte(`
users:
  - {key: a, username: Ann}
  - {key: b, username: ben}
posts:
  - {key: p, author: a, content: hi}
likes:
  - {post: p, user: b}
  - {post: p, user: b}
follows:
  - {follower: a, following: b}
`))
	require.NoError(t, err)

	sd := NewSeeder(st)
	first, err := sd.Apply(ctx, fx)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Users)
	assert.Equal(t, 1, first.Likes, "duplicate like entries collapse")

	second, err := sd.Apply(ctx, fx)
	require.NoError(t, err)
	assert.Zero(t, second.Users)
	assert.Zero(t, second.Follows, "existing follow is left alone")

	st.View(func(d *store.Dataset) {
		assert.Equal(t, 3, d.Users.Len())
		assert.Equal(t, 1, d.Follows.Len())
	})
}

func TestApply_Errors(t *testing.T) {
	ctx := context.Background()

	unknown, err := Parse([]byte(`
users: [{key: a, username: ann}]
posts: [{key: p, author: zed, content: hi}]
`))
	require.NoError(t, err)
	_, err = NewSeeder(openStore(t)).Apply(ctx, unknown)
	assert.ErrorContains(t, err, `unknown user "zed"`)

	empty, err := Parse([]byte(`
users: [{key: a, username: ann}]
posts: [{key: p, author: a, content: ""}]
`))
	require.NoError(t, err)
	_, err = NewSeeder(openStore(t)).Apply(ctx, empty)
	assert.ErrorIs(t, err, service.ErrInvalidArgument)

	nameless, err := Parse([]byte(`users: [{key: a}]`))
	require.NoError(t, err)
	_, err = NewSeeder(openStore(t)).Apply(ctx, nameless)
	assert.Error(t, err)

	long := &Fixture{Users: []UserFixture{{Key: "a", Username: strings.Repeat("n", 65)}}}
	_, err = NewSeeder(openStore(t)).Apply(ctx, long)
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "username", verr.Field)
}

func TestApply_CountsBioInRunes(t *testing.T) {
	ctx := context.Background()

	// 200 runes, 600 bytes
	fits := &Fixture{Users: []UserFixture{{Key: "a", Username: "ann", Bio: strings.Repeat("日", 200)}}}
	res, err := NewSeeder(openStore(t)).Apply(ctx, fits)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Users)

	over := &Fixture{Users: []UserFixture{{Key: "a", Username: "ann", Bio: strings.Repeat("日", 201)}}}
	_, err = NewSeeder(openStore(t)).Apply(ctx, over)
	assert.ErrorIs(t, err, service.ErrInvalidArgument)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users: [{key: a, username: ann}]\n"), 0o644))

	fx, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, fx.Users, 1)
	assert.Equal(t, "ann", fx.Users[0].Username)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	_, err = Parse([]byte("users: {not: [a list"))
	assert.Error(t, err)
}
