package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/d60-Lab/orkud/internal/model"
	"github.com/d60-Lab/orkud/internal/readmodel"
	"github.com/d60-Lab/orkud/internal/store"
	"github.com/d60-Lab/orkud/pkg/logger"
)

// UpdateUserInput is a partial profile update; nil fields are left alone.
// Empty username or email are ignored, an empty bio clears it.
type UpdateUserInput struct {
	Username *string `json:"username" validate:"omitempty,max=64"`
	Email    *string `json:"email" validate:"omitempty,max=255"`
	Bio      *string `json:"bio" validate:"omitempty,max=200"`
}

// DeleteResult is returned by DeleteUser.
type DeleteResult struct {
	Success bool `json:"success"`
}

// UserService 用户资料
type UserService interface {
	CurrentUser(ctx context.Context) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, userID string) (readmodel.UserView, error)
	UpdateUser(ctx context.Context, userID string, in UpdateUserInput) (model.User, error)
	DeleteUser(ctx context.Context, userID string) (DeleteResult, error)
	SearchUsers(ctx context.Context, query string) ([]model.User, error)
}

type userService struct {
	store *store.Store
}

func NewUserService(s *store.Store) UserService { return &userService{store: s} }

// CurrentUser stands in for login: it is the first user, or nil when there is none.
func (s *userService) CurrentUser(ctx context.Context) (*model.User, error) {
	var cur *model.User
	s.store.View(func(d *store.Dataset) {
		if all := d.Users.FindAll(nil); len(all) > 0 {
			u := *all[0]
			cur = &u
		}
	})
	return cur, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	s.store.View(func(d *store.Dataset) {
		users = copyUsers(d.Users.FindAll(nil))
	})
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, userID string) (readmodel.UserView, error) {
	var (
		view  readmodel.UserView
		found bool
	)
	s.store.View(func(d *store.Dataset) {
		u, ok := d.Users.FindByID(userID)
		if !ok {
			return
		}
		found = true
		view = readmodel.New(d).User(u)
	})
	if !found {
		return view, notFound("user", userID)
	}
	return view, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, in UpdateUserInput) (model.User, error) {
	if err := validateInput(in); err != nil {
		return model.User{}, err
	}

	var out model.User
	err := s.store.Mutate(ctx, func(d *store.Dataset) error {
		u, ok := d.Users.FindByID(userID)
		if !ok {
			return notFound("user", userID)
		}
		if in.Username != nil && *in.Username != "" && *in.Username != u.Username {
			_, taken := d.Users.Find(func(o *model.User) bool {
				return o.ID != u.ID && strings.EqualFold(o.Username, *in.Username)
			})
			if taken {
				return &ValidationError{Field: "username", Reason: "is already taken"}
			}
		}

		if in.Username != nil && *in.Username != "" {
			u.Username = *in.Username
		}
		if in.Email != nil && *in.Email != "" {
			u.Email = *in.Email
		}
		if in.Bio != nil {
			u.Bio = *in.Bio
		}
		now := s.store.Now()
		u.UpdatedAt = &now
		out = *u
		return nil
	})
	return out, err
}

// DeleteUser removes the user together with their posts, comments, likes and
// follow edges in both directions. Likes and comments other users left on the
// removed posts stay in the dataset. Deleting an absent user succeeds.
func (s *userService) DeleteUser(ctx context.Context, userID string) (DeleteResult, error) {
	var removed struct{ users, posts, comments, likes, follows int }
	err := s.store.Mutate(ctx, func(d *store.Dataset) error {
		removed.users = d.Users.RemoveWhere(func(u *model.User) bool { return u.ID == userID })
		removed.posts = d.Posts.RemoveWhere(func(p *model.Post) bool { return p.AuthorID == userID })
		removed.comments = d.Comments.RemoveWhere(func(c *model.Comment) bool { return c.AuthorID == userID })
		removed.likes = d.Likes.RemoveWhere(func(l *model.Like) bool { return l.UserID == userID })
		removed.follows = d.Follows.RemoveWhere(func(f *model.Follow) bool {
			return f.FollowerID == userID || f.FollowingID == userID
		})
		return nil
	})
	if err != nil {
		return DeleteResult{}, err
	}
	if removed.users > 0 {
		logger.Info("user deleted",
			zap.String("user_id", userID),
			zap.Int("posts", removed.posts),
			zap.Int("comments", removed.comments),
			zap.Int("likes", removed.likes),
			zap.Int("follows", removed.follows),
		)
	}
	return DeleteResult{Success: true}, nil
}

// SearchUsers matches query case-insensitively against username and email.
// An empty query matches nothing.
func (s *userService) SearchUsers(ctx context.Context, query string) ([]model.User, error) {
	q := strings.ToLower(query)
	users := []model.User{}
	if q == "" {
		return users, nil
	}
	s.store.View(func(d *store.Dataset) {
		users = copyUsers(d.Users.FindAll(func(u *model.User) bool {
			return strings.Contains(strings.ToLower(u.Username), q) ||
				(u.Email != "" && strings.Contains(strings.ToLower(u.Email), q))
		}))
	})
	return users, nil
}

func copyUsers(us []*model.User) []model.User {
	out := make([]model.User, 0, len(us))
	for _, u := range us {
		out = append(out, *u)
	}
	return out
}
