package service

import (
	"context"

	"github.com/d60-Lab/orkud/internal/model"
	"github.com/d60-Lab/orkud/internal/readmodel"
	"github.com/d60-Lab/orkud/internal/store"
)

// FollowResult is the follow state between two users.
type FollowResult struct {
	Following bool `json:"following"`
}

// RelationshipService 关系链服务
type RelationshipService interface {
	ToggleFollow(ctx context.Context, followerID, followingID string) (FollowResult, error)
	FollowStatus(ctx context.Context, followerID, followingID string) (FollowResult, error)
	ListFollowers(ctx context.Context, userID string) ([]model.AuthorRef, error)
	ListFollowing(ctx context.Context, userID string) ([]model.AuthorRef, error)
}

type relationshipService struct {
	store *store.Store
}

func NewRelationshipService(s *store.Store) RelationshipService {
	return &relationshipService{store: s}
}

// ToggleFollow flips the follow edge followerID -> followingID and reports
// the resulting state.
func (s *relationshipService) ToggleFollow(ctx context.Context, followerID, followingID string) (FollowResult, error) {
	if err := required("userId", followerID); err != nil {
		return FollowResult{}, err
	}
	if followerID == followingID {
		return FollowResult{}, ErrFollowSelf
	}

	var res FollowResult
	err := s.store.Mutate(ctx, func(d *store.Dataset) error {
		if _, ok := d.Users.FindByID(followerID); !ok {
			return notFound("user", followerID)
		}
		if _, ok := d.Users.FindByID(followingID); !ok {
			return notFound("user", followingID)
		}
		if f, ok := readmodel.New(d).Index().FollowOf(followerID, followingID); ok {
			d.Follows.RemoveWhere(func(x *model.Follow) bool { return x.ID == f.ID })
			return nil
		}
		d.Follows.Insert(&model.Follow{
			ID:          s.store.NewID(),
			FollowerID:  followerID,
			FollowingID: followingID,
			CreatedAt:   s.store.Now(),
		})
		res.Following = true
		return nil
	})
	return res, err
}

// FollowStatus reports whether followerID follows followingID. An empty
// followerID (anonymous viewer) follows nobody.
func (s *relationshipService) FollowStatus(ctx context.Context, followerID, followingID string) (FollowResult, error) {
	if followerID == "" {
		return FollowResult{}, nil
	}
	var res FollowResult
	s.store.View(func(d *store.Dataset) {
		res.Following = readmodel.New(d).Index().IsFollowing(followerID, followingID)
	})
	return res, nil
}

func (s *relationshipService) ListFollowers(ctx context.Context, userID string) ([]model.AuthorRef, error) {
	return s.listRefs(userID, func(a readmodel.Assembler) []string { return a.Index().FollowerIDs(userID) })
}

func (s *relationshipService) ListFollowing(ctx context.Context, userID string) ([]model.AuthorRef, error) {
	return s.listRefs(userID, func(a readmodel.Assembler) []string { return a.Index().FollowingIDs(userID) })
}

func (s *relationshipService) listRefs(userID string, ids func(readmodel.Assembler) []string) ([]model.AuthorRef, error) {
	var (
		refs  []model.AuthorRef
		found bool
	)
	s.store.View(func(d *store.Dataset) {
		if _, ok := d.Users.FindByID(userID); !ok {
			return
		}
		found = true
		refs = make([]model.AuthorRef, 0)
		for _, id := range ids(readmodel.New(d)) {
			if u, ok := d.Users.FindByID(id); ok {
				refs = append(refs, *u.Ref())
			}
		}
	})
	if !found {
		return nil, notFound("user", userID)
	}
	return refs, nil
}
