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

// CreatePostInput is the payload of CreatePost.
type CreatePostInput struct {
	Content string `json:"content" validate:"required,max=1000"`
	UserID  string `json:"userId" validate:"required"`
}

// AddCommentInput is the payload of AddComment.
type AddCommentInput struct {
	PostID  string `json:"postId" validate:"required"`
	Content string `json:"content" validate:"required,max=500"`
	UserID  string `json:"userId" validate:"required"`
}

// LikeResult is the state after a like toggle.
type LikeResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likesCount"`
}

// PostService 帖子、点赞与评论
type PostService interface {
	CreatePost(ctx context.Context, in CreatePostInput) (readmodel.PostView, error)
	ListPosts(ctx context.Context, viewerID string) ([]readmodel.PostView, error)
	GetPost(ctx context.Context, postID, viewerID string) (readmodel.PostDetailView, error)
	ToggleLike(ctx context.Context, postID, userID string) (LikeResult, error)
	AddComment(ctx context.Context, in AddCommentInput) (readmodel.CommentView, error)
	SearchPosts(ctx context.Context, query string) ([]readmodel.PostView, error)
}

type postService struct {
	store *store.Store
}

func NewPostService(s *store.Store) PostService { return &postService{store: s} }

func (s *postService) CreatePost(ctx context.Context, in CreatePostInput) (readmodel.PostView, error) {
	if err := validateInput(in); err != nil {
		return readmodel.PostView{}, err
	}

	var view readmodel.PostView
	err := s.store.Mutate(ctx, func(d *store.Dataset) error {
		if _, ok := d.Users.FindByID(in.UserID); !ok {
			return notFound("user", in.UserID)
		}
		p := &model.Post{
			ID:        s.store.NewID(),
			Content:   in.Content,
			AuthorID:  in.UserID,
			CreatedAt: s.store.Now(),
		}
		d.Posts.Insert(p)
		view = readmodel.New(d).Post(p, "")
		return nil
	})
	if err != nil {
		return view, err
	}
	logger.Debug("post created", zap.String("post_id", view.ID), zap.String("user_id", in.UserID))
	return view, nil
}

func (s *postService) ListPosts(ctx context.Context, viewerID string) ([]readmodel.PostView, error) {
	var views []readmodel.PostView
	s.store.View(func(d *store.Dataset) {
		views = readmodel.New(d).Feed(viewerID)
	})
	return views, nil
}

func (s *postService) GetPost(ctx context.Context, postID, viewerID string) (readmodel.PostDetailView, error) {
	var (
		view  readmodel.PostDetailView
		found bool
	)
	s.store.View(func(d *store.Dataset) {
		p, ok := d.Posts.FindByID(postID)
		if !ok {
			return
		}
		found = true
		view = readmodel.New(d).PostDetail(p, viewerID)
	})
	if !found {
		return view, notFound("post", postID)
	}
	return view, nil
}

// ToggleLike flips userID's like on postID and reports the resulting state.
func (s *postService) ToggleLike(ctx context.Context, postID, userID string) (LikeResult, error) {
	if err := required("userId", userID); err != nil {
		return LikeResult{}, err
	}

	var res LikeResult
	err := s.store.Mutate(ctx, func(d *store.Dataset) error {
		if _, ok := d.Posts.FindByID(postID); !ok {
			return notFound("post", postID)
		}
		if _, ok := d.Users.FindByID(userID); !ok {
			return notFound("user", userID)
		}
		idx := readmodel.New(d).Index()
		if like, ok := idx.LikeOf(postID, userID); ok {
			d.Likes.RemoveWhere(func(l *model.Like) bool { return l.ID == like.ID })
		} else {
			d.Likes.Insert(&model.Like{
				ID:        s.store.NewID(),
				PostID:    postID,
				UserID:    userID,
				CreatedAt: s.store.Now(),
			})
			res.Liked = true
		}
		res.LikesCount = idx.LikesOf(postID).Count()
		return nil
	})
	return res, err
}

func (s *postService) AddComment(ctx context.Context, in AddCommentInput) (readmodel.CommentView, error) {
	if err := validateInput(in); err != nil {
		return readmodel.CommentView{}, err
	}

	var view readmodel.CommentView
	err := s.store.Mutate(ctx, func(d *store.Dataset) error {
		if _, ok := d.Posts.FindByID(in.PostID); !ok {
			return notFound("post", in.PostID)
		}
		if _, ok := d.Users.FindByID(in.UserID); !ok {
			return notFound("user", in.UserID)
		}
		c := &model.Comment{
			ID:        s.store.NewID(),
			PostID:    in.PostID,
			AuthorID:  in.UserID,
			Content:   in.Content,
			CreatedAt: s.store.Now(),
		}
		d.Comments.Insert(c)
		view = readmodel.New(d).Comment(c)
		return nil
	})
	return view, err
}

// SearchPosts matches query case-insensitively against post content. An
// empty query matches nothing.
func (s *postService) SearchPosts(ctx context.Context, query string) ([]readmodel.PostView, error) {
	q := strings.ToLower(query)
	views := []readmodel.PostView{}
	if q == "" {
		return views, nil
	}
	s.store.View(func(d *store.Dataset) {
		matches := d.Posts.FindAll(func(p *model.Post) bool {
			return strings.Contains(strings.ToLower(p.Content), q)
		})
		views = readmodel.New(d).Posts(matches, "")
	})
	return views, nil
}
