package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/d60-Lab/orkud/internal/store"
)

const insertBatchSize = 500

// GormSink stores the snapshot as six SQL tables. Every Save replaces all
// rows inside one transaction.
type GormSink struct {
	db *gorm.DB
}

// NewGormSink migrates the snapshot tables and returns the sink.
func NewGormSink(db *gorm.DB) (*GormSink, error) {
	if err := db.AutoMigrate(&userRow{}, &postRow{}, &commentRow{}, &likeRow{}, &followRow{}, &ticketRow{}); err != nil {
		return nil, fmt.Errorf("migrate snapshot tables: %w", err)
	}
	return &GormSink{db: db}, nil
}

func (s *GormSink) Load(ctx context.Context) (*store.Dataset, error) {
	db := s.db.WithContext(ctx)
	d := store.NewDataset()

	var users []userRow
	if err := db.Order("position").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	for _, r := range users {
		d.Users.Insert(r.model())
	}

	var posts []postRow
	if err := db.Order("position").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}
	for _, r := range posts {
		d.Posts.Insert(r.model())
	}

	var comments []commentRow
	if err := db.Order("position").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	for _, r := range comments {
		d.Comments.Insert(r.model())
	}

	var likes []likeRow
	if err := db.Order("position").Find(&likes).Error; err != nil {
		return nil, fmt.Errorf("load likes: %w", err)
	}
	for _, r := range likes {
		d.Likes.Insert(r.model())
	}

	var follows []followRow
	if err := db.Order("position").Find(&follows).Error; err != nil {
		return nil, fmt.Errorf("load follows: %w", err)
	}
	for _, r := range follows {
		d.Follows.Insert(r.model())
	}

	var tickets []ticketRow
	if err := db.Order("position").Find(&tickets).Error; err != nil {
		return nil, fmt.Errorf("load support tickets: %w", err)
	}
	for _, r := range tickets {
		d.SupportTickets.Insert(r.model())
	}
	return d, nil
}

func (s *GormSink) Save(ctx context.Context, d *store.Dataset) error {
	users := make([]userRow, 0, d.Users.Len())
	for i, u := range d.Users.FindAll(nil) {
		users = append(users, toUserRow(i, u))
	}
	posts := make([]postRow, 0, d.Posts.Len())
	for i, p := range d.Posts.FindAll(nil) {
		posts = append(posts, toPostRow(i, p))
	}
	comments := make([]commentRow, 0, d.Comments.Len())
	for i, c := range d.Comments.FindAll(nil) {
		comments = append(comments, toCommentRow(i, c))
	}
	likes := make([]likeRow, 0, d.Likes.Len())
	for i, l := range d.Likes.FindAll(nil) {
		likes = append(likes, toLikeRow(i, l))
	}
	follows := make([]followRow, 0, d.Follows.Len())
	for i, f := range d.Follows.FindAll(nil) {
		follows = append(follows, toFollowRow(i, f))
	}
	tickets := make([]ticketRow, 0, d.SupportTickets.Len())
	for i, t := range d.SupportTickets.FindAll(nil) {
		tickets = append(tickets, toTicketRow(i, t))
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := replaceAll(tx, users); err != nil {
			return fmt.Errorf("save users: %w", err)
		}
		if err := replaceAll(tx, posts); err != nil {
			return fmt.Errorf("save posts: %w", err)
		}
		if err := replaceAll(tx, comments); err != nil {
			return fmt.Errorf("save comments: %w", err)
		}
		if err := replaceAll(tx, likes); err != nil {
			return fmt.Errorf("save likes: %w", err)
		}
		if err := replaceAll(tx, follows); err != nil {
			return fmt.Errorf("save follows: %w", err)
		}
		if err := replaceAll(tx, tickets); err != nil {
			return fmt.Errorf("save support tickets: %w", err)
		}
		return nil
	})
}

// replaceAll empties the table behind R and inserts rows in batches.
func replaceAll[R any](tx *gorm.DB, rows []R) error {
	var zero R
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&zero).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.CreateInBatches(&rows, insertBatchSize).Error
}
