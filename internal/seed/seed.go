// Package seed loads demo data from a YAML fixture file.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/d60-Lab/orkud/internal/model"
	"github.com/d60-Lab/orkud/internal/service"
	"github.com/d60-Lab/orkud/internal/store"
	"github.com/d60-Lab/orkud/pkg/logger"
)

// Fixture is a demo dataset. Records refer to users and posts by the
// fixture-local key, not by stored id.
type Fixture struct {
	Users    []UserFixture    `yaml:"users"`
	Posts    []PostFixture    `yaml:"posts"`
	Comments []CommentFixture `yaml:"comments"`
	Likes    []LikeFixture    `yaml:"likes"`
	Follows  []FollowFixture  `yaml:"follows"`
	Tickets  []TicketFixture  `yaml:"tickets"`
}

type UserFixture struct {
	Key      string `yaml:"key"`
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Bio      string `yaml:"bio"`
}

type PostFixture struct {
	Key     string `yaml:"key"`
	Author  string `yaml:"author"`
	Content string `yaml:"content"`
}

type CommentFixture struct {
	Post    string `yaml:"post"`
	Author  string `yaml:"author"`
	Content string `yaml:"content"`
}

type LikeFixture struct {
	Post string `yaml:"post"`
	User string `yaml:"user"`
}

type FollowFixture struct {
	Follower  string `yaml:"follower"`
	Following string `yaml:"following"`
}

type TicketFixture struct {
	User    string `yaml:"user"`
	Subject string `yaml:"subject"`
	Message string `yaml:"message"`
	Status  string `yaml:"status"`
}

// Result counts what Apply created.
type Result struct {
	Users, Posts, Comments, Likes, Follows, Tickets int
}

// Parse decodes a YAML fixture.
func Parse(b []byte) (*Fixture, error) {
	var fx Fixture
	if err := yaml.Unmarshal(b, &fx); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &fx, nil
}

// LoadFile reads and decodes the fixture at path.
func LoadFile(path string) (*Fixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(b)
}

// Seeder applies fixtures through the regular services so every record
// passes the same validation as API writes.
type Seeder struct {
	store   *store.Store
	posts   service.PostService
	rels    service.RelationshipService
	tickets service.TicketService
}

func NewSeeder(s *store.Store) *Seeder {
	return &Seeder{
		store:   s,
		posts:   service.NewPostService(s),
		rels:    service.NewRelationshipService(s),
		tickets: service.NewTicketService(s),
	}
}

// Apply writes fx. Users whose username already exists (case-insensitive)
// are reused rather than duplicated. Likes and follows that are already in
// place are left as they are.
func (sd *Seeder) Apply(ctx context.Context, fx *Fixture) (Result, error) {
	var res Result

	userIDs, created, err := sd.ensureUsers(ctx, fx.Users)
	if err != nil {
		return res, err
	}
	res.Users = created

	lookup := func(kind string, m map[string]string, key string) (string, error) {
		id, ok := m[key]
		if !ok {
			return "", fmt.Errorf("fixture: unknown %s %q", kind, key)
		}
		return id, nil
	}

	postIDs := make(map[string]string, len(fx.Posts))
	for _, p := range fx.Posts {
		uid, err := lookup("user", userIDs, p.Author)
		if err != nil {
			return res, err
		}
		view, err := sd.posts.CreatePost(ctx, service.CreatePostInput{Content: p.Content, UserID: uid})
		if err != nil {
			return res, fmt.Errorf("seed post %q: %w", p.Key, err)
		}
		if p.Key != "" {
			postIDs[p.Key] = view.ID
		}
		res.Posts++
	}

	for _, c := range fx.Comments {
		pid, err := lookup("post", postIDs, c.Post)
		if err != nil {
			return res, err
		}
		uid, err := lookup("user", userIDs, c.Author)
		if err != nil {
			return res, err
		}
		if _, err := sd.posts.AddComment(ctx, service.AddCommentInput{PostID: pid, Content: c.Content, UserID: uid}); err != nil {
			return res, fmt.Errorf("seed comment on %q: %w", c.Post, err)
		}
		res.Comments++
	}

	for _, l := range fx.Likes {
		pid, err := lookup("post", postIDs, l.Post)
		if err != nil {
			return res, err
		}
		uid, err := lookup("user", userIDs, l.User)
		if err != nil {
			return res, err
		}
		r, err := sd.posts.ToggleLike(ctx, pid, uid)
		if err != nil {
			return res, fmt.Errorf("seed like on %q: %w", l.Post, err)
		}
		if !r.Liked {
			// fixture listed the pair twice; put it back
			if _, err := sd.posts.ToggleLike(ctx, pid, uid); err != nil {
				return res, err
			}
			continue
		}
		res.Likes++
	}

	for _, f := range fx.Follows {
		from, err := lookup("user", userIDs, f.Follower)
		if err != nil {
			return res, err
		}
		to, err := lookup("user", userIDs, f.Following)
		if err != nil {
			return res, err
		}
		st, err := sd.rels.FollowStatus(ctx, from, to)
		if err != nil {
			return res, err
		}
		if st.Following {
			continue
		}
		if _, err := sd.rels.ToggleFollow(ctx, from, to); err != nil {
			return res, fmt.Errorf("seed follow %s -> %s: %w", f.Follower, f.Following, err)
		}
		res.Follows++
	}

	for _, t := range fx.Tickets {
		in := service.CreateTicketInput{Subject: t.Subject, Message: t.Message}
		if t.User != "" {
			if in.UserID, err = lookup("user", userIDs, t.User); err != nil {
				return res, err
			}
		}
		ticket, err := sd.tickets.CreateTicket(ctx, in)
		if err != nil {
			return res, fmt.Errorf("seed ticket %q: %w", t.Subject, err)
		}
		if t.Status != "" && model.TicketStatus(t.Status) != ticket.Status {
			if _, err := sd.tickets.UpdateTicketStatus(ctx, ticket.ID, model.TicketStatus(t.Status)); err != nil {
				return res, fmt.Errorf("seed ticket %q: %w", t.Subject, err)
			}
		}
		res.Tickets++
	}

	logger.Info("fixture applied",
		zap.Int("users", res.Users),
		zap.Int("posts", res.Posts),
		zap.Int("comments", res.Comments),
		zap.Int("likes", res.Likes),
		zap.Int("follows", res.Follows),
		zap.Int("tickets", res.Tickets),
	)
	return res, nil
}

// ensureUsers maps fixture keys to stored ids, inserting users that do not
// exist yet in a single mutation.
func (sd *Seeder) ensureUsers(ctx context.Context, users []UserFixture) (map[string]string, int, error) {
	ids := make(map[string]string, len(users))
	created := 0
	for _, u := range users {
		if u.Key == "" || u.Username == "" {
			return nil, 0, fmt.Errorf("fixture: user needs key and username")
		}
		for _, f := range []struct {
			field, value string
			max          int
		}{
			{"username", u.Username, model.MaxUsernameLength},
			{"email", u.Email, model.MaxEmailLength},
			{"bio", u.Bio, model.MaxBioLength},
		} {
			if utf8.RuneCountInString(f.value) > f.max {
				return nil, 0, &service.ValidationError{Field: f.field, Reason: fmt.Sprintf("must be at most %d characters", f.max)}
			}
		}
	}
	err := sd.store.Mutate(ctx, func(d *store.Dataset) error {
		for _, u := range users {
			if existing, ok := d.Users.Find(func(o *model.User) bool {
				return strings.EqualFold(o.Username, u.Username)
			}); ok {
				ids[u.Key] = existing.ID
				continue
			}
			nu := &model.User{
				ID:        sd.store.NewID(),
				Username:  u.Username,
				Email:     u.Email,
				Bio:       u.Bio,
				CreatedAt: sd.store.Now(),
			}
			d.Users.Insert(nu)
			ids[u.Key] = nu.ID
			created++
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return ids, created, nil
}

//go:embed demo.yaml
var demoFixture []byte

// Demo returns the built-in demo fixture.
func Demo() (*Fixture, error) { return Parse(demoFixture) }
