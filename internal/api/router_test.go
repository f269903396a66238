package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/orkud/config"
	"github.com/d60-Lab/orkud/internal/api/handler"
	"github.com/d60-Lab/orkud/internal/repository"
	"github.com/d60-Lab/orkud/internal/service"
	"github.com/d60-Lab/orkud/internal/store"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	sink   *repository.MemorySink
	demoID string
}

func testConfig() *config.Config {
	return &config.Config{Server: config.ServerConfig{Mode: gin.TestMode}}
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()
	sink := repository.NewMemorySink()
	st, err := store.Open(context.Background(), sink)
	require.NoError(t, err)

	h := handler.NewHandler(
		service.NewPostService(st),
		service.NewUserService(st),
		service.NewRelationshipService(st),
		service.NewTicketService(st),
	)
	s := &testServer{t: t, router: NewRouter(cfg, h), sink: sink}

	var cur struct {
		ID string `json:"id"`
	}
	s.ok(s.do(http.MethodGet, "/api/user/current", nil), &cur)
	s.demoID = cur.ID
	return s
}

func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// ok asserts a successful envelope and decodes its data into out.
func (s *testServer) ok(w *httptest.ResponseRecorder, out any) {
	s.t.Helper()
	require.Less(s.t, w.Code, 300, w.Body.String())
	var env envelope
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(s.t, env.Success)
	if out != nil {
		require.NoError(s.t, json.Unmarshal(env.Data, out))
	}
}

func (s *testServer) fails(w *httptest.ResponseRecorder, status int, code string) {
	s.t.Helper()
	require.Equal(s.t, status, w.Code, w.Body.String())
	var env envelope
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(s.t, env.Success)
	require.NotNil(s.t, env.Error)
	assert.Equal(s.t, code, env.Error.Code)
}

func TestHealthAndRequestID(t *testing.T) {
	s := newTestServer(t, testConfig())
	w := s.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestPostFlow(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := s.do(http.MethodPost, "/api/posts", gin.H{"content": "hello world", "userId": s.demoID})
	assert.Equal(t, http.StatusCreated, w.Code)
	var post struct {
		ID     string `json:"id"`
		UserID string `json:"userId"`
		Author struct {
			Username string `json:"username"`
		} `json:"author"`
		LikesCount    int `json:"likesCount"`
		CommentsCount int `json:"commentsCount"`
	}
	s.ok(w, &post)
	assert.Equal(t, s.demoID, post.UserID)
	assert.Equal(t, store.DefaultUsername, post.Author.Username)

	var like service.LikeResult
	s.ok(s.do(http.MethodPost, "/api/posts/"+post.ID+"/like", gin.H{"userId": s.demoID}), &like)
	assert.Equal(t, service.LikeResult{Liked: true, LikesCount: 1}, like)

	w = s.do(http.MethodPost, "/api/posts/"+post.ID+"/comment", gin.H{"content": "first!", "userId": s.demoID})
	assert.Equal(t, http.StatusCreated, w.Code)

	var detail struct {
		LikesCount int   `json:"likesCount"`
		IsLiked    *bool `json:"isLiked"`
		Comments   []struct {
			Content string `json:"content"`
		} `json:"comments"`
	}
	s.ok(s.do(http.MethodGet, "/api/posts/"+post.ID+"?userId="+s.demoID, nil), &detail)
	assert.Equal(t, 1, detail.LikesCount)
	require.NotNil(t, detail.IsLiked)
	assert.True(t, *detail.IsLiked)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "first!", detail.Comments[0].Content)

	var feed []struct {
		ID string `json:"id"`
	}
	s.ok(s.do(http.MethodGet, "/api/posts", nil), &feed)
	require.Len(t, feed, 1)
	assert.Equal(t, post.ID, feed[0].ID)

	var found []struct {
		ID string `json:"id"`
	}
	s.ok(s.do(http.MethodGet, "/api/search/posts?q=WORLD", nil), &found)
	assert.Len(t, found, 1)
}

func TestPostErrors(t *testing.T) {
	s := newTestServer(t, testConfig())

	s.fails(s.do(http.MethodPost, "/api/posts", gin.H{"userId": s.demoID}), http.StatusBadRequest, "BAD_REQUEST")
	s.fails(s.do(http.MethodPost, "/api/posts", gin.H{"content": "x", "userId": "ghost"}), http.StatusNotFound, "NOT_FOUND")
	s.fails(s.do(http.MethodGet, "/api/posts/missing", nil), http.StatusNotFound, "NOT_FOUND")
	s.fails(s.do(http.MethodPost, "/api/posts/missing/like", nil), http.StatusBadRequest, "BAD_REQUEST")

	req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewBufferString("{broken"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.fails(w, http.StatusBadRequest, "BAD_REQUEST")
}

func TestEmptyBodyReportsMissingField(t *testing.T) {
	s := newTestServer(t, testConfig())

	for name, contentLength := range map[string]int64{"declared": 0, "chunked": -1} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(""))
			req.Header.Set("Content-Type", "application/json")
			req.ContentLength = contentLength
			if contentLength < 0 {
				req.TransferEncoding = []string{"chunked"}
			}
			w := httptest.NewRecorder()
			s.router.ServeHTTP(w, req)

			s.fails(w, http.StatusBadRequest, "BAD_REQUEST")
			assert.Contains(t, w.Body.String(), "content")
			assert.NotContains(t, w.Body.String(), "invalid request body")
		})
	}
}

func TestUserAndFollowFlow(t *testing.T) {
	s := newTestServer(t, testConfig())

	s.fails(s.do(http.MethodPost, "/api/users/"+s.demoID+"/follow", gin.H{"userId": s.demoID}), http.StatusBadRequest, "BAD_REQUEST")
	s.fails(s.do(http.MethodPost, "/api/users/ghost/follow", gin.H{"userId": s.demoID}), http.StatusNotFound, "NOT_FOUND")

	var status service.FollowResult
	s.ok(s.do(http.MethodGet, "/api/users/"+s.demoID+"/follow-status", nil), &status)
	assert.False(t, status.Following)

	var user struct {
		Username  string  `json:"username"`
		Bio       string  `json:"bio"`
		UpdatedAt *string `json:"updatedAt"`
	}
	s.ok(s.do(http.MethodPut, "/api/users/"+s.demoID, gin.H{"username": "neo", "bio": ""}), &user)
	assert.Equal(t, "neo", user.Username)
	assert.Empty(t, user.Bio)
	assert.NotNil(t, user.UpdatedAt)

	var profile struct {
		PostsCount     int `json:"postsCount"`
		FollowersCount int `json:"followersCount"`
	}
	s.ok(s.do(http.MethodGet, "/api/users/"+s.demoID, nil), &profile)
	assert.Zero(t, profile.PostsCount)
	s.fails(s.do(http.MethodGet, "/api/users/ghost", nil), http.StatusNotFound, "NOT_FOUND")
	s.fails(s.do(http.MethodGet, "/api/users/ghost/followers", nil), http.StatusNotFound, "NOT_FOUND")

	var followers []any
	s.ok(s.do(http.MethodGet, "/api/users/"+s.demoID+"/followers", nil), &followers)
	assert.Empty(t, followers)

	var users []struct {
		Username string `json:"username"`
	}
	s.ok(s.do(http.MethodGet, "/api/search/users?q=NE", nil), &users)
	require.Len(t, users, 1)
	assert.Equal(t, "neo", users[0].Username)

	var del service.DeleteResult
	s.ok(s.do(http.MethodDelete, "/api/users/"+s.demoID, nil), &del)
	assert.True(t, del.Success)

	var all []any
	s.ok(s.do(http.MethodGet, "/api/users", nil), &all)
	assert.Empty(t, all)

	w := s.do(http.MethodGet, "/api/user/current", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":null}`, w.Body.String())
}

func TestTicketFlow(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := s.do(http.MethodPost, "/api/support/tickets", gin.H{"subject": "help", "message": "it broke", "userId": s.demoID})
	assert.Equal(t, http.StatusCreated, w.Code)
	var ticket struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	s.ok(w, &ticket)
	assert.Equal(t, "open", ticket.Status)

	s.ok(s.do(http.MethodPost, "/api/support/tickets", gin.H{"subject": "anon", "message": "hi"}), nil)
	s.fails(s.do(http.MethodPost, "/api/support/tickets", gin.H{"subject": "no message"}), http.StatusBadRequest, "BAD_REQUEST")

	var mine []any
	s.ok(s.do(http.MethodGet, "/api/support/tickets?userId="+s.demoID, nil), &mine)
	assert.Len(t, mine, 1)
	var all []any
	s.ok(s.do(http.MethodGet, "/api/support/tickets", nil), &all)
	assert.Len(t, all, 2)

	s.ok(s.do(http.MethodPatch, "/api/support/tickets/"+ticket.ID, gin.H{"status": "closed"}), &ticket)
	assert.Equal(t, "closed", ticket.Status)
	s.fails(s.do(http.MethodPatch, "/api/support/tickets/"+ticket.ID, gin.H{"status": "done"}), http.StatusBadRequest, "BAD_REQUEST")
	s.fails(s.do(http.MethodPatch, "/api/support/tickets/missing", gin.H{"status": "open"}), http.StatusNotFound, "NOT_FOUND")
}

func TestPersistenceFailureIs500(t *testing.T) {
	s := newTestServer(t, testConfig())
	s.sink.FailSaves(errors.New("disk full"))

	s.fails(s.do(http.MethodPost, "/api/posts", gin.H{"content": "x", "userId": s.demoID}), http.StatusInternalServerError, "INTERNAL_ERROR")

	// the write is still visible
	var feed []any
	s.ok(s.do(http.MethodGet, "/api/posts", nil), &feed)
	assert.Len(t, feed, 1)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 2}
	s := newTestServer(t, cfg) // uses one token

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/users", nil).Code)
	s.fails(s.do(http.MethodGet, "/api/users", nil), http.StatusTooManyRequests, "RATE_LIMITED")
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/health", nil).Code, "ops routes are not limited")
}
