package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestSuccessAndCreated(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) { Success(c, gin.H{"a": 1}) })
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)

	w, _ = serve(t, func(c *gin.Context) { Created(c, nil) })
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestErrors(t *testing.T) {
	cases := []struct {
		h      gin.HandlerFunc
		status int
		code   string
	}{
		{func(c *gin.Context) { BadRequest(c, "bad") }, http.StatusBadRequest, "BAD_REQUEST"},
		{func(c *gin.Context) { NotFound(c, "gone") }, http.StatusNotFound, "NOT_FOUND"},
		{func(c *gin.Context) { TooManyRequests(c) }, http.StatusTooManyRequests, "RATE_LIMITED"},
		{func(c *gin.Context) { InternalError(c, errors.New("secret detail")) }, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		w, body := serve(t, tc.h)
		assert.Equal(t, tc.status, w.Code)
		assert.False(t, body.Success)
		require.NotNil(t, body.Error)
		assert.Equal(t, tc.code, body.Error.Code)
		assert.NotContains(t, w.Body.String(), "secret detail")
	}
}
