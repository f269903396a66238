// Package handler exposes the social graph over HTTP.
package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/orkud/internal/service"
	"github.com/d60-Lab/orkud/pkg/response"
)

// Handler bundles the services behind the HTTP routes.
type Handler struct {
	postService   service.PostService
	userService   service.UserService
	relService    service.RelationshipService
	ticketService service.TicketService
}

func NewHandler(
	postService service.PostService,
	userService service.UserService,
	relService service.RelationshipService,
	ticketService service.TicketService,
) *Handler {
	return &Handler{
		postService:   postService,
		userService:   userService,
		relService:    relService,
		ticketService: ticketService,
	}
}

// fail maps a service error onto the response envelope.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}

// bindJSON decodes the request body into req. An empty body, declared or
// chunked, leaves req zero so that missing fields are reported by the service.
func bindJSON(c *gin.Context, req any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		response.BadRequest(c, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// Health 健康检查
// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} response.Response
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}
