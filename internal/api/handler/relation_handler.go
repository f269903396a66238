package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/orkud/pkg/response"
)

// ToggleFollow 关注/取消关注
// @Summary 切换关注状态（body.userId 关注 :id）
// @Tags 关系链
// @Accept json
// @Produce json
// @Param id path string true "被关注用户ID"
// @Param request body userRef true "关注者"
// @Success 200 {object} response.Response{data=service.FollowResult}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/users/{id}/follow [post]
func (h *Handler) ToggleFollow(c *gin.Context) {
	var req userRef
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.relService.ToggleFollow(c.Request.Context(), req.UserID, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, res)
}

// FollowStatus 关注状态
// @Summary 查询 userId 是否关注 :id
// @Tags 关系链
// @Produce json
// @Param id path string true "被关注用户ID"
// @Param userId query string false "关注者ID"
// @Success 200 {object} response.Response{data=service.FollowResult}
// @Router /api/users/{id}/follow-status [get]
func (h *Handler) FollowStatus(c *gin.Context) {
	res, err := h.relService.FollowStatus(c.Request.Context(), c.Query("userId"), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, res)
}

// ListFollowing 查询某用户关注的人
// @Summary 查询关注列表
// @Tags 关系链
// @Param id path string true "用户ID"
// @Success 200 {object} response.Response{data=[]model.AuthorRef}
// @Failure 404 {object} response.Response
// @Router /api/users/{id}/following [get]
func (h *Handler) ListFollowing(c *gin.Context) {
	list, err := h.relService.ListFollowing(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, list)
}

// ListFollowers 查询某用户的粉丝
// @Summary 查询粉丝列表
// @Tags 关系链
// @Param id path string true "用户ID"
// @Success 200 {object} response.Response{data=[]model.AuthorRef}
// @Failure 404 {object} response.Response
// @Router /api/users/{id}/followers [get]
func (h *Handler) ListFollowers(c *gin.Context) {
	list, err := h.relService.ListFollowers(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, list)
}
