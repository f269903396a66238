package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/orkud/internal/service"
	"github.com/d60-Lab/orkud/pkg/response"
)

// CurrentUser 当前用户
// @Summary 当前登录用户（模拟）
// @Tags 用户
// @Produce json
// @Success 200 {object} response.Response{data=model.User}
// @Router /api/user/current [get]
func (h *Handler) CurrentUser(c *gin.Context) {
	u, err := h.userService.CurrentUser(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, u)
}

// ListUsers 用户列表
// @Summary 全部用户
// @Tags 用户
// @Produce json
// @Success 200 {object} response.Response{data=[]model.User}
// @Router /api/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	list, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, list)
}

// GetUser 用户主页
// @Summary 用户资料与计数
// @Tags 用户
// @Produce json
// @Param id path string true "用户ID"
// @Success 200 {object} response.Response{data=readmodel.UserView}
// @Failure 404 {object} response.Response
// @Router /api/users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	view, err := h.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, view)
}

// UpdateUser 修改资料
// @Summary 部分更新用户资料
// @Tags 用户
// @Accept json
// @Produce json
// @Param id path string true "用户ID"
// @Param request body service.UpdateUserInput true "资料字段"
// @Success 200 {object} response.Response{data=model.User}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/users/{id} [put]
func (h *Handler) UpdateUser(c *gin.Context) {
	var req service.UpdateUserInput
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, u)
}

// DeleteUser 注销用户
// @Summary 删除用户及其帖子、评论、点赞和关注
// @Tags 用户
// @Produce json
// @Param id path string true "用户ID"
// @Success 200 {object} response.Response{data=service.DeleteResult}
// @Router /api/users/{id} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	res, err := h.userService.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, res)
}

// SearchUsers 搜索用户
// @Summary 按用户名或邮箱搜索
// @Tags 搜索
// @Produce json
// @Param q query string false "关键词"
// @Success 200 {object} response.Response{data=[]model.User}
// @Router /api/search/users [get]
func (h *Handler) SearchUsers(c *gin.Context) {
	list, err := h.userService.SearchUsers(c.Request.Context(), c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, list)
}
