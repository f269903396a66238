package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/orkud/internal/service"
	"github.com/d60-Lab/orkud/pkg/response"
)

type userRef struct {
	UserID string `json:"userId"`
}

type commentRequest struct {
	Content string `json:"content"`
	UserID  string `json:"userId"`
}

// ListPosts 动态流
// @Summary 全站动态（按时间倒序）
// @Tags 帖子
// @Produce json
// @Param userId query string false "查看者ID，用于计算 isLiked"
// @Success 200 {object} response.Response{data=[]readmodel.PostView}
// @Router /api/posts [get]
func (h *Handler) ListPosts(c *gin.Context) {
	list, err := h.postService.ListPosts(c.Request.Context(), c.Query("userId"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, list)
}

// CreatePost 发帖
// @Summary 发布帖子
// @Tags 帖子
// @Accept json
// @Produce json
// @Param request body service.CreatePostInput true "帖子内容"
// @Success 201 {object} response.Response{data=readmodel.PostView}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req service.CreatePostInput
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.postService.CreatePost(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, view)
}

// GetPost 帖子详情
// @Summary 帖子详情（含评论）
// @Tags 帖子
// @Produce json
// @Param id path string true "帖子ID"
// @Param userId query string false "查看者ID"
// @Success 200 {object} response.Response{data=readmodel.PostDetailView}
// @Failure 404 {object} response.Response
// @Router /api/posts/{id} [get]
func (h *Handler) GetPost(c *gin.Context) {
	view, err := h.postService.GetPost(c.Request.Context(), c.Param("id"), c.Query("userId"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, view)
}

// ToggleLike 点赞/取消点赞
// @Summary 切换点赞状态
// @Tags 帖子
// @Accept json
// @Produce json
// @Param id path string true "帖子ID"
// @Param request body userRef true "点赞用户"
// @Success 200 {object} response.Response{data=service.LikeResult}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/posts/{id}/like [post]
func (h *Handler) ToggleLike(c *gin.Context) {
	var req userRef
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.postService.ToggleLike(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, res)
}

// AddComment 评论
// @Summary 发表评论
// @Tags 帖子
// @Accept json
// @Produce json
// @Param id path string true "帖子ID"
// @Param request body commentRequest true "评论内容"
// @Success 201 {object} response.Response{data=readmodel.CommentView}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/posts/{id}/comment [post]
func (h *Handler) AddComment(c *gin.Context) {
	var req commentRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.postService.AddComment(c.Request.Context(), service.AddCommentInput{
		PostID:  c.Param("id"),
		Content: req.Content,
		UserID:  req.UserID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, view)
}

// SearchPosts 搜索帖子
// @Summary 按内容搜索帖子
// @Tags 搜索
// @Produce json
// @Param q query string false "关键词"
// @Success 200 {object} response.Response{data=[]readmodel.PostView}
// @Router /api/search/posts [get]
func (h *Handler) SearchPosts(c *gin.Context) {
	list, err := h.postService.SearchPosts(c.Request.Context(), c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, list)
}
