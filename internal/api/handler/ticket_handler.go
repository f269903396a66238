package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/orkud/internal/model"
	"github.com/d60-Lab/orkud/internal/service"
	"github.com/d60-Lab/orkud/pkg/response"
)

type ticketStatusRequest struct {
	Status model.TicketStatus `json:"status"`
}

// CreateTicket 提交工单
// @Summary 提交支持工单
// @Tags 支持
// @Accept json
// @Produce json
// @Param request body service.CreateTicketInput true "工单内容"
// @Success 201 {object} response.Response{data=model.SupportTicket}
// @Failure 400 {object} response.Response
// @Router /api/support/tickets [post]
func (h *Handler) CreateTicket(c *gin.Context) {
	var req service.CreateTicketInput
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.ticketService.CreateTicket(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, t)
}

// ListTickets 工单列表
// @Summary 查询工单（可按用户过滤）
// @Tags 支持
// @Produce json
// @Param userId query string false "用户ID"
// @Success 200 {object} response.Response{data=[]model.SupportTicket}
// @Router /api/support/tickets [get]
func (h *Handler) ListTickets(c *gin.Context) {
	list, err := h.ticketService.ListTickets(c.Request.Context(), c.Query("userId"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, list)
}

// UpdateTicketStatus 更新工单状态
// @Summary 更新工单状态
// @Tags 支持
// @Accept json
// @Produce json
// @Param id path string true "工单ID"
// @Param request body ticketStatusRequest true "新状态"
// @Success 200 {object} response.Response{data=model.SupportTicket}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/support/tickets/{id} [patch]
func (h *Handler) UpdateTicketStatus(c *gin.Context) {
	var req ticketStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.ticketService.UpdateTicketStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, t)
}
