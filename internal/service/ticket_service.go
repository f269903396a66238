package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/d60-Lab/orkud/internal/model"
	"github.com/d60-Lab/orkud/internal/store"
	"github.com/d60-Lab/orkud/pkg/logger"
)

// CreateTicketInput is the payload of CreateTicket. UserID may be empty for
// anonymous tickets.
type CreateTicketInput struct {
	Subject string `json:"subject" validate:"required,max=100"`
	Message string `json:"message" validate:"required,max=1000"`
	UserID  string `json:"userId"`
}

type updateTicketStatusInput struct {
	Status string `json:"status" validate:"required,oneof=open in-progress closed"`
}

// TicketService 支持工单
type TicketService interface {
	CreateTicket(ctx context.Context, in CreateTicketInput) (model.SupportTicket, error)
	ListTickets(ctx context.Context, userID string) ([]model.SupportTicket, error)
	UpdateTicketStatus(ctx context.Context, ticketID string, status model.TicketStatus) (model.SupportTicket, error)
}

type ticketService struct {
	store *store.Store
}

func NewTicketService(s *store.Store) TicketService { return &ticketService{store: s} }

func (s *ticketService) CreateTicket(ctx context.Context, in CreateTicketInput) (model.SupportTicket, error) {
	if err := validateInput(in); err != nil {
		return model.SupportTicket{}, err
	}

	var out model.SupportTicket
	err := s.store.Mutate(ctx, func(d *store.Dataset) error {
		t := &model.SupportTicket{
			ID:        s.store.NewID(),
			Subject:   in.Subject,
			Message:   in.Message,
			Status:    model.TicketStatusOpen,
			CreatedAt: s.store.Now(),
		}
		if in.UserID != "" {
			if _, ok := d.Users.FindByID(in.UserID); !ok {
				return notFound("user", in.UserID)
			}
			uid := in.UserID
			t.UserID = &uid
		}
		d.SupportTickets.Insert(t)
		out = *t
		return nil
	})
	if err != nil {
		return out, err
	}
	logger.Info("support ticket created", zap.String("ticket_id", out.ID), zap.Bool("anonymous", out.UserID == nil))
	return out, nil
}

// ListTickets returns tickets in submission order, only userID's when it is set.
func (s *ticketService) ListTickets(ctx context.Context, userID string) ([]model.SupportTicket, error) {
	var out []model.SupportTicket
	s.store.View(func(d *store.Dataset) {
		ts := d.SupportTickets.FindAll(func(t *model.SupportTicket) bool {
			return userID == "" || (t.UserID != nil && *t.UserID == userID)
		})
		out = make([]model.SupportTicket, 0, len(ts))
		for _, t := range ts {
			out = append(out, *t)
		}
	})
	return out, nil
}

func (s *ticketService) UpdateTicketStatus(ctx context.Context, ticketID string, status model.TicketStatus) (model.SupportTicket, error) {
	if err := validateInput(updateTicketStatusInput{Status: string(status)}); err != nil {
		return model.SupportTicket{}, err
	}

	var out model.SupportTicket
	err := s.store.Mutate(ctx, func(d *store.Dataset) error {
		t, ok := d.SupportTickets.FindByID(ticketID)
		if !ok {
			return notFound("ticket", ticketID)
		}
		now := s.store.Now()
		t.Status = status
		t.UpdatedAt = &now
		out = *t
		return nil
	})
	return out, err
}
