package model

import "time"

// TicketStatus 工单状态
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in-progress"
	TicketStatusClosed     TicketStatus = "closed"
)

// Valid reports whether s is one of the known statuses.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed:
		return true
	}
	return false
}

const (
	MaxTicketSubjectLength = 100
	MaxTicketMessageLength = 1000
)

// SupportTicket 支持工单，UserID 为空表示匿名提交
type SupportTicket struct {
	ID        string       `json:"id"`
	Subject   string       `json:"subject"`
	Message   string       `json:"message"`
	UserID    *string      `json:"userId"`
	Status    TicketStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt *time.Time   `json:"updatedAt,omitempty"`
}

func (t *SupportTicket) EntityID() string { return t.ID }
