package services

import (
	"context"
	"fmt"

	"github.com/avolkovs/bookmarket-cli/internal/client/api"
	"github.com/avolkovs/bookmarket-cli/internal/client/models"
)

// SupportService opens and lists support tickets.
type SupportService interface {
	List(ctx context.Context) ([]models.SupportTicket, error)
	Open(ctx context.Context, subject, message string) (*models.SupportTicket, error)
}

type supportService struct {
	client api.Client
}

func NewSupportService(client api.Client) SupportService {
	return &supportService{client: client}
}

var validSubjects = map[string]struct{}{
	models.TicketTechnical: {},
	models.TicketPayment:   {},
	models.TicketReport:    {},
	models.TicketOther:     {},
}

func (s *supportService) List(ctx context.Context) ([]models.SupportTicket, error) {
	page, err := s.client.ListTickets(ctx)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (s *supportService) Open(ctx context.Context, subject, message string) (*models.SupportTicket, error) {
	if _, ok := validSubjects[subject]; !ok {
		return nil, fmt.Errorf("%w: unknown subject %q", ErrBadInput, subject)
	}
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrBadInput)
	}
	return s.client.CreateTicket(ctx, subject, message)
}
