package application

import (
	"context"

	"go.uber.org/zap"

	enrollmentDomain "github.com/driventix/service-hotel/internal/domain/enrollment"
)

// TicketService applies payment outcomes to tickets. It is driven by the
// payment event consumer, not by the HTTP surface.
type TicketService struct {
	tickets enrollmentDomain.TicketRepository
	logger  *zap.Logger
}

// NewTicketService creates a new TicketService.
func NewTicketService(tickets enrollmentDomain.TicketRepository, logger *zap.Logger) *TicketService {
	return &TicketService{tickets: tickets, logger: logger}
}

// MarkPaid flips a ticket from RESERVED to PAID. Already-paid tickets are
// left untouched so redelivered payment events stay idempotent.
func (s *TicketService) MarkPaid(ctx context.Context, ticketID int64) error {
	ticket, err := s.tickets.FindByID(ctx, ticketID)
	if err != nil {
		return err
	}

	if ticket.IsPaid() {
		s.logger.Debug("ticket already paid", zap.Int64("ticket_id", ticketID))
		return nil
	}

	ticket.MarkPaid()
	if err := s.tickets.UpdateStatus(ctx, ticket); err != nil {
		return err
	}

	s.logger.Info("ticket marked paid", zap.Int64("ticket_id", ticketID))
	return nil
}
