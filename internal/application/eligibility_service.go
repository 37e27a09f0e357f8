package application

import (
	"context"

	"go.uber.org/zap"

	enrollmentDomain "github.com/driventix/service-hotel/internal/domain/enrollment"
	"github.com/driventix/service-hotel/internal/platform/domain"
)

// EligibilityChecker decides whether a user may perform any hotel action.
type EligibilityChecker interface {
	CheckEligibility(ctx context.Context, userID int64) error
}

// EligibilityService implements the booking eligibility rules: the user must
// be enrolled, hold a ticket, and that ticket must be paid, in-person, and
// hotel-inclusive.
type EligibilityService struct {
	enrollments enrollmentDomain.EnrollmentRepository
	tickets     enrollmentDomain.TicketRepository
	logger      *zap.Logger
}

// NewEligibilityService creates a new EligibilityService.
func NewEligibilityService(
	enrollments enrollmentDomain.EnrollmentRepository,
	tickets enrollmentDomain.TicketRepository,
	logger *zap.Logger,
) *EligibilityService {
	return &EligibilityService{
		enrollments: enrollments,
		tickets:     tickets,
		logger:      logger,
	}
}

// CheckEligibility returns nil when the user may book. It is a pure
// read-and-decide: no state is touched.
func (s *EligibilityService) CheckEligibility(ctx context.Context, userID int64) error {
	enr, err := s.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}

	ticket, err := s.tickets.FindByEnrollmentID(ctx, enr.ID())
	if err != nil {
		return err
	}

	if !ticket.GrantsHotelAccess() {
		s.logger.Debug("user not eligible for hotel access",
			zap.Int64("user_id", userID),
			zap.String("ticket_status", string(ticket.Status())),
			zap.Bool("is_remote", ticket.Type().IsRemote),
			zap.Bool("includes_hotel", ticket.Type().IncludesHotel),
		)
		return domain.NewPaymentRequiredError("ticket does not grant hotel access")
	}

	return nil
}
