package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	enrollmentDomain "github.com/driventix/service-hotel/internal/domain/enrollment"
	"github.com/driventix/service-hotel/internal/platform/domain"
)

func paidHotelTicket(id, enrollmentID int64) *enrollmentDomain.Ticket {
	return enrollmentDomain.ReconstructTicket(id, enrollmentID, enrollmentDomain.StatusPaid, enrollmentDomain.TicketType{
		ID:            1,
		Name:          "Full Pass",
		PriceCents:    49900,
		IsRemote:      false,
		IncludesHotel: true,
	}, time.Now())
}

func TestEligibilityService_CheckEligibility_Eligible(t *testing.T) {
	enrollments := &MockEnrollmentRepository{}
	tickets := &MockTicketRepository{}
	svc := NewEligibilityService(enrollments, tickets, zap.NewNop())

	enr := enrollmentDomain.Reconstruct(10, 42, time.Now())
	enrollments.On("FindByUserID", context.Background(), int64(42)).Return(enr, nil)
	tickets.On("FindByEnrollmentID", context.Background(), int64(10)).Return(paidHotelTicket(7, 10), nil)

	err := svc.CheckEligibility(context.Background(), 42)

	require.NoError(t, err)
	enrollments.AssertExpectations(t)
	tickets.AssertExpectations(t)
}

func TestEligibilityService_CheckEligibility_NoEnrollment(t *testing.T) {
	enrollments := &MockEnrollmentRepository{}
	tickets := &MockTicketRepository{}
	svc := NewEligibilityService(enrollments, tickets, zap.NewNop())

	enrollments.On("FindByUserID", context.Background(), int64(42)).
		Return(nil, domain.NewNotFoundError("Enrollment", "user 42"))

	err := svc.CheckEligibility(context.Background(), 42)

	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	tickets.AssertNotCalled(t, "FindByEnrollmentID")
}

func TestEligibilityService_CheckEligibility_NoTicket(t *testing.T) {
	enrollments := &MockEnrollmentRepository{}
	tickets := &MockTicketRepository{}
	svc := NewEligibilityService(enrollments, tickets, zap.NewNop())

	enr := enrollmentDomain.Reconstruct(10, 42, time.Now())
	enrollments.On("FindByUserID", context.Background(), int64(42)).Return(enr, nil)
	tickets.On("FindByEnrollmentID", context.Background(), int64(10)).
		Return(nil, domain.NewNotFoundError("Ticket", "enrollment 10"))

	err := svc.CheckEligibility(context.Background(), 42)

	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestEligibilityService_CheckEligibility_TicketDoesNotGrantAccess(t *testing.T) {
	cases := []struct {
		name   string
		ticket *enrollmentDomain.Ticket
	}{
		{
			name: "reserved ticket",
			ticket: enrollmentDomain.ReconstructTicket(7, 10, enrollmentDomain.StatusReserved, enrollmentDomain.TicketType{
				ID: 1, Name: "Full Pass", IncludesHotel: true,
			}, time.Now()),
		},
		{
			name: "remote ticket",
			ticket: enrollmentDomain.ReconstructTicket(7, 10, enrollmentDomain.StatusPaid, enrollmentDomain.TicketType{
				ID: 2, Name: "Remote Pass", IsRemote: true, IncludesHotel: true,
			}, time.Now()),
		},
		{
			name: "ticket without hotel",
			ticket: enrollmentDomain.ReconstructTicket(7, 10, enrollmentDomain.StatusPaid, enrollmentDomain.TicketType{
				ID: 3, Name: "Conference Only", IncludesHotel: false,
			}, time.Now()),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enrollments := &MockEnrollmentRepository{}
			tickets := &MockTicketRepository{}
			svc := NewEligibilityService(enrollments, tickets, zap.NewNop())

			enr := enrollmentDomain.Reconstruct(10, 42, time.Now())
			enrollments.On("FindByUserID", context.Background(), int64(42)).Return(enr, nil)
			tickets.On("FindByEnrollmentID", context.Background(), int64(10)).Return(tc.ticket, nil)

			err := svc.CheckEligibility(context.Background(), 42)

			require.Error(t, err)
			assert.Equal(t, domain.KindPaymentRequired, domain.KindOf(err))
		})
	}
}
