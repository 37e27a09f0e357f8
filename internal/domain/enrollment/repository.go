package enrollment

import "context"

// EnrollmentRepository defines the read contract for enrollments.
type EnrollmentRepository interface {
	// FindByUserID retrieves a user's enrollment.
	FindByUserID(ctx context.Context, userID int64) (*Enrollment, error)
}

// TicketRepository defines the persistence contract for tickets.
type TicketRepository interface {
	// FindByEnrollmentID retrieves the ticket attached to an enrollment,
	// including its ticket type.
	FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*Ticket, error)

	// FindByID retrieves a ticket by its identifier, including its type.
	FindByID(ctx context.Context, id int64) (*Ticket, error)

	// UpdateStatus persists a ticket's payment status.
	UpdateStatus(ctx context.Context, t *Ticket) error
}
