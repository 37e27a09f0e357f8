package enrollment

import "time"

// TicketStatus is the payment state of a ticket.
type TicketStatus string

const (
	StatusReserved TicketStatus = "RESERVED"
	StatusPaid     TicketStatus = "PAID"
)

// TicketType classifies a ticket: remote-only tickets and tickets without
// hotel access never grant booking rights.
type TicketType struct {
	ID            int64
	Name          string
	PriceCents    int64
	IsRemote      bool
	IncludesHotel bool
}

// Ticket is the proof of event registration attached to an enrollment.
type Ticket struct {
	id           int64
	enrollmentID int64
	status       TicketStatus
	ticketType   TicketType
	updatedAt    time.Time
}

// ReconstructTicket rebuilds a Ticket from persistence data.
func ReconstructTicket(id, enrollmentID int64, status TicketStatus, ticketType TicketType, updatedAt time.Time) *Ticket {
	return &Ticket{
		id:           id,
		enrollmentID: enrollmentID,
		status:       status,
		ticketType:   ticketType,
		updatedAt:    updatedAt,
	}
}

// ID returns the ticket identifier.
func (t *Ticket) ID() int64 { return t.id }

// EnrollmentID returns the owning enrollment's identifier.
func (t *Ticket) EnrollmentID() int64 { return t.enrollmentID }

// Status returns the ticket's payment status.
func (t *Ticket) Status() TicketStatus { return t.status }

// Type returns the ticket's classification.
func (t *Ticket) Type() TicketType { return t.ticketType }

// UpdatedAt returns the last-updated timestamp.
func (t *Ticket) UpdatedAt() time.Time { return t.updatedAt }

// IsPaid reports whether the ticket has been paid for.
func (t *Ticket) IsPaid() bool {
	return t.status == StatusPaid
}

// GrantsHotelAccess reports whether the ticket entitles its holder to book a
// room: paid, in-person, and hotel-inclusive.
func (t *Ticket) GrantsHotelAccess() bool {
	return t.IsPaid() && !t.ticketType.IsRemote && t.ticketType.IncludesHotel
}

// MarkPaid flips the ticket to PAID. Marking an already-paid ticket is a no-op.
func (t *Ticket) MarkPaid() {
	if t.status == StatusPaid {
		return
	}
	t.status = StatusPaid
	t.updatedAt = time.Now().UTC()
}
