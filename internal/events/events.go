package events

import "time"

// Topics this service produces to and consumes from.
const (
	TopicBookingEvents = "hotel.booking.events"
	TopicPaymentEvents = "payment.events"
)

// Event types carried in the CloudEvent envelope.
const (
	BookingCreated     = "hotel.booking.created"
	BookingRoomChanged = "hotel.booking.room_changed"
	PaymentConfirmed   = "payment.confirmed"
)

// BookingCreatedEvent is published when a user books a room.
type BookingCreatedEvent struct {
	BookingID  int64     `json:"booking_id"`
	UserID     int64     `json:"user_id"`
	RoomID     int64     `json:"room_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingRoomChangedEvent is published when a booking moves to another room.
type BookingRoomChangedEvent struct {
	BookingID  int64     `json:"booking_id"`
	UserID     int64     `json:"user_id"`
	OldRoomID  int64     `json:"old_room_id"`
	NewRoomID  int64     `json:"new_room_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PaymentConfirmedEvent arrives from the payment service once a ticket has
// been paid for.
type PaymentConfirmedEvent struct {
	PaymentID   int64     `json:"payment_id"`
	TicketID    int64     `json:"ticket_id"`
	AmountCents int64     `json:"amount_cents"`
	OccurredAt  time.Time `json:"occurred_at"`
}
