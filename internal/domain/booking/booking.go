package booking

import (
	"time"

	"github.com/driventix/service-hotel/internal/platform/domain"
)

// Booking is the aggregate linking a user to a hotel room for the event.
// A user holds at most one active booking.
type Booking struct {
	id        int64
	userID    int64
	roomID    int64
	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a booking for the given user and room. The ID is
// assigned by the persistence layer on save.
func NewBooking(userID, roomID int64) (*Booking, error) {
	if userID < 1 {
		return nil, domain.NewValidationError("user ID must be positive")
	}
	if roomID < 1 {
		return nil, domain.NewValidationError("room ID must be positive")
	}

	now := time.Now().UTC()
	return &Booking{
		userID:    userID,
		roomID:    roomID,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(id, userID, roomID, version int64, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:        id,
		userID:    userID,
		roomID:    roomID,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the booking identifier.
func (b *Booking) ID() int64 { return b.id }

// UserID returns the owning user's identifier.
func (b *Booking) UserID() int64 { return b.userID }

// RoomID returns the booked room's identifier.
func (b *Booking) RoomID() int64 { return b.roomID }

// Version returns the entity version for optimistic locking.
func (b *Booking) Version() int64 { return b.version }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// IsOwnedBy reports whether the booking belongs to the given user.
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.userID == userID
}

// ChangeRoom moves the booking to a different room.
func (b *Booking) ChangeRoom(roomID int64) error {
	if roomID < 1 {
		return domain.NewValidationError("room ID must be positive")
	}
	b.roomID = roomID
	b.updatedAt = time.Now().UTC()
	return nil
}

// IncrementVersion bumps the version for optimistic locking.
func (b *Booking) IncrementVersion() {
	b.version++
	b.updatedAt = time.Now().UTC()
}

// SetID assigns the persistence-generated identifier after the first save.
func (b *Booking) SetID(id int64) {
	b.id = id
}
