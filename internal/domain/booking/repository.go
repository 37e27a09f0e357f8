package booking

import "context"

// Repository defines the persistence contract for booking aggregates.
//
// Save and Move enforce the room-capacity invariant inside a single
// transaction: the room row is locked, current occupancy counted, and the
// write performed only when a slot remains. Callers get a Forbidden domain
// error when the room is full.
type Repository interface {
	// FindByUserID retrieves the user's booking (first match).
	FindByUserID(ctx context.Context, userID int64) (*Booking, error)

	// FindByID retrieves a booking by its identifier.
	FindByID(ctx context.Context, id int64) (*Booking, error)

	// CountByRoomID returns the number of bookings currently in a room.
	CountByRoomID(ctx context.Context, roomID int64) (int64, error)

	// Save persists a new booking, assigning its ID.
	Save(ctx context.Context, b *Booking) error

	// Move persists a room change for an existing booking with optimistic locking.
	Move(ctx context.Context, b *Booking) error
}
