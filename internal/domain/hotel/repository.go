package hotel

import "context"

// RoomRepository defines the read contract for rooms.
type RoomRepository interface {
	// FindByID retrieves a room with its current occupancy count.
	FindByID(ctx context.Context, id int64) (*Room, error)
}

// HotelRepository defines the read contract for hotels.
type HotelRepository interface {
	// FindAll retrieves all hotels without their rooms.
	FindAll(ctx context.Context) ([]*Hotel, error)

	// FindByID retrieves a hotel with its rooms and per-room occupancy.
	FindByID(ctx context.Context, id int64) (*Hotel, error)
}
