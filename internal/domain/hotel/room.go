package hotel

import "time"

// Room is a bookable hotel unit with a fixed capacity. The booked count is a
// read-model snapshot taken when the room was loaded; the authoritative
// capacity check happens inside the booking repository transaction.
type Room struct {
	id        int64
	hotelID   int64
	name      string
	capacity  int
	booked    int64
	createdAt time.Time
	updatedAt time.Time
}

// ReconstructRoom rebuilds a Room from persistence data.
func ReconstructRoom(id, hotelID int64, name string, capacity int, booked int64, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:        id,
		hotelID:   hotelID,
		name:      name,
		capacity:  capacity,
		booked:    booked,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the room identifier.
func (r *Room) ID() int64 { return r.id }

// HotelID returns the identifier of the hotel the room belongs to.
func (r *Room) HotelID() int64 { return r.hotelID }

// Name returns the room's display name.
func (r *Room) Name() string { return r.name }

// Capacity returns the fixed number of guests the room can hold.
func (r *Room) Capacity() int { return r.capacity }

// Booked returns the occupancy snapshot taken at load time.
func (r *Room) Booked() int64 { return r.booked }

// CreatedAt returns the creation timestamp.
func (r *Room) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

// IsFull reports whether the room has no free slots left.
func (r *Room) IsFull() bool {
	return r.booked >= int64(r.capacity)
}

// FreeSlots returns the number of unbooked slots.
func (r *Room) FreeSlots() int64 {
	free := int64(r.capacity) - r.booked
	if free < 0 {
		return 0
	}
	return free
}
