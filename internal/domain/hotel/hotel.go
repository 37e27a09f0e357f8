package hotel

import "time"

// Hotel groups bookable rooms under one property.
type Hotel struct {
	id        int64
	name      string
	image     string
	rooms     []*Room
	createdAt time.Time
	updatedAt time.Time
}

// ReconstructHotel rebuilds a Hotel from persistence data.
func ReconstructHotel(id int64, name, image string, rooms []*Room, createdAt, updatedAt time.Time) *Hotel {
	return &Hotel{
		id:        id,
		name:      name,
		image:     image,
		rooms:     rooms,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the hotel identifier.
func (h *Hotel) ID() int64 { return h.id }

// Name returns the hotel's display name.
func (h *Hotel) Name() string { return h.name }

// Image returns the hotel's image URL.
func (h *Hotel) Image() string { return h.image }

// Rooms returns the hotel's rooms, if loaded.
func (h *Hotel) Rooms() []*Room { return h.rooms }

// CreatedAt returns the creation timestamp.
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (h *Hotel) UpdatedAt() time.Time { return h.updatedAt }
