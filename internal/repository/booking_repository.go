package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bookingDomain "github.com/driventix/service-hotel/internal/domain/booking"
	"github.com/driventix/service-hotel/internal/platform/domain"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"index;not null"`
	RoomID    int64     `gorm:"index;not null"`
	Version   int64     `gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of booking.Repository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByUserID retrieves the user's booking (first match).
func (r *GormBookingRepository) FindByUserID(ctx context.Context, userID int64) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", "user "+strconv.FormatInt(userID, 10))
		}
		return nil, fmt.Errorf("failed to find booking by user: %w", err)
	}
	return toDomainBooking(&model), nil
}

// FindByID retrieves a booking by its identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return toDomainBooking(&model), nil
}

// CountByRoomID returns the number of bookings currently in a room.
func (r *GormBookingRepository) CountByRoomID(ctx context.Context, roomID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&BookingModel{}).Where("room_id = ?", roomID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count bookings for room: %w", err)
	}
	return count, nil
}

// Save persists a new booking. The room row is locked and its occupancy
// recounted inside the same transaction so concurrent creates cannot push a
// room past its capacity.
func (r *GormBookingRepository) Save(ctx context.Context, b *bookingDomain.Booking) error {
	model := toBookingModel(b)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := lockRoom(tx, b.RoomID())
		if err != nil {
			return err
		}

		var occupied int64
		if err := tx.Model(&BookingModel{}).Where("room_id = ?", b.RoomID()).Count(&occupied).Error; err != nil {
			return fmt.Errorf("failed to count room occupancy: %w", err)
		}
		if occupied >= int64(room.Capacity) {
			return domain.NewForbiddenError("room is at capacity")
		}

		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	b.SetID(model.ID)
	return nil
}

// Move persists a room change with optimistic locking. The target room is
// locked and recounted inside the transaction; the booking being moved does
// not count against the target room's occupancy.
func (r *GormBookingRepository) Move(ctx context.Context, b *bookingDomain.Booking) error {
	model := toBookingModel(b)
	expectedVersion := b.Version() - 1

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := lockRoom(tx, b.RoomID())
		if err != nil {
			return err
		}

		var occupied int64
		if err := tx.Model(&BookingModel{}).
			Where("room_id = ? AND id <> ?", b.RoomID(), b.ID()).
			Count(&occupied).Error; err != nil {
			return fmt.Errorf("failed to count room occupancy: %w", err)
		}
		if occupied >= int64(room.Capacity) {
			return domain.NewForbiddenError("room is at capacity")
		}

		result := tx.Model(&BookingModel{}).
			Where("id = ? AND version = ?", model.ID, expectedVersion).
			Updates(map[string]interface{}{
				"room_id":    model.RoomID,
				"version":    model.Version,
				"updated_at": model.UpdatedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to move booking: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.NewConflictError("booking was modified by another transaction")
		}
		return nil
	})
}

// lockRoom takes a row lock on the room for the duration of the transaction.
func lockRoom(tx *gorm.DB, roomID int64) (*RoomModel, error) {
	var room RoomModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", roomID).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Room", strconv.FormatInt(roomID, 10))
		}
		return nil, fmt.Errorf("failed to lock room: %w", err)
	}
	return &room, nil
}

// --- Conversion helpers ---

func toBookingModel(b *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:        b.ID(),
		UserID:    b.UserID(),
		RoomID:    b.RoomID(),
		Version:   b.Version(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

func toDomainBooking(m *BookingModel) *bookingDomain.Booking {
	return bookingDomain.Reconstruct(m.ID, m.UserID, m.RoomID, m.Version, m.CreatedAt, m.UpdatedAt)
}
