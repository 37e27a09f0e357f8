package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	hotelDomain "github.com/driventix/service-hotel/internal/domain/hotel"
	"github.com/driventix/service-hotel/internal/platform/domain"
)

// HotelModel is the GORM model for the hotels table.
type HotelModel struct {
	ID        int64       `gorm:"primaryKey;autoIncrement"`
	Name      string      `gorm:"not null;size:255"`
	Image     string      `gorm:"size:500"`
	Rooms     []RoomModel `gorm:"foreignKey:HotelID"`
	CreatedAt time.Time   `gorm:"not null"`
	UpdatedAt time.Time   `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (HotelModel) TableName() string {
	return "hotels"
}

// RoomModel is the GORM model for the rooms table.
type RoomModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	HotelID   int64     `gorm:"index;not null"`
	Name      string    `gorm:"not null;size:255"`
	Capacity  int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (RoomModel) TableName() string {
	return "rooms"
}

// GormRoomRepository is the GORM-based implementation of hotel.RoomRepository.
type GormRoomRepository struct {
	db *gorm.DB
}

// NewGormRoomRepository creates a new GormRoomRepository.
func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

// FindByID retrieves a room with its current occupancy count.
func (r *GormRoomRepository) FindByID(ctx context.Context, id int64) (*hotelDomain.Room, error) {
	var model RoomModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Room", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to find room by ID: %w", err)
	}

	var booked int64
	if err := r.db.WithContext(ctx).Model(&BookingModel{}).Where("room_id = ?", id).Count(&booked).Error; err != nil {
		return nil, fmt.Errorf("failed to count room occupancy: %w", err)
	}

	return toDomainRoom(&model, booked), nil
}

// GormHotelRepository is the GORM-based implementation of hotel.HotelRepository.
type GormHotelRepository struct {
	db *gorm.DB
}

// NewGormHotelRepository creates a new GormHotelRepository.
func NewGormHotelRepository(db *gorm.DB) *GormHotelRepository {
	return &GormHotelRepository{db: db}
}

// FindAll retrieves all hotels without their rooms.
func (r *GormHotelRepository) FindAll(ctx context.Context) ([]*hotelDomain.Hotel, error) {
	var models []HotelModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}

	hotels := make([]*hotelDomain.Hotel, len(models))
	for i, m := range models {
		hotels[i] = hotelDomain.ReconstructHotel(m.ID, m.Name, m.Image, nil, m.CreatedAt, m.UpdatedAt)
	}
	return hotels, nil
}

// FindByID retrieves a hotel with its rooms and per-room occupancy.
func (r *GormHotelRepository) FindByID(ctx context.Context, id int64) (*hotelDomain.Hotel, error) {
	var model HotelModel
	err := r.db.WithContext(ctx).
		Preload("Rooms").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Hotel", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to find hotel by ID: %w", err)
	}

	// Occupancy per room in one grouped query.
	type roomCount struct {
		RoomID int64
		Count  int64
	}
	var counts []roomCount
	if err := r.db.WithContext(ctx).Model(&BookingModel{}).
		Select("room_id, count(*) as count").
		Where("room_id IN (?)", r.db.Model(&RoomModel{}).Select("id").Where("hotel_id = ?", id)).
		Group("room_id").
		Find(&counts).Error; err != nil {
		return nil, fmt.Errorf("failed to count hotel occupancy: %w", err)
	}

	occupancy := make(map[int64]int64, len(counts))
	for _, rc := range counts {
		occupancy[rc.RoomID] = rc.Count
	}

	rooms := make([]*hotelDomain.Room, len(model.Rooms))
	for i, rm := range model.Rooms {
		rooms[i] = toDomainRoom(&rm, occupancy[rm.ID])
	}

	return hotelDomain.ReconstructHotel(model.ID, model.Name, model.Image, rooms, model.CreatedAt, model.UpdatedAt), nil
}

func toDomainRoom(m *RoomModel, booked int64) *hotelDomain.Room {
	return hotelDomain.ReconstructRoom(m.ID, m.HotelID, m.Name, m.Capacity, booked, m.CreatedAt, m.UpdatedAt)
}
