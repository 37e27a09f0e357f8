package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	bookingDomain "github.com/driventix/service-hotel/internal/domain/booking"
	hotelDomain "github.com/driventix/service-hotel/internal/domain/hotel"
	"github.com/driventix/service-hotel/internal/events"
	"github.com/driventix/service-hotel/internal/platform/domain"
	"github.com/driventix/service-hotel/internal/platform/kafka"
)

// RoomDTO is the response representation of a room.
type RoomDTO struct {
	ID        int64     `json:"id"`
	HotelID   int64     `json:"hotel_id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Booked    int64     `json:"booked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	RoomID    int64     `json:"room_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Room      *RoomDTO  `json:"room,omitempty"`
}

// EventPublisher publishes CloudEvents to the message broker.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic string, event *kafka.CloudEvent) error
}

// BookingService orchestrates the booking use cases: every operation starts
// with the eligibility check, then applies the room-capacity rules.
type BookingService struct {
	repo        bookingDomain.Repository
	rooms       hotelDomain.RoomRepository
	eligibility EligibilityChecker
	producer    EventPublisher
	logger      *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	repo bookingDomain.Repository,
	rooms hotelDomain.RoomRepository,
	eligibility EligibilityChecker,
	producer EventPublisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		repo:        repo,
		rooms:       rooms,
		eligibility: eligibility,
		producer:    producer,
		logger:      logger,
	}
}

// GetBooking returns the caller's booking together with its room.
func (s *BookingService) GetBooking(ctx context.Context, userID int64) (*BookingDTO, error) {
	if err := s.eligibility.CheckEligibility(ctx, userID); err != nil {
		return nil, err
	}

	bk, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	room, err := s.rooms.FindByID(ctx, bk.RoomID())
	if err != nil {
		return nil, err
	}

	result := toBookingDTO(bk)
	result.Room = toRoomDTO(room)
	return &result, nil
}

// CreateBooking books a room for the caller. The room must exist and have a
// free slot; the repository re-checks capacity under a row lock so concurrent
// creates cannot overshoot it.
func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID int64) (*BookingDTO, error) {
	if err := s.eligibility.CheckEligibility(ctx, userID); err != nil {
		return nil, err
	}

	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.IsFull() {
		return nil, domain.NewForbiddenError("room is at capacity")
	}

	bk, err := bookingDomain.NewBooking(userID, roomID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, bk); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.Int64("booking_id", bk.ID()),
		zap.Int64("user_id", userID),
		zap.Int64("room_id", roomID),
	)

	s.publishEvent(ctx, events.BookingCreated, events.BookingCreatedEvent{
		BookingID:  bk.ID(),
		UserID:     userID,
		RoomID:     roomID,
		OccurredAt: time.Now().UTC(),
	})

	result := toBookingDTO(bk)
	return &result, nil
}

// ChangeRoom moves the caller's booking to another room. The target room must
// exist and have a free slot, the booking must exist, and it must belong to
// the caller.
func (s *BookingService) ChangeRoom(ctx context.Context, userID, bookingID, newRoomID int64) (*BookingDTO, error) {
	if err := s.eligibility.CheckEligibility(ctx, userID); err != nil {
		return nil, err
	}

	room, err := s.rooms.FindByID(ctx, newRoomID)
	if err != nil {
		return nil, err
	}
	if room.IsFull() {
		return nil, domain.NewForbiddenError("room is at capacity")
	}

	bk, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !bk.IsOwnedBy(userID) {
		return nil, domain.NewUnauthorizedError("booking does not belong to this user")
	}

	oldRoomID := bk.RoomID()
	if err := bk.ChangeRoom(newRoomID); err != nil {
		return nil, err
	}

	bk.IncrementVersion()
	if err := s.repo.Move(ctx, bk); err != nil {
		return nil, err
	}

	s.logger.Info("booking moved",
		zap.Int64("booking_id", bk.ID()),
		zap.Int64("old_room_id", oldRoomID),
		zap.Int64("new_room_id", newRoomID),
	)

	s.publishEvent(ctx, events.BookingRoomChanged, events.BookingRoomChangedEvent{
		BookingID:  bk.ID(),
		UserID:     userID,
		OldRoomID:  oldRoomID,
		NewRoomID:  newRoomID,
		OccurredAt: time.Now().UTC(),
	})

	result := toBookingDTO(bk)
	return &result, nil
}

func (s *BookingService) publishEvent(ctx context.Context, eventType string, data interface{}) {
	cloudEvent, err := kafka.NewCloudEvent("service-hotel", eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.producer.PublishEvent(ctx, events.TopicBookingEvents, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", events.TopicBookingEvents),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

// --- Helpers ---

func toBookingDTO(b *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:        b.ID(),
		UserID:    b.UserID(),
		RoomID:    b.RoomID(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

func toRoomDTO(r *hotelDomain.Room) *RoomDTO {
	return &RoomDTO{
		ID:        r.ID(),
		HotelID:   r.HotelID(),
		Name:      r.Name(),
		Capacity:  r.Capacity(),
		Booked:    r.Booked(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}
