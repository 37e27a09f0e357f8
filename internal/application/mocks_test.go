package application

import (
	"context"

	"github.com/stretchr/testify/mock"

	bookingDomain "github.com/driventix/service-hotel/internal/domain/booking"
	enrollmentDomain "github.com/driventix/service-hotel/internal/domain/enrollment"
	hotelDomain "github.com/driventix/service-hotel/internal/domain/hotel"
	"github.com/driventix/service-hotel/internal/platform/kafka"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindByUserID(ctx context.Context, userID int64) (*bookingDomain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookingDomain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookingDomain.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountByRoomID(ctx context.Context, roomID int64) (int64, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) Save(ctx context.Context, b *bookingDomain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Move(ctx context.Context, b *bookingDomain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) FindByID(ctx context.Context, id int64) (*hotelDomain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hotelDomain.Room), args.Error(1)
}

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) FindAll(ctx context.Context) ([]*hotelDomain.Hotel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hotelDomain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) FindByID(ctx context.Context, id int64) (*hotelDomain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hotelDomain.Hotel), args.Error(1)
}

type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) FindByUserID(ctx context.Context, userID int64) (*enrollmentDomain.Enrollment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*enrollmentDomain.Enrollment), args.Error(1)
}

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*enrollmentDomain.Ticket, error) {
	args := m.Called(ctx, enrollmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*enrollmentDomain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindByID(ctx context.Context, id int64) (*enrollmentDomain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*enrollmentDomain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) UpdateStatus(ctx context.Context, t *enrollmentDomain.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

type MockEligibilityChecker struct {
	mock.Mock
}

func (m *MockEligibilityChecker) CheckEligibility(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishEvent(ctx context.Context, topic string, event *kafka.CloudEvent) error {
	args := m.Called(ctx, topic, event)
	return args.Error(0)
}

type MockHotelCache struct {
	mock.Mock
}

func (m *MockHotelCache) GetHotels(ctx context.Context) ([]HotelDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]HotelDTO), args.Error(1)
}

func (m *MockHotelCache) SetHotels(ctx context.Context, hotels []HotelDTO) error {
	args := m.Called(ctx, hotels)
	return args.Error(0)
}

func (m *MockHotelCache) GetHotel(ctx context.Context, hotelID int64) (*HotelWithRoomsDTO, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*HotelWithRoomsDTO), args.Error(1)
}

func (m *MockHotelCache) SetHotel(ctx context.Context, hotel *HotelWithRoomsDTO) error {
	args := m.Called(ctx, hotel)
	return args.Error(0)
}
