package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	hotelDomain "github.com/driventix/service-hotel/internal/domain/hotel"
	"github.com/driventix/service-hotel/internal/platform/domain"
)

// HotelDTO is the response representation of a hotel without rooms.
type HotelDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HotelWithRoomsDTO is the response representation of a hotel and its rooms.
type HotelWithRoomsDTO struct {
	HotelDTO
	Rooms []RoomDTO `json:"rooms"`
}

// HotelCache caches hotel reads. A nil result without error is a miss.
type HotelCache interface {
	GetHotels(ctx context.Context) ([]HotelDTO, error)
	SetHotels(ctx context.Context, hotels []HotelDTO) error
	GetHotel(ctx context.Context, hotelID int64) (*HotelWithRoomsDTO, error)
	SetHotel(ctx context.Context, hotel *HotelWithRoomsDTO) error
}

// HotelService serves eligibility-gated hotel listings through a TTL cache.
type HotelService struct {
	repo        hotelDomain.HotelRepository
	eligibility EligibilityChecker
	cache       HotelCache
	logger      *zap.Logger
}

// NewHotelService creates a new HotelService.
func NewHotelService(
	repo hotelDomain.HotelRepository,
	eligibility EligibilityChecker,
	cache HotelCache,
	logger *zap.Logger,
) *HotelService {
	return &HotelService{
		repo:        repo,
		eligibility: eligibility,
		cache:       cache,
		logger:      logger,
	}
}

// ListHotels returns all hotels for an eligible caller.
func (s *HotelService) ListHotels(ctx context.Context, userID int64) ([]HotelDTO, error) {
	if err := s.eligibility.CheckEligibility(ctx, userID); err != nil {
		return nil, err
	}

	if cached, err := s.cache.GetHotels(ctx); err != nil {
		s.logger.Warn("hotel cache read failed", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	hotels, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(hotels) == 0 {
		return nil, domain.NewNotFoundError("Hotels", "none registered")
	}

	dtos := make([]HotelDTO, len(hotels))
	for i, h := range hotels {
		dtos[i] = toHotelDTO(h)
	}

	if err := s.cache.SetHotels(ctx, dtos); err != nil {
		s.logger.Warn("hotel cache write failed", zap.Error(err))
	}
	return dtos, nil
}

// GetHotelWithRooms returns one hotel with its rooms and occupancy for an
// eligible caller.
func (s *HotelService) GetHotelWithRooms(ctx context.Context, userID, hotelID int64) (*HotelWithRoomsDTO, error) {
	if err := s.eligibility.CheckEligibility(ctx, userID); err != nil {
		return nil, err
	}

	if cached, err := s.cache.GetHotel(ctx, hotelID); err != nil {
		s.logger.Warn("hotel cache read failed", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	hotel, err := s.repo.FindByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	dto := &HotelWithRoomsDTO{
		HotelDTO: toHotelDTO(hotel),
		Rooms:    make([]RoomDTO, len(hotel.Rooms())),
	}
	for i, r := range hotel.Rooms() {
		dto.Rooms[i] = *toRoomDTO(r)
	}

	if err := s.cache.SetHotel(ctx, dto); err != nil {
		s.logger.Warn("hotel cache write failed", zap.Error(err))
	}
	return dto, nil
}

func toHotelDTO(h *hotelDomain.Hotel) HotelDTO {
	return HotelDTO{
		ID:        h.ID(),
		Name:      h.Name(),
		Image:     h.Image(),
		CreatedAt: h.CreatedAt(),
		UpdatedAt: h.UpdatedAt(),
	}
}
