package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/driventix/service-hotel/internal/application"
	"github.com/driventix/service-hotel/internal/platform/response"
)

// HotelUseCase is the service contract the hotel handler depends on.
type HotelUseCase interface {
	ListHotels(ctx context.Context, userID int64) ([]application.HotelDTO, error)
	GetHotelWithRooms(ctx context.Context, userID, hotelID int64) (*application.HotelWithRoomsDTO, error)
}

// HotelHandler handles HTTP requests for hotel listings.
type HotelHandler struct {
	service HotelUseCase
}

// NewHotelHandler creates a new HotelHandler.
func NewHotelHandler(service HotelUseCase) *HotelHandler {
	return &HotelHandler{service: service}
}

// RegisterRoutes registers the hotel routes behind the auth middleware.
func (h *HotelHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	hotels := r.Group("/hotels")
	hotels.Use(authMW)
	{
		hotels.GET("", h.ListHotels)
		hotels.GET("/:hotelId", h.GetHotel)
	}
}

// ListHotels handles GET /hotels.
func (h *HotelHandler) ListHotels(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	result, err := h.service.ListHotels(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetHotel handles GET /hotels/:hotelId.
func (h *HotelHandler) GetHotel(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	hotelID, err := strconv.ParseInt(c.Param("hotelId"), 10, 64)
	if err != nil || hotelID < 1 {
		response.BadRequest(c, "hotelId must be a positive integer")
		return
	}

	result, err := h.service.GetHotelWithRooms(c.Request.Context(), userID, hotelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
