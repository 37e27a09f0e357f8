package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/driventix/service-hotel/internal/application"
	"github.com/driventix/service-hotel/internal/platform/middleware"
	"github.com/driventix/service-hotel/internal/platform/response"
)

// BookingUseCase is the service contract the booking handler depends on.
type BookingUseCase interface {
	GetBooking(ctx context.Context, userID int64) (*application.BookingDTO, error)
	CreateBooking(ctx context.Context, userID, roomID int64) (*application.BookingDTO, error)
	ChangeRoom(ctx context.Context, userID, bookingID, newRoomID int64) (*application.BookingDTO, error)
}

// bookingBody is the request body for create and room-change operations.
type bookingBody struct {
	RoomID int64 `json:"roomId"`
}

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service BookingUseCase
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers the booking routes behind the auth middleware.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	booking := r.Group("/booking")
	booking.Use(authMW)
	{
		booking.GET("", h.GetBooking)
		booking.POST("", h.CreateBooking)
		booking.PUT("/:bookingId", h.ChangeRoom)
	}
}

// GetBooking handles GET /booking.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	result, err := h.service.GetBooking(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CreateBooking handles POST /booking. A missing or non-positive roomId maps
// to 404, which is the contract the upstream clients were built against.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var body bookingBody
	if err := c.ShouldBindJSON(&body); err != nil || body.RoomID < 1 {
		response.NotFound(c, "roomId is required")
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), userID, body.RoomID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ChangeRoom handles PUT /booking/:bookingId.
func (h *BookingHandler) ChangeRoom(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil || bookingID < 1 {
		response.BadRequest(c, "bookingId must be a positive integer")
		return
	}

	var body bookingBody
	if err := c.ShouldBindJSON(&body); err != nil || body.RoomID < 1 {
		response.NotFound(c, "roomId is required")
		return
	}

	result, err := h.service.ChangeRoom(c.Request.Context(), userID, bookingID, body.RoomID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// getUserID pulls the authenticated user from the context, aborting with 401
// when the auth middleware did not run.
func getUserID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return 0, false
	}
	return userID, true
}
