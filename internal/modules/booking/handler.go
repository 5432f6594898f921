package booking

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"glambook/internal/domain"
	"glambook/internal/middleware"
	"glambook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.POST("/bookings/manual", middleware.ArtistOnly(), h.CreateManualBooking)
	rg.GET("/bookings/:bookingId", h.GetBooking)
	rg.GET("/me/bookings", h.GetMyBookings)
	rg.GET("/me/day-sheet", middleware.ArtistOnly(), h.GetDaySheet)
	rg.PATCH("/bookings/:bookingId/cancel", h.CancelBooking)
	rg.PATCH("/bookings/:bookingId/confirm", middleware.ArtistOnly(), h.ConfirmBooking)
	rg.PATCH("/bookings/:bookingId/decline", middleware.ArtistOnly(), h.DeclineBooking)
	rg.PATCH("/bookings/:bookingId/complete", middleware.ArtistOnly(), h.CompleteBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to create booking")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) CreateManualBooking(c *gin.Context) {
	var req ManualBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateManualBooking(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to create manual booking")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) GetBooking(c *gin.Context) {
	bookingID, ok := h.bookingID(c)
	if !ok {
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), bookingID, c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err, "Failed to load booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) GetMyBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := h.service.GetMyBookings(c.Request.Context(), c.GetInt64("user_id"), limit, offset)
	if err != nil {
		h.writeError(c, err, "Failed to load bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": rows})
}

func (h *Handler) GetDaySheet(c *gin.Context) {
	rows, err := h.service.GetDaySheet(c.Request.Context(), c.GetInt64("user_id"), c.Query("date"), c.Query("timezone"))
	if err != nil {
		h.writeError(c, err, "Failed to load day sheet")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": rows})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	h.transition(c, h.service.CancelBooking)
}

func (h *Handler) ConfirmBooking(c *gin.Context) {
	h.transition(c, h.service.ConfirmBooking)
}

func (h *Handler) DeclineBooking(c *gin.Context) {
	h.transition(c, h.service.DeclineBooking)
}

func (h *Handler) CompleteBooking(c *gin.Context) {
	h.transition(c, h.service.CompleteBooking)
}

func (h *Handler) transition(c *gin.Context, fn func(ctx context.Context, bookingID, actorUserID int64) (*domain.Booking, error)) {
	bookingID, ok := h.bookingID(c)
	if !ok {
		return
	}

	b, err := fn(c.Request.Context(), bookingID, c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err, "Failed to update booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	var conflict *ConflictError
	switch {
	case errors.As(err, &conflict):
		response.ErrorWithDetails(c, http.StatusConflict, "BOOKING_CONFLICT",
			"Requested interval is no longer available", conflictBody{
				ConflictStart: conflict.ConflictStart,
				ConflictEnd:   conflict.ConflictEnd,
			})
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusConflict, "INVALID_STATUS", "Booking status does not allow this action")
	case errors.Is(err, ErrStorage):
		response.Error(c, http.StatusServiceUnavailable, "STORAGE_ERROR", "Temporary storage error, please retry")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
