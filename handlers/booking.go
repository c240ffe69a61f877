package handlers

import (
	"net/http"

	"homestay/models"
	"homestay/resolvers"
	"homestay/services/booking"
	"homestay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking operations over HTTP.
type BookingHandler struct {
	Resolver *resolvers.Resolver
	logger   *zap.Logger
}

func NewBookingHandler(resolver *resolvers.Resolver, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Resolver: resolver, logger: logger}
}

// statusForError maps booking business errors onto HTTP statuses for
// query-style reads, where failures abort the request.
func statusForError(err error) int {
	be := booking.AsBusinessError(err)
	if be == nil {
		return http.StatusInternalServerError
	}
	switch be.Code {
	case booking.CodeAuthentication:
		return http.StatusUnauthorized
	case booking.CodeAuthorization:
		return http.StatusForbidden
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeValidation:
		return http.StatusBadRequest
	case booking.CodeConflict, booking.CodeInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *BookingHandler) queryError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("booking query failed", zap.Error(err))
		utils.JSONError(c, status, "Internal Server Error", "")
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// actorID pulls the authenticated user out of the gin context.
func actorID(c *gin.Context) string {
	return c.GetString("userID")
}

// CheckAvailability handles POST /api/bookings/availability.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var input models.AvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	result, err := h.Resolver.CheckAvailability(c.Request.Context(), input)
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	result, err := h.Resolver.CreateBooking(c.Request.Context(), actorID(c), input)
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateBooking handles PUT /api/bookings/:id.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var input models.UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.BookingID = c.Param("id")
	result, err := h.Resolver.UpdateBooking(c.Request.Context(), actorID(c), input)
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CancelBooking handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	result, err := h.Resolver.CancelBooking(c.Request.Context(), actorID(c), c.Param("id"))
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ConfirmBooking handles POST /api/bookings/:id/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	result, err := h.Resolver.ConfirmBooking(c.Request.Context(), actorID(c), c.Param("id"))
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CompleteBooking handles POST /api/bookings/:id/complete.
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	result, err := h.Resolver.CompleteBooking(c.Request.Context(), actorID(c), c.Param("id"))
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	view, err := h.Resolver.Booking(c.Request.Context(), actorID(c), c.Param("id"))
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// MyBookings handles GET /api/bookings/mine.
func (h *BookingHandler) MyBookings(c *gin.Context) {
	views, err := h.Resolver.MyBookings(c.Request.Context(), actorID(c))
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// PropertyBookings handles GET /api/properties/:id/bookings.
func (h *BookingHandler) PropertyBookings(c *gin.Context) {
	views, err := h.Resolver.PropertyBookings(c.Request.Context(), actorID(c), c.Param("id"))
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// AdminDeleteBooking handles DELETE /api/admin/bookings/:id.
func (h *BookingHandler) AdminDeleteBooking(c *gin.Context) {
	if err := h.Resolver.BookingSvc.DeleteBooking(actorID(c), c.Param("id")); err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}
