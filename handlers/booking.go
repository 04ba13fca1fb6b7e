package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Yoavga19/barber/models"
	"github.com/Yoavga19/barber/services/booking"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// BookAppointment handles POST /book.
func (h *BookingHandler) BookAppointment(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Warn("Invalid booking request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	appt, err := h.Svc.Book(c.Request.Context(), req)
	if err != nil {
		var bookErr *booking.BookingError
		if errors.As(err, &bookErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": bookErr.Message})
			return
		}
		h.Logger.Error("Booking failed unexpectedly", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	h.Logger.Info("Appointment booked",
		zap.String("ref", appt.Ref),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
		zap.String("service", appt.Service))
	c.JSON(http.StatusOK, gin.H{"message": appt.Confirmation()})
}
