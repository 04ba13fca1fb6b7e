package booking

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Yoavga19/barber/models"
	"github.com/Yoavga19/barber/services/catalog"
	"github.com/Yoavga19/barber/services/notification"
	"github.com/Yoavga19/barber/utils"
)

// BookingService defines the interface for the booking engine.
type BookingService interface {
	Book(ctx context.Context, req models.BookingRequest) (*models.Appointment, error)
	Availability() map[string][]string
}

// DefaultBookingService implements BookingService over the in-memory
// availability calendar.
type DefaultBookingService struct {
	Calendar *Calendar
	Catalog  *catalog.Catalog
	Notifier notification.NotificationService
}

// Book validates the request, reserves the slot and notifies the owner.
// Validation failures leave the calendar untouched. Once the slot is
// reserved the booking is committed: a notification failure is logged and
// swallowed, never rolled back.
func (s *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if req.Name == "" || req.Phone == "" || req.Date == "" || req.Time == "" || req.Service == "" {
		return nil, ErrMissingFields
	}

	if !s.Calendar.IsFree(req.Date, req.Time) {
		return nil, ErrSlotUnavailable
	}

	// A zero price is treated the same as a missing catalog entry.
	price, ok := s.Catalog.Price(req.Service)
	if !ok || price == 0 {
		return nil, ErrUnknownService
	}

	// Reserve re-checks under the calendar lock; a concurrent booking may
	// have taken the slot since the IsFree check above.
	if !s.Calendar.Reserve(req.Date, req.Time) {
		return nil, ErrSlotUnavailable
	}

	appt := &models.Appointment{
		Ref:          uuid.New().String(),
		CustomerName: req.Name,
		Phone:        req.Phone,
		Date:         req.Date,
		Time:         req.Time,
		Service:      req.Service,
		Price:        price,
	}

	if err := s.Notifier.NotifyAppointment(ctx, appt); err != nil {
		logger.Error("Failed to notify owner of new appointment",
			zap.String("ref", appt.Ref), zap.Error(err))
	}

	return appt, nil
}

// Availability returns the current free-slot mapping for display.
func (s *DefaultBookingService) Availability() map[string][]string {
	return s.Calendar.ListAll()
}
