package notification

import (
	"context"

	"go.uber.org/zap"

	"github.com/Yoavga19/barber/models"
	"github.com/Yoavga19/barber/utils"
)

// NoopNotificationService is wired when no email transport is configured.
// Bookings still succeed; the appointment is only logged.
type NoopNotificationService struct{}

func (NoopNotificationService) NotifyAppointment(_ context.Context, appt *models.Appointment) error {
	utils.GetLogger().Info("Owner notification skipped, no email transport configured",
		zap.String("ref", appt.Ref),
		zap.String("customer", appt.CustomerName),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time))
	return nil
}
