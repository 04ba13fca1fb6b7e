package notification

import (
	"context"

	"github.com/Yoavga19/barber/models"
)

// NotificationService defines methods for telling the owner about new
// appointments. Callers treat delivery as best-effort.
type NotificationService interface {
	NotifyAppointment(ctx context.Context, appt *models.Appointment) error
}
