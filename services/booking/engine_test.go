package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yoavga19/barber/models"
	"github.com/Yoavga19/barber/services/catalog"
)

// recordingNotifier captures notified appointments and optionally fails.
type recordingNotifier struct {
	mu    sync.Mutex
	calls []*models.Appointment
	err   error
}

func (n *recordingNotifier) NotifyAppointment(_ context.Context, appt *models.Appointment) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, appt)
	return n.err
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

func newTestService(notifier *recordingNotifier) *DefaultBookingService {
	return &DefaultBookingService{
		Calendar: NewCalendar(testStart, DefaultWindowDays, CanonicalTimes),
		Catalog:  catalog.Default(),
		Notifier: notifier,
	}
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		Name:    "Dana",
		Phone:   "050-1111111",
		Date:    "07/03",
		Time:    "09:00",
		Service: "Men's Haircut",
	}
}

func TestBookSuccess(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newTestService(notifier)

	appt, err := svc.Book(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, appt)

	assert.Equal(t, "Dana", appt.CustomerName)
	assert.Equal(t, 80, appt.Price)
	assert.NotEmpty(t, appt.Ref)
	assert.Contains(t, appt.Confirmation(), "80")
	assert.Contains(t, appt.Confirmation(), "07/03")

	assert.False(t, svc.Calendar.IsFree("07/03", "09:00"))
	assert.Equal(t, 1, notifier.count())
}

func TestBookMissingFields(t *testing.T) {
	blank := []struct {
		name   string
		mutate func(r *models.BookingRequest)
	}{
		{"name", func(r *models.BookingRequest) { r.Name = "" }},
		{"phone", func(r *models.BookingRequest) { r.Phone = "" }},
		{"date", func(r *models.BookingRequest) { r.Date = "" }},
		{"time", func(r *models.BookingRequest) { r.Time = "" }},
		{"service", func(r *models.BookingRequest) { r.Service = "" }},
	}

	for _, tc := range blank {
		t.Run("missing "+tc.name, func(t *testing.T) {
			notifier := &recordingNotifier{}
			svc := newTestService(notifier)

			req := validRequest()
			tc.mutate(&req)

			_, err := svc.Book(context.Background(), req)
			assert.ErrorIs(t, err, ErrMissingFields)
			assert.True(t, svc.Calendar.IsFree("07/03", "09:00"), "rejection must leave the calendar untouched")
			assert.Equal(t, 0, notifier.count())
		})
	}
}

func TestBookUnknownService(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newTestService(notifier)

	req := validRequest()
	req.Service = "Shave"

	_, err := svc.Book(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownService)
	assert.True(t, svc.Calendar.IsFree("07/03", "09:00"))
	assert.Equal(t, 0, notifier.count())
}

// A zero-priced catalog entry is rejected the same way as an unknown one.
func TestBookZeroPricedService(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newTestService(notifier)
	svc.Catalog = catalog.New([]models.Service{{Name: "Consultation", Price: 0}})

	req := validRequest()
	req.Service = "Consultation"

	_, err := svc.Book(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownService)
	assert.True(t, svc.Calendar.IsFree("07/03", "09:00"))
}

func TestBookSameSlotTwice(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newTestService(notifier)

	first := validRequest()
	_, err := svc.Book(context.Background(), first)
	require.NoError(t, err)

	second := validRequest()
	second.Name = "Noa"
	second.Phone = "052-2222222"
	second.Service = "Color"

	_, err = svc.Book(context.Background(), second)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, 1, notifier.count())
}

func TestBookOutsideWindow(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newTestService(notifier)

	req := validRequest()
	req.Date = "25/12"

	_, err := svc.Book(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, 0, notifier.count())
}

func TestBookSucceedsWhenNotifierFails(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("smtp down")}
	svc := newTestService(notifier)

	appt, err := svc.Book(context.Background(), validRequest())
	require.NoError(t, err, "notification failure must not fail the booking")
	require.NotNil(t, appt)

	assert.False(t, svc.Calendar.IsFree("07/03", "09:00"), "reservation must not be rolled back")
	assert.Equal(t, 1, notifier.count())
}

func TestBookConcurrentSameSlot(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newTestService(notifier)

	const attempts = 16
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Book(context.Background(), validRequest())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	booked := 0
	for err := range errs {
		if err == nil {
			booked++
		} else {
			assert.ErrorIs(t, err, ErrSlotUnavailable)
		}
	}
	assert.Equal(t, 1, booked)
	assert.Equal(t, 1, notifier.count())
}
