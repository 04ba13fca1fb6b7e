package booking

import "fmt"

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches two booking errors by code so sentinel comparisons with
// errors.Is work.
func (e *BookingError) Is(target error) bool {
	t, ok := target.(*BookingError)
	return ok && t.Code == e.Code
}

var (
	// ErrMissingFields rejects a request with any empty field.
	ErrMissingFields = &BookingError{Code: "missingFields", Message: "Missing fields"}

	// ErrSlotUnavailable covers both an unknown date and an already-taken
	// time; the caller cannot tell them apart.
	ErrSlotUnavailable = &BookingError{Code: "slotUnavailable", Message: "No availability at that time."}

	// ErrUnknownService also fires for a zero-priced catalog entry.
	ErrUnknownService = &BookingError{Code: "unknownService", Message: "Unknown service."}
)
