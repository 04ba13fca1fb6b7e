package models

import "fmt"

// BookingRequest is the client payload for reserving a slot.
type BookingRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Date    string `json:"date"` // day/month, e.g. "07/03"
	Time    string `json:"time"` // e.g. "09:30"
	Service string `json:"service"`
}

// Appointment is a confirmed booking. It is handed to the notifier and
// returned to the caller; the server keeps no booking history.
type Appointment struct {
	Ref          string `json:"ref"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Service      string `json:"service"`
	Price        int    `json:"price"`
}

// Confirmation returns the human-readable booking confirmation.
func (a *Appointment) Confirmation() string {
	return fmt.Sprintf("Appointment booked for %s at %s for %s (%d₪).", a.Date, a.Time, a.Service, a.Price)
}
