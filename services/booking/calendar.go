package booking

import (
	"sync"
	"time"
)

// CanonicalTimes is the fixed list of bookable 30-minute marks for a working
// day, 09:00 through 15:00.
var CanonicalTimes = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30", "15:00",
}

// DefaultWindowDays is the length of the bookable window computed at startup.
const DefaultWindowDays = 7

// dateLayout renders dates as zero-padded day/month, e.g. "07/03".
const dateLayout = "02/01"

// Calendar holds, for each date of the window, the times that are still
// bookable. A slot is free while its time is present in the date's list and
// reserved once removed; there is no reverse transition. The window is
// computed once from the start date and never rolls forward while the
// process runs.
type Calendar struct {
	mu    sync.Mutex
	slots map[string][]string
	dates []string // window keys in chronological order
}

// NewCalendar builds the availability window: days consecutive dates starting
// at start, each beginning with a fresh copy of times.
func NewCalendar(start time.Time, days int, times []string) *Calendar {
	c := &Calendar{
		slots: make(map[string][]string, days),
		dates: make([]string, 0, days),
	}
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format(dateLayout)
		c.slots[date] = append([]string(nil), times...)
		c.dates = append(c.dates, date)
	}
	return c
}

// NewDefaultCalendar builds the standard 7-day window from today.
func NewDefaultCalendar() *Calendar {
	return NewCalendar(time.Now(), DefaultWindowDays, CanonicalTimes)
}

// ListAll returns a copy of the current date-to-free-times mapping.
func (c *Calendar) ListAll() map[string][]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string][]string, len(c.slots))
	for date, times := range c.slots {
		out[date] = append([]string(nil), times...)
	}
	return out
}

// Dates returns the window's date keys in chronological order.
func (c *Calendar) Dates() []string {
	return append([]string(nil), c.dates...)
}

// IsFree reports whether the (date, time) slot is currently bookable. An
// unknown date is never free.
func (c *Calendar) IsFree(date, timeOfDay string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.indexOf(date, timeOfDay) >= 0
}

// Reserve atomically takes the slot, returning false if it was not free.
// Check and removal happen under one lock so two concurrent bookings for the
// same slot cannot both succeed.
func (c *Calendar) Reserve(date, timeOfDay string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(date, timeOfDay)
	if i < 0 {
		return false
	}
	times := c.slots[date]
	c.slots[date] = append(times[:i], times[i+1:]...)
	return true
}

// indexOf returns the position of timeOfDay in date's free list, or -1.
// Callers must hold c.mu.
func (c *Calendar) indexOf(date, timeOfDay string) int {
	for i, t := range c.slots[date] {
		if t == timeOfDay {
			return i
		}
	}
	return -1
}
