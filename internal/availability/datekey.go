package availability

import (
	"time"

	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
)

// The engine uses exactly one date-normalization strategy: calendar fields of
// the time value itself (the business operates in a single fixed timezone and
// dates are stored date-only). Mixing UTC-based and field-based normalization
// within one computation misclassifies bookings near midnight.

// DayKey formats a date to its canonical YYYY-MM-DD key
func DayKey(t time.Time) string {
	return t.Format(domain.DateFormat)
}

// Weekday returns the weekday index (0 = Sunday .. 6 = Saturday) of a date,
// derived from the same calendar fields as DayKey
func Weekday(t time.Time) int {
	return int(t.Weekday())
}

// SameDay returns true if both dates fall on the same calendar day
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}

// Truncate drops the time-of-day component, keeping the calendar day
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// BucketByDay groups bookings by their canonical day key.
// Cancelled bookings are dropped here so every per-day computation sees only
// capacity-consuming bookings.
func BucketByDay(bookings []*domain.Booking) map[string][]*domain.Booking {
	buckets := make(map[string][]*domain.Booking)
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		key := DayKey(b.EventDate)
		buckets[key] = append(buckets[key], b)
	}
	return buckets
}

// ActiveOnDay returns the non-cancelled bookings falling on the given date
func ActiveOnDay(date time.Time, bookings []*domain.Booking) []*domain.Booking {
	result := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if b.IsActive() && SameDay(b.EventDate, date) {
			result = append(result, b)
		}
	}
	return result
}
