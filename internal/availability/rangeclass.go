package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
)

// DayStatus classifies a day for calendar coloring
type DayStatus string

const (
	DayAvailable   DayStatus = "available"
	DayLimited     DayStatus = "limited"
	DayUnavailable DayStatus = "unavailable"
)

// dayCapacity is the total booking capacity of a date: 1 under the
// one-event-per-day policy, otherwise the sum of applicable block capacities
// (a one-reservation-per-day block contributes 1)
func dayCapacity(cfg *domain.ScheduleConfig, weekday int, restDay *domain.RestDay) int {
	if cfg.OneEventPerDay {
		return 1
	}

	capacity := 0
	for _, block := range applicableBlocks(cfg, weekday, restDay) {
		if block.OneReservationPerDay {
			capacity++
			continue
		}
		capacity += block.MaxEventsPerBlock
	}
	return capacity
}

// ClassifyRange classifies every day of [start, end] (inclusive) as
// available, limited or unavailable:
//
//   - unavailable: blocked rest day, or bookedCount >= capacity
//   - limited: bookedCount >= capacity * 0.5
//   - available: otherwise; days with zero configured capacity default to
//     available rather than unavailable
func ClassifyRange(start, end time.Time, cfg *domain.ScheduleConfig, bookings []*domain.Booking) (map[string]DayStatus, error) {
	startDay := Truncate(start)
	endDay := Truncate(end)
	if endDay.Before(startDay) {
		return nil, fmt.Errorf("%w: %s after %s", ErrInvalidRange, DayKey(start), DayKey(end))
	}

	buckets := BucketByDay(bookings)
	result := make(map[string]DayStatus)

	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		key := DayKey(day)
		weekday := Weekday(day)
		restDay := cfg.RestDayFor(weekday)

		if restDay != nil && !restDay.CanBeReleased {
			result[key] = DayUnavailable
			continue
		}

		capacity := dayCapacity(cfg, weekday, restDay)
		if capacity == 0 {
			result[key] = DayAvailable
			continue
		}

		booked := len(buckets[key])
		switch {
		case booked >= capacity:
			result[key] = DayUnavailable
		case float64(booked) >= float64(capacity)*0.5:
			result[key] = DayLimited
		default:
			result[key] = DayAvailable
		}
	}

	return result, nil
}
