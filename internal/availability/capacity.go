package availability

import (
	"fmt"

	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
)

// ResolveBookingDuration resolves a booking's duration in hours.
// Priority: the booking's own duration, then the configuration default, then
// the block duration, then a hard fallback of 2 hours.
func ResolveBookingDuration(b *domain.Booking, defaultDurationHours, blockDurationHours int) int {
	if b.EventDurationHours != nil && *b.EventDurationHours > 0 {
		return *b.EventDurationHours
	}
	if defaultDurationHours > 0 {
		return defaultDurationHours
	}
	if blockDurationHours > 0 {
		return blockDurationHours
	}
	return domain.FallbackEventDurationHours
}

// EvaluateBlock generates the block's slots and computes per-slot capacity
// against the given same-day, non-cancelled bookings.
//
// RemainingCapacity is NOT clamped at zero: a negative value means
// overbooking already happened upstream and must stay visible.
func EvaluateBlock(block domain.TimeBlock, sameDayBookings []*domain.Booking, defaultDurationHours int) ([]domain.Slot, error) {
	windows, err := GenerateBlockSlots(block.StartTime, block.EndTime, block.DurationHours, block.HalfHourBreak)
	if err != nil {
		return nil, err
	}

	if block.OneReservationPerDay {
		return evaluateOneReservationPerDay(windows, sameDayBookings), nil
	}

	slots := make([]domain.Slot, 0, len(windows))
	for _, w := range windows {
		overlapping, err := CountOverlappingBookings(w, sameDayBookings, defaultDurationHours, block.DurationHours)
		if err != nil {
			return nil, err
		}

		slots = append(slots, domain.Slot{
			Time:              w.Start,
			EndTime:           w.End,
			Available:         overlapping < block.MaxEventsPerBlock,
			RemainingCapacity: block.MaxEventsPerBlock - overlapping,
			TotalCapacity:     block.MaxEventsPerBlock,
		})
	}

	return slots, nil
}

// evaluateOneReservationPerDay ignores per-slot overlap: any non-cancelled
// booking anywhere on the date exhausts the block's capacity
func evaluateOneReservationPerDay(windows []Window, sameDayBookings []*domain.Booking) []domain.Slot {
	hasBooking := false
	for _, b := range sameDayBookings {
		if b.IsActive() {
			hasBooking = true
			break
		}
	}

	remaining := 1
	if hasBooking {
		remaining = 0
	}

	slots := make([]domain.Slot, 0, len(windows))
	for _, w := range windows {
		slots = append(slots, domain.Slot{
			Time:              w.Start,
			EndTime:           w.End,
			Available:         !hasBooking,
			RemainingCapacity: remaining,
			TotalCapacity:     1,
		})
	}
	return slots
}

// CountOverlappingBookings counts the non-cancelled bookings whose
// [eventTime, eventTime+duration) range overlaps the window per the half-open
// predicate. Malformed booking times are a data error and fail fast.
func CountOverlappingBookings(w Window, bookings []*domain.Booking, defaultDurationHours, blockDurationHours int) (int, error) {
	windowStart, err := w.Start.Minutes()
	if err != nil {
		return 0, fmt.Errorf("%w: window start: %v", ErrInvalidTime, err)
	}
	windowEnd, err := w.End.Minutes()
	if err != nil {
		return 0, fmt.Errorf("%w: window end: %v", ErrInvalidTime, err)
	}

	count := 0
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}

		bookingStart, err := b.EventTime.Minutes()
		if err != nil {
			return 0, fmt.Errorf("%w: booking id=%d event time: %v", ErrInvalidTime, b.ID, err)
		}

		duration := ResolveBookingDuration(b, defaultDurationHours, blockDurationHours)
		bookingEnd := bookingStart + duration*60

		if overlapsMinutes(bookingStart, bookingEnd, windowStart, windowEnd) {
			count++
		}
	}

	return count, nil
}
