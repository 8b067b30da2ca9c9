package availability

import "github.com/m04kA/KDP-AvailabilityService/pkg/types"

// Overlaps reports whether two same-day time ranges overlap using half-open
// semantics: start1 < end2 && start2 < end1. Touching intervals (end1 ==
// start2) do NOT overlap. Only time-of-day is considered; callers must
// pre-filter bookings to the target date.
func Overlaps(start1, end1, start2, end2 types.TimeString) bool {
	return start1.IsBefore(end2) && start2.IsBefore(end1)
}

// overlapsMinutes is the same predicate over minutes-since-midnight. Booking
// end times may run past midnight (start + duration > 24h), which FromMinutes
// rejects, so capacity accounting works on raw minutes.
func overlapsMinutes(start1, end1, start2, end2 int) bool {
	return start1 < end2 && start2 < end1
}
