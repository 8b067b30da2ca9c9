package availability

import (
	"time"

	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
	"github.com/m04kA/KDP-AvailabilityService/pkg/ptr"
	"github.com/m04kA/KDP-AvailabilityService/pkg/types"
)

func ts(s string) types.TimeString {
	return types.TimeString(s)
}

// wednesday is a fixed Wednesday used across the tests (2025-10-15)
var wednesday = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func booking(date time.Time, eventTime string, durationHours *int, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		EventDate:          date,
		EventTime:          ts(eventTime),
		EventDurationHours: durationHours,
		Status:             status,
	}
}

func confirmedAt(date time.Time, eventTime string, durationHours int) *domain.Booking {
	return booking(date, eventTime, ptr.Ptr(durationHours), domain.StatusConfirmed)
}

func weekdayBlock(name string, weekday int, maxEvents int) domain.TimeBlock {
	return domain.TimeBlock{
		Name:              name,
		Days:              []int{weekday},
		StartTime:         "10:00",
		EndTime:           "18:00",
		DurationHours:     2,
		MaxEventsPerBlock: maxEvents,
	}
}
