package domain

import "github.com/m04kA/KDP-AvailabilityService/pkg/types"

// Default configuration values
const (
	DefaultEventDurationHours = 4
	DefaultMaxEventsPerBlock  = 1

	// FallbackEventDurationHours hard fallback when neither the booking, the
	// configuration default, nor the block duration is set
	FallbackEventDurationHours = 2
)

// Fallback schedule for a releasable rest day without configured blocks
const (
	FallbackRestDayBlockName     = "rest-day-release"
	FallbackRestDayStartTime     = types.TimeString("10:00")
	FallbackRestDayEndTime       = types.TimeString("18:00")
	FallbackRestDayDurationHours = 4
	FallbackRestDayCapacity      = 2
)

// Business validation constants
const (
	MinWeekday = 0 // Sunday
	MaxWeekday = 6 // Saturday

	MinEventDurationHours = 1
	MaxEventDurationHours = 12

	MinEventsPerBlock = 1
	MaxEventsPerBlock = 50

	MaxGuestCount = 200

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500

	// HalfHourBreakMinutes gap inserted between consecutive slots
	// when a block has HalfHourBreak enabled
	HalfHourBreakMinutes = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не учитываемых при подсчёте доступности
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих ёмкость слотов
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
