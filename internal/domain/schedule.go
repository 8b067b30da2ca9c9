package domain

import (
	"time"

	"github.com/m04kA/KDP-AvailabilityService/pkg/types"
)

// TimeBlock represents a named operating window on specific weekdays
// from which bookable slots are generated.
// Invariant: StartTime < EndTime; slots are generated only while
// slotStart + duration <= EndTime.
type TimeBlock struct {
	ID        int64
	Name      string
	Days      []int // weekday indices, 0 = Sunday .. 6 = Saturday
	StartTime types.TimeString
	EndTime   types.TimeString
	// DurationHours length of one bookable slot within the block
	DurationHours int
	// HalfHourBreak inserts a 30-minute gap between consecutive slots
	HalfHourBreak bool
	// MaxEventsPerBlock max concurrent time-overlapping bookings within the block
	MaxEventsPerBlock int
	// OneReservationPerDay treats any booking anywhere on the date as
	// exhausting the block's capacity, ignoring per-slot overlap
	OneReservationPerDay bool
}

// AppliesTo returns true if the block operates on the given weekday
func (b *TimeBlock) AppliesTo(weekday int) bool {
	for _, d := range b.Days {
		if d == weekday {
			return true
		}
	}
	return false
}

// RestDay represents a weekday designated as normally closed,
// optionally releasable for booking with a fee.
type RestDay struct {
	ID  int64
	Day int // weekday index, 0 = Sunday .. 6 = Saturday
	Fee float64
	// CanBeReleased: false = categorically unavailable regardless of capacity
	CanBeReleased bool
}

// ScheduleConfig is the aggregate root of the availability configuration.
// At most one configuration is active at a time.
type ScheduleConfig struct {
	ID         int64
	Name       string
	Active     bool
	TimeBlocks []TimeBlock
	RestDays   []RestDay
	// OneEventPerDay collapses a day's capacity to a single booking
	// regardless of per-block MaxEventsPerBlock
	OneEventPerDay bool
	// DefaultEventDurationHours fallback duration when a booking lacks its own
	DefaultEventDurationHours int
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// BlocksForWeekday returns the blocks applicable to the given weekday,
// preserving configuration order
func (c *ScheduleConfig) BlocksForWeekday(weekday int) []TimeBlock {
	blocks := make([]TimeBlock, 0)
	for _, b := range c.TimeBlocks {
		if b.AppliesTo(weekday) {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// RestDayFor returns the rest-day entry for the given weekday, or nil
func (c *ScheduleConfig) RestDayFor(weekday int) *RestDay {
	for i := range c.RestDays {
		if c.RestDays[i].Day == weekday {
			return &c.RestDays[i]
		}
	}
	return nil
}

// FallbackRestDayBlock returns the synthetic schedule used for a releasable
// rest day that has no configured blocks, so the day remains bookable
func FallbackRestDayBlock() TimeBlock {
	return TimeBlock{
		Name:              FallbackRestDayBlockName,
		StartTime:         FallbackRestDayStartTime,
		EndTime:           FallbackRestDayEndTime,
		DurationHours:     FallbackRestDayDurationHours,
		HalfHourBreak:     true,
		MaxEventsPerBlock: FallbackRestDayCapacity,
	}
}
