package domain

import "github.com/m04kA/KDP-AvailabilityService/pkg/types"

// Slot represents one discrete bookable time range derived from a block.
// Computed fresh per request; never persisted or cached.
type Slot struct {
	Time              types.TimeString
	EndTime           types.TimeString
	Available         bool
	RemainingCapacity int
	TotalCapacity     int
}

// IsFull returns true if the slot has no remaining capacity
func (s *Slot) IsFull() bool {
	return s.RemainingCapacity <= 0
}

// IsOverbooked returns true if more bookings overlap the slot than its
// capacity permits. Negative remaining capacity is surfaced as-is, never
// clamped, so operators can see the data-integrity problem.
func (s *Slot) IsOverbooked() bool {
	return s.RemainingCapacity < 0
}

// IsFullyAvailable returns true if no booking overlaps the slot
func (s *Slot) IsFullyAvailable() bool {
	return s.RemainingCapacity == s.TotalCapacity
}
