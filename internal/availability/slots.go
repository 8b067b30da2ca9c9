package availability

import (
	"fmt"

	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
	"github.com/m04kA/KDP-AvailabilityService/pkg/types"
)

// Window is one candidate slot range within a block, before capacity
// evaluation
type Window struct {
	Start types.TimeString
	End   types.TimeString
}

// GenerateBlockSlots produces the ordered sequence of slot windows that fit
// entirely within [startTime, endTime). A slot that would overrun endTime is
// dropped, never truncated. An empty result is a valid outcome (the block is
// shorter than one duration).
func GenerateBlockSlots(startTime, endTime types.TimeString, durationHours int, halfHourBreak bool) ([]Window, error) {
	if durationHours <= 0 {
		return nil, fmt.Errorf("%w: durationHours=%d", ErrInvalidDuration, durationHours)
	}

	startMinutes, err := startTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: block start: %v", ErrInvalidTime, err)
	}

	endMinutes, err := endTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: block end: %v", ErrInvalidTime, err)
	}

	durationMinutes := durationHours * 60
	step := durationMinutes
	if halfHourBreak {
		step += domain.HalfHourBreakMinutes
	}

	windows := make([]Window, 0)
	// current strictly increases each iteration, bounded by endMinutes
	for current := startMinutes; current+durationMinutes <= endMinutes; current += step {
		slotStart, err := types.FromMinutes(current)
		if err != nil {
			return nil, fmt.Errorf("%w: slot start: %v", ErrInvalidTime, err)
		}
		slotEnd, err := types.FromMinutes(current + durationMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: slot end: %v", ErrInvalidTime, err)
		}
		windows = append(windows, Window{Start: slotStart, End: slotEnd})
	}

	return windows, nil
}
