package availability

import (
	"time"

	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
)

// BlockSlots is the per-slot view of one block, for day-detail screens
type BlockSlots struct {
	BlockName string
	Slots     []domain.Slot
}

// DaySummary is the coarse per-day view for calendar-grid rendering
type DaySummary struct {
	Date            string // canonical YYYY-MM-DD key
	Available       bool
	TotalSlots      int
	AvailableSlots  int
	IsRestDay       bool
	RestDayFee      float64
	HasReservations bool
}

// applicableBlocks resolves the blocks operating on the date. A releasable
// rest day with no configured blocks receives the synthetic fallback schedule
// so it remains bookable; a blocked rest day gets no fallback.
func applicableBlocks(cfg *domain.ScheduleConfig, weekday int, restDay *domain.RestDay) []domain.TimeBlock {
	blocks := cfg.BlocksForWeekday(weekday)
	if len(blocks) == 0 && restDay != nil && restDay.CanBeReleased {
		blocks = []domain.TimeBlock{domain.FallbackRestDayBlock()}
	}
	return blocks
}

// DaySlots computes the per-slot availability for a single date, grouped by
// block name. Callers pass the non-cancelled bookings of that date; the
// engine drops cancelled ones defensively either way.
//
// A blocked rest day yields no slots at all.
func DaySlots(date time.Time, cfg *domain.ScheduleConfig, bookings []*domain.Booking) ([]BlockSlots, error) {
	weekday := Weekday(date)
	restDay := cfg.RestDayFor(weekday)

	if restDay != nil && !restDay.CanBeReleased {
		return []BlockSlots{}, nil
	}

	sameDay := ActiveOnDay(date, bookings)
	blocks := applicableBlocks(cfg, weekday, restDay)

	groups := make([]BlockSlots, 0, len(blocks))
	for _, block := range blocks {
		slots, err := EvaluateBlock(block, sameDay, cfg.DefaultEventDurationHours)
		if err != nil {
			return nil, err
		}
		groups = append(groups, BlockSlots{BlockName: block.Name, Slots: slots})
	}

	return groups, nil
}

// SummarizeDay produces the per-day summary for a single date.
//
// Policy branch:
//   - OneEventPerDay: the day is binary — fully open with no bookings, fully
//     closed with any. TotalSlots stays informational.
//   - otherwise: slots are generated and evaluated per block and summed.
//
// A day with zero applicable blocks is reported available with zero slots;
// the "nothing to book" decision belongs to the caller. A blocked rest day
// forces AvailableSlots = 0 unconditionally.
func SummarizeDay(date time.Time, cfg *domain.ScheduleConfig, bookings []*domain.Booking) (*DaySummary, error) {
	weekday := Weekday(date)
	restDay := cfg.RestDayFor(weekday)
	sameDay := ActiveOnDay(date, bookings)

	summary := &DaySummary{
		Date:            DayKey(date),
		IsRestDay:       restDay != nil,
		HasReservations: len(sameDay) > 0,
	}
	if restDay != nil {
		summary.RestDayFee = restDay.Fee
	}

	blocked := restDay != nil && !restDay.CanBeReleased
	blocks := applicableBlocks(cfg, weekday, restDay)

	if cfg.OneEventPerDay {
		for _, block := range blocks {
			windows, err := GenerateBlockSlots(block.StartTime, block.EndTime, block.DurationHours, block.HalfHourBreak)
			if err != nil {
				return nil, err
			}
			summary.TotalSlots += len(windows)
		}
		if len(sameDay) == 0 {
			summary.AvailableSlots = summary.TotalSlots
		}
	} else {
		for _, block := range blocks {
			slots, err := EvaluateBlock(block, sameDay, cfg.DefaultEventDurationHours)
			if err != nil {
				return nil, err
			}
			summary.TotalSlots += len(slots)
			for _, s := range slots {
				if s.Available {
					summary.AvailableSlots++
				}
			}
		}
	}

	if blocked {
		summary.AvailableSlots = 0
		summary.Available = false
		return summary, nil
	}

	// Zero applicable blocks: not unavailable, available with zero slots
	if summary.TotalSlots == 0 {
		summary.Available = true
		return summary, nil
	}

	summary.Available = summary.AvailableSlots > 0
	return summary, nil
}
