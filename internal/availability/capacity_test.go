package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
	"github.com/m04kA/KDP-AvailabilityService/pkg/ptr"
)

func TestEvaluateBlock_CapacityTwoScenario(t *testing.T) {
	// One block 10:00-18:00, duration 2, capacity 2, no break; one confirmed
	// booking at 12:00 for 2 hours. Only the 12:00-14:00 slot loses a spot.
	block := weekdayBlock("afternoon", 3, 2)
	bookings := []*domain.Booking{confirmedAt(wednesday, "12:00", 2)}

	slots, err := EvaluateBlock(block, bookings, 0)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	assert.Equal(t, domain.Slot{Time: "10:00", EndTime: "12:00", Available: true, RemainingCapacity: 2, TotalCapacity: 2}, slots[0])
	assert.Equal(t, domain.Slot{Time: "12:00", EndTime: "14:00", Available: true, RemainingCapacity: 1, TotalCapacity: 2}, slots[1])
	assert.Equal(t, domain.Slot{Time: "14:00", EndTime: "16:00", Available: true, RemainingCapacity: 2, TotalCapacity: 2}, slots[2])
	assert.Equal(t, domain.Slot{Time: "16:00", EndTime: "18:00", Available: true, RemainingCapacity: 2, TotalCapacity: 2}, slots[3])
}

func TestEvaluateBlock_CapacityOneScenario(t *testing.T) {
	// Same scenario with capacity 1: the 12:00-14:00 slot becomes unavailable,
	// all others stay open.
	block := weekdayBlock("afternoon", 3, 1)
	bookings := []*domain.Booking{confirmedAt(wednesday, "12:00", 2)}

	slots, err := EvaluateBlock(block, bookings, 0)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	assert.True(t, slots[0].Available)
	assert.False(t, slots[1].Available)
	assert.Equal(t, 0, slots[1].RemainingCapacity)
	assert.True(t, slots[2].Available)
	assert.True(t, slots[3].Available)
}

func TestEvaluateBlock_CapacityMonotonicity(t *testing.T) {
	block := weekdayBlock("afternoon", 3, 3)

	base := []*domain.Booking{confirmedAt(wednesday, "12:00", 2)}
	baseSlots, err := EvaluateBlock(block, base, 0)
	require.NoError(t, err)

	// adding one more overlapping booking never increases remaining capacity
	more := append([]*domain.Booking{}, base...)
	more = append(more, confirmedAt(wednesday, "13:00", 2))
	moreSlots, err := EvaluateBlock(block, more, 0)
	require.NoError(t, err)

	for i := range baseSlots {
		assert.LessOrEqual(t, moreSlots[i].RemainingCapacity, baseSlots[i].RemainingCapacity)
	}

	// adding a cancelled booking changes nothing
	withCancelled := append([]*domain.Booking{}, base...)
	withCancelled = append(withCancelled, booking(wednesday, "12:00", ptr.Ptr(2), domain.StatusCancelled))
	cancelledSlots, err := EvaluateBlock(block, withCancelled, 0)
	require.NoError(t, err)

	assert.Equal(t, baseSlots, cancelledSlots)
}

func TestEvaluateBlock_NegativeRemainingNotClamped(t *testing.T) {
	// overbooked upstream: three overlapping bookings against capacity 1
	block := weekdayBlock("afternoon", 3, 1)
	bookings := []*domain.Booking{
		confirmedAt(wednesday, "12:00", 2),
		confirmedAt(wednesday, "12:00", 2),
		confirmedAt(wednesday, "13:00", 2),
	}

	slots, err := EvaluateBlock(block, bookings, 0)
	require.NoError(t, err)

	assert.Equal(t, -2, slots[1].RemainingCapacity)
	assert.True(t, slots[1].IsOverbooked())
}

func TestEvaluateBlock_OneReservationPerDay(t *testing.T) {
	block := weekdayBlock("exclusive", 3, 5)
	block.OneReservationPerDay = true

	t.Run("no bookings keeps every slot open", func(t *testing.T) {
		slots, err := EvaluateBlock(block, nil, 0)
		require.NoError(t, err)
		require.Len(t, slots, 4)
		for _, s := range slots {
			assert.True(t, s.Available)
			assert.Equal(t, 1, s.RemainingCapacity)
			assert.Equal(t, 1, s.TotalCapacity)
		}
	})

	t.Run("any booking anywhere on the date exhausts the block", func(t *testing.T) {
		// the booking does not even overlap the block's window
		bookings := []*domain.Booking{confirmedAt(wednesday, "08:00", 1)}

		slots, err := EvaluateBlock(block, bookings, 0)
		require.NoError(t, err)
		for _, s := range slots {
			assert.False(t, s.Available)
			assert.Equal(t, 0, s.RemainingCapacity)
		}
	})

	t.Run("cancelled bookings do not exhaust the block", func(t *testing.T) {
		bookings := []*domain.Booking{booking(wednesday, "12:00", ptr.Ptr(2), domain.StatusCancelled)}

		slots, err := EvaluateBlock(block, bookings, 0)
		require.NoError(t, err)
		for _, s := range slots {
			assert.True(t, s.Available)
		}
	})
}

func TestEvaluateBlock_TouchingBookingDoesNotConsume(t *testing.T) {
	block := weekdayBlock("afternoon", 3, 1)
	// booking 10:00-12:00 touches the 12:00-14:00 slot but must not consume it
	bookings := []*domain.Booking{confirmedAt(wednesday, "10:00", 2)}

	slots, err := EvaluateBlock(block, bookings, 0)
	require.NoError(t, err)

	assert.False(t, slots[0].Available)
	assert.True(t, slots[1].Available)
}

func TestEvaluateBlock_MalformedBookingTimeFailsFast(t *testing.T) {
	block := weekdayBlock("afternoon", 3, 1)
	bookings := []*domain.Booking{booking(wednesday, "26:00", ptr.Ptr(2), domain.StatusConfirmed)}

	_, err := EvaluateBlock(block, bookings, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestResolveBookingDuration(t *testing.T) {
	testCases := []struct {
		name            string
		bookingDuration *int
		defaultDuration int
		blockDuration   int
		want            int
	}{
		{
			name:            "booking duration wins",
			bookingDuration: ptr.Ptr(3),
			defaultDuration: 4,
			blockDuration:   2,
			want:            3,
		},
		{
			name:            "config default when booking has none",
			defaultDuration: 4,
			blockDuration:   2,
			want:            4,
		},
		{
			name:          "block duration when config default unset",
			blockDuration: 2,
			want:          2,
		},
		{
			name: "hard fallback of 2 hours",
			want: domain.FallbackEventDurationHours,
		},
		{
			name:            "zero booking duration is ignored",
			bookingDuration: ptr.Ptr(0),
			defaultDuration: 4,
			want:            4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := booking(wednesday, "12:00", tc.bookingDuration, domain.StatusConfirmed)
			got := ResolveBookingDuration(b, tc.defaultDuration, tc.blockDuration)
			assert.Equal(t, tc.want, got)
		})
	}
}
