package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/KDP-AvailabilityService/pkg/types"
)

func TestGenerateBlockSlots(t *testing.T) {
	testCases := []struct {
		name          string
		start         types.TimeString
		end           types.TimeString
		durationHours int
		halfHourBreak bool
		want          []Window
	}{
		{
			name:          "full day without break",
			start:         "10:00",
			end:           "18:00",
			durationHours: 2,
			want: []Window{
				{Start: "10:00", End: "12:00"},
				{Start: "12:00", End: "14:00"},
				{Start: "14:00", End: "16:00"},
				{Start: "16:00", End: "18:00"},
			},
		},
		{
			name:          "half-hour break advances by 150 minutes",
			start:         "10:00",
			end:           "18:00",
			durationHours: 2,
			halfHourBreak: true,
			want: []Window{
				{Start: "10:00", End: "12:00"},
				{Start: "12:30", End: "14:30"},
				{Start: "15:00", End: "17:00"},
			},
		},
		{
			name:          "block shorter than one duration yields no slots",
			start:         "10:00",
			end:           "11:00",
			durationHours: 2,
			want:          []Window{},
		},
		{
			name:          "no partial slot at the tail",
			start:         "10:00",
			end:           "17:00",
			durationHours: 2,
			want: []Window{
				{Start: "10:00", End: "12:00"},
				{Start: "12:00", End: "14:00"},
				{Start: "14:00", End: "16:00"},
			},
		},
		{
			name:          "exact fit emits the last slot",
			start:         "09:30",
			end:           "13:30",
			durationHours: 4,
			want: []Window{
				{Start: "09:30", End: "13:30"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := GenerateBlockSlots(tc.start, tc.end, tc.durationHours, tc.halfHourBreak)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGenerateBlockSlots_CountFormula(t *testing.T) {
	// Without a break the slot count equals
	// floor((endMinutes - startMinutes) / (duration * 60))
	got, err := GenerateBlockSlots("10:00", "18:00", 2, false)
	require.NoError(t, err)
	assert.Len(t, got, (18*60-10*60)/(2*60))
}

func TestGenerateBlockSlots_Deterministic(t *testing.T) {
	first, err := GenerateBlockSlots("10:00", "18:00", 2, true)
	require.NoError(t, err)

	second, err := GenerateBlockSlots("10:00", "18:00", 2, true)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// no slot end exceeds the block end
	for _, w := range first {
		assert.False(t, w.End.IsAfter("18:00"))
	}
}

func TestGenerateBlockSlots_Errors(t *testing.T) {
	testCases := []struct {
		name          string
		start         types.TimeString
		end           types.TimeString
		durationHours int
		wantErr       error
	}{
		{
			name:          "malformed start time",
			start:         "25:99",
			end:           "18:00",
			durationHours: 2,
			wantErr:       ErrInvalidTime,
		},
		{
			name:          "malformed end time",
			start:         "10:00",
			end:           "abc",
			durationHours: 2,
			wantErr:       ErrInvalidTime,
		},
		{
			name:          "zero duration",
			start:         "10:00",
			end:           "18:00",
			durationHours: 0,
			wantErr:       ErrInvalidDuration,
		},
		{
			name:          "negative duration",
			start:         "10:00",
			end:           "18:00",
			durationHours: -1,
			wantErr:       ErrInvalidDuration,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GenerateBlockSlots(tc.start, tc.end, tc.durationHours, false)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
