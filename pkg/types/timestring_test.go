package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning time", input: "09:30"},
		{name: "valid midnight", input: "00:00"},
		{name: "valid end of day", input: "23:59"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "missing padding", input: "9:30", wantErr: true},
		{name: "not a time", input: "abc", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, TimeString(tc.input), got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	testCases := []struct {
		input TimeString
		want  int
	}{
		{input: "00:00", want: 0},
		{input: "10:00", want: 600},
		{input: "12:30", want: 750},
		{input: "23:59", want: 1439},
	}

	for _, tc := range testCases {
		t.Run(string(tc.input), func(t *testing.T) {
			got, err := tc.input.Minutes()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := TimeString("bad").Minutes()
	require.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(150)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:30"), got)

	// crossing midnight is out of range for a wall-clock value
	_, err = TimeString("23:00").AddMinutes(120)
	require.Error(t, err)
}

func TestFromMinutes(t *testing.T) {
	got, err := FromMinutes(750)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:30"), got)

	_, err = FromMinutes(-1)
	require.Error(t, err)

	_, err = FromMinutes(1440)
	require.Error(t, err)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 10, 15, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}
