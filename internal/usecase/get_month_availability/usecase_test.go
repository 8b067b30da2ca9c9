package get_month_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/KDP-AvailabilityService/internal/infra/storage/schedule"
	"github.com/m04kA/KDP-AvailabilityService/pkg/ptr"
)

// Моки

type mockScheduleRepo struct {
	config *domain.ScheduleConfig
	err    error
}

func (m *mockScheduleRepo) GetActive(_ context.Context) (*domain.ScheduleConfig, error) {
	return m.config, m.err
}

type mockBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (m *mockBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return m.bookings, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testConfig() *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		ID:     1,
		Name:   "standard",
		Active: true,
		TimeBlocks: []domain.TimeBlock{
			{
				Name:              "weekday",
				Days:              []int{1, 2, 3, 4, 5},
				StartTime:         "10:00",
				EndTime:           "20:00",
				DurationHours:     4,
				HalfHourBreak:     true,
				MaxEventsPerBlock: 1,
			},
		},
		RestDays: []domain.RestDay{
			{Day: 6, Fee: 0, CanBeReleased: false},
		},
		DefaultEventDurationHours: 4,
	}
}

// Тесты

func TestGetMonthAvailability_FullMonth(t *testing.T) {
	uc := NewUseCase(&mockScheduleRepo{config: testConfig()}, &mockBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Year: 2025, Month: 10})

	require.NoError(t, err)
	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, 10, resp.Month)
	// Октябрь 2025 — 31 день
	require.Len(t, resp.Days, 31)
	assert.Equal(t, "2025-10-01", resp.Days[0].Date)
	assert.Equal(t, "2025-10-31", resp.Days[30].Date)
}

func TestGetMonthAvailability_BookedDayMarked(t *testing.T) {
	// 2025-10-15 — среда; один блок ёмкостью 1, оба слота заняты
	wednesday := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	bookings := []*domain.Booking{
		{ID: 1, EventDate: wednesday, EventTime: "10:00", EventDurationHours: ptr.Ptr(4), Status: domain.StatusConfirmed},
		{ID: 2, EventDate: wednesday, EventTime: "14:30", EventDurationHours: ptr.Ptr(4), Status: domain.StatusConfirmed},
	}
	uc := NewUseCase(&mockScheduleRepo{config: testConfig()}, &mockBookingRepo{bookings: bookings}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Year: 2025, Month: 10})

	require.NoError(t, err)

	day := resp.Days[14] // 2025-10-15
	require.Equal(t, "2025-10-15", day.Date)
	assert.False(t, day.Available)
	assert.Equal(t, 0, day.AvailableSlots)
	assert.True(t, day.HasReservations)

	// Соседний день не затронут
	assert.True(t, resp.Days[15].Available)
}

func TestGetMonthAvailability_RestDaysMarked(t *testing.T) {
	uc := NewUseCase(&mockScheduleRepo{config: testConfig()}, &mockBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Year: 2025, Month: 10})

	require.NoError(t, err)

	// 2025-10-04 — суббота, заблокированный день отдыха
	day := resp.Days[3]
	require.Equal(t, "2025-10-04", day.Date)
	assert.True(t, day.IsRestDay)
	assert.False(t, day.Available)
	assert.Equal(t, 0, day.AvailableSlots)
}

func TestGetMonthAvailability_NoActiveConfig(t *testing.T) {
	uc := NewUseCase(&mockScheduleRepo{err: scheduleRepo.ErrConfigNotFound}, &mockBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Year: 2025, Month: 10})

	assert.ErrorIs(t, err, ErrNoActiveConfig)
}

func TestGetMonthAvailability_Validation(t *testing.T) {
	uc := NewUseCase(&mockScheduleRepo{config: testConfig()}, &mockBookingRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  Request
	}{
		{"zero month", Request{Year: 2025, Month: 0}},
		{"month too large", Request{Year: 2025, Month: 13}},
		{"year too small", Request{Year: 1999, Month: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
