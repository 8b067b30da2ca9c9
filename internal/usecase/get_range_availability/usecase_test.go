package get_range_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/KDP-AvailabilityService/internal/availability"
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
				MaxEventsPerBlock: 2,
			},
		},
		RestDays: []domain.RestDay{
			{Day: 6, Fee: 0, CanBeReleased: false},
		},
		DefaultEventDurationHours: 4,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Тесты

func TestGetRangeAvailability_ChronologicalStatuses(t *testing.T) {
	// 2025-10-13 (пн) .. 2025-10-19 (вс); бронь на вторник занимает
	// половину дневной ёмкости
	bookings := []*domain.Booking{
		{ID: 1, EventDate: day(2025, 10, 14), EventTime: "10:00", EventDurationHours: ptr.Ptr(4), Status: domain.StatusConfirmed},
	}
	uc := NewUseCase(&mockScheduleRepo{config: testConfig()}, &mockBookingRepo{bookings: bookings}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: day(2025, 10, 13),
		EndDate:   day(2025, 10, 19),
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-10-13", resp.StartDate)
	assert.Equal(t, "2025-10-19", resp.EndDate)
	require.Len(t, resp.Days, 7)

	assert.Equal(t, "2025-10-13", resp.Days[0].Date)
	assert.Equal(t, string(availability.DayAvailable), resp.Days[0].Status)

	// Вторник: занят один слот из двух
	assert.Equal(t, "2025-10-14", resp.Days[1].Date)
	assert.Equal(t, string(availability.DayLimited), resp.Days[1].Status)

	// Суббота — заблокированный день отдыха
	assert.Equal(t, "2025-10-18", resp.Days[5].Date)
	assert.Equal(t, string(availability.DayUnavailable), resp.Days[5].Status)

	// Воскресенье: нулевая ёмкость трактуется как available
	assert.Equal(t, "2025-10-19", resp.Days[6].Date)
	assert.Equal(t, string(availability.DayAvailable), resp.Days[6].Status)
}

func TestGetRangeAvailability_FullyBookedDayUnavailable(t *testing.T) {
	wednesday := day(2025, 10, 15)
	bookings := []*domain.Booking{
		{ID: 1, EventDate: wednesday, EventTime: "10:00", EventDurationHours: ptr.Ptr(4), Status: domain.StatusConfirmed},
		{ID: 2, EventDate: wednesday, EventTime: "14:30", EventDurationHours: ptr.Ptr(4), Status: domain.StatusConfirmed},
	}
	uc := NewUseCase(&mockScheduleRepo{config: testConfig()}, &mockBookingRepo{bookings: bookings}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: wednesday,
		EndDate:   wednesday,
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, string(availability.DayUnavailable), resp.Days[0].Status)
}

func TestGetRangeAvailability_NoActiveConfig(t *testing.T) {
	uc := NewUseCase(&mockScheduleRepo{err: scheduleRepo.ErrConfigNotFound}, &mockBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		StartDate: day(2025, 10, 13),
		EndDate:   day(2025, 10, 14),
	})

	assert.ErrorIs(t, err, ErrNoActiveConfig)
}

func TestGetRangeAvailability_Validation(t *testing.T) {
	uc := NewUseCase(&mockScheduleRepo{config: testConfig()}, &mockBookingRepo{}, nopLogger{})

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"zero start date", Request{EndDate: day(2025, 10, 14)}, ErrInvalidInput},
		{"zero end date", Request{StartDate: day(2025, 10, 13)}, ErrInvalidInput},
		{"end before start", Request{StartDate: day(2025, 10, 14), EndDate: day(2025, 10, 13)}, ErrInvalidRange},
		{"range too large", Request{StartDate: day(2025, 1, 1), EndDate: day(2026, 6, 1)}, ErrRangeTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
