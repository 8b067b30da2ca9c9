package get_day_slots

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

// 2025-10-15 — среда (weekday 3)
var wednesday = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

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

// Тесты

func TestGetDaySlots_Success(t *testing.T) {
	uc := NewUseCase(&mockScheduleRepo{config: testConfig()}, &mockBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: wednesday})

	require.NoError(t, err)
	assert.Equal(t, "2025-10-15", resp.Date)
	assert.False(t, resp.IsRestDay)
	require.Len(t, resp.Blocks, 1)
	assert.Equal(t, "weekday", resp.Blocks[0].BlockName)

	// 10:00-20:00, 4 часа с перерывом: слоты 10:00 и 14:30
	slots := resp.Blocks[0].Slots
	require.Len(t, slots, 2)
	assert.Equal(t, "10:00", slots[0].Time.String())
	assert.Equal(t, "14:30", slots[1].Time.String())
	assert.True(t, slots[0].Available)
	assert.Equal(t, 2, slots[0].RemainingCapacity)
}

func TestGetDaySlots_BookingReducesCapacity(t *testing.T) {
	bookings := []*domain.Booking{
		{
			ID:                 1,
			UserID:             9,
			EventDate:          wednesday,
			EventTime:          "10:00",
			EventDurationHours: ptr.Ptr(4),
			Status:             domain.StatusConfirmed,
		},
	}
	uc := NewUseCase(&mockScheduleRepo{config: testConfig()}, &mockBookingRepo{bookings: bookings}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: wednesday})

	require.NoError(t, err)
	slots := resp.Blocks[0].Slots
	assert.Equal(t, 1, slots[0].RemainingCapacity)
	assert.True(t, slots[0].Available)
	assert.Equal(t, 2, slots[1].RemainingCapacity)
}

func TestGetDaySlots_BlockedRestDay(t *testing.T) {
	uc := NewUseCase(&mockScheduleRepo{config: testConfig()}, &mockBookingRepo{}, nopLogger{})

	// 2025-10-18 — суббота, заблокированный день отдыха
	saturday := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{Date: saturday})

	require.NoError(t, err)
	assert.True(t, resp.IsRestDay)
	assert.False(t, resp.CanBeReleased)
	assert.Empty(t, resp.Blocks)
}

func TestGetDaySlots_NoActiveConfig(t *testing.T) {
	uc := NewUseCase(&mockScheduleRepo{err: scheduleRepo.ErrConfigNotFound}, &mockBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: wednesday})

	assert.ErrorIs(t, err, ErrNoActiveConfig)
}

func TestGetDaySlots_ZeroDate(t *testing.T) {
	uc := NewUseCase(&mockScheduleRepo{config: testConfig()}, &mockBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
