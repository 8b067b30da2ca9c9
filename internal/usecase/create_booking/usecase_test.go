package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/KDP-AvailabilityService/internal/infra/storage/schedule"
	"github.com/m04kA/KDP-AvailabilityService/pkg/ptr"
	"github.com/m04kA/KDP-AvailabilityService/pkg/types"
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
	bookings  []*domain.Booking
	created   *domain.Booking
	createErr error
	filterErr error
}

func (m *mockBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return m.bookings, m.filterErr
}

func (m *mockBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	booking.ID = 42
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	m.created = booking
	return booking, nil
}

type mockTxManager struct{}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Хелперы

// 2025-10-15 — среда (weekday 3)
var wednesday = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

// 2025-10-19 — воскресенье (weekday 0)
var sunday = time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)

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
			{Day: 0, Fee: 5000, CanBeReleased: true},
			{Day: 6, Fee: 0, CanBeReleased: false},
		},
		DefaultEventDurationHours: 4,
	}
}

func newTestUseCase(schedule *mockScheduleRepo, bookings *mockBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(schedule, bookings, &mockTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func validRequest(date time.Time, eventTime types.TimeString) *Request {
	return &Request{
		UserID:        7,
		EventDate:     date,
		EventTime:     eventTime,
		CelebrantName: "Маша",
		GuestCount:    10,
	}
}

func booking(date time.Time, eventTime types.TimeString, hours int) *domain.Booking {
	return &domain.Booking{
		ID:                 1,
		UserID:             99,
		EventDate:          date,
		EventTime:          eventTime,
		EventDurationHours: ptr.Ptr(hours),
		Status:             domain.StatusConfirmed,
	}
}

// Тесты

func TestCreateBooking_Success(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	uc := newTestUseCase(&mockScheduleRepo{config: testConfig()}, bookingRepo, wednesday.AddDate(0, 0, -7))

	resp, err := uc.Execute(context.Background(), validRequest(wednesday, "10:00"))

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2025-10-15", resp.EventDate)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 0.0, resp.RestDayFee)
	require.NotNil(t, bookingRepo.created)
	assert.Equal(t, domain.StatusPending, bookingRepo.created.Status)
}

func TestCreateBooking_ReleasableRestDayChargesFee(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	uc := newTestUseCase(&mockScheduleRepo{config: testConfig()}, bookingRepo, wednesday)

	// Воскресенье — освобождаемый день отдыха без блоков: действует
	// запасное расписание 10:00-18:00
	resp, err := uc.Execute(context.Background(), validRequest(sunday, "10:00"))

	require.NoError(t, err)
	assert.Equal(t, 5000.0, resp.RestDayFee)
}

func TestCreateBooking_BlockedRestDayRejected(t *testing.T) {
	uc := newTestUseCase(&mockScheduleRepo{config: testConfig()}, &mockBookingRepo{}, wednesday)

	// 2025-10-18 — суббота, заблокированный день отдыха
	saturday := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), validRequest(saturday, "10:00"))

	assert.ErrorIs(t, err, ErrDateUnavailable)
}

func TestCreateBooking_SlotNotInSchedule(t *testing.T) {
	uc := newTestUseCase(&mockScheduleRepo{config: testConfig()}, &mockBookingRepo{}, wednesday)

	// 11:00 не совпадает ни с одним началом слота (10:00, 14:30)
	_, err := uc.Execute(context.Background(), validRequest(wednesday, "11:00"))

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestCreateBooking_SlotFull(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		bookings: []*domain.Booking{
			booking(wednesday, "10:00", 4),
			booking(wednesday, "10:00", 4),
		},
	}
	uc := newTestUseCase(&mockScheduleRepo{config: testConfig()}, bookingRepo, wednesday)

	_, err := uc.Execute(context.Background(), validRequest(wednesday, "10:00"))

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCreateBooking_OneEventPerDayPolicy(t *testing.T) {
	config := testConfig()
	config.OneEventPerDay = true

	bookingRepo := &mockBookingRepo{
		bookings: []*domain.Booking{booking(wednesday, "14:30", 4)},
	}
	uc := newTestUseCase(&mockScheduleRepo{config: config}, bookingRepo, wednesday)

	_, err := uc.Execute(context.Background(), validRequest(wednesday, "10:00"))

	assert.ErrorIs(t, err, ErrDateUnavailable)
}

func TestCreateBooking_DateInPast(t *testing.T) {
	uc := newTestUseCase(&mockScheduleRepo{config: testConfig()}, &mockBookingRepo{}, wednesday.AddDate(0, 0, 1))

	_, err := uc.Execute(context.Background(), validRequest(wednesday, "10:00"))

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateBooking_NoActiveConfig(t *testing.T) {
	uc := newTestUseCase(&mockScheduleRepo{err: scheduleRepo.ErrConfigNotFound}, &mockBookingRepo{}, wednesday)

	_, err := uc.Execute(context.Background(), validRequest(wednesday, "10:00"))

	assert.ErrorIs(t, err, ErrNoActiveConfig)
}

func TestCreateBooking_Validation(t *testing.T) {
	uc := newTestUseCase(&mockScheduleRepo{config: testConfig()}, &mockBookingRepo{}, wednesday)

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"zero userID", func(r *Request) { r.UserID = 0 }},
		{"zero date", func(r *Request) { r.EventDate = time.Time{} }},
		{"malformed time", func(r *Request) { r.EventTime = "9:30" }},
		{"empty celebrant name", func(r *Request) { r.CelebrantName = "" }},
		{"zero guests", func(r *Request) { r.GuestCount = 0 }},
		{"duration out of bounds", func(r *Request) { r.EventDurationHours = ptr.Ptr(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(wednesday, "10:00")
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
