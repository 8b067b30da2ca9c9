package get_month_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/KDP-AvailabilityService/internal/availability"
	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/KDP-AvailabilityService/internal/infra/storage/schedule"
)

// UseCase use case для получения календаря доступности на месяц
type UseCase struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		logger:       logger,
	}
}

// Execute выполняет use case построения календаря месяца
// Бронирования месяца загружаются одним запросом, после чего каждый день
// месяца рассчитывается независимо
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthAvailability: year=%d, month=%d", req.Year, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем активную конфигурацию расписания
	config, err := uc.scheduleRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			uc.logger.Warn("GetMonthAvailability: no active schedule config")
			return nil, ErrNoActiveConfig
		}
		uc.logger.Error("GetMonthAvailability: failed to get schedule config: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
	}

	// 3. Границы месяца: от первого числа до последнего включительно
	firstDay := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	filter := domain.BookingsFilter{
		StartDate: &firstDay,
		EndDate:   &lastDay,
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetMonthAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Группируем бронирования по дням и рассчитываем каждый день
	buckets := availability.BucketByDay(bookings)

	days := make([]DaySummary, 0, lastDay.Day())
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		summary, err := availability.SummarizeDay(day, config, buckets[availability.DayKey(day)])
		if err != nil {
			uc.logger.Error("GetMonthAvailability: failed to summarize %s: %v", availability.DayKey(day), err)
			return nil, fmt.Errorf("%w: failed to summarize day: %v", ErrInternal, err)
		}

		days = append(days, DaySummary{
			Date:            summary.Date,
			Available:       summary.Available,
			TotalSlots:      summary.TotalSlots,
			AvailableSlots:  summary.AvailableSlots,
			IsRestDay:       summary.IsRestDay,
			RestDayFee:      summary.RestDayFee,
			HasReservations: summary.HasReservations,
		})
	}

	uc.logger.Info("GetMonthAvailability: computed %d days for %d-%02d", len(days), req.Year, req.Month)
	return &Response{
		Year:  req.Year,
		Month: req.Month,
		Days:  days,
	}, nil
}
