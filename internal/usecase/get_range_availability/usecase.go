package get_range_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/KDP-AvailabilityService/internal/availability"
	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/KDP-AvailabilityService/internal/infra/storage/schedule"
)

// UseCase use case для классификации диапазона дат
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

// Execute выполняет use case классификации диапазона дат
// Каждый день диапазона получает статус available, limited или unavailable
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRangeAvailability: start=%s, end=%s",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRangeAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем активную конфигурацию расписания
	config, err := uc.scheduleRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			uc.logger.Warn("GetRangeAvailability: no active schedule config")
			return nil, ErrNoActiveConfig
		}
		uc.logger.Error("GetRangeAvailability: failed to get schedule config: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
	}

	// 3. Получаем активные бронирования диапазона одним запросом
	start := availability.Truncate(req.StartDate)
	end := availability.Truncate(req.EndDate)

	filter := domain.BookingsFilter{
		StartDate: &start,
		EndDate:   &end,
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetRangeAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Классифицируем дни диапазона
	statuses, err := availability.ClassifyRange(start, end, config, bookings)
	if err != nil {
		uc.logger.Error("GetRangeAvailability: failed to classify range: %v", err)
		return nil, fmt.Errorf("%w: failed to classify range: %v", ErrInternal, err)
	}

	// Ответ в хронологическом порядке
	days := make([]DayStatus, 0, len(statuses))
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := availability.DayKey(day)
		days = append(days, DayStatus{
			Date:   key,
			Status: string(statuses[key]),
		})
	}

	uc.logger.Info("GetRangeAvailability: classified %d days", len(days))
	return &Response{
		StartDate: availability.DayKey(start),
		EndDate:   availability.DayKey(end),
		Days:      days,
	}, nil
}
