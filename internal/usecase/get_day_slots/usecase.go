package get_day_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/KDP-AvailabilityService/internal/availability"
	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/KDP-AvailabilityService/internal/infra/storage/schedule"
)

// UseCase use case для получения слотов конкретной даты
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

// Execute выполняет use case получения слотов даты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем активную конфигурацию расписания
	config, err := uc.scheduleRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			uc.logger.Warn("GetDaySlots: no active schedule config")
			return nil, ErrNoActiveConfig
		}
		uc.logger.Error("GetDaySlots: failed to get schedule config: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
	}

	// 3. Получаем активные бронирования на дату
	date := availability.Truncate(req.Date)
	filter := domain.BookingsFilter{
		StartDate: &date,
		EndDate:   &date,
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Вычисляем слоты по блокам
	groups, err := availability.DaySlots(date, config, bookings)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:   availability.DayKey(date),
		Blocks: fromEngineBlocks(groups),
	}

	if restDay := config.RestDayFor(availability.Weekday(date)); restDay != nil {
		resp.IsRestDay = true
		resp.CanBeReleased = restDay.CanBeReleased
		resp.RestDayFee = restDay.Fee
	}

	uc.logger.Info("GetDaySlots: computed %d blocks for date=%s", len(resp.Blocks), resp.Date)
	return resp, nil
}
