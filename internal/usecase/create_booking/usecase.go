package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/KDP-AvailabilityService/internal/availability"
	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/KDP-AvailabilityService/internal/infra/storage/schedule"
	"github.com/m04kA/KDP-AvailabilityService/pkg/types"
)

// UseCase use case для создания бронирования праздника
type UseCase struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности слота и вставка выполняются в сериализуемой
// транзакции: бронирования дня блокируются через FOR UPDATE, поэтому два
// параллельных запроса не смогут занять последнее место одного слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, date=%s, time=%s",
		req.UserID, req.EventDate.Format(domain.DateFormat), req.EventTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateDateNotInPast(req.EventDate, now); err != nil {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.EventDate.Format(domain.DateFormat))
		return nil, err
	}

	date := availability.Truncate(req.EventDate)

	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем активную конфигурацию расписания
		config, err := uc.scheduleRepo.GetActive(txCtx)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
				uc.logger.Warn("CreateBooking: no active schedule config")
				return ErrNoActiveConfig
			}
			uc.logger.Error("CreateBooking: failed to get schedule config: %v", err)
			return fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
		}

		// 3.2. Заблокированный день отдыха недоступен безусловно
		weekday := availability.Weekday(date)
		restDay := config.RestDayFor(weekday)
		if restDay != nil && !restDay.CanBeReleased {
			uc.logger.Warn("CreateBooking: %s is a blocked rest day", availability.DayKey(date))
			return ErrDateUnavailable
		}

		// 3.3. Получаем активные бронирования даты с блокировкой (FOR UPDATE)
		filter := domain.BookingsFilter{
			StartDate: &date,
			EndDate:   &date,
		}

		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.4. Политика одного праздника в день
		if config.OneEventPerDay && len(availability.ActiveOnDay(date, bookings)) > 0 {
			uc.logger.Warn("CreateBooking: %s already has a booking under one-event-per-day policy",
				availability.DayKey(date))
			return ErrDateUnavailable
		}

		// 3.5. Проверяем, что запрошенное время соответствует свободному слоту
		groups, err := availability.DaySlots(date, config, bookings)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to compute slots: %v", err)
			return fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
		}

		if err := findBookableSlot(groups, req.EventTime); err != nil {
			uc.logger.Warn("CreateBooking: slot %s on %s rejected: %v",
				req.EventTime, availability.DayKey(date), err)
			return err
		}

		// 3.6. Создаем бронирование; освобождённый день отдыха получает доплату
		booking := &domain.Booking{
			UserID:             req.UserID,
			EventDate:          date,
			EventTime:          req.EventTime,
			EventDurationHours: req.EventDurationHours,
			Status:             domain.StatusPending,
			CelebrantName:      req.CelebrantName,
			GuestCount:         req.GuestCount,
			PackageName:        req.PackageName,
			Notes:              req.Notes,
		}
		if restDay != nil {
			booking.RestDayFee = restDay.Fee
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:                 result.ID,
		UserID:             result.UserID,
		EventDate:          result.EventDate.Format(domain.DateFormat),
		EventTime:          result.EventTime,
		EventDurationHours: result.EventDurationHours,
		Status:             string(result.Status),
		CelebrantName:      result.CelebrantName,
		GuestCount:         result.GuestCount,
		PackageName:        result.PackageName,
		Notes:              result.Notes,
		RestDayFee:         result.RestDayFee,
		CreatedAt:          result.CreatedAt,
		UpdatedAt:          result.UpdatedAt,
	}, nil
}

// findBookableSlot ищет слот с запрошенным временем начала среди блоков дня.
// Возвращает ErrSlotNotFound, если такого времени нет в расписании,
// и ErrSlotNotAvailable, если слот есть, но ёмкость исчерпана
func findBookableSlot(groups []availability.BlockSlots, eventTime types.TimeString) error {
	found := false
	for _, group := range groups {
		for _, slot := range group.Slots {
			if slot.Time != eventTime {
				continue
			}
			if slot.Available {
				return nil
			}
			found = true
		}
	}

	if found {
		return ErrSlotNotAvailable
	}
	return ErrSlotNotFound
}
