package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/KDP-AvailabilityService/internal/infra/storage/schedule"
	"github.com/m04kA/KDP-AvailabilityService/internal/service/schedule/models"
)

// Service сервис для работы с конфигурацией расписания
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetActive получает активную конфигурацию расписания
func (s *Service) GetActive(ctx context.Context) (*models.ScheduleResponse, error) {
	s.logger.Info("GetActive: fetching active schedule config")

	config, err := s.scheduleRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			s.logger.Warn("GetActive: no active schedule config")
			return nil, ErrConfigNotFound
		}
		s.logger.Error("GetActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetActive: successfully fetched config id=%d with %d blocks", config.ID, len(config.TimeBlocks))
	return models.FromDomainConfig(config), nil
}

// Update заменяет содержимое активной конфигурации расписания
// Блоки и дни отдыха пересоздаются атомарно внутри транзакции
func (s *Service) Update(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating active schedule config, blocks=%d, restDays=%d",
		len(req.TimeBlocks), len(req.RestDays))

	config := req.ToDomainConfig()

	if err := s.validateConfig(config); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.ScheduleConfig
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var txErr error
		updated, txErr = s.scheduleRepo.ReplaceActive(txCtx, config)
		return txErr
	})

	if err != nil {
		if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			s.logger.Warn("Update: no active schedule config")
			return nil, ErrConfigNotFound
		}
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated config id=%d", updated.ID)
	return models.FromDomainConfig(updated), nil
}

// validateConfig валидирует конфигурацию расписания перед сохранением
func (s *Service) validateConfig(config *domain.ScheduleConfig) error {
	if config.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}

	if config.DefaultEventDurationHours < domain.MinEventDurationHours ||
		config.DefaultEventDurationHours > domain.MaxEventDurationHours {
		return fmt.Errorf("%w: defaultEventDurationHours must be between %d and %d",
			ErrInvalidInput, domain.MinEventDurationHours, domain.MaxEventDurationHours)
	}

	for _, block := range config.TimeBlocks {
		if err := s.validateBlock(&block); err != nil {
			return err
		}
	}

	seenDays := make(map[int]bool)
	for _, rd := range config.RestDays {
		if rd.Day < domain.MinWeekday || rd.Day > domain.MaxWeekday {
			return fmt.Errorf("%w: rest day weekday must be between %d and %d",
				ErrInvalidInput, domain.MinWeekday, domain.MaxWeekday)
		}
		if rd.Fee < 0 {
			return fmt.Errorf("%w: rest day fee must not be negative", ErrInvalidInput)
		}
		if seenDays[rd.Day] {
			return fmt.Errorf("%w: duplicate rest day for weekday %d", ErrInvalidInput, rd.Day)
		}
		seenDays[rd.Day] = true
	}

	return nil
}

// validateBlock валидирует один блок расписания
func (s *Service) validateBlock(block *domain.TimeBlock) error {
	if block.Name == "" {
		return fmt.Errorf("%w: block name must not be empty", ErrInvalidInput)
	}

	if len(block.Days) == 0 {
		return fmt.Errorf("%w: block %q must apply to at least one weekday", ErrInvalidInput, block.Name)
	}
	for _, d := range block.Days {
		if d < domain.MinWeekday || d > domain.MaxWeekday {
			return fmt.Errorf("%w: block %q weekday must be between %d and %d",
				ErrInvalidInput, block.Name, domain.MinWeekday, domain.MaxWeekday)
		}
	}

	if err := block.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: block %q has invalid startTime: %v", ErrInvalidInput, block.Name, err)
	}
	if err := block.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: block %q has invalid endTime: %v", ErrInvalidInput, block.Name, err)
	}
	if !block.StartTime.IsBefore(block.EndTime) {
		return fmt.Errorf("%w: block %q startTime must be before endTime", ErrInvalidInput, block.Name)
	}

	if block.DurationHours < domain.MinEventDurationHours || block.DurationHours > domain.MaxEventDurationHours {
		return fmt.Errorf("%w: block %q durationHours must be between %d and %d",
			ErrInvalidInput, block.Name, domain.MinEventDurationHours, domain.MaxEventDurationHours)
	}

	if block.MaxEventsPerBlock < domain.MinEventsPerBlock || block.MaxEventsPerBlock > domain.MaxEventsPerBlock {
		return fmt.Errorf("%w: block %q maxEventsPerBlock must be between %d and %d",
			ErrInvalidInput, block.Name, domain.MinEventsPerBlock, domain.MaxEventsPerBlock)
	}

	return nil
}
