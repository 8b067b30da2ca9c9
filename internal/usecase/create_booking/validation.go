package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.EventDate.IsZero() {
		return fmt.Errorf("%w: eventDate is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.EventTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid eventTime format: %v", ErrInvalidInput, err)
	}

	if req.EventDurationHours != nil {
		if *req.EventDurationHours < domain.MinEventDurationHours ||
			*req.EventDurationHours > domain.MaxEventDurationHours {
			return fmt.Errorf("%w: eventDurationHours must be between %d and %d",
				ErrInvalidInput, domain.MinEventDurationHours, domain.MaxEventDurationHours)
		}
	}

	if req.CelebrantName == "" {
		return fmt.Errorf("%w: celebrantName is required", ErrInvalidInput)
	}

	if req.GuestCount <= 0 || req.GuestCount > domain.MaxGuestCount {
		return fmt.Errorf("%w: guestCount must be between 1 and %d", ErrInvalidInput, domain.MaxGuestCount)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDateNotInPast проверяет, что дата бронирования не в прошлом
func validateDateNotInPast(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}
