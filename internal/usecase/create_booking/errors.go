package create_booking

import "errors"

var (
	// ErrNoActiveConfig возвращается, когда нет активной конфигурации расписания
	ErrNoActiveConfig = errors.New("no active schedule config")

	// ErrInvalidDate возвращается при попытке забронировать дату в прошлом
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDateUnavailable возвращается, когда дата закрыта для бронирования
	// (заблокированный день отдыха или исчерпанный дневной лимит)
	ErrDateUnavailable = errors.New("date is not available for booking")

	// ErrSlotNotFound возвращается, когда запрошенное время не соответствует
	// ни одному слоту расписания
	ErrSlotNotFound = errors.New("slot not found in schedule")

	// ErrSlotNotAvailable возвращается, когда слот существует, но его ёмкость исчерпана
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
