package get_range_availability

import "errors"

var (
	// ErrNoActiveConfig возвращается, когда нет активной конфигурации расписания
	ErrNoActiveConfig = errors.New("no active schedule config")

	// ErrInvalidRange возвращается при некорректном диапазоне дат
	ErrInvalidRange = errors.New("invalid date range")

	// ErrRangeTooLarge возвращается, когда диапазон превышает допустимый размер
	ErrRangeTooLarge = errors.New("date range is too large")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
