package get_month_availability

import "errors"

var (
	// ErrNoActiveConfig возвращается, когда нет активной конфигурации расписания
	ErrNoActiveConfig = errors.New("no active schedule config")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
