package schedule

import "errors"

var (
	// ErrConfigNotFound возвращается, когда активная конфигурация не найдена
	ErrConfigNotFound = errors.New("schedule config not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
