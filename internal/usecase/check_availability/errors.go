package check_availability

import "errors"

var (
	// ErrAdventureNotFound возвращается, когда приключение не найдено или не активно
	ErrAdventureNotFound = errors.New("check_availability: adventure not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
