package quote_price

import "errors"

var (
	// ErrAdventureNotFound возвращается, когда приключение не найдено или не активно
	ErrAdventureNotFound = errors.New("quote_price: adventure not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_price: internal error")
)
