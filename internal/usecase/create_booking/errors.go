package create_booking

import "errors"

var (
	// ErrAdventureNotFound возвращается, когда приключение не найдено или не активно
	ErrAdventureNotFound = errors.New("create_booking: adventure not found")

	// ErrDateBlocked возвращается, когда дата закрыта администратором
	ErrDateBlocked = errors.New("create_booking: date is blocked by operator")

	// ErrNotEnoughSpots возвращается, когда запрошено больше мест, чем осталось
	ErrNotEnoughSpots = errors.New("create_booking: not enough spots remaining")

	// ErrTooManyParticipants возвращается, когда размер группы превышает
	// максимум приключения
	ErrTooManyParticipants = errors.New("create_booking: participants exceed adventure maximum")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает окно бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrTooLateToBook возвращается, когда до начала тура осталось меньше минимального окна
	ErrTooLateToBook = errors.New("create_booking: too late to book this date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
