package paymentservice

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда платеж с таким reference не найден
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrPaymentNotCompleted возвращается, когда платеж найден, но не завершен
	ErrPaymentNotCompleted = errors.New("payment is not completed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("paymentservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что PaymentService недоступен: подтверждение принимается
	// оптимистично и сверяется позже
	ErrServiceDegraded = errors.New("paymentservice unavailable: graceful degradation applied")
)
