package paymentservice

// PaymentStatus статус платежа во внешнем платежном сервисе
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment модель платежа из PaymentService
type Payment struct {
	Reference string        `json:"reference"`
	Status    PaymentStatus `json:"status"`
	Amount    float64       `json:"amount"`
	Currency  string        `json:"currency"`
}

// IsCompleted возвращает true, если платеж успешно завершен
func (p *Payment) IsCompleted() bool {
	return p.Status == PaymentStatusCompleted
}

// ErrorResponse модель ошибки от PaymentService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
