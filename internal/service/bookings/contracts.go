package bookings

import (
	"context"
	"time"

	"github.com/wildpath/WP-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	Confirm(ctx context.Context, id int64, paymentRef string) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// AvailabilityRepository интерфейс репозитория переопределений доступности
type AvailabilityRepository interface {
	DecrementBookedSpots(ctx context.Context, adventureID int64, date time.Time, participants int) error
}

// PaymentServiceClient интерфейс клиента для PaymentService
type PaymentServiceClient interface {
	VerifyPaymentWithGracefulDegradation(ctx context.Context, reference string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
