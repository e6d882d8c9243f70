package get_disabled_dates

import (
	"context"
	"time"
)

// AvailabilityRepository интерфейс репозитория переопределений доступности
type AvailabilityRepository interface {
	ListBlockedDates(ctx context.Context, adventureID int64, from, to time.Time) ([]time.Time, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetConfirmedDatesByUser(ctx context.Context, userID, adventureID int64, from, to time.Time) ([]time.Time, error)
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
