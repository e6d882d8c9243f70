package check_availability

import (
	"context"
	"time"

	"github.com/wildpath/WP-BookingService/internal/domain"
)

// AdventureRepository интерфейс репозитория приключений
type AdventureRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Adventure, error)
}

// AvailabilityRepository интерфейс репозитория переопределений доступности
type AvailabilityRepository interface {
	GetByAdventureAndDate(ctx context.Context, adventureID int64, date time.Time) (*domain.AvailabilityOverride, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetCapacityHolders(ctx context.Context, adventureID int64, date time.Time, now time.Time) ([]*domain.Booking, error)
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
