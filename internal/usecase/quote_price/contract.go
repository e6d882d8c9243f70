package quote_price

import (
	"context"
	"time"

	"github.com/wildpath/WP-BookingService/internal/domain"
)

// AdventureRepository интерфейс репозитория приключений
type AdventureRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Adventure, error)
}

// PromotionsService интерфейс сервиса валидации промокодов
type PromotionsService interface {
	Validate(ctx context.Context, code string, adventureID int64) (*domain.Promotion, error)
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
