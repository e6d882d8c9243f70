package promotions

import (
	"context"
	"time"

	"github.com/wildpath/WP-BookingService/internal/domain"
)

// PromotionRepository интерфейс репозитория промокодов
type PromotionRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Promotion, error)
}

// TimeProvider абстракция времени для тестируемости
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реализация TimeProvider на основе системного времени
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
