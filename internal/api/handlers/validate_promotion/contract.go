package validate_promotion

import (
	"context"

	"github.com/wildpath/WP-BookingService/internal/domain"
)

type PromotionsService interface {
	Validate(ctx context.Context, code string, adventureID int64) (*domain.Promotion, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
