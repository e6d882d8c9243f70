package promotions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wildpath/WP-BookingService/internal/domain"
	promotionRepo "github.com/wildpath/WP-BookingService/internal/infra/storage/promotion"
)

// Service сервис валидации промокодов
type Service struct {
	promotionRepo PromotionRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса промокодов
func NewService(promotionRepo PromotionRepository, logger Logger) *Service {
	return &Service{
		promotionRepo: promotionRepo,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Validate проверяет применимость промокода к приключению.
// Код должен быть активен, находиться в окне действия, входить
// в allow-list приключения (если список задан) и не превышать
// лимит использований. Любой отказ возвращает единый
// ErrPromotionInvalid без уточнения причины
func (s *Service) Validate(ctx context.Context, code string, adventureID int64) (*domain.Promotion, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrPromotionInvalid
	}

	promotion, err := s.promotionRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			s.logger.Info("Validate: promotion code=%s not found", code)
			return nil, ErrPromotionInvalid
		}
		s.logger.Error("Validate: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: Validate - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()

	if !promotion.IsActive {
		s.logger.Info("Validate: promotion code=%s is not active", code)
		return nil, ErrPromotionInvalid
	}
	if !promotion.IsWithinWindow(now) {
		s.logger.Info("Validate: promotion code=%s is outside its validity window", code)
		return nil, ErrPromotionInvalid
	}
	if !promotion.AppliesTo(adventureID) {
		s.logger.Info("Validate: promotion code=%s does not apply to adventure=%d", code, adventureID)
		return nil, ErrPromotionInvalid
	}
	if promotion.IsExhausted() {
		s.logger.Info("Validate: promotion code=%s usage limit exhausted", code)
		return nil, ErrPromotionInvalid
	}

	s.logger.Info("Validate: promotion code=%s is valid for adventure=%d", code, adventureID)
	return promotion, nil
}
