package quote_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/wildpath/WP-BookingService/internal/domain"
	adventureRepo "github.com/wildpath/WP-BookingService/internal/infra/storage/adventure"
	promotionsService "github.com/wildpath/WP-BookingService/internal/service/promotions"
)

// UseCase use case для расчета стоимости бронирования
type UseCase struct {
	adventureRepo AdventureRepository
	promotions    PromotionsService
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	adventureRepo AdventureRepository,
	promotions PromotionsService,
	logger Logger,
) *UseCase {
	return &UseCase{
		adventureRepo: adventureRepo,
		promotions:    promotions,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет расчет стоимости.
// Невалидный промокод не блокирует расчет: скидка просто не применяется,
// флаг PromoApplied остается false
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuotePrice: adventure=%d, date=%s, participants=%d",
		req.AdventureID, req.Date.Format(domain.DateFormat), req.Participants)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	adventure, err := uc.adventureRepo.GetByID(ctx, req.AdventureID)
	if err != nil {
		if errors.Is(err, adventureRepo.ErrAdventureNotFound) {
			uc.logger.Warn("QuotePrice: adventure id=%d not found", req.AdventureID)
			return nil, ErrAdventureNotFound
		}
		uc.logger.Error("QuotePrice: failed to get adventure id=%d: %v", req.AdventureID, err)
		return nil, fmt.Errorf("%w: failed to get adventure: %v", ErrInternal, err)
	}

	if !adventure.IsActive {
		uc.logger.Warn("QuotePrice: adventure id=%d is not active", req.AdventureID)
		return nil, ErrAdventureNotFound
	}

	var promo *domain.Promotion
	if req.PromoCode != nil && *req.PromoCode != "" {
		promo, err = uc.promotions.Validate(ctx, *req.PromoCode, req.AdventureID)
		if err != nil {
			if !errors.Is(err, promotionsService.ErrPromotionInvalid) {
				uc.logger.Error("QuotePrice: promotion validation error for code=%s: %v", *req.PromoCode, err)
			}
			promo = nil
		}
	}

	breakdown := domain.CalculatePricing(adventure, domain.BookingParams{
		Date:         req.Date,
		Participants: req.Participants,
		AddOns:       req.AddOns,
	}, promo, uc.timeProvider.Now())

	uc.logger.Info("QuotePrice: adventure=%d, total=%.2f, promoApplied=%t",
		req.AdventureID, breakdown.TotalAmount, promo != nil)

	return &Response{
		AdventureID:  req.AdventureID,
		Breakdown:    breakdown,
		PromoApplied: promo != nil,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AdventureID <= 0 {
		return fmt.Errorf("%w: adventureID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Participants < domain.MinParticipants {
		return fmt.Errorf("%w: participants must be at least %d", ErrInvalidInput, domain.MinParticipants)
	}
	for _, addOn := range req.AddOns {
		if addOn.Price < 0 {
			return fmt.Errorf("%w: addOn price must not be negative", ErrInvalidInput)
		}
	}
	return nil
}
