package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wildpath/WP-BookingService/internal/domain"
	adventureRepo "github.com/wildpath/WP-BookingService/internal/infra/storage/adventure"
	availabilityRepo "github.com/wildpath/WP-BookingService/internal/infra/storage/availability"
	promotionsService "github.com/wildpath/WP-BookingService/internal/service/promotions"
	"github.com/wildpath/WP-BookingService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	adventureRepo    AdventureRepository
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	promotions       PromotionsService
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	adventureRepo AdventureRepository,
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	promotions PromotionsService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		adventureRepo:    adventureRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		promotions:       promotions,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции с блокировкой строк (FOR UPDATE), чтобы два конкурентных
// гостя не забронировали последние места одновременно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%v, adventure=%d, date=%s, participants=%d",
		req.UserID, req.AdventureID, req.Date.Format(domain.DateFormat), req.Participants)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем приключение
	adventure, err := uc.adventureRepo.GetByID(ctx, req.AdventureID)
	if err != nil {
		if errors.Is(err, adventureRepo.ErrAdventureNotFound) {
			uc.logger.Warn("CreateBooking: adventure id=%d not found", req.AdventureID)
			return nil, ErrAdventureNotFound
		}
		uc.logger.Error("CreateBooking: failed to get adventure id=%d: %v", req.AdventureID, err)
		return nil, fmt.Errorf("%w: failed to get adventure: %v", ErrInternal, err)
	}

	if !adventure.IsActive {
		uc.logger.Warn("CreateBooking: adventure id=%d is not active", req.AdventureID)
		return nil, ErrAdventureNotFound
	}

	// Максимум группы ограничен приключением независимо от того,
	// сколько мест открыто переопределением на дату
	if adventure.MaxParticipants > 0 && req.Participants > adventure.MaxParticipants {
		uc.logger.Warn("CreateBooking: %d participants exceed maximum %d for adventure=%d",
			req.Participants, adventure.MaxParticipants, req.AdventureID)
		return nil, ErrTooManyParticipants
	}

	// 3. Валидация окна бронирования
	if err := validateBookingWindow(adventure, tourStart(req), now); err != nil {
		uc.logger.Warn("CreateBooking: booking window validation failed: %v", err)
		return nil, err
	}

	// 4. Валидация промокода (невалидный код не блокирует создание)
	var promo *domain.Promotion
	if req.PromoCode != nil && *req.PromoCode != "" {
		promo, err = uc.promotions.Validate(ctx, *req.PromoCode, req.AdventureID)
		if err != nil {
			if !errors.Is(err, promotionsService.ErrPromotionInvalid) {
				uc.logger.Error("CreateBooking: promotion validation error for code=%s: %v", *req.PromoCode, err)
			}
			promo = nil
		}
	}

	// 5. Расчет стоимости
	breakdown := domain.CalculatePricing(adventure, domain.BookingParams{
		Date:         req.Date,
		Participants: req.Participants,
		AddOns:       req.AddOns,
	}, promo, now)

	var result *domain.Booking

	// 6. Проверка доступности и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Переопределение доступности с блокировкой (FOR UPDATE)
		override, err := uc.availabilityRepo.GetByAdventureAndDate(txCtx, req.AdventureID, req.Date)
		if err != nil && !errors.Is(err, availabilityRepo.ErrOverrideNotFound) {
			uc.logger.Error("CreateBooking: failed to get override: %v", err)
			return fmt.Errorf("%w: failed to get availability override: %v", ErrInternal, err)
		}

		capacity := adventure.DefaultCapacity()
		if override != nil {
			if override.IsClosed() {
				uc.logger.Warn("CreateBooking: date %s is blocked for adventure=%d",
					req.Date.Format(domain.DateFormat), req.AdventureID)
				return ErrDateBlocked
			}
			capacity = override.AvailableSpots
		}

		// 6.2. Считаем занятые места по живым бронированиям с блокировкой
		// строк. Счетчик booked_spots в переопределении не используется:
		// истекшие холды не должны навсегда съедать места
		holders, err := uc.bookingRepo.GetCapacityHolders(txCtx, req.AdventureID, req.Date, now)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		booked := 0
		for _, b := range holders {
			if b.CountsTowardCapacity(now) {
				booked += b.Participants
			}
		}

		remaining := capacity - booked
		if remaining < 0 {
			remaining = 0
		}

		// 6.3. Проверяем, что запрошенные места помещаются
		if req.Participants > remaining {
			uc.logger.Warn("CreateBooking: not enough spots, requested=%d, remaining=%d",
				req.Participants, remaining)
			return ErrNotEnoughSpots
		}

		uc.logger.Info("CreateBooking: %d spots requested, %d remaining", req.Participants, remaining)

		// 6.4. Собираем бронирование
		booking := buildBooking(req, breakdown, promo, now)

		// 6.5. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 6.6. Обновляем счетчик занятых мест в переопределении
		if override != nil {
			if err := uc.availabilityRepo.IncrementBookedSpots(txCtx, req.AdventureID, req.Date, req.Participants); err != nil {
				uc.logger.Error("CreateBooking: failed to increment booked spots: %v", err)
				return fmt.Errorf("%w: failed to increment booked spots: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, ref=%s, status=%s",
		result.ID, result.ReferenceCode, result.Status)

	return &Response{
		ID:            result.ID,
		ReferenceCode: result.ReferenceCode,
		AdventureID:   result.AdventureID,
		Date:          result.BookingDate,
		StartTime:     result.StartTime,
		Participants:  result.Participants,
		Status:        string(result.Status),
		PaymentStatus: string(result.PaymentStatus),
		ExpiresAt:     result.ExpiresAt,
		Breakdown:     breakdown,
		PromoApplied:  promo != nil,
		CreatedAt:     result.CreatedAt,
	}, nil
}

// buildBooking собирает доменную модель бронирования из запроса и расчета.
// С paymentRef бронирование сразу подтверждено, иначе создается холд
// со сроком действия HoldDuration
func buildBooking(req *Request, breakdown domain.PricingBreakdown, promo *domain.Promotion, now time.Time) *domain.Booking {
	booking := &domain.Booking{
		ReferenceCode:   newReferenceCode(),
		UserID:          req.UserID,
		AdventureID:     req.AdventureID,
		BookingDate:     req.Date,
		StartTime:       req.StartTime,
		Participants:    req.Participants,
		BasePrice:       breakdown.BasePrice,
		DiscountAmount:  breakdown.TotalDiscount(),
		TaxAmount:       breakdown.TaxAmount,
		AddOnsAmount:    breakdown.AddOnsTotal,
		TotalAmount:     breakdown.TotalAmount,
		LeadName:        strings.TrimSpace(req.LeadName),
		LeadEmail:       strings.TrimSpace(req.LeadEmail),
		LeadPhone:       strings.TrimSpace(req.LeadPhone),
		SpecialRequests: req.SpecialRequests,
		AddOns:          domain.NormalizeAddOns(req.AddOns),
	}

	if req.PaymentRef != nil && *req.PaymentRef != "" {
		booking.Status = domain.StatusConfirmed
		booking.PaymentStatus = domain.PaymentStatusPaid
		booking.PaymentRef = req.PaymentRef
		booking.ConfirmedAt = ptr.Ptr(now)
	} else {
		booking.Status = domain.StatusPending
		booking.PaymentStatus = domain.PaymentStatusUnpaid
		booking.ExpiresAt = ptr.Ptr(now.Add(domain.HoldDuration))
	}

	return booking
}

// tourStart возвращает момент начала тура: дата плюс время начала,
// если оно задано, иначе полночь даты
func tourStart(req *Request) time.Time {
	start := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
	if !req.StartTime.IsZero() {
		if minutes, err := req.StartTime.Minutes(); err == nil {
			start = start.Add(time.Duration(minutes) * time.Minute)
		}
	}
	return start
}

// newReferenceCode генерирует публичный код бронирования вида WP-XXXXXXXX
func newReferenceCode() string {
	id := uuid.New().String()
	return "WP-" + strings.ToUpper(id[:8])
}
