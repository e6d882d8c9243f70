package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wildpath/WP-BookingService/internal/domain"
	adventureRepo "github.com/wildpath/WP-BookingService/internal/infra/storage/adventure"
	availabilityRepo "github.com/wildpath/WP-BookingService/internal/infra/storage/availability"
)

// UseCase use case для проверки доступности даты приключения
type UseCase struct {
	adventureRepo    AdventureRepository
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	adventureRepo AdventureRepository,
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		adventureRepo:    adventureRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case проверки доступности
// Приоритет источников: административное переопределение на дату,
// затем fallback-расчет по активным бронированиям против дефолтной вместимости.
// Ошибки чтения деградируют к оптимистичному дефолту, а не к нулю мест:
// ложная недоступность хуже редкого пограничного овербукинга,
// финальная проверка выполняется на этапе записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: adventure=%d, date=%s", req.AdventureID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	adventure, err := uc.adventureRepo.GetByID(ctx, req.AdventureID)
	if err != nil {
		if errors.Is(err, adventureRepo.ErrAdventureNotFound) {
			uc.logger.Warn("CheckAvailability: adventure id=%d not found", req.AdventureID)
			return nil, ErrAdventureNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get adventure id=%d: %v", req.AdventureID, err)
		return nil, fmt.Errorf("%w: failed to get adventure: %v", ErrInternal, err)
	}

	if !adventure.IsActive {
		uc.logger.Warn("CheckAvailability: adventure id=%d is not active", req.AdventureID)
		return nil, ErrAdventureNotFound
	}

	now := uc.timeProvider.Now()
	return uc.resolve(ctx, adventure, req.Date, now), nil
}

// resolve вычисляет оставшиеся места на дату
func (uc *UseCase) resolve(ctx context.Context, adventure *domain.Adventure, date time.Time, now time.Time) *Response {
	resp := &Response{
		AdventureID: adventure.ID,
		Date:        date,
	}

	override, err := uc.availabilityRepo.GetByAdventureAndDate(ctx, adventure.ID, date)
	if err != nil && !errors.Is(err, availabilityRepo.ErrOverrideNotFound) {
		// Ошибка чтения переопределения: деградируем к оптимистичному дефолту
		uc.logger.Error("CheckAvailability: degraded, failed to get override for adventure=%d date=%s: %v",
			adventure.ID, date.Format(domain.DateFormat), err)
		resp.RemainingSpots = domain.FallbackCapacity
		resp.IsAvailable = true
		resp.Degraded = true
		return resp
	}

	capacity := adventure.DefaultCapacity()
	if override != nil {
		if override.IsClosed() {
			// Закрытие оператором и статус unavailable показываются
			// как блокировка, а не как "все места заняты"
			uc.logger.Info("CheckAvailability: adventure=%d date=%s is closed by operator",
				adventure.ID, date.Format(domain.DateFormat))
			resp.IsBlocked = true
			return resp
		}
		capacity = override.AvailableSpots
	}

	// Занятые места считаем по живым бронированиям: счетчик booked_spots
	// в переопределении может содержать истекшие холды
	holders, err := uc.bookingRepo.GetCapacityHolders(ctx, adventure.ID, date, now)
	if err != nil {
		uc.logger.Error("CheckAvailability: degraded, failed to get bookings for adventure=%d date=%s: %v",
			adventure.ID, date.Format(domain.DateFormat), err)
		if override != nil {
			// Счетчик переопределения точнее оптимистичного дефолта
			resp.RemainingSpots = override.RemainingSpots()
		} else {
			resp.RemainingSpots = domain.FallbackCapacity
		}
		resp.IsAvailable = resp.RemainingSpots > 0
		resp.Degraded = true
		return resp
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

	resp.RemainingSpots = remaining
	resp.IsAvailable = remaining > 0

	uc.logger.Info("CheckAvailability: adventure=%d date=%s, %d/%d spots remaining (computed)",
		adventure.ID, date.Format(domain.DateFormat), remaining, capacity)
	return resp
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AdventureID <= 0 {
		return fmt.Errorf("%w: adventureID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
