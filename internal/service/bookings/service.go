package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/wildpath/WP-BookingService/internal/domain"
	availabilityRepo "github.com/wildpath/WP-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/wildpath/WP-BookingService/internal/infra/storage/booking"
	paymentClient "github.com/wildpath/WP-BookingService/internal/integrations/paymentservice"
	"github.com/wildpath/WP-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	paymentClient    PaymentServiceClient
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	paymentClient PaymentServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		paymentClient:    paymentClient,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только собственное бронирование
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := checkOwner(booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking, s.timeProvider.Now()), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings, s.timeProvider.Now()), nil
}

// Confirm подтверждает бронирование после оплаты
// Переход pending -> confirmed; холд снимается, payment_ref фиксируется.
// Reference проверяется через PaymentService с graceful degradation:
// при недоступности сервиса подтверждение принимается оптимистично
func (s *Service) Confirm(ctx context.Context, bookingID int64, req *models.ConfirmBookingRequest) error {
	s.logger.Info("Confirm: confirming booking id=%d by user=%d", bookingID, req.UserID)

	if req.PaymentRef == "" {
		s.logger.Warn("Confirm: empty payment ref for booking id=%d", bookingID)
		return fmt.Errorf("%w: paymentRef is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Confirm: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	if err := checkOwner(booking, req.UserID); err != nil {
		s.logger.Warn("Confirm: access denied for user=%d to booking id=%d", req.UserID, bookingID)
		return err
	}

	now := s.timeProvider.Now()
	if !booking.CanBeConfirmed(now) {
		s.logger.Warn("Confirm: booking id=%d cannot be confirmed, status=%s", bookingID, booking.Status)
		return ErrCannotConfirm
	}

	if err := s.paymentClient.VerifyPaymentWithGracefulDegradation(ctx, req.PaymentRef); err != nil {
		if errors.Is(err, paymentClient.ErrServiceDegraded) {
			// Платежный сервис недоступен: подтверждаем оптимистично,
			// сверка произойдет во внешнем flow
			s.logger.Error("Confirm: payment verification degraded for booking id=%d, proceeding: %v", bookingID, err)
		} else {
			s.logger.Warn("Confirm: payment rejected for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: %v", ErrPaymentRejected, err)
		}
	}

	if err := s.bookingRepo.Confirm(ctx, bookingID, req.PaymentRef); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Confirm: successfully confirmed booking id=%d", bookingID)
	return nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только собственное бронирование
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := checkOwner(booking, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.UserID, bookingID)
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	now := s.timeProvider.Now()

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Возвращаем места в счетчик переопределения, если бронирование
	// еще занимало вместимость. Отсутствие переопределения на дату
	// не ошибка: там места считаются по живым бронированиям
	if booking.CountsTowardCapacity(now) {
		err := s.availabilityRepo.DecrementBookedSpots(ctx, booking.AdventureID, booking.BookingDate, booking.Participants)
		if err != nil && !errors.Is(err, availabilityRepo.ErrOverrideNotFound) {
			s.logger.Error("Cancel: failed to release %d spots for adventure=%d date=%s: %v",
				booking.Participants, booking.AdventureID, booking.BookingDate.Format(domain.DateFormat), err)
		}
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// checkOwner проверяет, что пользователь является владельцем бронирования
func checkOwner(booking *domain.Booking, userID int64) error {
	if booking.UserID == nil || *booking.UserID != userID {
		return ErrAccessDenied
	}
	return nil
}
