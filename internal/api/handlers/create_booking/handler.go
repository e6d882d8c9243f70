package create_booking

import (
	"errors"
	"net/http"

	"github.com/wildpath/WP-BookingService/internal/api/handlers"
	"github.com/wildpath/WP-BookingService/internal/api/middleware"
	createBooking "github.com/wildpath/WP-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgUnauthorized        = "пользователь не аутентифицирован"
	msgInvalidDateOrTime   = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgAdventureNotFound   = "приключение не найдено"
	msgDateBlocked         = "дата закрыта для бронирования"
	msgNotEnoughSpots      = "недостаточно свободных мест на выбранную дату"
	msgTooManyParticipants = "количество участников превышает максимум для приключения"
	msgInvalidBookingDate  = "некорректная дата бронирования"
	msgDateTooFar          = "дата бронирования слишком далеко в будущем"
	msgTooLateToBook       = "слишком поздно для бронирования на эту дату"
	msgInvalidInput        = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - No authenticated user in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrAdventureNotFound):
			h.logger.Warn("POST /bookings - Adventure not found: adventure_id=%d", req.AdventureID)
			handlers.RespondNotFound(w, msgAdventureNotFound)

		case errors.Is(err, createBooking.ErrDateBlocked):
			h.logger.Warn("POST /bookings - Date blocked: adventure_id=%d, date=%s", req.AdventureID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDateBlocked)

		case errors.Is(err, createBooking.ErrNotEnoughSpots):
			h.logger.Warn("POST /bookings - Not enough spots: adventure_id=%d, date=%s, participants=%d",
				req.AdventureID, req.Date, req.Participants)
			handlers.RespondError(w, http.StatusConflict, msgNotEnoughSpots)

		case errors.Is(err, createBooking.ErrTooManyParticipants):
			h.logger.Warn("POST /bookings - Too many participants: adventure_id=%d, participants=%d",
				req.AdventureID, req.Participants)
			handlers.RespondBadRequest(w, msgTooManyParticipants)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: adventure_id=%d, date=%s", req.AdventureID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: adventure_id=%d, date=%s", req.AdventureID, req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: adventure_id=%d, date=%s", req.AdventureID, req.Date)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: adventure_id=%d, error=%v",
				req.AdventureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, ref=%s, adventure_id=%d",
		result.ID, result.ReferenceCode, req.AdventureID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
