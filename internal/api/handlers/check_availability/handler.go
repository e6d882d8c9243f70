package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/wildpath/WP-BookingService/internal/api/handlers"
	"github.com/wildpath/WP-BookingService/internal/domain"
	checkAvailability "github.com/wildpath/WP-BookingService/internal/usecase/check_availability"
)

const (
	msgInvalidAdventureID = "некорректный ID приключения"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgAdventureNotFound  = "приключение не найдено"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/adventures/{adventureId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	adventureID, err := strconv.ParseInt(vars["adventureId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /adventures/{id}/availability - Invalid adventure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAdventureID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /adventures/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		AdventureID: adventureID,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrAdventureNotFound):
			h.logger.Warn("GET /adventures/{id}/availability - Adventure not found: adventure_id=%d", adventureID)
			handlers.RespondNotFound(w, msgAdventureNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /adventures/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /adventures/{id}/availability - Failed: adventure_id=%d, error=%v", adventureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /adventures/{id}/availability - Availability resolved: adventure_id=%d, remaining=%d",
		adventureID, result.RemainingSpots)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
