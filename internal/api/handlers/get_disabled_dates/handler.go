package get_disabled_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/wildpath/WP-BookingService/internal/api/handlers"
	getDisabledDates "github.com/wildpath/WP-BookingService/internal/usecase/get_disabled_dates"
)

const (
	msgInvalidAdventureID = "некорректный ID приключения"
	msgInvalidUserID      = "некорректный ID пользователя"
)

type Handler struct {
	useCase GetDisabledDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetDisabledDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/adventures/{adventureId}/disabled-dates?userId=123
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	adventureID, err := strconv.ParseInt(vars["adventureId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /adventures/{id}/disabled-dates - Invalid adventure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAdventureID)
		return
	}

	// userId опционален: без него возвращаются только заблокированные даты
	var userID *int64
	if userIDStr := r.URL.Query().Get("userId"); userIDStr != "" {
		id, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /adventures/{id}/disabled-dates - Invalid user ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUserID)
			return
		}
		userID = &id
	}

	result, err := h.useCase.Execute(r.Context(), &getDisabledDates.Request{
		AdventureID: adventureID,
		UserID:      userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDisabledDates.ErrInvalidInput):
			h.logger.Warn("GET /adventures/{id}/disabled-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAdventureID)

		default:
			h.logger.Error("GET /adventures/{id}/disabled-dates - Failed: adventure_id=%d, error=%v", adventureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /adventures/{id}/disabled-dates - %d disabled dates: adventure_id=%d",
		len(result.Dates), adventureID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
