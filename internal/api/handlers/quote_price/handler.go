package quote_price

import (
	"errors"
	"net/http"

	"github.com/wildpath/WP-BookingService/internal/api/handlers"
	quotePrice "github.com/wildpath/WP-BookingService/internal/usecase/quote_price"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры расчета"
	msgAdventureNotFound  = "приключение не найдено"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/pricing/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuotePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pricing/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /pricing/quote - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrAdventureNotFound):
			h.logger.Warn("POST /pricing/quote - Adventure not found: adventure_id=%d", req.AdventureID)
			handlers.RespondNotFound(w, msgAdventureNotFound)

		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("POST /pricing/quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /pricing/quote - Failed: adventure_id=%d, error=%v", req.AdventureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pricing/quote - Quote computed: adventure_id=%d, total=%.2f",
		req.AdventureID, result.Breakdown.TotalAmount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
