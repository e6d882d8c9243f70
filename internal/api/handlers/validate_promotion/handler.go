package validate_promotion

import (
	"errors"
	"net/http"

	"github.com/wildpath/WP-BookingService/internal/api/handlers"
	"github.com/wildpath/WP-BookingService/internal/service/promotions"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPromotionInvalid   = "промокод недействителен или истек"
)

type Handler struct {
	service PromotionsService
	logger  Logger
}

func NewHandler(service PromotionsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/promotions/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidatePromotionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /promotions/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	promo, err := h.service.Validate(r.Context(), req.Code, req.AdventureID)
	if err != nil {
		if errors.Is(err, promotions.ErrPromotionInvalid) {
			h.logger.Info("POST /promotions/validate - Promotion invalid: code=%s, adventure_id=%d",
				req.Code, req.AdventureID)
			handlers.RespondJSON(w, http.StatusOK, &ValidatePromotionResponse{
				Valid:   false,
				Message: msgPromotionInvalid,
			})
			return
		}

		h.logger.Error("POST /promotions/validate - Failed: code=%s, error=%v", req.Code, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /promotions/validate - Promotion valid: code=%s, adventure_id=%d",
		req.Code, req.AdventureID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainPromotion(promo))
}
