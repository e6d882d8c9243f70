package validate_promotion

import "github.com/wildpath/WP-BookingService/internal/domain"

// ValidatePromotionRequest HTTP request model
type ValidatePromotionRequest struct {
	Code        string `json:"code"`
	AdventureID int64  `json:"adventureId"`
}

// ValidatePromotionResponse HTTP response model
// Причина отказа не раскрывается: невалидный код отдается
// с valid=false и общим сообщением
type ValidatePromotionResponse struct {
	Valid             bool     `json:"valid"`
	Code              string   `json:"code,omitempty"`
	DiscountType      string   `json:"discountType,omitempty"`
	DiscountValue     float64  `json:"discountValue,omitempty"`
	MaxDiscountAmount *float64 `json:"maxDiscountAmount,omitempty"`
	Message           string   `json:"message,omitempty"`
}

// FromDomainPromotion конвертирует промокод в HTTP response
func FromDomainPromotion(p *domain.Promotion) *ValidatePromotionResponse {
	return &ValidatePromotionResponse{
		Valid:             true,
		Code:              p.Code,
		DiscountType:      string(p.DiscountType),
		DiscountValue:     p.DiscountValue,
		MaxDiscountAmount: p.MaxDiscountAmount,
	}
}
