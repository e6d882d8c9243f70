package quote_price

import (
	"time"

	"github.com/wildpath/WP-BookingService/internal/domain"
	quotePrice "github.com/wildpath/WP-BookingService/internal/usecase/quote_price"
)

// QuotePriceRequest HTTP request model
type QuotePriceRequest struct {
	AdventureID  int64                   `json:"adventureId"`
	Date         string                  `json:"date"` // "2025-10-15"
	Participants int                     `json:"participants"`
	AddOns       []domain.AddOnSelection `json:"addOns,omitempty"`
	PromoCode    *string                 `json:"promoCode,omitempty"`
}

// PricingBreakdownResponse HTTP response model
type PricingBreakdownResponse struct {
	AdventureID       int64   `json:"adventureId"`
	BasePrice         float64 `json:"basePrice"`
	Participants      int     `json:"participants"`
	Subtotal          float64 `json:"subtotal"`
	GroupDiscount     float64 `json:"groupDiscount"`
	EarlyBirdDiscount float64 `json:"earlyBirdDiscount"`
	PromoDiscount     float64 `json:"promoDiscount"`
	AddOnsTotal       float64 `json:"addOnsTotal"`
	TaxAmount         float64 `json:"taxAmount"`
	TotalAmount       float64 `json:"totalAmount"`
	PromoApplied      bool    `json:"promoApplied"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuotePriceRequest) ToUseCaseRequest() (*quotePrice.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &quotePrice.Request{
		AdventureID:  r.AdventureID,
		Date:         date,
		Participants: r.Participants,
		AddOns:       r.AddOns,
		PromoCode:    r.PromoCode,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.Response) *PricingBreakdownResponse {
	return &PricingBreakdownResponse{
		AdventureID:       resp.AdventureID,
		BasePrice:         resp.Breakdown.BasePrice,
		Participants:      resp.Breakdown.Participants,
		Subtotal:          resp.Breakdown.Subtotal,
		GroupDiscount:     resp.Breakdown.GroupDiscount,
		EarlyBirdDiscount: resp.Breakdown.EarlyBirdDiscount,
		PromoDiscount:     resp.Breakdown.PromoDiscount,
		AddOnsTotal:       resp.Breakdown.AddOnsTotal,
		TaxAmount:         resp.Breakdown.TaxAmount,
		TotalAmount:       resp.Breakdown.TotalAmount,
		PromoApplied:      resp.PromoApplied,
	}
}
