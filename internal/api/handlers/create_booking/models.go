package create_booking

import (
	"time"

	"github.com/wildpath/WP-BookingService/internal/domain"
	createBooking "github.com/wildpath/WP-BookingService/internal/usecase/create_booking"
	"github.com/wildpath/WP-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
// Владелец бронирования берется из аутентификационного контекста
type CreateBookingRequest struct {
	AdventureID     int64                   `json:"adventureId"`
	Date            string                  `json:"date"`                // "2025-10-15"
	StartTime       string                  `json:"startTime,omitempty"` // "09:00"
	Participants    int                     `json:"participants"`
	AddOns          []domain.AddOnSelection `json:"addOns,omitempty"`
	PromoCode       *string                 `json:"promoCode,omitempty"`
	LeadName        string                  `json:"leadName"`
	LeadEmail       string                  `json:"leadEmail"`
	LeadPhone       string                  `json:"leadPhone"`
	SpecialRequests *string                 `json:"specialRequests,omitempty"`
	PaymentRef      *string                 `json:"paymentRef,omitempty"`
}

// BookingCreatedResponse HTTP response model
type BookingCreatedResponse struct {
	ID            int64   `json:"id"`
	ReferenceCode string  `json:"referenceCode"`
	AdventureID   int64   `json:"adventureId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime,omitempty"`
	Participants  int     `json:"participants"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	ExpiresAt     *string `json:"expiresAt,omitempty"`

	Subtotal          float64 `json:"subtotal"`
	GroupDiscount     float64 `json:"groupDiscount"`
	EarlyBirdDiscount float64 `json:"earlyBirdDiscount"`
	PromoDiscount     float64 `json:"promoDiscount"`
	AddOnsTotal       float64 `json:"addOnsTotal"`
	TaxAmount         float64 `json:"taxAmount"`
	TotalAmount       float64 `json:"totalAmount"`
	PromoApplied      bool    `json:"promoApplied"`

	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	var startTime types.TimeString
	if r.StartTime != "" {
		startTime, err = types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, err
		}
	}

	return &createBooking.Request{
		UserID:          &userID,
		AdventureID:     r.AdventureID,
		Date:            date,
		StartTime:       startTime,
		Participants:    r.Participants,
		AddOns:          r.AddOns,
		PromoCode:       r.PromoCode,
		LeadName:        r.LeadName,
		LeadEmail:       r.LeadEmail,
		LeadPhone:       r.LeadPhone,
		SpecialRequests: r.SpecialRequests,
		PaymentRef:      r.PaymentRef,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingCreatedResponse {
	var expiresAt *string
	if resp.ExpiresAt != nil {
		formatted := resp.ExpiresAt.Format(time.RFC3339)
		expiresAt = &formatted
	}

	return &BookingCreatedResponse{
		ID:            resp.ID,
		ReferenceCode: resp.ReferenceCode,
		AdventureID:   resp.AdventureID,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		Participants:  resp.Participants,
		Status:        resp.Status,
		PaymentStatus: resp.PaymentStatus,
		ExpiresAt:     expiresAt,

		Subtotal:          resp.Breakdown.Subtotal,
		GroupDiscount:     resp.Breakdown.GroupDiscount,
		EarlyBirdDiscount: resp.Breakdown.EarlyBirdDiscount,
		PromoDiscount:     resp.Breakdown.PromoDiscount,
		AddOnsTotal:       resp.Breakdown.AddOnsTotal,
		TaxAmount:         resp.Breakdown.TaxAmount,
		TotalAmount:       resp.Breakdown.TotalAmount,
		PromoApplied:      resp.PromoApplied,

		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
