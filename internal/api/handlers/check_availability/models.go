package check_availability

import (
	"github.com/wildpath/WP-BookingService/internal/domain"
	checkAvailability "github.com/wildpath/WP-BookingService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	AdventureID    int64  `json:"adventureId"`
	Date           string `json:"date"`
	IsAvailable    bool   `json:"isAvailable"`
	IsBlocked      bool   `json:"isBlocked"`
	RemainingSpots int    `json:"remainingSpots"`
	Degraded       bool   `json:"degraded,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		AdventureID:    resp.AdventureID,
		Date:           resp.Date.Format(domain.DateFormat),
		IsAvailable:    resp.IsAvailable,
		IsBlocked:      resp.IsBlocked,
		RemainingSpots: resp.RemainingSpots,
		Degraded:       resp.Degraded,
	}
}
