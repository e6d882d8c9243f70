package get_disabled_dates

import (
	"github.com/wildpath/WP-BookingService/internal/domain"
	getDisabledDates "github.com/wildpath/WP-BookingService/internal/usecase/get_disabled_dates"
)

// DisabledDatesResponse HTTP response model
type DisabledDatesResponse struct {
	AdventureID int64    `json:"adventureId"`
	From        string   `json:"from"`
	To          string   `json:"to"`
	Dates       []string `json:"dates"`
	Degraded    bool     `json:"degraded,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDisabledDates.Response) *DisabledDatesResponse {
	dates := make([]string, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, d.Format(domain.DateFormat))
	}

	return &DisabledDatesResponse{
		AdventureID: resp.AdventureID,
		From:        resp.From.Format(domain.DateFormat),
		To:          resp.To.Format(domain.DateFormat),
		Dates:       dates,
		Degraded:    resp.Degraded,
	}
}
