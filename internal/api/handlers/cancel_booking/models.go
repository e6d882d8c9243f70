package cancel_booking

import "github.com/wildpath/WP-BookingService/internal/service/bookings/models"

// CancelBookingRequest HTTP request model
// Владелец берется из аутентификационного контекста, а не из тела
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(userID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		UserID:             userID,
		CancellationReason: r.CancellationReason,
	}
}
