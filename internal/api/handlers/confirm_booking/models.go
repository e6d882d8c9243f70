package confirm_booking

import "github.com/wildpath/WP-BookingService/internal/service/bookings/models"

// ConfirmBookingRequest HTTP request model
// Владелец берется из аутентификационного контекста, а не из тела
type ConfirmBookingRequest struct {
	PaymentRef string `json:"paymentRef"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ConfirmBookingRequest) ToServiceRequest(userID int64) *models.ConfirmBookingRequest {
	return &models.ConfirmBookingRequest{
		UserID:     userID,
		PaymentRef: r.PaymentRef,
	}
}
