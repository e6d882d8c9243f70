package models

import (
	"errors"
	"time"

	"github.com/wildpath/WP-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// ConfirmBookingRequest запрос на подтверждение бронирования после оплаты
type ConfirmBookingRequest struct {
	UserID     int64  `json:"userId"`
	PaymentRef string `json:"paymentRef"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse бронирование в ответе сервиса
type BookingResponse struct {
	ID              int64                   `json:"id"`
	ReferenceCode   string                  `json:"referenceCode"`
	UserID          *int64                  `json:"userId,omitempty"`
	AdventureID     int64                   `json:"adventureId"`
	GuideID         *int64                  `json:"guideId,omitempty"`
	BookingDate     string                  `json:"bookingDate"`
	StartTime       string                  `json:"startTime,omitempty"`
	Participants    int                     `json:"participants"`
	BasePrice       float64                 `json:"basePrice"`
	DiscountAmount  float64                 `json:"discountAmount"`
	TaxAmount       float64                 `json:"taxAmount"`
	AddOnsAmount    float64                 `json:"addOnsAmount"`
	TotalAmount     float64                 `json:"totalAmount"`
	Status          string                  `json:"status"`
	PaymentStatus   string                  `json:"paymentStatus"`
	ExpiresAt       *string                 `json:"expiresAt,omitempty"`
	ConfirmedAt     *string                 `json:"confirmedAt,omitempty"`
	CancelledAt     *string                 `json:"cancelledAt,omitempty"`
	LeadName        string                  `json:"leadName"`
	LeadEmail       string                  `json:"leadEmail"`
	LeadPhone       string                  `json:"leadPhone,omitempty"`
	SpecialRequests *string                 `json:"specialRequests,omitempty"`
	AddOns          []domain.AddOnSelection `json:"addOns,omitempty"`
	CreatedAt       string                  `json:"createdAt"`
	UpdatedAt       string                  `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует доменное бронирование в ответ сервиса
// Pending с истёкшим холдом отдается как expired: истечение — read-time
// фильтр, статус в БД не переводится
func FromDomainBooking(b *domain.Booking, now time.Time) *BookingResponse {
	status := b.Status
	if b.IsExpired(now) {
		status = domain.StatusExpired
	}

	return &BookingResponse{
		ID:              b.ID,
		ReferenceCode:   b.ReferenceCode,
		UserID:          b.UserID,
		AdventureID:     b.AdventureID,
		GuideID:         b.GuideID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		Participants:    b.Participants,
		BasePrice:       b.BasePrice,
		DiscountAmount:  b.DiscountAmount,
		TaxAmount:       b.TaxAmount,
		AddOnsAmount:    b.AddOnsAmount,
		TotalAmount:     b.TotalAmount,
		Status:          string(status),
		PaymentStatus:   string(b.PaymentStatus),
		ExpiresAt:       formatTimePtr(b.ExpiresAt),
		ConfirmedAt:     formatTimePtr(b.ConfirmedAt),
		CancelledAt:     formatTimePtr(b.CancelledAt),
		LeadName:        b.LeadName,
		LeadEmail:       b.LeadEmail,
		LeadPhone:       b.LeadPhone,
		SpecialRequests: b.SpecialRequests,
		AddOns:          b.AddOns,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список доменных бронирований
func FromDomainBookingList(bookings []*domain.Booking, now time.Time) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b, now)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

// ToDomainBookingStatus валидирует и конвертирует статус из строки
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled, domain.StatusExpired:
		return domain.BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
