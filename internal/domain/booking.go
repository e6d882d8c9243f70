package domain

import (
	"time"

	"github.com/wildpath/WP-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusExpired   BookingStatus = "expired"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Booking represents a guest booking for an adventure on a date.
// A pending booking is a hold: it reserves capacity until ExpiresAt
// and is excluded from capacity sums once the hold lapses. Expiry is
// a read-time filter, no background sweep flips the status.
type Booking struct {
	ID            int64
	ReferenceCode string
	UserID        *int64
	AdventureID   int64
	GuideID       *int64
	BookingDate   time.Time
	StartTime     types.TimeString
	Participants  int

	// Monetary fields, denormalized from the pricing breakdown
	BasePrice      float64
	DiscountAmount float64
	TaxAmount      float64
	AddOnsAmount   float64
	TotalAmount    float64

	Status        BookingStatus
	PaymentStatus PaymentStatus
	PaymentRef    *string

	ExpiresAt   *time.Time
	ConfirmedAt *time.Time
	CancelledAt *time.Time

	CancellationReason *string

	// Lead guest contact info
	LeadName  string
	LeadEmail string
	LeadPhone string

	SpecialRequests *string
	AddOns          []AddOnSelection

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is in a non-terminal state.
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsExpired returns true if the booking is a pending hold whose
// expiry window has lapsed.
func (b *Booking) IsExpired(now time.Time) bool {
	return b.Status == StatusPending && b.ExpiresAt != nil && b.ExpiresAt.Before(now)
}

// CountsTowardCapacity returns true if the booking consumes capacity
// on its date: confirmed bookings always do, pending bookings only
// while their hold is alive.
func (b *Booking) CountsTowardCapacity(now time.Time) bool {
	switch b.Status {
	case StatusConfirmed:
		return true
	case StatusPending:
		return !b.IsExpired(now)
	default:
		return false
	}
}

// CanBeCancelled returns true if the booking can be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the booking can transition to
// confirmed on payment confirmation.
func (b *Booking) CanBeConfirmed(now time.Time) bool {
	return b.Status == StatusPending && !b.IsExpired(now)
}
