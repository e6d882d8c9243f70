package domain

import "time"

// Adventure represents a bookable tour product.
// The booking core treats adventures as read-only input: they are
// created and edited by the admin CMS, which is outside this service.
type Adventure struct {
	ID              int64
	Title           string
	Description     string
	Location        string
	PricePerPerson  float64
	DurationHours   int
	MaxParticipants int
	DailyCapacity   int
	DifficultyLevel string
	GuideID         *int64

	// Discount configuration
	GroupDiscountPercent     float64 // e.g. 10 means 10%
	EarlyBirdDiscountPercent float64
	EarlyBirdDays            int // minimum days in advance for the early-bird discount

	// Advance-booking window
	MinAdvanceHours int // minimum hours before the tour start a booking is accepted
	MaxAdvanceDays  int // 0 = use DefaultMaxAdvanceDays

	CancellationPolicy string
	IsActive           bool
	ImageURL           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultCapacity returns the per-date capacity used when no availability
// override row exists: max participants, falling back to the daily capacity,
// falling back to FallbackCapacity.
func (a *Adventure) DefaultCapacity() int {
	if a.MaxParticipants > 0 {
		return a.MaxParticipants
	}
	if a.DailyCapacity > 0 {
		return a.DailyCapacity
	}
	return FallbackCapacity
}

// HasGroupDiscount returns true if a group discount is configured.
func (a *Adventure) HasGroupDiscount() bool {
	return a.GroupDiscountPercent > 0
}

// HasEarlyBirdDiscount returns true if an early-bird discount is configured.
func (a *Adventure) HasEarlyBirdDiscount() bool {
	return a.EarlyBirdDiscountPercent > 0 && a.EarlyBirdDays > 0
}

// EffectiveMaxAdvanceDays returns how far in the future this adventure
// can be booked.
func (a *Adventure) EffectiveMaxAdvanceDays() int {
	if a.MaxAdvanceDays > 0 {
		return a.MaxAdvanceDays
	}
	return DefaultMaxAdvanceDays
}
