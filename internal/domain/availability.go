package domain

import "time"

// AvailabilityStatus represents the status tag of an availability override
type AvailabilityStatus string

const (
	AvailabilityStatusAvailable   AvailabilityStatus = "available"
	AvailabilityStatusUnavailable AvailabilityStatus = "unavailable"
	AvailabilityStatusLimited     AvailabilityStatus = "limited"
)

// AvailabilityOverride is an admin-controlled per-date capacity record.
// When a row exists for (adventure, date) it supersedes the computed
// capacity; absence of a row means "use default capacity logic".
type AvailabilityOverride struct {
	ID             int64
	AdventureID    int64
	Date           time.Time
	AvailableSpots int
	BookedSpots    int
	IsBlocked      bool
	Status         AvailabilityStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsClosed returns true if the date is closed for booking regardless
// of remaining spots (blocked by an operator or tagged unavailable).
func (o *AvailabilityOverride) IsClosed() bool {
	return o.IsBlocked || o.Status == AvailabilityStatusUnavailable
}

// RemainingSpots returns the bookable capacity left on this date.
func (o *AvailabilityOverride) RemainingSpots() int {
	if o.IsClosed() {
		return 0
	}
	remaining := o.AvailableSpots - o.BookedSpots
	if remaining < 0 {
		return 0
	}
	return remaining
}
