package domain

import "time"

// DiscountType represents how a promotion discount is computed
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// Promotion is a promo-code discount rule.
// The booking core only reads promotions; incrementing usage_count
// happens outside this service.
type Promotion struct {
	ID                int64
	Code              string
	Description       string
	DiscountType      DiscountType
	DiscountValue     float64
	MaxDiscountAmount *float64

	// AdventureIDs is the allow-list of adventures the code applies to.
	// Empty means the code applies to every adventure.
	AdventureIDs []int64

	StartsAt   time.Time
	ExpiresAt  time.Time
	UsageLimit *int
	UsageCount int
	IsActive   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWithinWindow returns true if now falls inside [StartsAt, ExpiresAt].
func (p *Promotion) IsWithinWindow(now time.Time) bool {
	return !now.Before(p.StartsAt) && !now.After(p.ExpiresAt)
}

// IsExhausted returns true if the usage limit is set and reached.
func (p *Promotion) IsExhausted() bool {
	return p.UsageLimit != nil && p.UsageCount >= *p.UsageLimit
}

// AppliesTo returns true if the promotion is valid for the adventure.
func (p *Promotion) AppliesTo(adventureID int64) bool {
	if len(p.AdventureIDs) == 0 {
		return true
	}
	for _, id := range p.AdventureIDs {
		if id == adventureID {
			return true
		}
	}
	return false
}
