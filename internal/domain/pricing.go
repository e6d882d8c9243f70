package domain

import (
	"math"
	"time"
)

// AddOnSelection is a selected booking add-on (photo package, gear
// rental, ...). A combo add-on bundles other items at a single price:
// Includes lists the IDs of the items it supersedes.
type AddOnSelection struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Quantity int      `json:"quantity"`
	IsCombo  bool     `json:"isCombo,omitempty"`
	Includes []string `json:"includes,omitempty"`
}

// BookingParams are the guest-chosen inputs to the pricing calculator.
type BookingParams struct {
	Date         time.Time
	Participants int
	AddOns       []AddOnSelection
}

// PricingBreakdown is the itemized price of a booking. It is derived,
// never persisted as-is, and recomputed from scratch on every input
// change.
//
// Invariant: TotalAmount = Subtotal - GroupDiscount - EarlyBirdDiscount -
// PromoDiscount + AddOnsTotal + TaxAmount.
type PricingBreakdown struct {
	BasePrice         float64
	Participants      int
	Subtotal          float64
	GroupDiscount     float64
	EarlyBirdDiscount float64
	PromoDiscount     float64
	AddOnsTotal       float64
	TaxAmount         float64
	TotalAmount       float64
}

// TotalDiscount returns the sum of all discount line items.
func (p *PricingBreakdown) TotalDiscount() float64 {
	return p.GroupDiscount + p.EarlyBirdDiscount + p.PromoDiscount
}

// DaysUntil returns how many days remain until the booking date,
// rounding partial days up.
func DaysUntil(bookingDate, now time.Time) int {
	return int(math.Ceil(bookingDate.Sub(now).Hours() / 24))
}

// NormalizeAddOns resolves combo selections: when a combo is selected,
// the individually-selected items it includes are dropped so they are
// not charged twice.
func NormalizeAddOns(addOns []AddOnSelection) []AddOnSelection {
	superseded := make(map[string]bool)
	for _, a := range addOns {
		if !a.IsCombo {
			continue
		}
		for _, id := range a.Includes {
			superseded[id] = true
		}
	}

	normalized := make([]AddOnSelection, 0, len(addOns))
	for _, a := range addOns {
		if !a.IsCombo && superseded[a.ID] {
			continue
		}
		normalized = append(normalized, a)
	}
	return normalized
}

// CalculatePricing computes the itemized price breakdown for a booking.
// Pure and deterministic given its inputs: no I/O, now is only used for
// the early-bird day count. promo must already be validated (nil means
// no promotion applied).
func CalculatePricing(adventure *Adventure, params BookingParams, promo *Promotion, now time.Time) PricingBreakdown {
	subtotal := roundCents(adventure.PricePerPerson * float64(params.Participants))

	// Group discount: from GroupDiscountMinParticipants participants up
	var groupDiscount float64
	if params.Participants >= GroupDiscountMinParticipants && adventure.HasGroupDiscount() {
		groupDiscount = subtotal * adventure.GroupDiscountPercent / 100
	}
	groupDiscount = clampDiscount(groupDiscount, subtotal)

	// Early-bird discount: booking far enough in advance
	var earlyBirdDiscount float64
	if adventure.HasEarlyBirdDiscount() && DaysUntil(params.Date, now) >= adventure.EarlyBirdDays {
		earlyBirdDiscount = subtotal * adventure.EarlyBirdDiscountPercent / 100
	}
	earlyBirdDiscount = clampDiscount(earlyBirdDiscount, subtotal)

	// Promotion discount
	var promoDiscount float64
	if promo != nil {
		switch promo.DiscountType {
		case DiscountTypePercentage:
			promoDiscount = subtotal * promo.DiscountValue / 100
			if promo.MaxDiscountAmount != nil && promoDiscount > *promo.MaxDiscountAmount {
				promoDiscount = *promo.MaxDiscountAmount
			}
		case DiscountTypeFixed:
			promoDiscount = promo.DiscountValue
		}
	}
	promoDiscount = clampDiscount(promoDiscount, subtotal)

	// Combined discounts must not drive the discounted subtotal below
	// zero. Reduce the later-applied line items until the sum fits:
	// promo first, then early-bird, then group.
	groupDiscount, earlyBirdDiscount, promoDiscount = floorDiscounts(subtotal, groupDiscount, earlyBirdDiscount, promoDiscount)

	var addOnsTotal float64
	for _, addOn := range NormalizeAddOns(params.AddOns) {
		qty := addOn.Quantity
		if qty < 1 {
			qty = 1
		}
		addOnsTotal += addOn.Price * float64(qty)
	}
	addOnsTotal = roundCents(addOnsTotal)

	taxable := roundCents(subtotal - groupDiscount - earlyBirdDiscount - promoDiscount + addOnsTotal)
	taxAmount := roundCents(taxable * TaxRate)

	return PricingBreakdown{
		BasePrice:         adventure.PricePerPerson,
		Participants:      params.Participants,
		Subtotal:          subtotal,
		GroupDiscount:     groupDiscount,
		EarlyBirdDiscount: earlyBirdDiscount,
		PromoDiscount:     promoDiscount,
		AddOnsTotal:       addOnsTotal,
		TaxAmount:         taxAmount,
		TotalAmount:       roundCents(taxable + taxAmount),
	}
}

// clampDiscount caps a single discount line item to [0, subtotal] so no
// discount can drive a line item negative in isolation.
func clampDiscount(discount, subtotal float64) float64 {
	if discount < 0 {
		return 0
	}
	if discount > subtotal {
		return subtotal
	}
	return roundCents(discount)
}

// floorDiscounts enforces the combined-discount floor: the discounted
// subtotal never goes below zero. Excess is taken from the promo
// discount first, then early-bird, then group.
func floorDiscounts(subtotal, group, earlyBird, promo float64) (float64, float64, float64) {
	excess := roundCents(group + earlyBird + promo - subtotal)
	if excess <= 0 {
		return group, earlyBird, promo
	}

	for _, d := range []*float64{&promo, &earlyBird, &group} {
		if excess <= 0 {
			break
		}
		cut := math.Min(*d, excess)
		*d = roundCents(*d - cut)
		excess = roundCents(excess - cut)
	}
	return group, earlyBird, promo
}

// roundCents rounds a monetary amount to two decimal places.
func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
