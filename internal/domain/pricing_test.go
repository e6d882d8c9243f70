package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAdventure() *Adventure {
	return &Adventure{
		ID:                       1,
		Title:                    "Горный треккинг",
		PricePerPerson:           100,
		MaxParticipants:          10,
		GroupDiscountPercent:     10,
		EarlyBirdDiscountPercent: 5,
		EarlyBirdDays:            7,
		IsActive:                 true,
	}
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
}

func TestCalculatePricing_GroupDiscount(t *testing.T) {
	adventure := testAdventure()
	now := fixedNow()

	// 4 участника: скидка применяется
	breakdown := CalculatePricing(adventure, BookingParams{
		Date:         now.AddDate(0, 0, 3),
		Participants: 4,
	}, nil, now)

	assert.Equal(t, 400.0, breakdown.Subtotal)
	assert.Equal(t, 40.0, breakdown.GroupDiscount)

	// 3 участника: скидки нет
	breakdown = CalculatePricing(adventure, BookingParams{
		Date:         now.AddDate(0, 0, 3),
		Participants: 3,
	}, nil, now)

	assert.Equal(t, 0.0, breakdown.GroupDiscount)
}

func TestCalculatePricing_GroupDiscount_ZeroPercent(t *testing.T) {
	adventure := testAdventure()
	adventure.GroupDiscountPercent = 0
	now := fixedNow()

	breakdown := CalculatePricing(adventure, BookingParams{
		Date:         now.AddDate(0, 0, 3),
		Participants: 6,
	}, nil, now)

	assert.Equal(t, 0.0, breakdown.GroupDiscount)
}

func TestCalculatePricing_EarlyBirdBoundary(t *testing.T) {
	adventure := testAdventure()
	now := fixedNow()

	// Ровно за early_bird_days - 1 день: скидки нет
	breakdown := CalculatePricing(adventure, BookingParams{
		Date:         now.AddDate(0, 0, adventure.EarlyBirdDays-1),
		Participants: 2,
	}, nil, now)
	assert.Equal(t, 0.0, breakdown.EarlyBirdDiscount)

	// Ровно за early_bird_days дней: полная скидка
	breakdown = CalculatePricing(adventure, BookingParams{
		Date:         now.AddDate(0, 0, adventure.EarlyBirdDays),
		Participants: 2,
	}, nil, now)
	assert.Equal(t, 10.0, breakdown.EarlyBirdDiscount) // 200 * 5%
}

func TestCalculatePricing_PromoPercentageWithCap(t *testing.T) {
	adventure := testAdventure()
	now := fixedNow()
	cap := 15.0
	promo := &Promotion{
		Code:              "SUMMER20",
		DiscountType:      DiscountTypePercentage,
		DiscountValue:     20,
		MaxDiscountAmount: &cap,
	}

	breakdown := CalculatePricing(adventure, BookingParams{
		Date:         now.AddDate(0, 0, 3),
		Participants: 2,
	}, promo, now)

	// 200 * 20% = 40, но ограничено капом 15
	assert.Equal(t, 15.0, breakdown.PromoDiscount)
}

func TestCalculatePricing_PromoFixed(t *testing.T) {
	adventure := testAdventure()
	now := fixedNow()
	promo := &Promotion{
		Code:          "FLAT25",
		DiscountType:  DiscountTypeFixed,
		DiscountValue: 25,
	}

	breakdown := CalculatePricing(adventure, BookingParams{
		Date:         now.AddDate(0, 0, 3),
		Participants: 2,
	}, promo, now)

	assert.Equal(t, 25.0, breakdown.PromoDiscount)
}

func TestCalculatePricing_Idempotent(t *testing.T) {
	adventure := testAdventure()
	now := fixedNow()
	promo := &Promotion{
		Code:          "FLAT25",
		DiscountType:  DiscountTypeFixed,
		DiscountValue: 25,
	}
	params := BookingParams{
		Date:         now.AddDate(0, 0, 10),
		Participants: 5,
		AddOns: []AddOnSelection{
			{ID: "photos", Name: "Фотопакет", Price: 30, Quantity: 1},
		},
	}

	first := CalculatePricing(adventure, params, promo, now)
	second := CalculatePricing(adventure, params, promo, now)

	assert.Equal(t, first, second)
}

func TestCalculatePricing_TotalInvariant(t *testing.T) {
	adventure := testAdventure()
	now := fixedNow()
	promo := &Promotion{
		Code:          "FLAT25",
		DiscountType:  DiscountTypeFixed,
		DiscountValue: 25,
	}

	cases := []struct {
		name         string
		participants int
		daysAhead    int
		addOns       []AddOnSelection
		promo        *Promotion
	}{
		{"solo_no_extras", 1, 2, nil, nil},
		{"group_early_bird", 6, 14, nil, nil},
		{"promo_and_addons", 4, 10, []AddOnSelection{
			{ID: "gear", Name: "Аренда снаряжения", Price: 20, Quantity: 4},
		}, promo},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := CalculatePricing(adventure, BookingParams{
				Date:         now.AddDate(0, 0, tc.daysAhead),
				Participants: tc.participants,
				AddOns:       tc.addOns,
			}, tc.promo, now)

			expected := b.Subtotal - b.GroupDiscount - b.EarlyBirdDiscount - b.PromoDiscount + b.AddOnsTotal + b.TaxAmount
			assert.InDelta(t, expected, b.TotalAmount, 0.001)
			assert.GreaterOrEqual(t, b.GroupDiscount, 0.0)
			assert.GreaterOrEqual(t, b.EarlyBirdDiscount, 0.0)
			assert.GreaterOrEqual(t, b.PromoDiscount, 0.0)
		})
	}
}

func TestCalculatePricing_DiscountFloor(t *testing.T) {
	adventure := testAdventure()
	now := fixedNow()

	// Фиксированная скидка больше subtotal: комбинация скидок
	// не должна увести облагаемую сумму ниже нуля
	promo := &Promotion{
		Code:          "HUGE",
		DiscountType:  DiscountTypeFixed,
		DiscountValue: 10000,
	}

	b := CalculatePricing(adventure, BookingParams{
		Date:         now.AddDate(0, 0, 30),
		Participants: 4,
	}, promo, now)

	total := b.GroupDiscount + b.EarlyBirdDiscount + b.PromoDiscount
	assert.LessOrEqual(t, total, b.Subtotal)
	assert.GreaterOrEqual(t, b.TotalAmount, 0.0)
	// Урезается промо, групповая и early-bird скидки сохраняются
	assert.Equal(t, 40.0, b.GroupDiscount)
	assert.Equal(t, 20.0, b.EarlyBirdDiscount)
}

func TestCalculatePricing_ComboSupersedesItems(t *testing.T) {
	adventure := testAdventure()
	now := fixedNow()

	// Выбран combo, включающий photos: отдельно выбранный photos
	// не должен тарифицироваться второй раз
	withCombo := CalculatePricing(adventure, BookingParams{
		Date:         now.AddDate(0, 0, 3),
		Participants: 2,
		AddOns: []AddOnSelection{
			{ID: "photos", Name: "Фотопакет", Price: 30, Quantity: 1},
			{ID: "combo_memory", Name: "Набор впечатлений", Price: 45, Quantity: 1, IsCombo: true, Includes: []string{"photos", "souvenir"}},
		},
	}, nil, now)

	assert.Equal(t, 45.0, withCombo.AddOnsTotal)
}

func TestNormalizeAddOns(t *testing.T) {
	addOns := []AddOnSelection{
		{ID: "photos", Price: 30},
		{ID: "souvenir", Price: 15},
		{ID: "gear", Price: 20},
		{ID: "combo_memory", Price: 45, IsCombo: true, Includes: []string{"photos", "souvenir"}},
	}

	normalized := NormalizeAddOns(addOns)

	require.Len(t, normalized, 2)
	assert.Equal(t, "gear", normalized[0].ID)
	assert.Equal(t, "combo_memory", normalized[1].ID)
}

func TestDaysUntil(t *testing.T) {
	now := fixedNow()

	assert.Equal(t, 7, DaysUntil(now.AddDate(0, 0, 7), now))
	assert.Equal(t, 0, DaysUntil(now, now))
	// Неполный день округляется вверх
	assert.Equal(t, 1, DaysUntil(now.Add(6*time.Hour), now))
}
