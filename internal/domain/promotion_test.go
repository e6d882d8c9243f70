package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPromotionIsWithinWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	promo := Promotion{
		StartsAt:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		ExpiresAt: time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC),
	}

	assert.True(t, promo.IsWithinWindow(now))
	assert.True(t, promo.IsWithinWindow(promo.StartsAt))
	assert.True(t, promo.IsWithinWindow(promo.ExpiresAt))
	assert.False(t, promo.IsWithinWindow(promo.StartsAt.Add(-time.Second)))
	assert.False(t, promo.IsWithinWindow(promo.ExpiresAt.Add(time.Second)))
}

func TestPromotionIsExhausted(t *testing.T) {
	limit := 100

	assert.False(t, (&Promotion{UsageCount: 500}).IsExhausted())
	assert.False(t, (&Promotion{UsageLimit: &limit, UsageCount: 99}).IsExhausted())
	assert.True(t, (&Promotion{UsageLimit: &limit, UsageCount: 100}).IsExhausted())
	assert.True(t, (&Promotion{UsageLimit: &limit, UsageCount: 150}).IsExhausted())
}

func TestPromotionAppliesTo(t *testing.T) {
	// Пустой allow-list применим к любому приключению
	assert.True(t, (&Promotion{}).AppliesTo(42))

	promo := &Promotion{AdventureIDs: []int64{1, 2, 3}}
	assert.True(t, promo.AppliesTo(2))
	assert.False(t, promo.AppliesTo(42))
}
