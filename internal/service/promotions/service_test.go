package promotions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildpath/WP-BookingService/internal/domain"
	promotionRepo "github.com/wildpath/WP-BookingService/internal/infra/storage/promotion"
	"github.com/wildpath/WP-BookingService/pkg/ptr"
)

type fakePromotionRepo struct {
	promo *domain.Promotion
	err   error
}

func (f *fakePromotionRepo) GetByCode(_ context.Context, _ string) (*domain.Promotion, error) {
	return f.promo, f.err
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validPromotion() *domain.Promotion {
	return &domain.Promotion{
		ID:            1,
		Code:          "SUMMER10",
		DiscountType:  domain.DiscountTypePercentage,
		DiscountValue: 10,
		StartsAt:      time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		ExpiresAt:     time.Date(2025, 8, 31, 23, 59, 59, 0, time.UTC),
		IsActive:      true,
	}
}

func newTestService(repo PromotionRepository, now time.Time) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fakeTimeProvider{now: now}
	return svc
}

func TestValidate_ValidCode(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc := newTestService(&fakePromotionRepo{promo: validPromotion()}, now)

	promo, err := svc.Validate(context.Background(), "SUMMER10", 1)
	require.NoError(t, err)
	assert.Equal(t, "SUMMER10", promo.Code)
}

func TestValidate_NotFound(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc := newTestService(&fakePromotionRepo{err: promotionRepo.ErrPromotionNotFound}, now)

	_, err := svc.Validate(context.Background(), "NOSUCH", 1)
	assert.ErrorIs(t, err, ErrPromotionInvalid)
}

func TestValidate_ExpiredCode(t *testing.T) {
	// Истекший код недействителен, даже если остальные поля валидны
	now := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestService(&fakePromotionRepo{promo: validPromotion()}, now)

	_, err := svc.Validate(context.Background(), "SUMMER10", 1)
	assert.ErrorIs(t, err, ErrPromotionInvalid)
}

func TestValidate_NotStartedYet(t *testing.T) {
	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestService(&fakePromotionRepo{promo: validPromotion()}, now)

	_, err := svc.Validate(context.Background(), "SUMMER10", 1)
	assert.ErrorIs(t, err, ErrPromotionInvalid)
}

func TestValidate_InactiveCode(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	promo := validPromotion()
	promo.IsActive = false
	svc := newTestService(&fakePromotionRepo{promo: promo}, now)

	_, err := svc.Validate(context.Background(), "SUMMER10", 1)
	assert.ErrorIs(t, err, ErrPromotionInvalid)
}

func TestValidate_AllowList(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	promo := validPromotion()
	promo.AdventureIDs = []int64{2, 3}
	svc := newTestService(&fakePromotionRepo{promo: promo}, now)

	_, err := svc.Validate(context.Background(), "SUMMER10", 1)
	assert.ErrorIs(t, err, ErrPromotionInvalid)

	result, err := svc.Validate(context.Background(), "SUMMER10", 2)
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestValidate_UsageLimitExhausted(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	promo := validPromotion()
	promo.UsageLimit = ptr.Ptr(100)
	promo.UsageCount = 100
	svc := newTestService(&fakePromotionRepo{promo: promo}, now)

	_, err := svc.Validate(context.Background(), "SUMMER10", 1)
	assert.ErrorIs(t, err, ErrPromotionInvalid)
}

func TestValidate_EmptyCode(t *testing.T) {
	svc := newTestService(&fakePromotionRepo{}, time.Now())

	_, err := svc.Validate(context.Background(), "   ", 1)
	assert.ErrorIs(t, err, ErrPromotionInvalid)
}

func TestValidate_RepositoryError(t *testing.T) {
	svc := newTestService(&fakePromotionRepo{err: errors.New("connection refused")}, time.Now())

	_, err := svc.Validate(context.Background(), "SUMMER10", 1)
	assert.ErrorIs(t, err, ErrInternal)
}
