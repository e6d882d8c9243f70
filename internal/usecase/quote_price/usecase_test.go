package quote_price

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildpath/WP-BookingService/internal/domain"
	adventureRepo "github.com/wildpath/WP-BookingService/internal/infra/storage/adventure"
	promotionsService "github.com/wildpath/WP-BookingService/internal/service/promotions"
	"github.com/wildpath/WP-BookingService/pkg/ptr"
)

type fakeAdventureRepo struct {
	adventure *domain.Adventure
	err       error
}

func (f *fakeAdventureRepo) GetByID(_ context.Context, _ int64) (*domain.Adventure, error) {
	return f.adventure, f.err
}

type fakePromotions struct {
	promo *domain.Promotion
	err   error
}

func (f *fakePromotions) Validate(_ context.Context, _ string, _ int64) (*domain.Promotion, error) {
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

func TestExecute_Quote(t *testing.T) {
	now := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	adventure := &domain.Adventure{
		ID:                   1,
		PricePerPerson:       100,
		MaxParticipants:      10,
		GroupDiscountPercent: 10,
		IsActive:             true,
	}

	uc := NewUseCase(&fakeAdventureRepo{adventure: adventure}, &fakePromotions{}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}

	resp, err := uc.Execute(context.Background(), &Request{
		AdventureID:  1,
		Date:         now.AddDate(0, 0, 5),
		Participants: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, 400.0, resp.Breakdown.Subtotal)
	assert.Equal(t, 40.0, resp.Breakdown.GroupDiscount)
	assert.False(t, resp.PromoApplied)
}

func TestExecute_InvalidPromoIsNonBlocking(t *testing.T) {
	now := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	adventure := &domain.Adventure{ID: 1, PricePerPerson: 100, MaxParticipants: 10, IsActive: true}

	uc := NewUseCase(
		&fakeAdventureRepo{adventure: adventure},
		&fakePromotions{err: promotionsService.ErrPromotionInvalid},
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: now}

	resp, err := uc.Execute(context.Background(), &Request{
		AdventureID:  1,
		Date:         now.AddDate(0, 0, 5),
		Participants: 2,
		PromoCode:    ptr.Ptr("EXPIRED"),
	})
	require.NoError(t, err)

	assert.False(t, resp.PromoApplied)
	assert.Equal(t, 0.0, resp.Breakdown.PromoDiscount)
}

func TestExecute_PromotionServiceErrorIsNonBlocking(t *testing.T) {
	now := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	adventure := &domain.Adventure{ID: 1, PricePerPerson: 100, MaxParticipants: 10, IsActive: true}

	uc := NewUseCase(
		&fakeAdventureRepo{adventure: adventure},
		&fakePromotions{err: errors.New("connection refused")},
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: now}

	resp, err := uc.Execute(context.Background(), &Request{
		AdventureID:  1,
		Date:         now.AddDate(0, 0, 5),
		Participants: 2,
		PromoCode:    ptr.Ptr("SUMMER10"),
	})
	require.NoError(t, err)

	assert.False(t, resp.PromoApplied)
}

func TestExecute_AdventureNotFound(t *testing.T) {
	uc := NewUseCase(&fakeAdventureRepo{err: adventureRepo.ErrAdventureNotFound}, &fakePromotions{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		AdventureID:  99,
		Date:         time.Now().AddDate(0, 0, 5),
		Participants: 2,
	})
	assert.ErrorIs(t, err, ErrAdventureNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeAdventureRepo{}, &fakePromotions{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{AdventureID: 1, Date: time.Now(), Participants: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
