package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildpath/WP-BookingService/internal/domain"
	adventureRepo "github.com/wildpath/WP-BookingService/internal/infra/storage/adventure"
	availabilityRepo "github.com/wildpath/WP-BookingService/internal/infra/storage/availability"
)

type fakeAdventureRepo struct {
	adventure *domain.Adventure
	err       error
}

func (f *fakeAdventureRepo) GetByID(_ context.Context, _ int64) (*domain.Adventure, error) {
	return f.adventure, f.err
}

type fakeAvailabilityRepo struct {
	override *domain.AvailabilityOverride
	err      error
}

func (f *fakeAvailabilityRepo) GetByAdventureAndDate(_ context.Context, _ int64, _ time.Time) (*domain.AvailabilityOverride, error) {
	return f.override, f.err
}

type fakeBookingRepo struct {
	holders []*domain.Booking
	err     error
}

func (f *fakeBookingRepo) GetCapacityHolders(_ context.Context, _ int64, _ time.Time, _ time.Time) ([]*domain.Booking, error) {
	return f.holders, f.err
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

func newTestUseCase(a AdventureRepository, av AvailabilityRepository, b BookingRepository, now time.Time) *UseCase {
	uc := NewUseCase(a, av, b, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestExecute_ComputedCapacity(t *testing.T) {
	now := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	adventure := &domain.Adventure{ID: 1, PricePerPerson: 150, MaxParticipants: 8, IsActive: true}

	// 3 подтвержденных бронирования на 5 участников
	holders := []*domain.Booking{
		{Status: domain.StatusConfirmed, Participants: 2},
		{Status: domain.StatusConfirmed, Participants: 2},
		{Status: domain.StatusConfirmed, Participants: 1},
	}

	uc := newTestUseCase(
		&fakeAdventureRepo{adventure: adventure},
		&fakeAvailabilityRepo{err: availabilityRepo.ErrOverrideNotFound},
		&fakeBookingRepo{holders: holders},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{AdventureID: 1, Date: date})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.RemainingSpots)
	assert.True(t, resp.IsAvailable)
	assert.False(t, resp.Degraded)
}

func TestExecute_LapsedHoldFreesCapacity(t *testing.T) {
	now := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	liveHold := now.Add(time.Hour)
	lapsedHold := now.Add(-time.Hour)

	adventure := &domain.Adventure{ID: 1, MaxParticipants: 8, IsActive: true}

	holders := []*domain.Booking{
		{Status: domain.StatusConfirmed, Participants: 3},
		{Status: domain.StatusPending, Participants: 2, ExpiresAt: &liveHold},
		{Status: domain.StatusPending, Participants: 2, ExpiresAt: &lapsedHold},
	}

	uc := newTestUseCase(
		&fakeAdventureRepo{adventure: adventure},
		&fakeAvailabilityRepo{err: availabilityRepo.ErrOverrideNotFound},
		&fakeBookingRepo{holders: holders},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{AdventureID: 1, Date: date})
	require.NoError(t, err)

	// Просроченный холд не считается: 8 - (3 + 2) = 3
	assert.Equal(t, 3, resp.RemainingSpots)
}

func TestExecute_BlockedOverride(t *testing.T) {
	now := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	adventure := &domain.Adventure{ID: 1, MaxParticipants: 8, IsActive: true}
	override := &domain.AvailabilityOverride{IsBlocked: true, AvailableSpots: 12, BookedSpots: 0}

	uc := newTestUseCase(
		&fakeAdventureRepo{adventure: adventure},
		&fakeAvailabilityRepo{override: override},
		&fakeBookingRepo{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{AdventureID: 1, Date: date})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.RemainingSpots)
	assert.False(t, resp.IsAvailable)
	assert.True(t, resp.IsBlocked)
}

func TestExecute_OverrideSpots(t *testing.T) {
	now := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	adventure := &domain.Adventure{ID: 1, MaxParticipants: 8, IsActive: true}
	override := &domain.AvailabilityOverride{AvailableSpots: 10, BookedSpots: 4, Status: domain.AvailabilityStatusAvailable}
	holders := []*domain.Booking{
		{Status: domain.StatusConfirmed, Participants: 4},
	}

	uc := newTestUseCase(
		&fakeAdventureRepo{adventure: adventure},
		&fakeAvailabilityRepo{override: override},
		&fakeBookingRepo{holders: holders},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{AdventureID: 1, Date: date})
	require.NoError(t, err)

	// Вместимость из переопределения, занятость по живым бронированиям
	assert.Equal(t, 6, resp.RemainingSpots)
	assert.True(t, resp.IsAvailable)
}

func TestExecute_OverrideIgnoresStaleCounter(t *testing.T) {
	now := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	lapsedHold := now.Add(-time.Hour)

	adventure := &domain.Adventure{ID: 1, MaxParticipants: 8, IsActive: true}
	// Счетчик говорит "все занято", но холд уже истек
	override := &domain.AvailabilityOverride{AvailableSpots: 8, BookedSpots: 8, Status: domain.AvailabilityStatusAvailable}
	holders := []*domain.Booking{
		{Status: domain.StatusPending, Participants: 8, ExpiresAt: &lapsedHold},
	}

	uc := newTestUseCase(
		&fakeAdventureRepo{adventure: adventure},
		&fakeAvailabilityRepo{override: override},
		&fakeBookingRepo{holders: holders},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{AdventureID: 1, Date: date})
	require.NoError(t, err)

	assert.Equal(t, 8, resp.RemainingSpots)
	assert.True(t, resp.IsAvailable)
}

func TestExecute_UnavailableStatusReportsBlocked(t *testing.T) {
	now := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	adventure := &domain.Adventure{ID: 1, MaxParticipants: 8, IsActive: true}
	// Закрытие статусом, без явного флага блокировки
	override := &domain.AvailabilityOverride{
		AvailableSpots: 12,
		IsBlocked:      false,
		Status:         domain.AvailabilityStatusUnavailable,
	}

	uc := newTestUseCase(
		&fakeAdventureRepo{adventure: adventure},
		&fakeAvailabilityRepo{override: override},
		&fakeBookingRepo{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{AdventureID: 1, Date: date})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.RemainingSpots)
	assert.False(t, resp.IsAvailable)
	assert.True(t, resp.IsBlocked)
}

func TestExecute_DegradedOnOverrideError(t *testing.T) {
	now := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	adventure := &domain.Adventure{ID: 1, MaxParticipants: 8, IsActive: true}

	uc := newTestUseCase(
		&fakeAdventureRepo{adventure: adventure},
		&fakeAvailabilityRepo{err: errors.New("connection refused")},
		&fakeBookingRepo{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{AdventureID: 1, Date: date})
	require.NoError(t, err)

	// Ошибка чтения не должна отдавать ложный ноль мест
	assert.Equal(t, domain.FallbackCapacity, resp.RemainingSpots)
	assert.True(t, resp.IsAvailable)
	assert.True(t, resp.Degraded)
}

func TestExecute_DegradedOnBookingsError(t *testing.T) {
	now := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	adventure := &domain.Adventure{ID: 1, MaxParticipants: 8, IsActive: true}

	uc := newTestUseCase(
		&fakeAdventureRepo{adventure: adventure},
		&fakeAvailabilityRepo{err: availabilityRepo.ErrOverrideNotFound},
		&fakeBookingRepo{err: errors.New("connection refused")},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{AdventureID: 1, Date: date})
	require.NoError(t, err)

	assert.Equal(t, domain.FallbackCapacity, resp.RemainingSpots)
	assert.True(t, resp.Degraded)
}

func TestExecute_DegradedOnBookingsErrorWithOverride(t *testing.T) {
	now := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	adventure := &domain.Adventure{ID: 1, MaxParticipants: 8, IsActive: true}
	override := &domain.AvailabilityOverride{AvailableSpots: 10, BookedSpots: 4, Status: domain.AvailabilityStatusAvailable}

	uc := newTestUseCase(
		&fakeAdventureRepo{adventure: adventure},
		&fakeAvailabilityRepo{override: override},
		&fakeBookingRepo{err: errors.New("connection refused")},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{AdventureID: 1, Date: date})
	require.NoError(t, err)

	// При недоступности бронирований счетчик переопределения лучше дефолта
	assert.Equal(t, 6, resp.RemainingSpots)
	assert.True(t, resp.IsAvailable)
	assert.True(t, resp.Degraded)
}

func TestExecute_AdventureNotFound(t *testing.T) {
	now := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAdventureRepo{err: adventureRepo.ErrAdventureNotFound},
		&fakeAvailabilityRepo{},
		&fakeBookingRepo{},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{AdventureID: 99, Date: date})
	assert.ErrorIs(t, err, ErrAdventureNotFound)
}

func TestExecute_InactiveAdventure(t *testing.T) {
	now := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAdventureRepo{adventure: &domain.Adventure{ID: 1, IsActive: false}},
		&fakeAvailabilityRepo{},
		&fakeBookingRepo{},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{AdventureID: 1, Date: date})
	assert.ErrorIs(t, err, ErrAdventureNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeAdventureRepo{}, &fakeAvailabilityRepo{}, &fakeBookingRepo{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{AdventureID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{AdventureID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
