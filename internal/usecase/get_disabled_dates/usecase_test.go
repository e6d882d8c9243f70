package get_disabled_dates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildpath/WP-BookingService/pkg/ptr"
)

type fakeAvailabilityRepo struct {
	blocked []time.Time
	err     error
}

func (f *fakeAvailabilityRepo) ListBlockedDates(_ context.Context, _ int64, _, _ time.Time) ([]time.Time, error) {
	return f.blocked, f.err
}

type fakeBookingRepo struct {
	confirmed []time.Time
	err       error
}

func (f *fakeBookingRepo) GetConfirmedDatesByUser(_ context.Context, _, _ int64, _, _ time.Time) ([]time.Time, error) {
	return f.confirmed, f.err
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

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecute_UnionOfSources(t *testing.T) {
	now := time.Date(2025, 5, 20, 15, 0, 0, 0, time.UTC)

	availRepo := &fakeAvailabilityRepo{blocked: []time.Time{
		day(2025, 6, 1),
		day(2025, 6, 5),
	}}
	bookRepo := &fakeBookingRepo{confirmed: []time.Time{
		day(2025, 6, 5), // дубликат с заблокированной датой
		day(2025, 7, 10),
	}}

	uc := NewUseCase(availRepo, bookRepo, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}

	resp, err := uc.Execute(context.Background(), &Request{AdventureID: 1, UserID: ptr.Ptr(int64(7))})
	require.NoError(t, err)

	// Объединение без дубликатов, по возрастанию
	require.Len(t, resp.Dates, 3)
	assert.Equal(t, day(2025, 6, 1), resp.Dates[0])
	assert.Equal(t, day(2025, 6, 5), resp.Dates[1])
	assert.Equal(t, day(2025, 7, 10), resp.Dates[2])
	assert.False(t, resp.Degraded)

	// Окно начинается с завтрашнего дня
	assert.Equal(t, day(2025, 5, 21), resp.From)
}

func TestExecute_AnonymousUserSkipsBookings(t *testing.T) {
	now := time.Date(2025, 5, 20, 15, 0, 0, 0, time.UTC)

	availRepo := &fakeAvailabilityRepo{blocked: []time.Time{day(2025, 6, 1)}}
	bookRepo := &fakeBookingRepo{err: errors.New("must not be called")}

	uc := NewUseCase(availRepo, bookRepo, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}

	resp, err := uc.Execute(context.Background(), &Request{AdventureID: 1})
	require.NoError(t, err)

	require.Len(t, resp.Dates, 1)
	assert.False(t, resp.Degraded)
}

func TestExecute_DegradesPerSource(t *testing.T) {
	now := time.Date(2025, 5, 20, 15, 0, 0, 0, time.UTC)

	// Источник заблокированных дат недоступен, бронирования доступны
	availRepo := &fakeAvailabilityRepo{err: errors.New("connection refused")}
	bookRepo := &fakeBookingRepo{confirmed: []time.Time{day(2025, 6, 3)}}

	uc := NewUseCase(availRepo, bookRepo, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}

	resp, err := uc.Execute(context.Background(), &Request{AdventureID: 1, UserID: ptr.Ptr(int64(7))})
	require.NoError(t, err)

	require.Len(t, resp.Dates, 1)
	assert.Equal(t, day(2025, 6, 3), resp.Dates[0])
	assert.True(t, resp.Degraded)
}

func TestExecute_InvalidAdventureID(t *testing.T) {
	uc := NewUseCase(&fakeAvailabilityRepo{}, &fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{AdventureID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
