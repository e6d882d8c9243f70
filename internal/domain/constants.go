package domain

import "time"

// Capacity defaults
const (
	// FallbackCapacity is the optimistic capacity assumed when an
	// availability read fails; the write-time check remains the guard.
	FallbackCapacity = 8
)

// Pricing constants
const (
	TaxRate                      = 0.10
	GroupDiscountMinParticipants = 4
)

// Booking hold and window constants
const (
	// HoldDuration bounds how long an unpaid pending booking blocks capacity
	HoldDuration = 24 * time.Hour

	DefaultMaxAdvanceDays   = 365
	DisabledDatesWindowDays = 365
)

// Business validation constants
const (
	MinParticipants             = 1
	MaxSpecialRequestsLength    = 1000
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CapacityStatuses список статусов, учитываемых при подсчёте занятых мест
// Pending учитывается только вместе с read-time фильтром по expires_at
var CapacityStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses список терминальных статусов бронирования
var TerminalStatuses = []BookingStatus{
	StatusCancelled,
	StatusExpired,
}
