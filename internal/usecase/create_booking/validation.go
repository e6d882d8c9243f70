package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/wildpath/WP-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AdventureID <= 0 {
		return fmt.Errorf("%w: adventureID must be positive", ErrInvalidInput)
	}

	if req.UserID != nil && *req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.StartTime.IsZero() {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.Participants < domain.MinParticipants {
		return fmt.Errorf("%w: participants must be at least %d", ErrInvalidInput, domain.MinParticipants)
	}

	if strings.TrimSpace(req.LeadName) == "" {
		return fmt.Errorf("%w: lead guest name is required", ErrInvalidInput)
	}

	if !isValidEmail(req.LeadEmail) {
		return fmt.Errorf("%w: lead guest email is invalid", ErrInvalidInput)
	}

	if strings.TrimSpace(req.LeadPhone) == "" {
		return fmt.Errorf("%w: lead guest phone is required", ErrInvalidInput)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests are too long", ErrInvalidInput)
	}

	for _, addOn := range req.AddOns {
		if addOn.Price < 0 {
			return fmt.Errorf("%w: addOn price must not be negative", ErrInvalidInput)
		}
	}

	return nil
}

// validateBookingWindow проверяет, что дата попадает в окно бронирования
// приключения: не в прошлом, не позже максимального горизонта и не
// ближе минимального порога до начала тура
func validateBookingWindow(adventure *domain.Adventure, date time.Time, now time.Time) error {
	dateOnly := truncateToDay(date)
	nowOnly := truncateToDay(now)

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	maxDate := nowOnly.AddDate(0, 0, adventure.EffectiveMaxAdvanceDays())
	if dateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, adventure.EffectiveMaxAdvanceDays())
	}

	if adventure.MinAdvanceHours > 0 {
		// Тур стартует в полночь даты бронирования, если время не задано;
		// порог считается от фактического начала
		if date.Sub(now) < time.Duration(adventure.MinAdvanceHours)*time.Hour {
			return fmt.Errorf("%w: must book at least %d hours in advance", ErrTooLateToBook, adventure.MinAdvanceHours)
		}
	}

	return nil
}

// isValidEmail минимальная проверка формата email
func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}

// truncateToDay обнуляет время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
