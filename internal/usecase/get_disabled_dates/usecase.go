package get_disabled_dates

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/wildpath/WP-BookingService/internal/domain"
)

// UseCase use case для агрегации недоступных дат календаря
type UseCase struct {
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute собирает недоступные даты в окне [завтра, завтра+окно]:
// объединение заблокированных администратором дат и дат, на которые
// у пользователя уже есть подтвержденное бронирование этого приключения.
// Ошибка любого из источников деградирует этот источник до пустого
// списка, а не блокирует ответ целиком
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDisabledDates: adventure=%d, user=%v", req.AdventureID, req.UserID)

	if req.AdventureID <= 0 {
		uc.logger.Warn("GetDisabledDates: invalid adventureID=%d", req.AdventureID)
		return nil, fmt.Errorf("%w: adventureID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	to := from.AddDate(0, 0, domain.DisabledDatesWindowDays-1)

	resp := &Response{
		AdventureID: req.AdventureID,
		From:        from,
		To:          to,
	}

	seen := make(map[string]time.Time)

	blocked, err := uc.availabilityRepo.ListBlockedDates(ctx, req.AdventureID, from, to)
	if err != nil {
		uc.logger.Error("GetDisabledDates: degraded, failed to list blocked dates for adventure=%d: %v",
			req.AdventureID, err)
		resp.Degraded = true
	} else {
		for _, d := range blocked {
			seen[d.Format(domain.DateFormat)] = d
		}
	}

	if req.UserID != nil {
		booked, err := uc.bookingRepo.GetConfirmedDatesByUser(ctx, *req.UserID, req.AdventureID, from, to)
		if err != nil {
			uc.logger.Error("GetDisabledDates: degraded, failed to get confirmed dates for user=%d adventure=%d: %v",
				*req.UserID, req.AdventureID, err)
			resp.Degraded = true
		} else {
			for _, d := range booked {
				seen[d.Format(domain.DateFormat)] = d
			}
		}
	}

	dates := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	resp.Dates = dates

	uc.logger.Info("GetDisabledDates: adventure=%d, %d disabled dates in window", req.AdventureID, len(dates))
	return resp, nil
}
