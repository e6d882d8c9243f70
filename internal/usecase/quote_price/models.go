package quote_price

import (
	"time"

	"github.com/wildpath/WP-BookingService/internal/domain"
)

// Request модель запроса на расчет стоимости
type Request struct {
	AdventureID  int64                    // ID приключения
	Date         time.Time                // Дата бронирования (без времени)
	Participants int                      // Количество участников
	AddOns       []domain.AddOnSelection  // Выбранные дополнительные опции
	PromoCode    *string                  // Промокод (опционально)
}

// Response модель ответа с детализацией стоимости
type Response struct {
	AdventureID  int64                   // ID приключения
	Breakdown    domain.PricingBreakdown // Детализация стоимости
	PromoApplied bool                    // Применился ли промокод
}
