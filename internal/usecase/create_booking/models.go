package create_booking

import (
	"time"

	"github.com/wildpath/WP-BookingService/internal/domain"
	"github.com/wildpath/WP-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID       *int64                  // ID пользователя (опционально, гостевые бронирования допустимы)
	AdventureID  int64                   // ID приключения
	Date         time.Time               // Дата бронирования (без времени)
	StartTime    types.TimeString        // Время начала (например, "09:00")
	Participants int                     // Количество участников
	AddOns       []domain.AddOnSelection // Выбранные дополнительные опции
	PromoCode    *string                 // Промокод (опционально)

	// Контактные данные ведущего гостя
	LeadName  string
	LeadEmail string
	LeadPhone string

	SpecialRequests *string // Особые пожелания (опционально)
	PaymentRef      *string // Ссылка на платеж: если указана, бронирование сразу подтверждено
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64                   // ID созданного бронирования
	ReferenceCode string                  // Публичный код бронирования
	AdventureID   int64                   // ID приключения
	Date          time.Time               // Дата бронирования
	StartTime     types.TimeString        // Время начала
	Participants  int                     // Количество участников
	Status        string                  // Статус бронирования
	PaymentStatus string                  // Статус оплаты
	ExpiresAt     *time.Time              // Срок действия холда (для pending)
	Breakdown     domain.PricingBreakdown // Детализация стоимости
	PromoApplied  bool                    // Применился ли промокод
	CreatedAt     time.Time               // Время создания
}
