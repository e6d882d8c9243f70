package check_availability

import "time"

// Request модель запроса на проверку доступности даты
type Request struct {
	AdventureID int64     // ID приключения
	Date        time.Time // Дата бронирования (без времени)
}

// Response модель ответа проверки доступности
type Response struct {
	AdventureID    int64     // ID приключения
	Date           time.Time // Запрошенная дата
	IsAvailable    bool      // Можно ли бронировать дату
	IsBlocked      bool      // Дата закрыта администратором
	RemainingSpots int       // Количество оставшихся мест
	Degraded       bool      // Результат получен в режиме деградации (оптимистичный дефолт)
}
