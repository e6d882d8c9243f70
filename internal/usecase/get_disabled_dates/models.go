package get_disabled_dates

import "time"

// Request модель запроса на получение недоступных дат
type Request struct {
	AdventureID int64  // ID приключения
	UserID      *int64 // ID пользователя (опционально, для учета его подтвержденных бронирований)
}

// Response модель ответа со списком недоступных дат
type Response struct {
	AdventureID int64       // ID приключения
	From        time.Time   // Начало окна (завтра)
	To          time.Time   // Конец окна
	Dates       []time.Time // Отсортированный список недоступных дат без дубликатов
	Degraded    bool        // Один из источников был недоступен, список может быть неполным
}
