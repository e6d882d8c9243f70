package promotions

import "errors"

var (
	// ErrPromotionInvalid возвращается при любой причине отказа:
	// код не найден, не активен, вне окна действия, не применим
	// к приключению или лимит использований исчерпан. Причина
	// наружу не раскрывается
	ErrPromotionInvalid = errors.New("promotion code is not valid")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal promotions service error")
)
