package adventure

import "errors"

var (
	// ErrAdventureNotFound возвращается, когда приключение не найдено
	ErrAdventureNotFound = errors.New("adventure.repository: adventure not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("adventure.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("adventure.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("adventure.repository: failed to scan row")
)
