package availability

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда для даты нет override-записи
	// Это штатный путь: отсутствие записи означает "использовать дефолтную емкость"
	ErrOverrideNotFound = errors.New("availability.repository: override not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
