package notice

import "errors"

var (
	// ErrNoticeNotFound возвращается, когда объявление не найдено
	ErrNoticeNotFound = errors.New("notice.repository: notice not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("notice.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("notice.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("notice.repository: failed to scan row")
)
