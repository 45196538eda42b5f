package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrStatusUnchanged возвращается, когда бронирование уже находится в целевом статусе
	ErrStatusUnchanged = errors.New("booking.repository: booking already has this status")

	// ErrUnsupportedState возвращается для фильтра, который репозиторий не умеет строить
	ErrUnsupportedState = errors.New("booking.repository: unsupported state filter")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
