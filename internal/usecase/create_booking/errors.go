package create_booking

import "errors"

var (
	// ErrUserNotFound возвращается, когда автор брони не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrItemNotFound возвращается, когда вещь не найдена
	ErrItemNotFound = errors.New("create_booking: item not found")

	// ErrItemNotAvailable возвращается, когда вещь недоступна для аренды
	ErrItemNotAvailable = errors.New("create_booking: item is not available")

	// ErrSelfBooking возвращается при попытке забронировать свою вещь
	ErrSelfBooking = errors.New("create_booking: owner cannot book own item")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidTimeRange возвращается, если end <= start или start не в будущем
	ErrInvalidTimeRange = errors.New("create_booking: invalid booking time range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
