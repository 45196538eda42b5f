package bookings

import (
	"errors"

	"github.com/mdemidkin1992/shareit/internal/domain"
)

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrUnsupportedState возвращается при повторном решении или неизвестном фильтре
	ErrUnsupportedState = errors.New("booking status has already been changed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// UnknownStateError неизвестное значение фильтра state.
// errors.Is(err, ErrUnsupportedState) для неё истинно
type UnknownStateError struct {
	State string
}

func (e *UnknownStateError) Error() string {
	return domain.UnknownStateMessage(e.State)
}

func (e *UnknownStateError) Is(target error) bool {
	return target == ErrUnsupportedState
}
