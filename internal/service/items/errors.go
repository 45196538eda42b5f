package items

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrItemNotFound возвращается, когда вещь не найдена
	ErrItemNotFound = errors.New("item not found")

	// ErrRequestNotFound возвращается, когда вещь ссылается на несуществующий запрос
	ErrRequestNotFound = errors.New("item request not found")

	// ErrAccessDenied возвращается, когда вещь меняет не владелец
	ErrAccessDenied = errors.New("access denied")

	// ErrCommentNotAllowed возвращается, если у автора нет завершённой одобренной брони вещи
	ErrCommentNotAllowed = errors.New("comment is allowed only after a finished booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
