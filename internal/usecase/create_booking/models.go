package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	BookerID int64     // ID пользователя из X-Sharer-User-Id
	ItemID   int64     // ID вещи
	Start    time.Time // Начало аренды
	End      time.Time // Окончание аренды
}
