package domain

import (
	"time"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
	StatusCanceled BookingStatus = "CANCELED" // ни одна операция не переводит бронь в этот статус
)

// Booking бронирование вещи на интервал [Start, End)
type Booking struct {
	ID     int64
	Start  time.Time
	End    time.Time
	Status BookingStatus

	Item   Item
	Booker User
}

// DecisionStatus статус, в который переводит решение владельца
func DecisionStatus(approved bool) BookingStatus {
	if approved {
		return StatusApproved
	}
	return StatusRejected
}

// CanDecide проверяет, допустимо ли решение approved для текущего статуса.
// Запрещено только повторное одобрение одобренной и повторное отклонение отклонённой брони,
// переход APPROVED <-> REJECTED разрешён
func (b *Booking) CanDecide(approved bool) bool {
	return b.Status != DecisionStatus(approved)
}

// IsOwnedBy проверяет, является ли userID владельцем забронированной вещи
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.Item.OwnerID == userID
}

// IsVisibleTo бронь видят только автор брони и владелец вещи
func (b *Booking) IsVisibleTo(userID int64) bool {
	return b.Booker.ID == userID || b.IsOwnedBy(userID)
}

// BookingShort краткие сведения о брони для карточки вещи
type BookingShort struct {
	ID       int64
	BookerID int64
	Start    time.Time
	End      time.Time
}

// BookingsFilter параметры выборки бронирований автора или владельца
type BookingsFilter struct {
	BookerID *int64 // ровно одно из BookerID / OwnerID
	OwnerID  *int64
	State    BookingState
	Now      time.Time
	Page     Page
}
