package models

import (
	"github.com/mdemidkin1992/shareit/internal/domain"
)

// Request модели

// ListBookingsRequest запрос на получение бронирований автора или владельца
type ListBookingsRequest struct {
	UserID int64
	State  string // сырое значение параметра state
	Page   domain.Page
}

// DecideRequest решение владельца по бронированию
type DecideRequest struct {
	BookingID int64
	UserID    int64
	Approved  bool
}

// Response модели

// BookerResponse автор бронирования
type BookerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ItemShortResponse краткие сведения о вещи
type ItemShortResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID     int64             `json:"id"`
	Start  string            `json:"start"` // "2025-10-15T10:00:00"
	End    string            `json:"end"`
	Status string            `json:"status"`
	Booker BookerResponse    `json:"booker"`
	Item   ItemShortResponse `json:"item"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:     b.ID,
		Start:  b.Start.Format(domain.DateTimeFormat),
		End:    b.End.Format(domain.DateTimeFormat),
		Status: string(b.Status),
		Booker: BookerResponse{
			ID:    b.Booker.ID,
			Name:  b.Booker.Name,
			Email: b.Booker.Email,
		},
		Item: ItemShortResponse{
			ID:          b.Item.ID,
			Name:        b.Item.Name,
			Description: b.Item.Description,
			Available:   b.Item.Available,
			OwnerID:     b.Item.OwnerID,
		},
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO.
// Для пустого списка возвращает пустой срез, а не nil
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		if r := FromDomainBooking(b); r != nil {
			resp = append(resp, *r)
		}
	}
	return resp
}
