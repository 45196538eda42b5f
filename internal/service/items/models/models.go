package models

import (
	"github.com/mdemidkin1992/shareit/internal/domain"
)

// Request модели

// CreateItemRequest запрос на создание вещи
type CreateItemRequest struct {
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// UpdateItemRequest частичное обновление вещи
type UpdateItemRequest struct {
	ItemID      int64
	UserID      int64
	Name        *string
	Description *string
	Available   *bool
}

// AddCommentRequest запрос на добавление отзыва
type AddCommentRequest struct {
	ItemID   int64
	AuthorID int64
	Text     string
}

// Response модели

// BookingShortResponse ближайшая бронь вещи
type BookingShortResponse struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

// CommentResponse отзыв о вещи
type CommentResponse struct {
	ID         int64  `json:"id"`
	Text       string `json:"text"`
	AuthorName string `json:"authorName"`
	Created    string `json:"created"`
}

// ItemResponse ответ с данными вещи
type ItemResponse struct {
	ID          int64                 `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Available   bool                  `json:"available"`
	OwnerID     int64                 `json:"ownerId"`
	RequestID   *int64                `json:"requestId,omitempty"`
	LastBooking *BookingShortResponse `json:"lastBooking"`
	NextBooking *BookingShortResponse `json:"nextBooking"`
	Comments    []CommentResponse     `json:"comments"`
}

// Методы конвертации

// FromDomainComment конвертирует отзыв
func FromDomainComment(c *domain.Comment) *CommentResponse {
	if c == nil {
		return nil
	}
	return &CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    c.Created.Format(domain.DateTimeFormat),
	}
}

// FromDomainItem конвертирует вещь без броней и отзывов
func FromDomainItem(it *domain.Item) *ItemResponse {
	return FromDomainItemDetails(&domain.ItemDetails{Item: *it})
}

// FromDomainItemDetails конвертирует вещь вместе с ближайшими бронями и отзывами
func FromDomainItemDetails(d *domain.ItemDetails) *ItemResponse {
	resp := &ItemResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Available:   d.Available,
		OwnerID:     d.OwnerID,
		RequestID:   d.RequestID,
		LastBooking: fromShort(d.LastBooking),
		NextBooking: fromShort(d.NextBooking),
		Comments:    make([]CommentResponse, 0, len(d.Comments)),
	}
	for _, c := range d.Comments {
		resp.Comments = append(resp.Comments, *FromDomainComment(c))
	}
	return resp
}

// FromDomainItemDetailsList конвертирует список вещей
func FromDomainItemDetailsList(list []*domain.ItemDetails) []ItemResponse {
	resp := make([]ItemResponse, 0, len(list))
	for _, d := range list {
		resp = append(resp, *FromDomainItemDetails(d))
	}
	return resp
}

func fromShort(b *domain.BookingShort) *BookingShortResponse {
	if b == nil {
		return nil
	}
	return &BookingShortResponse{ID: b.ID, BookerID: b.BookerID}
}
