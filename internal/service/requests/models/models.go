package models

import (
	"github.com/mdemidkin1992/shareit/internal/domain"
)

// CreateRequest запрос пользователя на вещь
type CreateRequest struct {
	RequesterID int64
	Description string
}

// RequestItemResponse вещь, предложенная в ответ на запрос
type RequestItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   int64  `json:"requestId"`
}

// RequestResponse запрос вместе с ответами на него
type RequestResponse struct {
	ID          int64                 `json:"id"`
	Description string                `json:"description"`
	Created     string                `json:"created"`
	Items       []RequestItemResponse `json:"items"`
}

// FromDomainRequest конвертирует запрос и вещи, добавленные в ответ на него
func FromDomainRequest(r *domain.ItemRequestDetails) *RequestResponse {
	resp := &RequestResponse{
		ID:          r.ID,
		Description: r.Description,
		Created:     r.Created.Format(domain.DateTimeFormat),
		Items:       make([]RequestItemResponse, 0, len(r.Items)),
	}
	for _, it := range r.Items {
		resp.Items = append(resp.Items, RequestItemResponse{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			RequestID:   r.ID,
		})
	}
	return resp
}

// FromDomainRequestList конвертирует список запросов
func FromDomainRequestList(list []*domain.ItemRequestDetails) []RequestResponse {
	resp := make([]RequestResponse, 0, len(list))
	for _, r := range list {
		resp = append(resp, *FromDomainRequest(r))
	}
	return resp
}
