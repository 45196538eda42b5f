package models

import "github.com/mdemidkin1992/shareit/internal/domain"

// CreateUserRequest запрос на создание пользователя
type CreateUserRequest struct {
	Name  string
	Email string
}

// UpdateUserRequest частичное обновление, nil поля не меняются
type UpdateUserRequest struct {
	Name  *string
	Email *string
}

// UserResponse ответ с данными пользователя
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// FromDomainUserList конвертирует список пользователей
func FromDomainUserList(users []*domain.User) []UserResponse {
	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, *FromDomainUser(u))
	}
	return resp
}
