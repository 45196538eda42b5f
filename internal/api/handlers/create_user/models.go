package create_user

import (
	"github.com/mdemidkin1992/shareit/internal/service/users/models"
)

// CreateUserRequest HTTP request model
type CreateUserRequest struct {
	Name  string `json:"name" validate:"notblank,max=255"`
	Email string `json:"email" validate:"required,email,max=512"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateUserRequest) ToServiceRequest() *models.CreateUserRequest {
	return &models.CreateUserRequest{
		Name:  r.Name,
		Email: r.Email,
	}
}
