package update_user

import (
	"github.com/mdemidkin1992/shareit/internal/service/users/models"
)

// UpdateUserRequest HTTP request model, отсутствующие поля не меняются
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,notblank,max=255"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=512"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateUserRequest) ToServiceRequest() *models.UpdateUserRequest {
	return &models.UpdateUserRequest{
		Name:  r.Name,
		Email: r.Email,
	}
}
