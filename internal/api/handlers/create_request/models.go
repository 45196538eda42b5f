package create_request

import (
	"github.com/mdemidkin1992/shareit/internal/service/requests/models"
)

// CreateRequestRequest HTTP request model
type CreateRequestRequest struct {
	Description string `json:"description" validate:"notblank,max=1000"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateRequestRequest) ToServiceRequest(requesterID int64) *models.CreateRequest {
	return &models.CreateRequest{
		RequesterID: requesterID,
		Description: r.Description,
	}
}
