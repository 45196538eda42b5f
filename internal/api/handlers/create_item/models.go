package create_item

import (
	"github.com/mdemidkin1992/shareit/internal/service/items/models"
)

// CreateItemRequest HTTP request model
type CreateItemRequest struct {
	Name        string `json:"name" validate:"notblank,max=255"`
	Description string `json:"description" validate:"notblank,max=1000"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId" validate:"omitempty,gt=0"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateItemRequest) ToServiceRequest(ownerID int64) *models.CreateItemRequest {
	return &models.CreateItemRequest{
		OwnerID:     ownerID,
		Name:        r.Name,
		Description: r.Description,
		Available:   *r.Available,
		RequestID:   r.RequestID,
	}
}
