package update_item

import (
	"github.com/mdemidkin1992/shareit/internal/service/items/models"
)

// UpdateItemRequest HTTP request model, отсутствующие поля не меняются
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,notblank,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,notblank,max=1000"`
	Available   *bool   `json:"available,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateItemRequest) ToServiceRequest(itemID, userID int64) *models.UpdateItemRequest {
	return &models.UpdateItemRequest{
		ItemID:      itemID,
		UserID:      userID,
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}
