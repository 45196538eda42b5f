package add_comment

import (
	"github.com/mdemidkin1992/shareit/internal/service/items/models"
)

// AddCommentRequest HTTP request model
type AddCommentRequest struct {
	Text string `json:"text" validate:"notblank,max=1000"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddCommentRequest) ToServiceRequest(itemID, authorID int64) *models.AddCommentRequest {
	return &models.AddCommentRequest{
		ItemID:   itemID,
		AuthorID: authorID,
		Text:     r.Text,
	}
}
