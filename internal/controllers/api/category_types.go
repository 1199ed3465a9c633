package api

import (
	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/models"
)

// CategoryEditable are the fields of a category that clients set.
// User-created categories are never default ones.
type CategoryEditable struct {
	Name string                 `json:"name" binding:"required" example:"Subscriptions"`
	Type models.TransactionType `json:"type" binding:"required,oneof=income expense" example:"expense"`
}

func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	return models.Category{
		UserID: &userID,
		Name:   editable.Name,
		Type:   editable.Type,
	}
}
