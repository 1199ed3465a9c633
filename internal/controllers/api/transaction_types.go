package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/models"
)

// TransactionEditable are the fields of a transaction that clients set.
type TransactionEditable struct {
	Amount      decimal.Decimal        `json:"amount" binding:"required" example:"14.03"`
	Type        models.TransactionType `json:"type" binding:"required,oneof=income expense" example:"expense"`
	Category    string                 `json:"category" binding:"required" example:"Food & Dining"`
	Description string                 `json:"description" example:"Lunch"`
	Date        string                 `json:"date" binding:"omitempty,dateonly" example:"2025-03-01"` // Defaults to today
}

// model returns the database resource for the API representation of the
// editable fields. Amounts are persisted with two decimal places, the
// half-away-from-zero rounding matches what users expect from money.
func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	var date time.Time
	if editable.Date != "" {
		date, _ = time.Parse(time.DateOnly, editable.Date)
	}

	return models.Transaction{
		UserID:      userID,
		Amount:      editable.Amount.Round(2),
		Type:        editable.Type,
		Category:    editable.Category,
		Description: editable.Description,
		Date:        date,
	}
}

// TransactionUpdate is the partial-update variant of TransactionEditable.
// Every field is optional, only fields present in the body are applied.
type TransactionUpdate struct {
	Amount      decimal.Decimal        `json:"amount"`
	Type        models.TransactionType `json:"type" binding:"omitempty,oneof=income expense"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	Date        string                 `json:"date" binding:"omitempty,dateonly"`
}

func (update TransactionUpdate) model() models.Transaction {
	var date time.Time
	if update.Date != "" {
		date, _ = time.Parse(time.DateOnly, update.Date)
	}

	return models.Transaction{
		Amount:      update.Amount.Round(2),
		Type:        update.Type,
		Category:    update.Category,
		Description: update.Description,
		Date:        date,
	}
}
