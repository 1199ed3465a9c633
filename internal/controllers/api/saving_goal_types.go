package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/models"
)

// SavingGoalEditable are the fields of a saving goal that clients set.
// Completion is never one of them, it is derived from the amounts.
type SavingGoalEditable struct {
	Name          string          `json:"name" binding:"required" example:"Emergency fund"`
	TargetAmount  decimal.Decimal `json:"targetAmount" binding:"required" example:"5000"`
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"1250.50"`
	TargetDate    string          `json:"targetDate" binding:"required,dateonly" example:"2026-06-30"`
}

func (editable SavingGoalEditable) model(userID uuid.UUID) models.SavingGoal {
	targetDate, _ := time.Parse(time.DateOnly, editable.TargetDate)

	return models.SavingGoal{
		UserID:        userID,
		Name:          editable.Name,
		TargetAmount:  editable.TargetAmount.Round(2),
		CurrentAmount: editable.CurrentAmount.Round(2),
		TargetDate:    targetDate,
	}
}

// SavingGoalUpdate is the partial-update variant of SavingGoalEditable.
type SavingGoalUpdate struct {
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    string          `json:"targetDate" binding:"omitempty,dateonly"`
}

func (update SavingGoalUpdate) model() models.SavingGoal {
	var targetDate time.Time
	if update.TargetDate != "" {
		targetDate, _ = time.Parse(time.DateOnly, update.TargetDate)
	}

	return models.SavingGoal{
		Name:          update.Name,
		TargetAmount:  update.TargetAmount.Round(2),
		CurrentAmount: update.CurrentAmount.Round(2),
		TargetDate:    targetDate,
	}
}
