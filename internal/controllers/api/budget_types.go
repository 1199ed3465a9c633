package api

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/models"
)

// BudgetEditable are the fields of a budget that clients set.
type BudgetEditable struct {
	Amount decimal.Decimal `json:"amount" binding:"required" example:"1500"`
	Month  string          `json:"month" binding:"required,month" example:"2025-01"`
	Year   string          `json:"year" binding:"required,year" example:"2025"`
}

func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID: userID,
		Amount: editable.Amount.Round(2),
		Month:  editable.Month,
		Year:   editable.Year,
	}
}

// BudgetUpdate is the partial-update variant of BudgetEditable.
type BudgetUpdate struct {
	Amount decimal.Decimal `json:"amount"`
	Month  string          `json:"month" binding:"omitempty,month"`
	Year   string          `json:"year" binding:"omitempty,year"`
}

func (update BudgetUpdate) model() models.Budget {
	return models.Budget{
		Amount: update.Amount.Round(2),
		Month:  update.Month,
		Year:   update.Year,
	}
}

// BudgetQueryFilter are the query string parameters for the budget list.
// The period filter only applies when both parameters are set.
type BudgetQueryFilter struct {
	Month string `form:"month" binding:"omitempty,month"`
	Year  string `form:"year" binding:"omitempty,year"`
}

// Budget is the API representation of a budget, the limit plus the
// rollup computed from the ledger.
type Budget struct {
	models.Budget
	Spent     decimal.Decimal `json:"spent" example:"423.12"`
	Remaining decimal.Decimal `json:"remaining" example:"1076.88"`
}

// newBudget computes the rollup for one budget row.
func newBudget(db *gorm.DB, model models.Budget) (Budget, error) {
	spent, err := model.Spent(db)
	if err != nil {
		return Budget{}, err
	}

	return Budget{
		Budget:    model,
		Spent:     spent,
		Remaining: model.Amount.Sub(spent),
	}, nil
}
