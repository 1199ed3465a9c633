package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingGoal tracks progress towards a target amount.
//
// IsCompleted is derived from the amounts and refreshed on every
// mutation, it is never set by clients directly.
type SavingGoal struct {
	DefaultModel
	UserID uuid.UUID `json:"userId"`
	User   User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`

	Name          string          `json:"name" example:"Emergency fund"`
	TargetAmount  decimal.Decimal `json:"targetAmount" gorm:"type:DECIMAL(10,2)" example:"5000"`
	CurrentAmount decimal.Decimal `json:"currentAmount" gorm:"type:DECIMAL(10,2)" example:"1250.50"`
	TargetDate    time.Time       `json:"targetDate" example:"2026-06-30T00:00:00Z"`
	IsCompleted   bool            `json:"isCompleted" example:"false"`
}

func (g *SavingGoal) BeforeCreate(tx *gorm.DB) error {
	err := g.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	g.Name = strings.TrimSpace(g.Name)

	if !g.TargetAmount.IsPositive() {
		return ErrAmountNotPositive
	}

	if g.CurrentAmount.IsNegative() {
		return ErrAmountNotPositive
	}

	g.IsCompleted = g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)

	return nil
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000.
func (g *SavingGoal) AfterFind(_ *gorm.DB) (err error) {
	g.TargetDate = g.TargetDate.In(time.UTC)
	return nil
}

// RefreshCompletion recomputes the completion flag from the amounts and
// persists it when it changed. Update paths call this after applying
// a patch so the stored flag can never disagree with the amounts.
func (g *SavingGoal) RefreshCompletion(db *gorm.DB) error {
	done := g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
	if done == g.IsCompleted {
		return nil
	}

	g.IsCompleted = done
	return db.Model(g).Update("is_completed", done).Error
}
