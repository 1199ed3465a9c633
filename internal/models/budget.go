package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/types"
)

// Budget is a spending limit for one user and one calendar month.
//
// Month is a "YYYY-MM" string and Year a "YYYY" string. Both are stored
// and validated independently; the unique index guards the combination.
type Budget struct {
	DefaultModel
	UserID uuid.UUID `json:"userId" gorm:"uniqueIndex:budget_user_period"`
	User   User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`

	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(10,2)" example:"1500"`
	Month  string          `json:"month" gorm:"uniqueIndex:budget_user_period" example:"2025-01"`
	Year   string          `json:"year" gorm:"uniqueIndex:budget_user_period" example:"2025"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	err := b.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	if !b.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}

// Period returns the calendar month the budget limits. The year comes
// from the Year field, the month from the month component of Month.
func (b Budget) Period() (types.Month, error) {
	month, err := types.ParseMonth(b.Month)
	if err != nil {
		return types.Month{}, err
	}

	year, err := strconv.Atoi(b.Year)
	if err != nil {
		return types.Month{}, err
	}

	return types.NewMonth(year, time.Time(month).Month()), nil
}

// Spent returns the sum of all expense transactions of the budget's
// user within the budget's period.
//
// It is recomputed from the ledger on every call, transaction mutations
// therefore never need to invalidate anything.
func (b Budget) Spent(db *gorm.DB) (decimal.Decimal, error) {
	period, err := b.Period()
	if err != nil {
		return decimal.Zero, err
	}

	var spent decimal.NullDecimal
	err = db.Table("transactions").
		Where("user_id = ?", b.UserID).
		Where("type = ?", TypeExpense).
		Where("date >= date(?)", period.First()).
		Where("date < date(?)", period.Next()).
		Select("SUM(amount)").
		Row().
		Scan(&spent)
	if err != nil {
		// Row scans bypass the error translation callbacks
		log.Error().Msgf("%T: %v", err, err.Error())
		return decimal.Zero, ErrGeneral
	}

	return spent.Decimal, nil
}
