package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the direction of a transaction relative to the
// user's wealth. The amount itself is always positive.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction represents a single income or expense entry in the ledger.
type Transaction struct {
	DefaultModel
	UserID uuid.UUID `json:"userId"`
	User   User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`

	// The maximum value is "99999999.99", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(10,2)" example:"14.03" minimum:"0.01" multipleOf:"0.01"`

	Type        TransactionType `json:"type" example:"expense"`
	Category    string          `json:"category" example:"Food & Dining"`
	Description string          `json:"description,omitempty" example:"Lunch"`
	Date        time.Time       `json:"date" example:"2025-03-01T00:00:00Z"` // Date of the transaction. Time is currently only used for sorting
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) (err error) {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeCreate defaults the date to the current time and verifies the
// amount invariant. The sign is carried by Type, not by Amount.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	err := t.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}
