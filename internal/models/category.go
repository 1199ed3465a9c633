package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category names transactions. Default categories have no owner and are
// visible to every user; user-created categories are private.
type Category struct {
	DefaultModel
	UserID *uuid.UUID `json:"userId"` // nil for default categories
	User   *User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`

	Name      string          `json:"name" example:"Food & Dining"`
	Type      TransactionType `json:"type" example:"expense"`
	IsDefault bool            `json:"isDefault" example:"false"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	// "required" binding lets whitespace-only names through
	if c.Name == "" {
		return ErrNameEmpty
	}

	return nil
}

// VisibleTo scopes a query to the categories a user may see: their own
// and the shared defaults.
func VisibleTo(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ? OR is_default = ?", userID, true)
	}
}
