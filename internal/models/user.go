package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is an account holder. Every other resource is owned by exactly
// one user, except for default categories which have no owner.
type User struct {
	DefaultModel
	Email    string `json:"email" gorm:"uniqueIndex" example:"jane@example.com"`
	Name     string `json:"name" example:"Jane Doe"`
	Password string `json:"-"` // bcrypt hash, never serialized
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)

	return nil
}
