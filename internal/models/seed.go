package models

import (
	"fmt"

	"gorm.io/gorm"
)

// defaultCategories are seeded for every installation. They are shared
// between all users and cannot be deleted.
var defaultCategories = []Category{
	{Name: "Food & Dining", Type: TypeExpense, IsDefault: true},
	{Name: "Transportation", Type: TypeExpense, IsDefault: true},
	{Name: "Housing", Type: TypeExpense, IsDefault: true},
	{Name: "Utilities", Type: TypeExpense, IsDefault: true},
	{Name: "Entertainment", Type: TypeExpense, IsDefault: true},
	{Name: "Healthcare", Type: TypeExpense, IsDefault: true},
	{Name: "Miscellaneous", Type: TypeExpense, IsDefault: true},
	{Name: "Salary", Type: TypeIncome, IsDefault: true},
	{Name: "Freelance", Type: TypeIncome, IsDefault: true},
	{Name: "Investments", Type: TypeIncome, IsDefault: true},
	{Name: "Other Income", Type: TypeIncome, IsDefault: true},
}

// SeedDefaultCategories inserts all default categories that do not
// exist yet. It is idempotent and safe to run on every startup.
func SeedDefaultCategories(db *gorm.DB) error {
	var existing []Category
	err := db.Where(&Category{IsDefault: true}).Find(&existing).Error
	if err != nil {
		return fmt.Errorf("reading default categories failed: %w", err)
	}

	names := make(map[string]bool, len(existing))
	for _, category := range existing {
		names[category.Name] = true
	}

	for _, category := range defaultCategories {
		if names[category.Name] {
			continue
		}

		err := db.Create(&category).Error
		if err != nil {
			return fmt.Errorf("seeding default category %q failed: %w", category.Name, err)
		}
	}

	return nil
}
