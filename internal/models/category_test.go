package models_test

import (
	"github.com/stretchr/testify/assert"

	"github.com/spendwise/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryNameTrimmed() {
	user := suite.createTestUser(models.User{})

	category := suite.createTestCategory(models.Category{
		UserID: &user.ID,
		Name:   "  Pet Care ",
		Type:   models.TypeExpense,
	})

	assert.Equal(suite.T(), "Pet Care", category.Name)
}

func (suite *TestSuiteStandard) TestCategoryNameMustNotBeEmpty() {
	user := suite.createTestUser(models.User{})

	for _, name := range []string{"", "   ", "\t\n"} {
		err := models.DB.Create(&models.Category{
			UserID: &user.ID,
			Name:   name,
			Type:   models.TypeExpense,
		}).Error
		assert.ErrorIs(suite.T(), err, models.ErrNameEmpty, "name %q", name)
	}
}

func (suite *TestSuiteStandard) TestCategoryVisibleTo() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})

	suite.Require().Nil(models.SeedDefaultCategories(models.DB))

	_ = suite.createTestCategory(models.Category{
		UserID: &user.ID,
		Name:   "Mine",
		Type:   models.TypeExpense,
	})
	_ = suite.createTestCategory(models.Category{
		UserID: &other.ID,
		Name:   "Theirs",
		Type:   models.TypeExpense,
	})

	var defaults int64
	suite.Require().Nil(models.DB.Model(&models.Category{}).Where("is_default = ?", true).Count(&defaults).Error)

	var visible []models.Category
	suite.Require().Nil(models.DB.Scopes(models.VisibleTo(user.ID)).Find(&visible).Error)

	assert.Len(suite.T(), visible, int(defaults)+1)
	for _, category := range visible {
		if !category.IsDefault {
			assert.Equal(suite.T(), "Mine", category.Name)
		}
	}
}

func (suite *TestSuiteStandard) TestSeedDefaultCategoriesIdempotent() {
	suite.Require().Nil(models.SeedDefaultCategories(models.DB))

	var first int64
	suite.Require().Nil(models.DB.Model(&models.Category{}).Where("is_default = ?", true).Count(&first).Error)
	assert.NotZero(suite.T(), first)

	// Seeding again must not duplicate anything
	suite.Require().Nil(models.SeedDefaultCategories(models.DB))

	var second int64
	suite.Require().Nil(models.DB.Model(&models.Category{}).Where("is_default = ?", true).Count(&second).Error)
	assert.Equal(suite.T(), first, second)
}
