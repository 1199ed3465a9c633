package models_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/spendwise/backend/internal/models"
)

func (suite *TestSuiteStandard) TestSavingGoalTargetMustBePositive() {
	user := suite.createTestUser(models.User{})

	err := models.DB.Create(&models.SavingGoal{
		UserID:       user.ID,
		Name:         "Vacation",
		TargetAmount: decimal.Zero,
		TargetDate:   time.Now().AddDate(1, 0, 0),
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAmountNotPositive)

	err = models.DB.Create(&models.SavingGoal{
		UserID:        user.ID,
		Name:          "Vacation",
		TargetAmount:  decimal.NewFromFloat(1000),
		CurrentAmount: decimal.NewFromFloat(-1),
		TargetDate:    time.Now().AddDate(1, 0, 0),
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAmountNotPositive)
}

func (suite *TestSuiteStandard) TestSavingGoalCompletionDerivedOnCreate() {
	user := suite.createTestUser(models.User{})

	open := suite.createTestSavingGoal(models.SavingGoal{
		UserID:        user.ID,
		Name:          "Emergency fund",
		TargetAmount:  decimal.NewFromFloat(5000),
		CurrentAmount: decimal.NewFromFloat(100),
		TargetDate:    time.Now().AddDate(1, 0, 0),
	})
	assert.False(suite.T(), open.IsCompleted)

	// Setting the flag on create is ignored, only the amounts count
	done := suite.createTestSavingGoal(models.SavingGoal{
		UserID:        user.ID,
		Name:          "New phone",
		TargetAmount:  decimal.NewFromFloat(500),
		CurrentAmount: decimal.NewFromFloat(500),
		IsCompleted:   false,
		TargetDate:    time.Now().AddDate(0, 6, 0),
	})
	assert.True(suite.T(), done.IsCompleted)
}

func (suite *TestSuiteStandard) TestSavingGoalRefreshCompletion() {
	user := suite.createTestUser(models.User{})

	goal := suite.createTestSavingGoal(models.SavingGoal{
		UserID:        user.ID,
		Name:          "Emergency fund",
		TargetAmount:  decimal.NewFromFloat(1000),
		CurrentAmount: decimal.NewFromFloat(999),
		TargetDate:    time.Now().AddDate(1, 0, 0),
	})
	suite.Require().False(goal.IsCompleted)

	// Crossing the target flips the flag and persists it
	goal.CurrentAmount = decimal.NewFromFloat(1000)
	suite.Require().Nil(goal.RefreshCompletion(models.DB))
	assert.True(suite.T(), goal.IsCompleted)

	var reloaded models.SavingGoal
	suite.Require().Nil(models.DB.First(&reloaded, goal.ID).Error)
	assert.True(suite.T(), reloaded.IsCompleted)

	// Raising the target flips it back
	goal.TargetAmount = decimal.NewFromFloat(2000)
	suite.Require().Nil(goal.RefreshCompletion(models.DB))
	assert.False(suite.T(), goal.IsCompleted)

	suite.Require().Nil(models.DB.First(&reloaded, goal.ID).Error)
	assert.False(suite.T(), reloaded.IsCompleted)
}
