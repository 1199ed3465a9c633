package models_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
)

func (suite *TestSuiteStandard) TestBudgetAmountMustBePositive() {
	user := suite.createTestUser(models.User{})

	budget := models.Budget{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(-100),
		Month:  "2025-01",
		Year:   "2025",
	}

	err := models.DB.Create(&budget).Error
	assert.ErrorIs(suite.T(), err, models.ErrAmountNotPositive)
}

func (suite *TestSuiteStandard) TestBudgetPeriodUnique() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})

	_ = suite.createTestBudget(models.Budget{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(1000),
		Month:  "2025-01",
		Year:   "2025",
	})

	// Same period for the same user is rejected with the domain error
	err := models.DB.Create(&models.Budget{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(500),
		Month:  "2025-01",
		Year:   "2025",
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetPeriodTaken)

	// The same period for another user is fine
	err = models.DB.Create(&models.Budget{
		UserID: other.ID,
		Amount: decimal.NewFromFloat(500),
		Month:  "2025-01",
		Year:   "2025",
	}).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestBudgetPeriod() {
	budget := models.Budget{Month: "2025-03", Year: "2025"}

	period, err := budget.Period()
	suite.Require().Nil(err)
	assert.Equal(suite.T(), types.NewMonth(2025, time.March), period)
}

func (suite *TestSuiteStandard) TestBudgetPeriodInvalid() {
	_, err := models.Budget{Month: "13", Year: "2025"}.Period()
	assert.NotNil(suite.T(), err)

	_, err = models.Budget{Month: "2025-03", Year: "twenty"}.Period()
	assert.NotNil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestBudgetSpent() {
	user := suite.createTestUser(models.User{})

	budget := suite.createTestBudget(models.Budget{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(1000),
		Month:  "2025-03",
		Year:   "2025",
	})

	// Two expenses in the period
	_ = suite.createTestTransaction(models.Transaction{
		UserID:   user.ID,
		Amount:   decimal.NewFromFloat(100.50),
		Type:     models.TypeExpense,
		Category: "Food & Dining",
		Date:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(models.Transaction{
		UserID:   user.ID,
		Amount:   decimal.NewFromFloat(49.50),
		Type:     models.TypeExpense,
		Category: "Transportation",
		Date:     time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC),
	})

	// Income in the period and an expense outside of it do not count
	_ = suite.createTestTransaction(models.Transaction{
		UserID:   user.ID,
		Amount:   decimal.NewFromFloat(3000),
		Type:     models.TypeIncome,
		Category: "Salary",
		Date:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(models.Transaction{
		UserID:   user.ID,
		Amount:   decimal.NewFromFloat(10),
		Type:     models.TypeExpense,
		Category: "Food & Dining",
		Date:     time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	spent, err := budget.Spent(models.DB)
	suite.Require().Nil(err)
	assert.True(suite.T(), spent.Equal(decimal.NewFromFloat(150)), "spent is %s, must be 150", spent)
}

func (suite *TestSuiteStandard) TestBudgetSpentEmptyPeriod() {
	user := suite.createTestUser(models.User{})

	budget := suite.createTestBudget(models.Budget{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(1000),
		Month:  "2030-01",
		Year:   "2030",
	})

	spent, err := budget.Spent(models.DB)
	suite.Require().Nil(err)
	assert.True(suite.T(), spent.IsZero(), "spent is %s, must be 0", spent)
}
