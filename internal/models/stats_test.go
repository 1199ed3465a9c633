package models_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
)

// seedStatsTransactions creates a fixed set of transactions for the
// aggregation tests: two months of income and expenses plus one
// transaction outside of the queried range.
func (suite *TestSuiteStandard) seedStatsTransactions(user models.User) {
	for _, transaction := range []models.Transaction{
		{Amount: decimal.NewFromFloat(3000), Type: models.TypeIncome, Category: "Salary", Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromFloat(120.50), Type: models.TypeExpense, Category: "Food & Dining", Date: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromFloat(79.50), Type: models.TypeExpense, Category: "Food & Dining", Date: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromFloat(50), Type: models.TypeExpense, Category: "Transportation", Date: time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromFloat(3000), Type: models.TypeIncome, Category: "Salary", Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromFloat(999), Type: models.TypeExpense, Category: "Shopping", Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	} {
		transaction.UserID = user.ID
		_ = suite.createTestTransaction(transaction)
	}
}

func (suite *TestSuiteStandard) TestOverview() {
	user := suite.createTestUser(models.User{})
	suite.seedStatsTransactions(user)

	stats, err := models.Overview(models.DB, user.ID,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC))
	suite.Require().Nil(err)

	assert.True(suite.T(), stats.Income.Equal(decimal.NewFromFloat(6000)), "income is %s", stats.Income)
	assert.True(suite.T(), stats.Expenses.Equal(decimal.NewFromFloat(250)), "expenses are %s", stats.Expenses)
	assert.True(suite.T(), stats.NetIncome.Equal(decimal.NewFromFloat(5750)), "net income is %s", stats.NetIncome)
}

func (suite *TestSuiteStandard) TestOverviewEmptyRange() {
	user := suite.createTestUser(models.User{})
	suite.seedStatsTransactions(user)

	stats, err := models.Overview(models.DB, user.ID,
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC))
	suite.Require().Nil(err)

	assert.True(suite.T(), stats.Income.IsZero())
	assert.True(suite.T(), stats.Expenses.IsZero())
	assert.True(suite.T(), stats.NetIncome.IsZero())
}

func (suite *TestSuiteStandard) TestOverviewScopedToUser() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})
	suite.seedStatsTransactions(other)

	stats, err := models.Overview(models.DB, user.ID,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
	suite.Require().Nil(err)

	assert.True(suite.T(), stats.Income.IsZero())
	assert.True(suite.T(), stats.Expenses.IsZero())
}

func (suite *TestSuiteStandard) TestCategoryBreakdown() {
	user := suite.createTestUser(models.User{})
	suite.seedStatsTransactions(user)

	breakdown, err := models.CategoryBreakdown(models.DB, user.ID,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC))
	suite.Require().Nil(err)
	suite.Require().Len(breakdown, 2)

	totals := make(map[string]decimal.Decimal)
	for _, spend := range breakdown {
		totals[spend.Category] = spend.Total
	}

	assert.True(suite.T(), totals["Food & Dining"].Equal(decimal.NewFromFloat(200)), "food total is %s", totals["Food & Dining"])
	assert.True(suite.T(), totals["Transportation"].Equal(decimal.NewFromFloat(50)), "transport total is %s", totals["Transportation"])

	// Income categories never show up in the breakdown
	_, ok := totals["Salary"]
	assert.False(suite.T(), ok)
}

func (suite *TestSuiteStandard) TestCategoryBreakdownEmptyRange() {
	user := suite.createTestUser(models.User{})

	breakdown, err := models.CategoryBreakdown(models.DB, user.ID,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
	suite.Require().Nil(err)

	assert.NotNil(suite.T(), breakdown)
	assert.Len(suite.T(), breakdown, 0)
}

func (suite *TestSuiteStandard) TestMonthlyTrends() {
	user := suite.createTestUser(models.User{})
	suite.seedStatsTransactions(user)

	trends, err := models.MonthlyTrends(models.DB, user.ID,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	suite.Require().Nil(err)
	suite.Require().Len(trends, 3)

	// Ordered ascending, months without transactions are skipped
	assert.Equal(suite.T(), types.NewMonth(2025, time.January), trends[0].Month)
	assert.Equal(suite.T(), types.NewMonth(2025, time.February), trends[1].Month)
	assert.Equal(suite.T(), types.NewMonth(2025, time.June), trends[2].Month)

	assert.True(suite.T(), trends[0].Income.Equal(decimal.NewFromFloat(3000)))
	assert.True(suite.T(), trends[0].Expenses.Equal(decimal.NewFromFloat(200)))

	// June only has an expense, its income must be zero
	assert.True(suite.T(), trends[2].Income.IsZero())
	assert.True(suite.T(), trends[2].Expenses.Equal(decimal.NewFromFloat(999)))
}
