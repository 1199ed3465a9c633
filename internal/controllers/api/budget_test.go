package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/spendwise/backend/internal/controllers/api"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/test"
)

type budgetResponse struct {
	Message string
	Data    api.Budget
	Errors  []api.FieldError
}

type budgetListResponse struct {
	Message string
	Data    []api.Budget
}

func (suite *TestSuiteStandard) TestCreateBudget() {
	_, headers := suite.createTestUser()

	recorder := test.Request(suite.T(), http.MethodPost, "/api/budgets",
		`{ "amount": "1500", "month": "2025-03", "year": "2025" }`, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response budgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Budget created successfully", response.Message)
	assert.Equal(suite.T(), "2025-03", response.Data.Month)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(1500)))
}

func (suite *TestSuiteStandard) TestCreateBudgetPeriodConflict() {
	_, headers := suite.createTestUser()

	recorder := test.Request(suite.T(), http.MethodPost, "/api/budgets",
		`{ "amount": "1500", "month": "2025-03", "year": "2025" }`, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodPost, "/api/budgets",
		`{ "amount": "2000", "month": "2025-03", "year": "2025" }`, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response budgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "a budget already exists for this month", response.Message)

	// The same period is free for everybody else
	_, otherHeaders := suite.createTestUser()
	recorder = test.Request(suite.T(), http.MethodPost, "/api/budgets",
		`{ "amount": "2000", "month": "2025-03", "year": "2025" }`, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCreateBudgetInvalid() {
	_, headers := suite.createTestUser()

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"negative amount", `{ "amount": "-100", "month": "2025-03", "year": "2025" }`},
		{"bad month", `{ "amount": "100", "month": "March", "year": "2025" }`},
		{"bad year", `{ "amount": "100", "month": "2025-03", "year": "25" }`},
		{"missing month", `{ "amount": "100", "year": "2025" }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "/api/budgets", tt.body, headers)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGetBudgetsRollup() {
	user, headers := suite.createTestUser()

	_ = suite.createTestBudget(models.Budget{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(1000),
		Month:  "2025-03",
		Year:   "2025",
	})

	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(150),
		Date:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(50),
		Type:   models.TypeIncome,
		Date:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/api/budgets", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response budgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)

	assert.True(suite.T(), response.Data[0].Spent.Equal(decimal.NewFromFloat(150)), "spent is %s", response.Data[0].Spent)
	assert.True(suite.T(), response.Data[0].Remaining.Equal(decimal.NewFromFloat(850)), "remaining is %s", response.Data[0].Remaining)
}

func (suite *TestSuiteStandard) TestGetBudgetsFilter() {
	user, headers := suite.createTestUser()

	march := suite.createTestBudget(models.Budget{UserID: user.ID, Month: "2025-03", Year: "2025"})
	_ = suite.createTestBudget(models.Budget{UserID: user.ID, Month: "2025-04", Year: "2025"})

	recorder := test.Request(suite.T(), http.MethodGet, "/api/budgets?month=2025-03&year=2025", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response budgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	assert.Equal(suite.T(), march.ID, response.Data[0].ID)

	// Without the filter both budgets come back
	recorder = test.Request(suite.T(), http.MethodGet, "/api/budgets", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestGetBudget() {
	user, headers := suite.createTestUser()
	budget := suite.createTestBudget(models.Budget{UserID: user.ID, Month: "2025-03", Year: "2025"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/api/budgets/%s", budget.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response budgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), budget.ID, response.Data.ID)
	assert.True(suite.T(), response.Data.Remaining.Equal(budget.Amount))
}

func (suite *TestSuiteStandard) TestGetBudgetOfOtherUser() {
	_, headers := suite.createTestUser()
	other, _ := suite.createTestUser()
	budget := suite.createTestBudget(models.Budget{UserID: other.ID, Month: "2025-03", Year: "2025"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/api/budgets/%s", budget.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateBudget() {
	user, headers := suite.createTestUser()
	budget := suite.createTestBudget(models.Budget{UserID: user.ID, Month: "2025-03", Year: "2025"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/api/budgets/%s", budget.ID),
		`{ "amount": "1234.56" }`, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response budgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(1234.56)))
	assert.Equal(suite.T(), "2025-03", response.Data.Month)
}

func (suite *TestSuiteStandard) TestUpdateBudgetPeriodConflict() {
	user, headers := suite.createTestUser()
	_ = suite.createTestBudget(models.Budget{UserID: user.ID, Month: "2025-03", Year: "2025"})
	budget := suite.createTestBudget(models.Budget{UserID: user.ID, Month: "2025-04", Year: "2025"})

	// Moving a budget onto an occupied month trips the same constraint
	// as creating one
	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/api/budgets/%s", budget.ID),
		`{ "month": "2025-03" }`, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response budgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "a budget already exists for this month", response.Message)
}

func (suite *TestSuiteStandard) TestDeleteBudget() {
	user, headers := suite.createTestUser()
	budget := suite.createTestBudget(models.Budget{UserID: user.ID, Month: "2025-03", Year: "2025"})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/api/budgets/%s", budget.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/api/budgets/%s", budget.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
