package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/types"
)

// OverviewStats are the aggregate totals for a date range.
type OverviewStats struct {
	Income    decimal.Decimal `json:"income" example:"3200"`
	Expenses  decimal.Decimal `json:"expenses" example:"1845.23"`
	NetIncome decimal.Decimal `json:"netIncome" example:"1354.77"`
}

// CategorySpend is the expense total for one category.
type CategorySpend struct {
	Category string          `json:"category" example:"Food & Dining"`
	Total    decimal.Decimal `json:"total" example:"423.12"`
}

// MonthlyTrend is the income and expense total for one calendar month.
type MonthlyTrend struct {
	Month    types.Month     `json:"month" example:"2025-03"`
	Income   decimal.Decimal `json:"income" example:"3200"`
	Expenses decimal.Decimal `json:"expenses" example:"1845.23"`
}

// rangeQuery scopes a transaction query to one user and an inclusive
// date range.
func rangeQuery(db *gorm.DB, userID uuid.UUID, from, until time.Time) *gorm.DB {
	return db.Table("transactions").
		Where("user_id = ?", userID).
		Where("date >= date(?)", from).
		Where("date < date(?)", until.AddDate(0, 0, 1))
}

// transactionsSum returns the sum of all amounts of one transaction
// type for a user within an inclusive date range. An empty range sums
// to zero, not to an error.
func transactionsSum(db *gorm.DB, userID uuid.UUID, t TransactionType, from, until time.Time) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := rangeQuery(db, userID, from, until).
		Where("type = ?", t).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		// Row scans bypass the error translation callbacks
		log.Error().Msgf("%T: %v", err, err.Error())
		return decimal.Zero, fmt.Errorf("summing %s transactions failed: %w", t, ErrGeneral)
	}

	return sum.Decimal, nil
}

// Overview computes the income, expense and net totals for a user
// within an inclusive date range.
func Overview(db *gorm.DB, userID uuid.UUID, from, until time.Time) (OverviewStats, error) {
	income, err := transactionsSum(db, userID, TypeIncome, from, until)
	if err != nil {
		return OverviewStats{}, err
	}

	expenses, err := transactionsSum(db, userID, TypeExpense, from, until)
	if err != nil {
		return OverviewStats{}, err
	}

	return OverviewStats{
		Income:    income,
		Expenses:  expenses,
		NetIncome: income.Sub(expenses),
	}, nil
}

// CategoryBreakdown groups the expense transactions of a user within an
// inclusive date range by category. Categories without spend do not
// appear in the result.
func CategoryBreakdown(db *gorm.DB, userID uuid.UUID, from, until time.Time) ([]CategorySpend, error) {
	breakdown := make([]CategorySpend, 0)

	err := rangeQuery(db, userID, from, until).
		Where("type = ?", TypeExpense).
		Select("category, SUM(amount) AS total").
		Group("category").
		Scan(&breakdown).Error
	if err != nil {
		return nil, fmt.Errorf("grouping expenses by category failed: %w", err)
	}

	return breakdown, nil
}

// monthTypeSum is one aggregation bucket as it comes out of the database.
type monthTypeSum struct {
	Month string
	Type  TransactionType
	Total decimal.Decimal
}

// MonthlyTrends buckets all transactions of a user within an inclusive
// date range by calendar month, with separate income and expense totals
// per month. A type with no transactions in a month sums to zero.
// Months are ordered ascending.
func MonthlyTrends(db *gorm.DB, userID uuid.UUID, from, until time.Time) ([]MonthlyTrend, error) {
	var sums []monthTypeSum

	err := rangeQuery(db, userID, from, until).
		Select("strftime('%Y-%m', date) AS month, type, SUM(amount) AS total").
		Group("strftime('%Y-%m', date), type").
		Order("strftime('%Y-%m', date) ASC").
		Scan(&sums).Error
	if err != nil {
		return nil, fmt.Errorf("bucketing transactions by month failed: %w", err)
	}

	trends := make([]MonthlyTrend, 0)
	for _, sum := range sums {
		month, err := types.ParseMonth(sum.Month)
		if err != nil {
			return nil, err
		}

		if len(trends) == 0 || !trends[len(trends)-1].Month.Equal(month) {
			trends = append(trends, MonthlyTrend{Month: month})
		}

		if sum.Type == TypeIncome {
			trends[len(trends)-1].Income = sum.Total
		} else {
			trends[len(trends)-1].Expenses = sum.Total
		}
	}

	return trends, nil
}
