package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAmountNotPositive        = errors.New("the amount must be larger than zero")
	ErrNameEmpty                = errors.New("the name must not be empty")
	ErrBudgetPeriodTaken        = errors.New("a budget already exists for this month")
	ErrDefaultCategoryImmutable = errors.New("default categories cannot be deleted")
	ErrEmailTaken               = errors.New("an account with this email already exists")
)
