package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrAmountNotPositive         = errors.New("amounts must be larger than zero")
	ErrBudgetDates               = errors.New("the start date of a budget must be before its end date")
	ErrBudgetLimitNotPositive    = errors.New("budget limits must be larger than zero")
	ErrCategoryLimitsExceedTotal = errors.New("the sum of all category limits must not exceed the total limit of the budget")
	ErrCategoryBudgetNotUnique   = errors.New("a category can only be limited once per budget")
	ErrIncomeTypeInvalid         = errors.New("the income type must be one of salary, freelance, investment, other")
	ErrCategoryNameNotUnique     = errors.New("the category name must be unique per family")
)
