package v1

import (
	"errors"
	"net/http"

	"github.com/envelope-zero/insights/internal/analytics"
	"github.com/envelope-zero/insights/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, analytics.ErrNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errExpenseBlocked = errors.New("the expense was not stored because it exceeds the budget limit of its category by more than 10%")
	errMonthFormat    = errors.New("the month must be in YYYY-MM format")
	errYearFormat     = errors.New("the year must be a number between 1 and 9999")
	errDateFormat     = errors.New("dates must be in YYYY-MM-DD format")
)
