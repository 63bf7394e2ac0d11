package analytics

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("there is no")

var (
	ErrCategoryNotFound = fmt.Errorf("%w category matching your query", ErrNotFound)
	ErrBudgetNotFound   = fmt.Errorf("%w budget matching your query", ErrNotFound)
)

var (
	ErrInvalidHorizon = fmt.Errorf("the forecast horizon must be between %d and %d months", minHorizon, maxHorizon)
	ErrInvalidAmount  = errors.New("the amount must be positive")
)

var ErrInvalidRange = errors.New("the end of the date range must not be before its start")
