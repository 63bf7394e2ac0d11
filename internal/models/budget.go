package models

import (
	"strings"
	"time"

	"github.com/envelope-zero/insights/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a spending plan for a period, with optional limits per category.
type Budget struct {
	DefaultModel
	Owned
	Name       string           `json:"name" example:"March household"`                  // Name of the budget
	TotalLimit decimal.Decimal  `json:"totalLimit" gorm:"type:DECIMAL(20,8)" example:"2500"` // Limit for all expenses in the period
	StartDate  time.Time        `json:"startDate" example:"2024-03-01T00:00:00Z"`         // First day of the budget
	EndDate    time.Time        `json:"endDate" example:"2024-03-31T00:00:00Z"`           // Last day of the budget, inclusive
	Categories []CategoryBudget `json:"categories"`                                       // Limits for single categories
}

// CategoryBudget limits the spending for one category inside a budget.
type CategoryBudget struct {
	DefaultModel
	BudgetID   uuid.UUID       `json:"budgetId" gorm:"uniqueIndex:category_budget_unique" example:"0fa9c6a4-5ff6-4a3e-8f15-60a3c7cf1f3e"`   // ID of the budget
	CategoryID uuid.UUID       `json:"categoryId" gorm:"uniqueIndex:category_budget_unique" example:"9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"` // ID of the category
	Category   Category        `json:"-"`
	Limit      decimal.Decimal `json:"limit" gorm:"column:spending_limit;type:DECIMAL(20,8)" example:"400"` // Limit for the category
	Spent      decimal.Decimal `json:"spent" gorm:"type:DECIMAL(20,8)" example:"123.45"`                    // Amount spent in the category during the budget period
}

// BeforeSave
//   - trims whitespace from the name
//   - truncates start and end date to the start of the day in UTC
//   - verifies the limits and the dates
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Owned.normalize()

	b.StartDate = types.StartOfDay(b.StartDate.In(time.UTC))
	b.EndDate = types.StartOfDay(b.EndDate.In(time.UTC))

	if !b.TotalLimit.IsPositive() {
		return ErrBudgetLimitNotPositive
	}

	if !b.EndDate.After(b.StartDate) {
		return ErrBudgetDates
	}

	sum := decimal.Zero
	seen := make(map[uuid.UUID]bool, len(b.Categories))
	for _, c := range b.Categories {
		if !c.Limit.IsPositive() {
			return ErrBudgetLimitNotPositive
		}

		if seen[c.CategoryID] {
			return ErrCategoryBudgetNotUnique
		}
		seen[c.CategoryID] = true

		sum = sum.Add(c.Limit)
	}

	if sum.GreaterThan(b.TotalLimit) {
		return ErrCategoryLimitsExceedTotal
	}

	return nil
}

// AfterFind enforces dates to be in UTC.
func (b *Budget) AfterFind(tx *gorm.DB) error {
	err := b.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	b.StartDate = b.StartDate.In(time.UTC)
	b.EndDate = b.EndDate.In(time.UTC)
	return nil
}

func (c *CategoryBudget) BeforeSave(_ *gorm.DB) error {
	if !c.Limit.IsPositive() {
		return ErrBudgetLimitNotPositive
	}

	if c.Spent.IsNegative() {
		c.Spent = decimal.Zero
	}

	return nil
}
