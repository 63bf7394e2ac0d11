// Package analytics turns ledger aggregates into budget alerts, reports,
// forecasts and advice.
//
// The package never reads raw rows itself. Everything goes through a Gateway,
// which makes every operation a function of the gateway's answers and the
// injected Clock.
package analytics

import (
	"context"
	"time"

	"github.com/envelope-zero/insights/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Owner scopes aggregates to a user or a family.
//
// If FamilyID is set, it takes precedence over UserID. If neither
// is set, no scoping is applied.
type Owner struct {
	UserID   uuid.UUID `json:"userId" example:"3a6e1f04-7f13-4b6c-9a68-2f7b0f2a5cc1"`   // ID of the user
	FamilyID uuid.UUID `json:"familyId" example:"00000000-0000-0000-0000-000000000000"` // ID of the family
}

// swagger:enum IncomeType
type IncomeType string

const (
	IncomeSalary     IncomeType = "salary"
	IncomeFreelance  IncomeType = "freelance"
	IncomeInvestment IncomeType = "investment"
	IncomeOther      IncomeType = "other"
)

// IncomeTypes lists all known income types.
var IncomeTypes = []IncomeType{IncomeSalary, IncomeFreelance, IncomeInvestment, IncomeOther}

// Valid reports if the income type is one of the known types.
func (t IncomeType) Valid() bool {
	return slices.Contains(IncomeTypes, t)
}

// LedgerKind selects which ledger a period total is computed for.
type LedgerKind string

const (
	LedgerExpenses LedgerKind = "expenses"
	LedgerIncomes  LedgerKind = "incomes"
)

// CategoryTotal is the sum and count of expenses in one category.
type CategoryTotal struct {
	CategoryID   uuid.UUID
	CategoryName string
	Icon         string
	Color        string
	Total        decimal.Decimal
	Count        int
}

// IncomeTotal is the sum and count of incomes of one type.
type IncomeTotal struct {
	Type  IncomeType
	Total decimal.Decimal
	Count int
}

// IncomePattern describes how regularly an income type recurs.
type IncomePattern struct {
	Type          IncomeType
	AverageAmount decimal.Decimal
	Frequency     float64 // Occurrences per month
	LastAmount    decimal.Decimal
	LastDate      time.Time
}

type Category struct {
	ID    uuid.UUID `json:"id" example:"9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"`
	Name  string    `json:"name" example:"Groceries"`
	Icon  string    `json:"icon" example:"🛒"`
	Color string    `json:"color" example:"#4caf50"`
}

type Expense struct {
	ID            uuid.UUID       `json:"id" example:"c4b5b0d4-5d59-4a43-a7a6-07b0fb0b7b4e"`
	CategoryID    uuid.UUID       `json:"categoryId" example:"9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"`
	SubcategoryID *uuid.UUID      `json:"subcategoryId"`
	Amount        decimal.Decimal `json:"amount" example:"42.17"`
	Date          time.Time       `json:"date" example:"2024-03-14T12:00:00Z"`
	Note          string          `json:"note" example:"Weekly shopping"`
}

// Budget is a snapshot of a budget and its category limits.
type Budget struct {
	ID         uuid.UUID
	Name       string
	Owner      Owner
	TotalLimit decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time // Inclusive, the whole day belongs to the budget
	Categories []CategoryBudget
}

// CategoryBudget is the limit for one category inside a budget.
//
// Spent is a cache of the expense aggregate for the budget period. It is only
// accurate after BudgetMonitor.RefreshSpent.
type CategoryBudget struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	Limit        decimal.Decimal
	Spent        decimal.Decimal
}

// Range returns the half-open range covering all days of the budget.
func (b Budget) Range() types.DateRange {
	return types.DateRange{
		From:  types.StartOfDay(b.StartDate),
		Until: types.StartOfDay(b.EndDate).AddDate(0, 0, 1),
	}
}

// activeAt returns the budgets whose period contains t, keeping their order.
func activeAt(budgets []Budget, t time.Time) []Budget {
	active := make([]Budget, 0, len(budgets))
	for _, b := range budgets {
		if b.Range().Contains(t) {
			active = append(active, b)
		}
	}

	return active
}

// Gateway is the read contract of the data store.
//
// Implementations must return empty slices and zero values, not errors,
// when there is no data for a query.
type Gateway interface {
	// SumExpensesByCategory groups expenses in the range by category
	SumExpensesByCategory(ctx context.Context, r types.DateRange, owner Owner) ([]CategoryTotal, error)

	// SumIncomeByType groups incomes in the range by income type
	SumIncomeByType(ctx context.Context, r types.DateRange, owner Owner) ([]IncomeTotal, error)

	// TotalForPeriod sums all entries of one ledger in the range
	TotalForPeriod(ctx context.Context, kind LedgerKind, r types.DateRange, owner Owner) (decimal.Decimal, error)

	// ActiveBudgets returns all budgets overlapping the range, latest start first
	ActiveBudgets(ctx context.Context, owner Owner, r types.DateRange) ([]Budget, error)

	// Budget returns a single budget or ErrBudgetNotFound
	Budget(ctx context.Context, id uuid.UUID) (Budget, error)

	// StoreSpent overwrites the cached spent amount of a category budget
	StoreSpent(ctx context.Context, categoryBudgetID uuid.UUID, spent decimal.Decimal) error

	// RecurringIncomePatterns describes the income types of the six months before at
	RecurringIncomePatterns(ctx context.Context, owner Owner, at time.Time) ([]IncomePattern, error)

	// Category returns a single category or ErrCategoryNotFound
	Category(ctx context.Context, id uuid.UUID) (Category, error)

	// Expenses lists the expenses of one category in the range, oldest first
	Expenses(ctx context.Context, r types.DateRange, owner Owner, categoryID uuid.UUID) ([]Expense, error)
}
