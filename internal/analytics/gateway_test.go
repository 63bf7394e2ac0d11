package analytics_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/envelope-zero/insights/internal/analytics"
	"github.com/envelope-zero/insights/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// now is the point in time all tests run at. It is a Thursday.
var now = time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)

var (
	groceries = analytics.Category{ID: uuid.MustParse("9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"), Name: "Groceries", Icon: "🛒", Color: "#4caf50"}
	dining    = analytics.Category{ID: uuid.MustParse("4e8f3c51-0f4b-4c3a-bb1a-6a0d2cbe5f10"), Name: "Dining", Icon: "🍽", Color: "#ff9800"}
	rent      = analytics.Category{ID: uuid.MustParse("d2f8a6b1-7c5e-4f0a-9e3b-1b2c3d4e5f60"), Name: "Rent", Icon: "🏠", Color: "#3f51b5"}
	transport = analytics.Category{ID: uuid.MustParse("0c1d2e3f-4a5b-4c6d-8e7f-9a0b1c2d3e4f"), Name: "Transport", Icon: "🚌", Color: "#009688"}
)

var owner = analytics.Owner{UserID: uuid.MustParse("3a6e1f04-7f13-4b6c-9a68-2f7b0f2a5cc1")}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func fixedClock(t time.Time) analytics.Clock {
	return analytics.ClockFunc(func() time.Time {
		return t
	})
}

type fakeIncome struct {
	Type   analytics.IncomeType
	Amount decimal.Decimal
	Date   time.Time
}

// fakeGateway computes all aggregates from in-memory ledgers.
type fakeGateway struct {
	mu         sync.Mutex
	categories []analytics.Category
	expenses   []analytics.Expense
	incomes    []fakeIncome
	budgets    []analytics.Budget
	stored     map[uuid.UUID]decimal.Decimal
	err        error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		categories: []analytics.Category{groceries, dining, rent, transport},
		stored:     make(map[uuid.UUID]decimal.Decimal),
	}
}

func (g *fakeGateway) expense(category analytics.Category, amount string, date time.Time) *fakeGateway {
	g.expenses = append(g.expenses, analytics.Expense{
		ID:         uuid.New(),
		CategoryID: category.ID,
		Amount:     decimal.RequireFromString(amount),
		Date:       date,
	})
	return g
}

func (g *fakeGateway) income(t analytics.IncomeType, amount string, date time.Time) *fakeGateway {
	g.incomes = append(g.incomes, fakeIncome{Type: t, Amount: decimal.RequireFromString(amount), Date: date})
	return g
}

func (g *fakeGateway) budget(b analytics.Budget) *fakeGateway {
	g.budgets = append(g.budgets, b)
	return g
}

func (g *fakeGateway) spent(categoryBudgetID uuid.UUID) (decimal.Decimal, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.stored[categoryBudgetID]
	return s, ok
}

func (g *fakeGateway) SumExpensesByCategory(_ context.Context, r types.DateRange, _ analytics.Owner) ([]analytics.CategoryTotal, error) {
	if g.err != nil {
		return nil, g.err
	}

	totals := []analytics.CategoryTotal{}
	index := make(map[uuid.UUID]int)
	for _, e := range g.expenses {
		if !r.Contains(e.Date) {
			continue
		}

		i, ok := index[e.CategoryID]
		if !ok {
			c, _ := g.Category(context.Background(), e.CategoryID)
			i = len(totals)
			index[e.CategoryID] = i
			totals = append(totals, analytics.CategoryTotal{
				CategoryID:   c.ID,
				CategoryName: c.Name,
				Icon:         c.Icon,
				Color:        c.Color,
			})
		}

		totals[i].Total = totals[i].Total.Add(e.Amount)
		totals[i].Count++
	}

	return totals, nil
}

func (g *fakeGateway) SumIncomeByType(_ context.Context, r types.DateRange, _ analytics.Owner) ([]analytics.IncomeTotal, error) {
	if g.err != nil {
		return nil, g.err
	}

	totals := []analytics.IncomeTotal{}
	index := make(map[analytics.IncomeType]int)
	for _, i := range g.incomes {
		if !r.Contains(i.Date) {
			continue
		}

		n, ok := index[i.Type]
		if !ok {
			n = len(totals)
			index[i.Type] = n
			totals = append(totals, analytics.IncomeTotal{Type: i.Type})
		}

		totals[n].Total = totals[n].Total.Add(i.Amount)
		totals[n].Count++
	}

	return totals, nil
}

func (g *fakeGateway) TotalForPeriod(_ context.Context, kind analytics.LedgerKind, r types.DateRange, _ analytics.Owner) (decimal.Decimal, error) {
	if g.err != nil {
		return decimal.Zero, g.err
	}

	total := decimal.Zero
	if kind == analytics.LedgerIncomes {
		for _, i := range g.incomes {
			if r.Contains(i.Date) {
				total = total.Add(i.Amount)
			}
		}
		return total, nil
	}

	for _, e := range g.expenses {
		if r.Contains(e.Date) {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

func (g *fakeGateway) ActiveBudgets(_ context.Context, _ analytics.Owner, r types.DateRange) ([]analytics.Budget, error) {
	if g.err != nil {
		return nil, g.err
	}

	budgets := []analytics.Budget{}
	for _, b := range g.budgets {
		if b.Range().From.Before(r.Until) && r.From.Before(b.Range().Until) {
			budgets = append(budgets, b)
		}
	}

	sort.SliceStable(budgets, func(i, j int) bool {
		return budgets[i].StartDate.After(budgets[j].StartDate)
	})

	return budgets, nil
}

func (g *fakeGateway) Budget(_ context.Context, id uuid.UUID) (analytics.Budget, error) {
	if g.err != nil {
		return analytics.Budget{}, g.err
	}

	for _, b := range g.budgets {
		if b.ID == id {
			return b, nil
		}
	}

	return analytics.Budget{}, analytics.ErrBudgetNotFound
}

func (g *fakeGateway) StoreSpent(_ context.Context, categoryBudgetID uuid.UUID, spent decimal.Decimal) error {
	if g.err != nil {
		return g.err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.stored[categoryBudgetID] = spent
	return nil
}

func (g *fakeGateway) RecurringIncomePatterns(_ context.Context, _ analytics.Owner, at time.Time) ([]analytics.IncomePattern, error) {
	if g.err != nil {
		return nil, g.err
	}

	window := types.DateRange{From: at.AddDate(0, -6, 0), Until: at}
	patterns := []analytics.IncomePattern{}
	index := make(map[analytics.IncomeType]int)
	counts := []int{}

	for _, i := range g.incomes {
		if !window.Contains(i.Date) {
			continue
		}

		n, ok := index[i.Type]
		if !ok {
			n = len(patterns)
			index[i.Type] = n
			patterns = append(patterns, analytics.IncomePattern{Type: i.Type})
			counts = append(counts, 0)
		}

		p := &patterns[n]
		p.AverageAmount = p.AverageAmount.Add(i.Amount)
		counts[n]++
		if i.Date.After(p.LastDate) {
			p.LastDate = i.Date
			p.LastAmount = i.Amount
		}
	}

	for n := range patterns {
		patterns[n].AverageAmount = patterns[n].AverageAmount.Div(decimal.NewFromInt(int64(counts[n])))
		patterns[n].Frequency = float64(counts[n]) / 6
	}

	return patterns, nil
}

func (g *fakeGateway) Category(_ context.Context, id uuid.UUID) (analytics.Category, error) {
	if g.err != nil {
		return analytics.Category{}, g.err
	}

	for _, c := range g.categories {
		if c.ID == id {
			return c, nil
		}
	}

	return analytics.Category{}, analytics.ErrCategoryNotFound
}

func (g *fakeGateway) Expenses(_ context.Context, r types.DateRange, _ analytics.Owner, categoryID uuid.UUID) ([]analytics.Expense, error) {
	if g.err != nil {
		return nil, g.err
	}

	expenses := []analytics.Expense{}
	for _, e := range g.expenses {
		if e.CategoryID == categoryID && r.Contains(e.Date) {
			expenses = append(expenses, e)
		}
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.Before(expenses[j].Date)
	})

	return expenses, nil
}

func newEngine(g *fakeGateway) *analytics.Engine {
	return analytics.New(g, analytics.WithClock(fixedClock(now)))
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "expected %s, got %s", want, got)
}
