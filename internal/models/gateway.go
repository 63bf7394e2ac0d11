package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/envelope-zero/insights/internal/analytics"
	"github.com/envelope-zero/insights/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// recurringWindow is the number of months RecurringIncomePatterns looks back.
const recurringWindow = 6

// Gateway answers the aggregate queries of the analytics engine from the
// database.
type Gateway struct {
	db *gorm.DB
}

var _ analytics.Gateway = Gateway{}

func NewGateway(db *gorm.DB) Gateway {
	return Gateway{db: db}
}

// ownedBy restricts a query to the resources of the owner. The family
// takes precedence over the user.
func ownedBy(table string, owner analytics.Owner) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if owner.FamilyID != uuid.Nil {
			return db.Where(fmt.Sprintf("%s.family_id = ?", table), owner.FamilyID)
		}

		if owner.UserID != uuid.Nil {
			return db.Where(fmt.Sprintf("%s.user_id = ?", table), owner.UserID)
		}

		return db
	}
}

// within restricts a query to rows where column is inside the range.
func within(column string, r types.DateRange) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(fmt.Sprintf("datetime(%s) >= datetime(?) AND datetime(%s) < datetime(?)", column, column), r.From, r.Until)
	}
}

// translate maps the generic not found error to the analytics one.
func translate(err, notFound error) error {
	if errors.Is(err, ErrResourceNotFound) {
		return notFound
	}

	return err
}

// sum returns the decimal value of a SUM() result with the
// precision of the amount columns.
func sum(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}

	return d.Decimal.Round(8)
}

func (g Gateway) SumExpensesByCategory(ctx context.Context, r types.DateRange, owner analytics.Owner) ([]analytics.CategoryTotal, error) {
	var rows []struct {
		CategoryID uuid.UUID
		Name       string
		Icon       string
		Color      string
		Total      decimal.NullDecimal
		Entries    int
	}

	err := g.db.WithContext(ctx).
		Model(&Expense{}).
		Select("expenses.category_id, categories.name, categories.icon, categories.color, SUM(expenses.amount) AS total, COUNT(expenses.id) AS entries").
		Joins("JOIN categories ON categories.id = expenses.category_id").
		Scopes(ownedBy("expenses", owner), within("expenses.date", r)).
		Group("expenses.category_id, categories.name, categories.icon, categories.color").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make([]analytics.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, analytics.CategoryTotal{
			CategoryID:   row.CategoryID,
			CategoryName: row.Name,
			Icon:         row.Icon,
			Color:        row.Color,
			Total:        sum(row.Total),
			Count:        row.Entries,
		})
	}

	return totals, nil
}

func (g Gateway) SumIncomeByType(ctx context.Context, r types.DateRange, owner analytics.Owner) ([]analytics.IncomeTotal, error) {
	var rows []struct {
		Type    analytics.IncomeType
		Total   decimal.NullDecimal
		Entries int
	}

	err := g.db.WithContext(ctx).
		Model(&Income{}).
		Select("incomes.type, SUM(incomes.amount) AS total, COUNT(incomes.id) AS entries").
		Scopes(ownedBy("incomes", owner), within("incomes.date", r)).
		Group("incomes.type").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make([]analytics.IncomeTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, analytics.IncomeTotal{
			Type:  row.Type,
			Total: sum(row.Total),
			Count: row.Entries,
		})
	}

	return totals, nil
}

func (g Gateway) TotalForPeriod(ctx context.Context, kind analytics.LedgerKind, r types.DateRange, owner analytics.Owner) (decimal.Decimal, error) {
	var (
		model any
		table string
	)

	switch kind {
	case analytics.LedgerExpenses:
		model, table = &Expense{}, "expenses"
	case analytics.LedgerIncomes:
		model, table = &Income{}, "incomes"
	default:
		return decimal.Zero, fmt.Errorf("unknown ledger %q", kind)
	}

	var total decimal.NullDecimal
	err := g.db.WithContext(ctx).
		Model(model).
		Select(fmt.Sprintf("SUM(%s.amount)", table)).
		Scopes(ownedBy(table, owner), within(table+".date", r)).
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	return sum(total), nil
}

func (g Gateway) ActiveBudgets(ctx context.Context, owner analytics.Owner, r types.DateRange) ([]analytics.Budget, error) {
	var budgets []Budget

	err := g.db.WithContext(ctx).
		Preload("Categories.Category").
		Scopes(ownedBy("budgets", owner)).
		Where("datetime(budgets.start_date) < datetime(?) AND datetime(budgets.end_date, '+1 day') > datetime(?)", r.Until, r.From).
		Order("budgets.start_date DESC").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	snapshots := make([]analytics.Budget, 0, len(budgets))
	for _, b := range budgets {
		snapshots = append(snapshots, b.snapshot())
	}

	return snapshots, nil
}

func (g Gateway) Budget(ctx context.Context, id uuid.UUID) (analytics.Budget, error) {
	var budget Budget

	err := g.db.WithContext(ctx).Preload("Categories.Category").First(&budget, "budgets.id = ?", id).Error
	if err != nil {
		return analytics.Budget{}, translate(err, analytics.ErrBudgetNotFound)
	}

	return budget.snapshot(), nil
}

func (g Gateway) StoreSpent(ctx context.Context, categoryBudgetID uuid.UUID, spent decimal.Decimal) error {
	tx := g.db.WithContext(ctx).
		Model(&CategoryBudget{}).
		Where("category_budgets.id = ?", categoryBudgetID).
		UpdateColumn("spent", spent)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return analytics.ErrBudgetNotFound
	}

	return nil
}

func (g Gateway) RecurringIncomePatterns(ctx context.Context, owner analytics.Owner, at time.Time) ([]analytics.IncomePattern, error) {
	var incomes []Income

	window := types.DateRange{From: at.AddDate(0, -recurringWindow, 0), Until: at}
	err := g.db.WithContext(ctx).
		Scopes(ownedBy("incomes", owner), within("incomes.date", window)).
		Order("incomes.date ASC").
		Find(&incomes).Error
	if err != nil {
		return nil, err
	}

	patterns := []analytics.IncomePattern{}
	index := make(map[analytics.IncomeType]int)
	var counts []int64

	for _, income := range incomes {
		n, ok := index[income.Type]
		if !ok {
			n = len(patterns)
			index[income.Type] = n
			patterns = append(patterns, analytics.IncomePattern{Type: income.Type})
			counts = append(counts, 0)
		}

		// Incomes are sorted by date, the last one seen is the latest
		p := &patterns[n]
		p.AverageAmount = p.AverageAmount.Add(income.Amount)
		p.LastAmount = income.Amount
		p.LastDate = income.Date
		counts[n]++
	}

	for n := range patterns {
		patterns[n].AverageAmount = patterns[n].AverageAmount.Div(decimal.NewFromInt(counts[n])).Round(2)
		patterns[n].Frequency = float64(counts[n]) / recurringWindow
	}

	return patterns, nil
}

func (g Gateway) Category(ctx context.Context, id uuid.UUID) (analytics.Category, error) {
	var category Category

	err := g.db.WithContext(ctx).First(&category, "categories.id = ?", id).Error
	if err != nil {
		return analytics.Category{}, translate(err, analytics.ErrCategoryNotFound)
	}

	return analytics.Category{
		ID:    category.ID,
		Name:  category.Name,
		Icon:  category.Icon,
		Color: category.Color,
	}, nil
}

func (g Gateway) Expenses(ctx context.Context, r types.DateRange, owner analytics.Owner, categoryID uuid.UUID) ([]analytics.Expense, error) {
	var expenses []Expense

	err := g.db.WithContext(ctx).
		Scopes(ownedBy("expenses", owner), within("expenses.date", r)).
		Where("expenses.category_id = ?", categoryID).
		Order("expenses.date ASC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	result := make([]analytics.Expense, 0, len(expenses))
	for _, e := range expenses {
		result = append(result, analytics.Expense{
			ID:            e.ID,
			CategoryID:    e.CategoryID,
			SubcategoryID: e.SubcategoryID,
			Amount:        e.Amount,
			Date:          e.Date,
			Note:          e.Note,
		})
	}

	return result, nil
}

// snapshot converts the budget to the representation the engine works on.
func (b Budget) snapshot() analytics.Budget {
	owner := analytics.Owner{UserID: b.UserID}
	if b.FamilyID != nil {
		owner.FamilyID = *b.FamilyID
	}

	categories := make([]analytics.CategoryBudget, 0, len(b.Categories))
	for _, c := range b.Categories {
		categories = append(categories, analytics.CategoryBudget{
			ID:           c.ID,
			CategoryID:   c.CategoryID,
			CategoryName: c.Category.Name,
			Limit:        c.Limit,
			Spent:        c.Spent,
		})
	}

	return analytics.Budget{
		ID:         b.ID,
		Name:       b.Name,
		Owner:      owner,
		TotalLimit: b.TotalLimit,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Categories: categories,
	}
}
