package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/envelope-zero/insights/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type CategoryShare struct {
	CategoryID   uuid.UUID       `json:"categoryId" example:"9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"`
	CategoryName string          `json:"categoryName" example:"Groceries"`
	Icon         string          `json:"icon" example:"🛒"`
	Color        string          `json:"color" example:"#4caf50"`
	Amount       decimal.Decimal `json:"amount" example:"1950"`
	Count        int             `json:"count" example:"14"`
	Percentage   float64         `json:"percentage" example:"30"` // Share of the total expenses
}

type IncomeShare struct {
	Type       IncomeType      `json:"type" example:"salary"`
	Amount     decimal.Decimal `json:"amount" example:"8000"`
	Count      int             `json:"count" example:"1"`
	Percentage float64         `json:"percentage" example:"100"` // Share of the total income
}

type CategoryComparison struct {
	CategoryID     uuid.UUID       `json:"categoryId" example:"9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"`
	CategoryName   string          `json:"categoryName" example:"Groceries"`
	Limit          decimal.Decimal `json:"limit" example:"500"`
	Spent          decimal.Decimal `json:"spent" example:"430"`
	PercentageUsed float64         `json:"percentageUsed" example:"86"`
	IsOverBudget   bool            `json:"isOverBudget" example:"false"`
}

// BudgetComparison compares the spend of a month with the budget active in it.
type BudgetComparison struct {
	BudgetID       uuid.UUID            `json:"budgetId" example:"1f5c5a4e-3a1c-4f8e-9d7c-2e0f6c1b5a77"`
	BudgetName     string               `json:"budgetName" example:"Household"`
	TotalLimit     decimal.Decimal      `json:"totalLimit" example:"7000"`
	TotalSpent     decimal.Decimal      `json:"totalSpent" example:"6500"`
	Remaining      decimal.Decimal      `json:"remaining" example:"500"`
	PercentageUsed float64              `json:"percentageUsed" example:"92.86"`
	IsOverBudget   bool                 `json:"isOverBudget" example:"false"`
	Categories     []CategoryComparison `json:"categories"`
}

// MonthComparison holds the totals of the previous month and the changes in percent.
type MonthComparison struct {
	PreviousIncome   decimal.Decimal `json:"previousIncome" example:"7800"`
	PreviousExpenses decimal.Decimal `json:"previousExpenses" example:"6100"`
	PreviousNet      decimal.Decimal `json:"previousNet" example:"1700"`
	IncomeChange     float64         `json:"incomeChange" example:"2.56"`
	ExpenseChange    float64         `json:"expenseChange" example:"6.56"`
	NetChange        float64         `json:"netChange" example:"-11.76"`
}

type MonthlyReportData struct {
	Month             types.Month       `json:"month" swaggertype:"string" example:"2024-03"`
	TotalIncome       decimal.Decimal   `json:"totalIncome" example:"8000"`
	TotalExpenses     decimal.Decimal   `json:"totalExpenses" example:"6500"`
	NetAmount         decimal.Decimal   `json:"netAmount" example:"1500"`
	SavingsRate       float64           `json:"savingsRate" example:"18.75"`
	CategoryBreakdown []CategoryShare   `json:"categoryBreakdown"`
	IncomeBreakdown   []IncomeShare     `json:"incomeBreakdown"`
	BudgetComparison  *BudgetComparison `json:"budgetComparison,omitempty"` // Only set if a budget is active in the month
	Comparison        MonthComparison   `json:"comparison"`
	Recommendations   []string          `json:"recommendations"`
}

type MonthSummary struct {
	Month    types.Month     `json:"month" swaggertype:"string" example:"2024-03"`
	Income   decimal.Decimal `json:"income" example:"8000"`
	Expenses decimal.Decimal `json:"expenses" example:"6500"`
	Savings  decimal.Decimal `json:"savings" example:"1500"`
}

type YearlyCategoryShare struct {
	CategoryShare
	Trend TrendDirection `json:"trend" example:"stable"`
}

type YearlyReportData struct {
	Year              int                   `json:"year" example:"2024"`
	TotalIncome       decimal.Decimal       `json:"totalIncome" example:"96000"`
	TotalExpenses     decimal.Decimal       `json:"totalExpenses" example:"78000"`
	TotalSavings      decimal.Decimal       `json:"totalSavings" example:"18000"`
	SavingsRate       float64               `json:"savingsRate" example:"18.75"`
	Months            []MonthSummary        `json:"months"`
	BestMonth         *MonthSummary         `json:"bestMonth"`  // Month with the highest savings, unset if there is no data
	WorstMonth        *MonthSummary         `json:"worstMonth"` // Month with the lowest savings, unset if there is no data
	CategoryBreakdown []YearlyCategoryShare `json:"categoryBreakdown"`
}

type MonthBucket struct {
	Month  types.Month     `json:"month" swaggertype:"string" example:"2024-03"`
	Amount decimal.Decimal `json:"amount" example:"312.4"`
	Count  int             `json:"count" example:"6"`
}

type WeekdayBucket struct {
	Weekday string          `json:"weekday" example:"Saturday"`
	Amount  decimal.Decimal `json:"amount" example:"120"`
	Count   int             `json:"count" example:"2"`
}

type CategoryReport struct {
	Category           Category        `json:"category"`
	Period             types.DateRange `json:"period"`
	TotalSpent         decimal.Decimal `json:"totalSpent" example:"312.4"`
	TransactionCount   int             `json:"transactionCount" example:"6"`
	AverageTransaction decimal.Decimal `json:"averageTransaction" example:"52.07"`
	DailyAverage       decimal.Decimal `json:"dailyAverage" example:"10.08"`
	Transactions       []Expense       `json:"transactions"`
	Months             []MonthBucket   `json:"months"`
	Weekdays           []WeekdayBucket `json:"weekdays"` // Sunday to Saturday
}

// ReportAggregator composes reports from ledger aggregates.
type ReportAggregator struct {
	gateway Gateway
	clock   Clock
}

func NewReportAggregator(gateway Gateway, clock Clock) *ReportAggregator {
	return &ReportAggregator{gateway: gateway, clock: clock}
}

// periodTotals are the aggregates of one date range.
type periodTotals struct {
	categories []CategoryTotal
	incomes    []IncomeTotal
	income     decimal.Decimal
	expenses   decimal.Decimal
}

func (r *ReportAggregator) totals(ctx context.Context, rng types.DateRange, owner Owner) (periodTotals, error) {
	var p periodTotals

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		p.categories, err = r.gateway.SumExpensesByCategory(ctx, rng, owner)
		return
	})

	g.Go(func() (err error) {
		p.incomes, err = r.gateway.SumIncomeByType(ctx, rng, owner)
		return
	})

	if err := g.Wait(); err != nil {
		return periodTotals{}, err
	}

	for _, c := range p.categories {
		p.expenses = p.expenses.Add(c.Total)
	}

	for _, i := range p.incomes {
		p.income = p.income.Add(i.Total)
	}

	return p, nil
}

// MonthlyReport composes the report for a month and compares it to the month before.
func (r *ReportAggregator) MonthlyReport(ctx context.Context, owner Owner, month types.Month) (MonthlyReportData, error) {
	var (
		current, previous periodTotals
		budgets           []Budget
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		current, err = r.totals(gctx, month.Range(), owner)
		return
	})

	g.Go(func() (err error) {
		previous, err = r.totals(gctx, month.AddDate(0, -1).Range(), owner)
		return
	})

	g.Go(func() (err error) {
		budgets, err = r.gateway.ActiveBudgets(gctx, owner, month.Range())
		return
	})

	if err := g.Wait(); err != nil {
		return MonthlyReportData{}, err
	}

	report := MonthlyReportData{
		Month:             month,
		TotalIncome:       current.income,
		TotalExpenses:     current.expenses,
		NetAmount:         current.income.Sub(current.expenses),
		CategoryBreakdown: categoryShares(current.categories, current.expenses),
		IncomeBreakdown:   incomeShares(current.incomes, current.income),
	}
	report.SavingsRate = percentOf(report.NetAmount, report.TotalIncome)

	if budget, ok := reportBudget(budgets, month, r.clock.Now()); ok {
		comparison := compareBudget(budget, current)
		report.BudgetComparison = &comparison
	}

	previousNet := previous.income.Sub(previous.expenses)
	report.Comparison = MonthComparison{
		PreviousIncome:   previous.income,
		PreviousExpenses: previous.expenses,
		PreviousNet:      previousNet,
		IncomeChange:     percentChange(previous.income, current.income),
		ExpenseChange:    percentChange(previous.expenses, current.expenses),
		NetChange:        percentChange(previousNet, report.NetAmount),
	}

	report.Recommendations = monthlyRecommendations(report)
	return report, nil
}

// reportBudget picks the budget a monthly report is compared to. For the
// running month that is the budget active now, for other months the one
// active on the first day. Without such a budget, the latest starting budget
// overlapping the month is used.
func reportBudget(budgets []Budget, month types.Month, now time.Time) (Budget, bool) {
	if len(budgets) == 0 {
		return Budget{}, false
	}

	reference := month.Time()
	if month.Contains(now) {
		reference = now
	}

	if active := activeAt(budgets, reference); len(active) > 0 {
		return active[0], true
	}

	return budgets[0], true
}

func categoryShares(totals []CategoryTotal, total decimal.Decimal) []CategoryShare {
	shares := make([]CategoryShare, 0, len(totals))
	for _, t := range totals {
		shares = append(shares, CategoryShare{
			CategoryID:   t.CategoryID,
			CategoryName: t.CategoryName,
			Icon:         t.Icon,
			Color:        t.Color,
			Amount:       t.Total,
			Count:        t.Count,
			Percentage:   percentOf(t.Total, total),
		})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Amount.GreaterThan(shares[j].Amount)
	})

	return shares
}

func incomeShares(totals []IncomeTotal, total decimal.Decimal) []IncomeShare {
	shares := make([]IncomeShare, 0, len(totals))
	for _, t := range totals {
		shares = append(shares, IncomeShare{
			Type:       t.Type,
			Amount:     t.Total,
			Count:      t.Count,
			Percentage: percentOf(t.Total, total),
		})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Amount.GreaterThan(shares[j].Amount)
	})

	return shares
}

// compareBudget compares the spend of a period with a budget. The stored
// spent amounts are not used, the report only reads.
func compareBudget(budget Budget, p periodTotals) BudgetComparison {
	spent := make(map[uuid.UUID]decimal.Decimal, len(p.categories))
	for _, c := range p.categories {
		spent[c.CategoryID] = spent[c.CategoryID].Add(c.Total)
	}

	comparison := BudgetComparison{
		BudgetID:       budget.ID,
		BudgetName:     budget.Name,
		TotalLimit:     budget.TotalLimit,
		TotalSpent:     p.expenses,
		Remaining:      budget.TotalLimit.Sub(p.expenses),
		PercentageUsed: percentOf(p.expenses, budget.TotalLimit),
		IsOverBudget:   p.expenses.GreaterThan(budget.TotalLimit),
		Categories:     make([]CategoryComparison, 0, len(budget.Categories)),
	}

	for _, c := range budget.Categories {
		s := spent[c.CategoryID]
		comparison.Categories = append(comparison.Categories, CategoryComparison{
			CategoryID:     c.CategoryID,
			CategoryName:   c.CategoryName,
			Limit:          c.Limit,
			Spent:          s,
			PercentageUsed: percentOf(s, c.Limit),
			IsOverBudget:   s.GreaterThan(c.Limit),
		})
	}

	return comparison
}

// monthlyRecommendations applies all recommendation rules to a report.
// If none applies, a single affirmation is returned.
func monthlyRecommendations(report MonthlyReportData) []string {
	recommendations := []string{}

	if report.SavingsRate < 10 {
		recommendations = append(recommendations, printer.Sprintf("Your savings rate is %.1f%%. Try to save at least 10%% of your income.", report.SavingsRate))
	}

	if report.SavingsRate > 30 {
		recommendations = append(recommendations, printer.Sprintf("You saved %.1f%% of your income. Consider investing the surplus of %s.", report.SavingsRate, amount(report.NetAmount)))
	}

	if report.BudgetComparison != nil && report.BudgetComparison.IsOverBudget {
		recommendations = append(recommendations, printer.Sprintf("You are %s over the budget %s. Review unplanned expenses.", amount(report.BudgetComparison.TotalSpent.Sub(report.BudgetComparison.TotalLimit)), report.BudgetComparison.BudgetName))
	}

	if report.Comparison.ExpenseChange > 20 {
		recommendations = append(recommendations, printer.Sprintf("Expenses grew by %.1f%% compared to last month. Review what caused the increase.", report.Comparison.ExpenseChange))
	}

	if top, ok := topShare(report.CategoryBreakdown); ok && top.Percentage > 40 {
		recommendations = append(recommendations, printer.Sprintf("%s makes up %.1f%% of your expenses. Spreading spending more evenly reduces the risk of overspending.", top.CategoryName, top.Percentage))
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Your finances are in good shape this month. Keep it up!")
	}

	return recommendations
}

// topShare returns the category with the largest share.
func topShare(shares []CategoryShare) (CategoryShare, bool) {
	if len(shares) == 0 {
		return CategoryShare{}, false
	}

	top := shares[0]
	for _, s := range shares[1:] {
		if s.Percentage > top.Percentage {
			top = s
		}
	}

	return top, true
}

// YearlyReport summarizes all months of a year.
func (r *ReportAggregator) YearlyReport(ctx context.Context, owner Owner, year int) (YearlyReportData, error) {
	months := make([]MonthSummary, 12)
	var categories []CategoryTotal

	g, gctx := errgroup.WithContext(ctx)
	for i := range months {
		month := types.NewMonth(year, time.Month(i+1))
		months[i].Month = month

		g.Go(func() (err error) {
			months[i].Income, err = r.gateway.TotalForPeriod(gctx, LedgerIncomes, month.Range(), owner)
			return
		})

		g.Go(func() (err error) {
			months[i].Expenses, err = r.gateway.TotalForPeriod(gctx, LedgerExpenses, month.Range(), owner)
			return
		})
	}

	g.Go(func() (err error) {
		categories, err = r.gateway.SumExpensesByCategory(gctx, types.Year(year), owner)
		return
	})

	if err := g.Wait(); err != nil {
		return YearlyReportData{}, err
	}

	report := YearlyReportData{
		Year:   year,
		Months: months,
	}

	hasData := false
	for i := range report.Months {
		m := &report.Months[i]
		m.Savings = m.Income.Sub(m.Expenses)

		report.TotalIncome = report.TotalIncome.Add(m.Income)
		report.TotalExpenses = report.TotalExpenses.Add(m.Expenses)

		if !m.Income.IsZero() || !m.Expenses.IsZero() {
			hasData = true
		}
	}
	report.TotalSavings = report.TotalIncome.Sub(report.TotalExpenses)
	report.SavingsRate = percentOf(report.TotalSavings, report.TotalIncome)

	if hasData {
		best, worst := report.Months[0], report.Months[0]
		for _, m := range report.Months[1:] {
			if m.Savings.GreaterThan(best.Savings) {
				best = m
			}

			if m.Savings.LessThan(worst.Savings) {
				worst = m
			}
		}
		report.BestMonth = &best
		report.WorstMonth = &worst
	}

	report.CategoryBreakdown = make([]YearlyCategoryShare, 0, len(categories))
	for _, share := range categoryShares(categories, report.TotalExpenses) {
		report.CategoryBreakdown = append(report.CategoryBreakdown, YearlyCategoryShare{
			CategoryShare: share,
			Trend:         TrendStable,
		})
	}

	return report, nil
}

// CategoryReport lists and buckets the expenses of one category in a date range.
func (r *ReportAggregator) CategoryReport(ctx context.Context, owner Owner, categoryID uuid.UUID, rng types.DateRange) (CategoryReport, error) {
	if rng.Until.Before(rng.From) {
		return CategoryReport{}, ErrInvalidRange
	}

	category, err := r.gateway.Category(ctx, categoryID)
	if err != nil {
		return CategoryReport{}, err
	}

	expenses, err := r.gateway.Expenses(ctx, rng, owner, categoryID)
	if err != nil {
		return CategoryReport{}, err
	}

	report := CategoryReport{
		Category:         category,
		Period:           rng,
		TransactionCount: len(expenses),
		Transactions:     expenses,
		Months:           []MonthBucket{},
		Weekdays:         make([]WeekdayBucket, 7),
	}

	for d := range report.Weekdays {
		report.Weekdays[d].Weekday = time.Weekday(d).String()
	}

	months := make(map[string]int)
	for _, e := range expenses {
		report.TotalSpent = report.TotalSpent.Add(e.Amount)

		month := types.MonthOf(e.Date)
		index, ok := months[month.String()]
		if !ok {
			index = len(report.Months)
			months[month.String()] = index
			report.Months = append(report.Months, MonthBucket{Month: month})
		}
		report.Months[index].Amount = report.Months[index].Amount.Add(e.Amount)
		report.Months[index].Count++

		weekday := &report.Weekdays[e.Date.Weekday()]
		weekday.Amount = weekday.Amount.Add(e.Amount)
		weekday.Count++
	}

	sort.SliceStable(report.Months, func(i, j int) bool {
		return report.Months[i].Month.Before(report.Months[j].Month)
	})

	if report.TransactionCount > 0 {
		report.AverageTransaction = report.TotalSpent.Div(decimal.NewFromInt(int64(report.TransactionCount))).Round(2)
	}

	if days := rng.Days(); days > 0 {
		report.DailyAverage = report.TotalSpent.Div(decimal.NewFromInt(int64(days))).Round(2)
	}

	return report, nil
}
