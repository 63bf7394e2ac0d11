package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/envelope-zero/insights/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	dailySpendWarning   = decimal.NewFromInt(200)
	weeklyCategoryLimit = decimal.NewFromInt(400)
	smallTransaction    = decimal.NewFromInt(20)
	largeTransaction    = decimal.NewFromInt(200)
)

const (
	salaryFrequency   = 0.8
	salaryOverdue     = 35 * 24 * time.Hour
	frequentPurchases = 15
)

var tips = []string{
	"Wait 24 hours before any purchase that is not planned.",
	"Cook at home one more evening this week.",
	"Check your subscriptions for services you no longer use.",
	"Pay yourself first: move money to savings on payday.",
	"Write a shopping list and stick to it.",
	"Compare prices before buying anything over 50.",
	"Small daily savings add up to large yearly ones.",
}

// swagger:enum AdviceType
type AdviceType string

const (
	AdviceAchievement AdviceType = "achievement"
	AdviceWarning     AdviceType = "warning"
	AdviceAlert       AdviceType = "alert"
	AdviceTip         AdviceType = "tip"
	AdviceReminder    AdviceType = "reminder"
)

type DailyAdvice struct {
	Type       AdviceType `json:"type" example:"warning"`
	Priority   Priority   `json:"priority" example:"high"`
	Title      string     `json:"title" example:"High spending today"`
	Message    string     `json:"message" example:"You spent 245.00 today."`
	CategoryID *uuid.UUID `json:"categoryId,omitempty" example:"9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"`
}

type WeeklyAdvice struct {
	Week               types.DateRange `json:"week"`
	Spent              decimal.Decimal `json:"spent" example:"512.3"`
	Income             decimal.Decimal `json:"income" example:"2000"`
	SavingsThisWeek    decimal.Decimal `json:"savingsThisWeek" example:"1487.7"`
	ChangeFromLastWeek float64         `json:"changeFromLastWeek" example:"-12.5"`
	BudgetUsage        *float64        `json:"budgetUsage,omitempty" example:"64.2"` // Percentage of the active budget used, unset without an active budget
	Highlights         []string        `json:"highlights"`
	Concerns           []string        `json:"concerns"`
	Recommendations    []string        `json:"recommendations"`
}

type MonthlyAdvice struct {
	Month           types.Month     `json:"month" swaggertype:"string" example:"2024-03"`
	Score           int             `json:"score" example:"85"`
	TotalIncome     decimal.Decimal `json:"totalIncome" example:"8000"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses" example:"6500"`
	SavingsRate     float64         `json:"savingsRate" example:"18.75"`
	Achievements    []string        `json:"achievements"`
	Improvements    []string        `json:"improvements"`
	NextMonthGoals  []string        `json:"nextMonthGoals"`
	Recommendations []string        `json:"recommendations"`
}

type CategoryAdvice struct {
	Category           Category        `json:"category"`
	Month              types.Month     `json:"month" swaggertype:"string" example:"2024-03"`
	TotalSpent         decimal.Decimal `json:"totalSpent" example:"312.4"`
	TransactionCount   int             `json:"transactionCount" example:"6"`
	AverageTransaction decimal.Decimal `json:"averageTransaction" example:"52.07"`
	Advice             []string        `json:"advice"`
}

// AdviceGenerator turns reports and budget state into advice.
type AdviceGenerator struct {
	gateway Gateway
	clock   Clock
	rand    RandomSource
	reports *ReportAggregator
	budgets *BudgetMonitor
}

func NewAdviceGenerator(gateway Gateway, clock Clock, rand RandomSource, reports *ReportAggregator, budgets *BudgetMonitor) *AdviceGenerator {
	return &AdviceGenerator{
		gateway: gateway,
		clock:   clock,
		rand:    rand,
		reports: reports,
		budgets: budgets,
	}
}

// Daily returns the advice for today, most important first.
//
// Daily advice is best effort, gateway errors are logged and the affected
// advice is skipped.
func (a *AdviceGenerator) Daily(ctx context.Context, owner Owner) []DailyAdvice {
	log := zerolog.Ctx(ctx)
	now := a.clock.Now()
	advice := []DailyAdvice{}

	spent, err := a.gateway.TotalForPeriod(ctx, LedgerExpenses, types.Day(now), owner)
	if err != nil {
		log.Error().Err(err).Msg("could not load today's expenses for daily advice")
	} else {
		switch {
		case spent.IsZero():
			advice = append(advice, DailyAdvice{
				Type:     AdviceAchievement,
				Priority: PriorityLow,
				Title:    "No spending today",
				Message:  "You have not spent anything today. Every day without spending helps your savings.",
			})
		case spent.GreaterThan(dailySpendWarning):
			advice = append(advice, DailyAdvice{
				Type:     AdviceWarning,
				Priority: PriorityHigh,
				Title:    "High spending today",
				Message:  printer.Sprintf("You spent %s today. Check if all of it was necessary.", amount(spent)),
			})
		}
	}

	for _, alert := range a.budgets.CheckBudgetAlerts(ctx, owner) {
		priority := PriorityMedium
		if alert.Type == AlertDanger {
			priority = PriorityHigh
		}

		categoryID := alert.CategoryID
		advice = append(advice, DailyAdvice{
			Type:       AdviceAlert,
			Priority:   priority,
			Title:      printer.Sprintf("%s over budget", alert.CategoryName),
			Message:    alert.Message,
			CategoryID: &categoryID,
		})
	}

	advice = append(advice, DailyAdvice{
		Type:     AdviceTip,
		Priority: PriorityLow,
		Title:    "Tip of the day",
		Message:  tips[a.rand.Intn(len(tips))],
	})

	patterns, err := a.gateway.RecurringIncomePatterns(ctx, owner, now)
	if err != nil {
		log.Error().Err(err).Msg("could not load income patterns for daily advice")
	}

	for _, p := range patterns {
		if p.Type != IncomeSalary || p.Frequency <= salaryFrequency || now.Sub(p.LastDate) <= salaryOverdue {
			continue
		}

		advice = append(advice, DailyAdvice{
			Type:     AdviceReminder,
			Priority: PriorityMedium,
			Title:    "Salary not recorded",
			Message:  printer.Sprintf("Your last salary of %s was recorded on %s. Did you forget to add the latest one?", amount(p.LastAmount), p.LastDate.Format(time.DateOnly)),
		})
	}

	sort.SliceStable(advice, func(i, j int) bool {
		return advice[i].Priority.rank() < advice[j].Priority.rank()
	})

	return advice
}

// Weekly compares the current calendar week with the previous one.
func (a *AdviceGenerator) Weekly(ctx context.Context, owner Owner) (WeeklyAdvice, error) {
	week := types.Week(a.clock.Now())

	var (
		categories []CategoryTotal
		previous   decimal.Decimal
		income     decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		categories, err = a.gateway.SumExpensesByCategory(gctx, week, owner)
		return
	})

	g.Go(func() (err error) {
		previous, err = a.gateway.TotalForPeriod(gctx, LedgerExpenses, week.Shift(0, 0, -7), owner)
		return
	})

	g.Go(func() (err error) {
		income, err = a.gateway.TotalForPeriod(gctx, LedgerIncomes, week, owner)
		return
	})

	if err := g.Wait(); err != nil {
		return WeeklyAdvice{}, err
	}

	var spent decimal.Decimal
	var largest CategoryTotal
	for _, c := range categories {
		spent = spent.Add(c.Total)
		if c.Total.GreaterThan(largest.Total) {
			largest = c
		}
	}

	advice := WeeklyAdvice{
		Week:               week,
		Spent:              spent,
		Income:             income,
		SavingsThisWeek:    income.Sub(spent),
		ChangeFromLastWeek: percentChange(previous, spent),
		Highlights:         []string{},
		Concerns:           []string{},
		Recommendations:    []string{},
	}

	summary, err := a.budgets.ActiveSummary(ctx, owner)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("could not load the active budget for weekly advice")
	} else if summary != nil {
		usage := summary.PercentageUsed
		advice.BudgetUsage = &usage
	}

	if advice.ChangeFromLastWeek < -10 {
		advice.Highlights = append(advice.Highlights, printer.Sprintf("You spent %.1f%% less than last week.", -advice.ChangeFromLastWeek))
	}

	if advice.SavingsThisWeek.IsPositive() {
		advice.Highlights = append(advice.Highlights, printer.Sprintf("You saved %s this week.", amount(advice.SavingsThisWeek)))
	}

	if advice.BudgetUsage != nil && *advice.BudgetUsage < 75 {
		advice.Highlights = append(advice.Highlights, printer.Sprintf("Only %.1f%% of your budget is used.", *advice.BudgetUsage))
	}

	if advice.ChangeFromLastWeek > 20 {
		advice.Concerns = append(advice.Concerns, printer.Sprintf("You spent %.1f%% more than last week.", advice.ChangeFromLastWeek))
	}

	if advice.BudgetUsage != nil && *advice.BudgetUsage > 90 {
		advice.Concerns = append(advice.Concerns, printer.Sprintf("%.1f%% of your budget is already used.", *advice.BudgetUsage))
	}

	if advice.SavingsThisWeek.IsNegative() {
		advice.Concerns = append(advice.Concerns, printer.Sprintf("You spent %s more than you earned this week.", amount(advice.SavingsThisWeek.Neg())))
	}

	switch {
	case largest.Total.GreaterThan(weeklyCategoryLimit):
		advice.Recommendations = append(advice.Recommendations, printer.Sprintf("%s accounts for %s this week. Look for savings there first.", largest.CategoryName, amount(largest.Total)))
	case len(advice.Concerns) == 0:
		advice.Recommendations = append(advice.Recommendations, "Great week! Keep going like this.")
	}

	return advice, nil
}

// Monthly scores the current month and lists what went well and what did not.
func (a *AdviceGenerator) Monthly(ctx context.Context, owner Owner) (MonthlyAdvice, error) {
	month := types.MonthOf(a.clock.Now())

	report, err := a.reports.MonthlyReport(ctx, owner, month)
	if err != nil {
		return MonthlyAdvice{}, err
	}

	advice := MonthlyAdvice{
		Month:           month,
		Score:           MonthlyScore(report),
		TotalIncome:     report.TotalIncome,
		TotalExpenses:   report.TotalExpenses,
		SavingsRate:     report.SavingsRate,
		Achievements:    []string{},
		Improvements:    []string{},
		NextMonthGoals:  []string{},
		Recommendations: report.Recommendations,
	}

	top, hasTop := topShare(report.CategoryBreakdown)

	if report.SavingsRate > 20 {
		advice.Achievements = append(advice.Achievements, printer.Sprintf("You saved %.1f%% of your income.", report.SavingsRate))
	}

	if report.BudgetComparison != nil && !report.BudgetComparison.IsOverBudget {
		advice.Achievements = append(advice.Achievements, printer.Sprintf("You stayed within the budget %s.", report.BudgetComparison.BudgetName))
	}

	if hasTop && top.Percentage < 40 {
		advice.Achievements = append(advice.Achievements, "Your spending is well balanced across categories.")
	}

	if report.Comparison.ExpenseChange < 0 {
		advice.Achievements = append(advice.Achievements, printer.Sprintf("Expenses went down by %.1f%% compared to last month.", -report.Comparison.ExpenseChange))
	}

	if report.SavingsRate < 10 {
		advice.Improvements = append(advice.Improvements, printer.Sprintf("Your savings rate of %.1f%% is below 10%%.", report.SavingsRate))
	}

	if report.BudgetComparison != nil && report.BudgetComparison.IsOverBudget {
		advice.Improvements = append(advice.Improvements, printer.Sprintf("You exceeded the budget %s by %s.", report.BudgetComparison.BudgetName, amount(report.BudgetComparison.TotalSpent.Sub(report.BudgetComparison.TotalLimit))))
	}

	if hasTop && top.Percentage > 60 {
		advice.Improvements = append(advice.Improvements, printer.Sprintf("%s makes up %.1f%% of your spending.", top.CategoryName, top.Percentage))
	}

	if report.Comparison.ExpenseChange > 20 {
		advice.Improvements = append(advice.Improvements, printer.Sprintf("Expenses grew by %.1f%% compared to last month.", report.Comparison.ExpenseChange))
	}

	if report.SavingsRate < 20 {
		target := clamp(round2(report.SavingsRate+5), 10, 20)
		advice.NextMonthGoals = append(advice.NextMonthGoals, printer.Sprintf("Save at least %.0f%% of your income.", target))
	} else {
		advice.NextMonthGoals = append(advice.NextMonthGoals, printer.Sprintf("Keep your savings rate above %.0f%%.", 20.0))
	}

	if hasTop {
		advice.NextMonthGoals = append(advice.NextMonthGoals, printer.Sprintf("Spend at most %s on %s.", amount(top.Amount.Mul(nearLimitFactor).Round(2)), top.CategoryName))
	}

	if report.BudgetComparison == nil {
		advice.NextMonthGoals = append(advice.NextMonthGoals, "Set up a budget for next month.")
	} else {
		advice.NextMonthGoals = append(advice.NextMonthGoals, printer.Sprintf("Stay within the budget %s.", report.BudgetComparison.BudgetName))
	}

	return advice, nil
}

// MonthlyScore rates a monthly report from 0 to 100.
//
// The score starts at 70 and is adjusted for the savings rate, the budget
// and the share of the largest category.
func MonthlyScore(report MonthlyReportData) int {
	score := 70

	switch {
	case report.SavingsRate > 20:
		score += 20
	case report.SavingsRate >= 10:
		score += 10
	case report.SavingsRate < 0:
		score -= 20
	}

	if b := report.BudgetComparison; b != nil {
		if b.IsOverBudget {
			score -= 15
		} else {
			score += 10
			if b.PercentageUsed < 80 {
				score += 5
			}
		}
	}

	if top, ok := topShare(report.CategoryBreakdown); ok && report.TotalExpenses.IsPositive() {
		switch {
		case top.Percentage < 40:
			score += 5
		case top.Percentage > 60:
			score -= 10
		}
	}

	return int(clamp(float64(score), 0, 100))
}

// CategoryAdvice comments on the spending in one category in the current month.
func (a *AdviceGenerator) CategoryAdvice(ctx context.Context, owner Owner, categoryID uuid.UUID) (CategoryAdvice, error) {
	month := types.MonthOf(a.clock.Now())

	report, err := a.reports.CategoryReport(ctx, owner, categoryID, month.Range())
	if err != nil {
		return CategoryAdvice{}, err
	}

	advice := CategoryAdvice{
		Category:           report.Category,
		Month:              month,
		TotalSpent:         report.TotalSpent,
		TransactionCount:   report.TransactionCount,
		AverageTransaction: report.AverageTransaction,
		Advice:             []string{},
	}

	name := report.Category.Name

	if report.TransactionCount > frequentPurchases {
		advice.Advice = append(advice.Advice, printer.Sprintf("You made %d purchases in %s this month. Combining them into fewer, planned purchases saves time and money.", report.TransactionCount, name))
	}

	if report.TransactionCount > 0 {
		switch {
		case report.AverageTransaction.LessThan(smallTransaction):
			advice.Advice = append(advice.Advice, printer.Sprintf("Your purchases in %s are small with an average of %s. Well done!", name, amount(report.AverageTransaction)))
		case report.AverageTransaction.GreaterThan(largeTransaction):
			advice.Advice = append(advice.Advice, printer.Sprintf("The average purchase in %s is %s. Review the large ones for alternatives.", name, amount(report.AverageTransaction)))
		}
	}

	var weekend, weekdays decimal.Decimal
	for d, bucket := range report.Weekdays {
		if time.Weekday(d) == time.Friday || time.Weekday(d) == time.Saturday {
			weekend = weekend.Add(bucket.Amount)
		} else {
			weekdays = weekdays.Add(bucket.Amount)
		}
	}

	if weekend.IsPositive() && weekend.GreaterThan(weekdays.Mul(decimal.NewFromFloat(0.6))) {
		advice.Advice = append(advice.Advice, printer.Sprintf("You spend %s in %s on Fridays and Saturdays. Planning weekend purchases ahead helps to avoid impulse buys.", amount(weekend), name))
	}

	if len(advice.Advice) == 0 {
		advice.Advice = append(advice.Advice, printer.Sprintf("Your spending in %s looks balanced.", name))
	}

	return advice, nil
}
