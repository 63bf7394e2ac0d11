package analytics

import (
	"context"
	"math"
	"sort"

	"github.com/envelope-zero/insights/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Threshold tiers for spend against a limit.
var (
	nearLimitFactor = decimal.NewFromFloat(0.90)
	alertFactor     = decimal.NewFromFloat(1.10)
	dangerFactor    = decimal.NewFromFloat(1.50)
)

const nearLimitPercentage = 90

// swagger:enum AlertType
type AlertType string

const (
	AlertWarning AlertType = "warning"
	AlertDanger  AlertType = "danger"
)

type BudgetAlert struct {
	Type              AlertType       `json:"type" example:"warning"`
	BudgetID          uuid.UUID       `json:"budgetId" example:"1f5c5a4e-3a1c-4f8e-9d7c-2e0f6c1b5a77"`
	BudgetName        string          `json:"budgetName" example:"Household"`
	CategoryID        uuid.UUID       `json:"categoryId" example:"9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"`
	CategoryName      string          `json:"categoryName" example:"Groceries"`
	Limit             decimal.Decimal `json:"limit" example:"500"`
	Spent             decimal.Decimal `json:"spent" example:"560"`
	Overage           decimal.Decimal `json:"overage" example:"60"`
	PercentageUsed    float64         `json:"percentageUsed" example:"112"`
	OveragePercentage float64         `json:"overagePercentage" example:"12"`
	Message           string          `json:"message" example:"Groceries is 12.0% over its limit of 500.00"`
}

type CategorySummary struct {
	CategoryID     uuid.UUID       `json:"categoryId" example:"9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"`
	CategoryName   string          `json:"categoryName" example:"Groceries"`
	Limit          decimal.Decimal `json:"limit" example:"500"`
	Spent          decimal.Decimal `json:"spent" example:"560"`
	Remaining      decimal.Decimal `json:"remaining" example:"-60"`
	PercentageUsed float64         `json:"percentageUsed" example:"112"`
	IsOverBudget   bool            `json:"isOverBudget" example:"true"`
	IsNearLimit    bool            `json:"isNearLimit" example:"true"`
}

type BudgetSummary struct {
	BudgetID       uuid.UUID         `json:"budgetId" example:"1f5c5a4e-3a1c-4f8e-9d7c-2e0f6c1b5a77"`
	Name           string            `json:"name" example:"Household"`
	Period         types.DateRange   `json:"period"`
	TotalLimit     decimal.Decimal   `json:"totalLimit" example:"1000"`
	TotalSpent     decimal.Decimal   `json:"totalSpent" example:"560"`
	Remaining      decimal.Decimal   `json:"remaining" example:"440"`
	PercentageUsed float64           `json:"percentageUsed" example:"56"`
	Categories     []CategorySummary `json:"categories"`
}

// BudgetContext describes the state of a category budget after a prospective expense.
type BudgetContext struct {
	BudgetID      uuid.UUID       `json:"budgetId" example:"1f5c5a4e-3a1c-4f8e-9d7c-2e0f6c1b5a77"`
	BudgetName    string          `json:"budgetName" example:"Household"`
	Limit         decimal.Decimal `json:"limit" example:"500"`
	Spent         decimal.Decimal `json:"spent" example:"440"`
	NewSpent      decimal.Decimal `json:"newSpent" example:"480"`
	NewPercentage float64         `json:"newPercentage" example:"96"`
}

type ExpenseValidation struct {
	Allowed bool           `json:"allowed" example:"true"`
	Warning string         `json:"warning,omitempty" example:"Groceries will be at 96.0% of its limit"`
	Budget  *BudgetContext `json:"budgetContext,omitempty"` // Only set when the category is budgeted
}

// ExpenseCheck is a prospective expense.
type ExpenseCheck struct {
	Amount     decimal.Decimal
	CategoryID uuid.UUID
	Owner      Owner
}

type CategoryRecommendation struct {
	CategoryID       uuid.UUID       `json:"categoryId" example:"9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"`
	CategoryName     string          `json:"categoryName" example:"Groceries"`
	AverageSpent     decimal.Decimal `json:"averageSpent" example:"420.5"`
	RecommendedLimit decimal.Decimal `json:"recommendedLimit" example:"463"`
}

type BudgetRecommendations struct {
	Categories       []CategoryRecommendation `json:"categories"`
	TotalRecommended decimal.Decimal          `json:"totalRecommended" example:"2150"`
	SavingsGoal      decimal.Decimal          `json:"savingsGoal" example:"430"`
	EmergencyFund    decimal.Decimal          `json:"emergencyFund" example:"215"`
}

type CategoryPerformance struct {
	CategoryID     uuid.UUID `json:"categoryId" example:"9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"`
	CategoryName   string    `json:"categoryName" example:"Groceries"`
	PercentageUsed float64   `json:"percentageUsed" example:"72.5"`
	Score          int       `json:"score" example:"100"`
}

type BudgetPerformance struct {
	BudgetID       uuid.UUID             `json:"budgetId" example:"1f5c5a4e-3a1c-4f8e-9d7c-2e0f6c1b5a77"`
	Name           string                `json:"name" example:"Household"`
	OverallScore   float64               `json:"overallScore" example:"90"`
	PercentageUsed float64               `json:"percentageUsed" example:"82.4"`
	Categories     []CategoryPerformance `json:"categories"`
	Suggestions    []string              `json:"suggestions"`
}

type BudgetAdjustment struct {
	CategoryID     uuid.UUID       `json:"categoryId" example:"9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"`
	CategoryName   string          `json:"categoryName" example:"Groceries"`
	CurrentLimit   decimal.Decimal `json:"currentLimit" example:"500"`
	SuggestedLimit decimal.Decimal `json:"suggestedLimit" example:"672"`
	Priority       Priority        `json:"priority" example:"high"`
	Reason         string          `json:"reason" example:"Spent 560.00 of 500.00"`
}

// BudgetMonitor evaluates budgets against the expenses in their period.
type BudgetMonitor struct {
	gateway Gateway
	clock   Clock
}

func NewBudgetMonitor(gateway Gateway, clock Clock) *BudgetMonitor {
	return &BudgetMonitor{gateway: gateway, clock: clock}
}

// RefreshSpent recomputes the spent amount of every category budget from the
// expense aggregates of the budget period and stores it.
//
// The result replaces any previously stored value, running it repeatedly is safe.
func (m *BudgetMonitor) RefreshSpent(ctx context.Context, budget Budget) (Budget, error) {
	totals, err := m.gateway.SumExpensesByCategory(ctx, budget.Range(), budget.Owner)
	if err != nil {
		return budget, err
	}

	spent := make(map[uuid.UUID]decimal.Decimal, len(totals))
	for _, t := range totals {
		spent[t.CategoryID] = spent[t.CategoryID].Add(t.Total)
	}

	categories := make([]CategoryBudget, 0, len(budget.Categories))
	for _, c := range budget.Categories {
		c.Spent = spent[c.CategoryID]
		err := m.gateway.StoreSpent(ctx, c.ID, c.Spent)
		if err != nil {
			return budget, err
		}
		categories = append(categories, c)
	}

	budget.Categories = categories
	return budget, nil
}

// CheckBudgetAlerts flags every category of every currently active budget that
// is more than 10% over its limit. The most exceeded categories come first.
//
// Gateway errors are logged and result in an empty list.
func (m *BudgetMonitor) CheckBudgetAlerts(ctx context.Context, owner Owner) []BudgetAlert {
	now := m.clock.Now()
	alerts := []BudgetAlert{}

	budgets, err := m.gateway.ActiveBudgets(ctx, owner, types.Day(now))
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("could not load active budgets for alert scan")
		return []BudgetAlert{}
	}

	for _, budget := range activeAt(budgets, now) {
		budget, err = m.RefreshSpent(ctx, budget)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Str("budget", budget.ID.String()).Msg("could not refresh spent amounts for alert scan")
			return []BudgetAlert{}
		}

		for _, c := range budget.Categories {
			if alert, ok := categoryAlert(budget, c); ok {
				alerts = append(alerts, alert)
			}
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].OveragePercentage > alerts[j].OveragePercentage
	})

	return alerts
}

func categoryAlert(budget Budget, c CategoryBudget) (BudgetAlert, bool) {
	if !c.Limit.IsPositive() || !c.Spent.GreaterThan(c.Limit.Mul(alertFactor)) {
		return BudgetAlert{}, false
	}

	alertType := AlertWarning
	if c.Spent.GreaterThanOrEqual(c.Limit.Mul(dangerFactor)) {
		alertType = AlertDanger
	}

	overage := c.Spent.Sub(c.Limit)
	overagePercentage := percentOf(overage, c.Limit)

	return BudgetAlert{
		Type:              alertType,
		BudgetID:          budget.ID,
		BudgetName:        budget.Name,
		CategoryID:        c.CategoryID,
		CategoryName:      c.CategoryName,
		Limit:             c.Limit,
		Spent:             c.Spent,
		Overage:           overage,
		PercentageUsed:    percentOf(c.Spent, c.Limit),
		OveragePercentage: overagePercentage,
		Message:           printer.Sprintf("%s is %.1f%% over its limit of %s", c.CategoryName, overagePercentage, amount(c.Limit)),
	}, true
}

// GetBudgetAnalysis refreshes the spent amounts of a budget and summarizes it.
func (m *BudgetMonitor) GetBudgetAnalysis(ctx context.Context, id uuid.UUID) (BudgetSummary, error) {
	budget, err := m.gateway.Budget(ctx, id)
	if err != nil {
		return BudgetSummary{}, err
	}

	budget, err = m.RefreshSpent(ctx, budget)
	if err != nil {
		return BudgetSummary{}, err
	}

	return summarize(budget), nil
}

// ActiveSummary summarizes the budget that is active now, if any.
func (m *BudgetMonitor) ActiveSummary(ctx context.Context, owner Owner) (*BudgetSummary, error) {
	now := m.clock.Now()

	budgets, err := m.gateway.ActiveBudgets(ctx, owner, types.Day(now))
	if err != nil {
		return nil, err
	}

	for _, budget := range activeAt(budgets, now) {
		budget, err = m.RefreshSpent(ctx, budget)
		if err != nil {
			return nil, err
		}

		summary := summarize(budget)
		return &summary, nil
	}

	return nil, nil
}

func summarize(budget Budget) BudgetSummary {
	summary := BudgetSummary{
		BudgetID:   budget.ID,
		Name:       budget.Name,
		Period:     budget.Range(),
		TotalLimit: budget.TotalLimit,
		Categories: make([]CategorySummary, 0, len(budget.Categories)),
	}

	for _, c := range budget.Categories {
		summary.TotalSpent = summary.TotalSpent.Add(c.Spent)

		percentage := percentOf(c.Spent, c.Limit)
		summary.Categories = append(summary.Categories, CategorySummary{
			CategoryID:     c.CategoryID,
			CategoryName:   c.CategoryName,
			Limit:          c.Limit,
			Spent:          c.Spent,
			Remaining:      c.Limit.Sub(c.Spent),
			PercentageUsed: percentage,
			IsOverBudget:   c.Spent.GreaterThan(c.Limit),
			IsNearLimit:    percentage >= nearLimitPercentage,
		})
	}

	summary.Remaining = summary.TotalLimit.Sub(summary.TotalSpent)
	summary.PercentageUsed = percentOf(summary.TotalSpent, summary.TotalLimit)

	return summary
}

// ValidateExpenseAgainstBudget checks a prospective expense against every
// budget active today that limits its category.
//
// An expense that would bring its category more than 10% over the limit is not
// allowed. Above the limit or above 90% of it, the expense is allowed with a
// warning. With several budgets, the strictest outcome is returned.
func (m *BudgetMonitor) ValidateExpenseAgainstBudget(ctx context.Context, check ExpenseCheck) (ExpenseValidation, error) {
	if !check.Amount.IsPositive() {
		return ExpenseValidation{}, ErrInvalidAmount
	}

	now := m.clock.Now()
	budgets, err := m.gateway.ActiveBudgets(ctx, check.Owner, types.Day(now))
	if err != nil {
		return ExpenseValidation{}, err
	}

	result := ExpenseValidation{Allowed: true}
	for _, budget := range activeAt(budgets, now) {
		if !limitsCategory(budget, check.CategoryID) {
			continue
		}

		budget, err = m.RefreshSpent(ctx, budget)
		if err != nil {
			return ExpenseValidation{}, err
		}

		validation := validateExpense(budget, check)
		if stricter(validation, result) {
			result = validation
		}
	}

	return result, nil
}

func limitsCategory(budget Budget, categoryID uuid.UUID) bool {
	for _, c := range budget.Categories {
		if c.CategoryID == categoryID {
			return true
		}
	}

	return false
}

// validateExpense checks an expense against the limit of its category in one budget.
func validateExpense(budget Budget, check ExpenseCheck) ExpenseValidation {
	var c CategoryBudget
	for _, candidate := range budget.Categories {
		if candidate.CategoryID == check.CategoryID {
			c = candidate
			break
		}
	}

	newSpent := c.Spent.Add(check.Amount)
	newPercentage := percentOf(newSpent, c.Limit)

	validation := ExpenseValidation{
		Allowed: true,
		Budget: &BudgetContext{
			BudgetID:      budget.ID,
			BudgetName:    budget.Name,
			Limit:         c.Limit,
			Spent:         c.Spent,
			NewSpent:      newSpent,
			NewPercentage: newPercentage,
		},
	}

	switch {
	case newSpent.GreaterThan(c.Limit.Mul(alertFactor)):
		validation.Allowed = false
		validation.Warning = printer.Sprintf("This expense would bring %s to %.1f%% of its limit of %s. Expenses more than 10%% over the limit are not allowed.", c.CategoryName, newPercentage, amount(c.Limit))
	case newSpent.GreaterThan(c.Limit):
		validation.Warning = printer.Sprintf("This expense exceeds the limit for %s by %s", c.CategoryName, amount(newSpent.Sub(c.Limit)))
	case newSpent.GreaterThan(c.Limit.Mul(nearLimitFactor)):
		validation.Warning = printer.Sprintf("%s will be at %.1f%% of its limit", c.CategoryName, newPercentage)
	}

	return validation
}

// stricter reports whether a is a stricter outcome than b. A block beats a
// warning, a warning beats silence. Within a tier the higher usage wins.
func stricter(a, b ExpenseValidation) bool {
	rank := func(v ExpenseValidation) int {
		switch {
		case !v.Allowed:
			return 2
		case v.Warning != "":
			return 1
		}
		return 0
	}

	if rank(a) != rank(b) {
		return rank(a) > rank(b)
	}

	if b.Budget == nil {
		return a.Budget != nil
	}

	return a.Budget != nil && a.Budget.NewPercentage > b.Budget.NewPercentage
}

// GetBudgetRecommendations proposes category limits from the average spend of
// the three months before the current one.
func (m *BudgetMonitor) GetBudgetRecommendations(ctx context.Context, owner Owner) (BudgetRecommendations, error) {
	month := types.MonthOf(m.clock.Now())
	period := types.DateRange{
		From:  month.AddDate(0, -3).Time(),
		Until: month.Time(),
	}

	totals, err := m.gateway.SumExpensesByCategory(ctx, period, owner)
	if err != nil {
		return BudgetRecommendations{}, err
	}

	recommendations := BudgetRecommendations{
		Categories: make([]CategoryRecommendation, 0, len(totals)),
	}

	months := decimal.NewFromInt(3)
	for _, t := range totals {
		average := t.Total.Div(months).Round(2)
		recommended := t.Total.Div(months).Mul(alertFactor).Ceil()

		recommendations.Categories = append(recommendations.Categories, CategoryRecommendation{
			CategoryID:       t.CategoryID,
			CategoryName:     t.CategoryName,
			AverageSpent:     average,
			RecommendedLimit: recommended,
		})
		recommendations.TotalRecommended = recommendations.TotalRecommended.Add(recommended)
	}

	sort.SliceStable(recommendations.Categories, func(i, j int) bool {
		return recommendations.Categories[i].RecommendedLimit.GreaterThan(recommendations.Categories[j].RecommendedLimit)
	})

	recommendations.SavingsGoal = recommendations.TotalRecommended.Mul(decimal.NewFromFloat(0.20)).Round(2)
	recommendations.EmergencyFund = recommendations.TotalRecommended.Mul(decimal.NewFromFloat(0.10)).Round(2)

	return recommendations, nil
}

// GetBudgetPerformance scores a budget and its categories.
func (m *BudgetMonitor) GetBudgetPerformance(ctx context.Context, id uuid.UUID) (BudgetPerformance, error) {
	summary, err := m.GetBudgetAnalysis(ctx, id)
	if err != nil {
		return BudgetPerformance{}, err
	}

	performance := BudgetPerformance{
		BudgetID:       summary.BudgetID,
		Name:           summary.Name,
		OverallScore:   overallScore(summary.PercentageUsed),
		PercentageUsed: summary.PercentageUsed,
		Categories:     make([]CategoryPerformance, 0, len(summary.Categories)),
		Suggestions:    []string{},
	}

	for _, c := range summary.Categories {
		performance.Categories = append(performance.Categories, CategoryPerformance{
			CategoryID:     c.CategoryID,
			CategoryName:   c.CategoryName,
			PercentageUsed: c.PercentageUsed,
			Score:          categoryScore(c),
		})

		switch {
		case c.IsOverBudget:
			performance.Suggestions = append(performance.Suggestions, printer.Sprintf("Reduce spending in %s, it is %s over its limit", c.CategoryName, amount(c.Spent.Sub(c.Limit))))
		case c.PercentageUsed > nearLimitPercentage:
			performance.Suggestions = append(performance.Suggestions, printer.Sprintf("%s is at %.1f%% of its limit, slow down until the end of the period", c.CategoryName, c.PercentageUsed))
		}
	}

	switch {
	case summary.PercentageUsed > 100:
		performance.Suggestions = append(performance.Suggestions, printer.Sprintf("The budget is exceeded by %s. Review the largest categories first.", amount(summary.TotalSpent.Sub(summary.TotalLimit))))
	case summary.PercentageUsed < 50:
		performance.Suggestions = append(performance.Suggestions, printer.Sprintf("Great job! Only %.1f%% of the budget is used.", summary.PercentageUsed))
	}

	if len(performance.Suggestions) == 0 {
		performance.Suggestions = append(performance.Suggestions, "Spending is on track with the budget.")
	}

	return performance, nil
}

func overallScore(percentageUsed float64) float64 {
	switch {
	case percentageUsed > 100:
		return round2(math.Max(0, 100-(percentageUsed-100)))
	case percentageUsed >= 90:
		return 85
	case percentageUsed >= 75:
		return 90
	default:
		return 100
	}
}

func categoryScore(c CategorySummary) int {
	switch {
	case c.IsOverBudget:
		return 0
	case c.PercentageUsed > 90:
		return 30
	case c.PercentageUsed > 75:
		return 70
	default:
		return 100
	}
}

// SuggestBudgetAdjustments proposes new limits for categories that are over,
// near or far below their limit. The most important adjustments come first.
func (m *BudgetMonitor) SuggestBudgetAdjustments(ctx context.Context, id uuid.UUID) ([]BudgetAdjustment, error) {
	summary, err := m.GetBudgetAnalysis(ctx, id)
	if err != nil {
		return nil, err
	}

	adjustments := []BudgetAdjustment{}
	for _, c := range summary.Categories {
		adjustment := BudgetAdjustment{
			CategoryID:   c.CategoryID,
			CategoryName: c.CategoryName,
			CurrentLimit: c.Limit,
		}

		switch {
		case c.IsOverBudget:
			adjustment.SuggestedLimit = c.Spent.Mul(decimal.NewFromFloat(1.20)).Round(2)
			adjustment.Priority = PriorityHigh
			adjustment.Reason = printer.Sprintf("Spent %s of %s. Raise the limit to what is realistic or cut back.", amount(c.Spent), amount(c.Limit))
		case c.PercentageUsed > nearLimitPercentage:
			adjustment.SuggestedLimit = c.Limit.Mul(alertFactor).Round(2)
			adjustment.Priority = PriorityMedium
			adjustment.Reason = printer.Sprintf("%.1f%% of the limit is used, a little more room avoids overspending.", c.PercentageUsed)
		case c.PercentageUsed < 50:
			adjustment.SuggestedLimit = c.Limit.Mul(nearLimitFactor).Round(2)
			adjustment.Priority = PriorityLow
			adjustment.Reason = printer.Sprintf("Only %.1f%% of the limit is used. Move %s to savings.", c.PercentageUsed, amount(c.Limit.Sub(c.Limit.Mul(nearLimitFactor).Round(2))))
		default:
			continue
		}

		if adjustment.SuggestedLimit.Equal(c.Limit) {
			continue
		}

		adjustments = append(adjustments, adjustment)
	}

	sort.SliceStable(adjustments, func(i, j int) bool {
		return adjustments[i].Priority.rank() < adjustments[j].Priority.rank()
	})

	return adjustments, nil
}
