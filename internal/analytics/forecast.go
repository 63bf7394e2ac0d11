package analytics

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/envelope-zero/insights/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	minHorizon     = 1
	maxHorizon     = 24
	historyMonths  = 12
	shortageCutoff = 70
)

type IncomeTypeForecast struct {
	Type      IncomeType      `json:"type" example:"salary"`
	Predicted decimal.Decimal `json:"predicted" example:"24000"`
	Trend     Trend           `json:"trend"`
}

type CategoryForecast struct {
	CategoryID   uuid.UUID       `json:"categoryId" example:"9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"`
	CategoryName string          `json:"categoryName" example:"Groceries"`
	Predicted    decimal.Decimal `json:"predicted" example:"1800"`
	Trend        Trend           `json:"trend"`
}

type IncomeForecast struct {
	Predicted  decimal.Decimal      `json:"predicted" example:"24000"`
	Confidence float64              `json:"confidence" example:"85"`
	Trend      Trend                `json:"trend"`
	Types      []IncomeTypeForecast `json:"types"`
}

type ExpenseForecast struct {
	Predicted  decimal.Decimal    `json:"predicted" example:"19500"`
	Confidence float64            `json:"confidence" example:"80"`
	Trend      Trend              `json:"trend"`
	Categories []CategoryForecast `json:"categories"`
}

type CategoryLimitRecommendation struct {
	CategoryID       uuid.UUID       `json:"categoryId" example:"9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"`
	CategoryName     string          `json:"categoryName" example:"Groceries"`
	Predicted        decimal.Decimal `json:"predicted" example:"1800"`
	RecommendedLimit decimal.Decimal `json:"recommendedLimit" example:"1890"`
	Priority         Priority        `json:"priority" example:"low"`
	Reason           string          `json:"reason" example:"Spending is steady, a small buffer is enough"`
}

type BudgetRecommendation struct {
	RecommendedBudget decimal.Decimal               `json:"recommendedBudget" example:"21600"`
	Categories        []CategoryLimitRecommendation `json:"categories"`
}

type SavingsForecast struct {
	Predicted             decimal.Decimal `json:"predicted" example:"4500"`
	AchievableSavingsRate float64         `json:"achievableSavingsRate" example:"18.75"`
	Recommendations       []string        `json:"recommendations"`
}

// swagger:enum RiskType
type RiskType string

const (
	RiskBudgetOverspend RiskType = "budget_overspend"
	RiskIncomeShortage  RiskType = "income_shortage"
	RiskSeasonalSpike   RiskType = "seasonal_spike"
	RiskTrendChange     RiskType = "trend_change"
)

type Risk struct {
	Type        RiskType `json:"type" example:"seasonal_spike"`
	Probability float64  `json:"probability" example:"60"` // 0 to 100
	Impact      Priority `json:"impact" example:"medium"`
	Description string   `json:"description" example:"Spending in Travel varies strongly from month to month"`
	Mitigation  string   `json:"mitigation" example:"Set money aside in calm months"`
}

type ForecastData struct {
	Months               int                  `json:"months" example:"3"`
	Period               types.DateRange      `json:"period"`
	GeneratedAt          time.Time            `json:"generatedAt" example:"2024-03-14T09:30:00Z"`
	IncomeForecast       IncomeForecast       `json:"incomeForecast"`
	ExpenseForecast      ExpenseForecast      `json:"expenseForecast"`
	BudgetRecommendation BudgetRecommendation `json:"budgetRecommendation"`
	SavingsForecast      SavingsForecast      `json:"savingsForecast"`
	Risks                []Risk               `json:"risks"`
}

// ForecastGenerator projects incomes and expenses from their history.
type ForecastGenerator struct {
	gateway Gateway
	clock   Clock
}

func NewForecastGenerator(gateway Gateway, clock Clock) *ForecastGenerator {
	return &ForecastGenerator{gateway: gateway, clock: clock}
}

// history holds the monthly series of the months before the forecast.
type history struct {
	incomes       map[IncomeType][]float64
	expenses      map[uuid.UUID][]float64
	categoryNames map[uuid.UUID]string
	incomeTotals  []float64
	expenseTotals []float64
}

// loadHistory reads the twelve full months before current. Leading months without
// any income or expense are dropped.
func (f *ForecastGenerator) loadHistory(ctx context.Context, owner Owner, current types.Month) (history, error) {
	incomes := make([][]IncomeTotal, historyMonths)
	expenses := make([][]CategoryTotal, historyMonths)

	g, ctx := errgroup.WithContext(ctx)
	for i := range historyMonths {
		month := current.AddDate(0, i-historyMonths)

		g.Go(func() (err error) {
			incomes[i], err = f.gateway.SumIncomeByType(ctx, month.Range(), owner)
			return
		})

		g.Go(func() (err error) {
			expenses[i], err = f.gateway.SumExpensesByCategory(ctx, month.Range(), owner)
			return
		})
	}

	if err := g.Wait(); err != nil {
		return history{}, err
	}

	start := historyMonths
	for i := range historyMonths {
		if len(incomes[i]) > 0 || len(expenses[i]) > 0 {
			start = i
			break
		}
	}
	length := historyMonths - start

	h := history{
		incomes:       make(map[IncomeType][]float64),
		expenses:      make(map[uuid.UUID][]float64),
		categoryNames: make(map[uuid.UUID]string),
		incomeTotals:  make([]float64, length),
		expenseTotals: make([]float64, length),
	}

	for i := start; i < historyMonths; i++ {
		index := i - start

		for _, t := range incomes[i] {
			if _, ok := h.incomes[t.Type]; !ok {
				h.incomes[t.Type] = make([]float64, length)
			}
			v := t.Total.InexactFloat64()
			h.incomes[t.Type][index] += v
			h.incomeTotals[index] += v
		}

		for _, t := range expenses[i] {
			if _, ok := h.expenses[t.CategoryID]; !ok {
				h.expenses[t.CategoryID] = make([]float64, length)
			}
			h.categoryNames[t.CategoryID] = t.CategoryName
			v := t.Total.InexactFloat64()
			h.expenses[t.CategoryID][index] += v
			h.expenseTotals[index] += v
		}
	}

	return h, nil
}

// Generate forecasts the next months, starting with the current one.
func (f *ForecastGenerator) Generate(ctx context.Context, owner Owner, months int) (ForecastData, error) {
	if months < minHorizon || months > maxHorizon {
		return ForecastData{}, ErrInvalidHorizon
	}

	now := f.clock.Now()
	current := types.MonthOf(now)

	var (
		h       history
		budgets []Budget
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		h, err = f.loadHistory(gctx, owner, current)
		return
	})

	g.Go(func() (err error) {
		budgets, err = f.gateway.ActiveBudgets(gctx, owner, current.Range())
		return
	})

	if err := g.Wait(); err != nil {
		return ForecastData{}, err
	}

	forecast := ForecastData{
		Months: months,
		Period: types.DateRange{
			From:  current.Time(),
			Until: current.AddDate(0, months).Time(),
		},
		GeneratedAt:     now,
		IncomeForecast:  forecastIncome(h, months),
		ExpenseForecast: forecastExpenses(h, months),
	}

	forecast.BudgetRecommendation = recommendBudget(forecast.IncomeForecast, forecast.ExpenseForecast)
	forecast.SavingsForecast = forecastSavings(forecast.IncomeForecast, forecast.ExpenseForecast)

	var active *Budget
	if running := activeAt(budgets, now); len(running) > 0 {
		active = &running[0]
	}
	forecast.Risks = analyzeRisks(forecast, active)

	return forecast, nil
}

func projectSeries(series []float64, months int) (decimal.Decimal, Trend) {
	trend := AnalyzeTrend(series)
	return decimal.NewFromFloat(Project(baseValue(series), trend, months)).Round(2), trend
}

func forecastIncome(h history, months int) IncomeForecast {
	trend := AnalyzeTrend(h.incomeTotals)
	forecast := IncomeForecast{
		Confidence: trend.Confidence,
		Trend:      trend,
		Types:      make([]IncomeTypeForecast, 0, len(h.incomes)),
	}

	for t, series := range h.incomes {
		predicted, trend := projectSeries(series, months)
		forecast.Types = append(forecast.Types, IncomeTypeForecast{
			Type:      t,
			Predicted: predicted,
			Trend:     trend,
		})
		forecast.Predicted = forecast.Predicted.Add(predicted)
	}

	sort.Slice(forecast.Types, func(i, j int) bool {
		return forecast.Types[i].Type < forecast.Types[j].Type
	})

	return forecast
}

func forecastExpenses(h history, months int) ExpenseForecast {
	trend := AnalyzeTrend(h.expenseTotals)
	forecast := ExpenseForecast{
		Confidence: trend.Confidence,
		Trend:      trend,
		Categories: make([]CategoryForecast, 0, len(h.expenses)),
	}

	for id, series := range h.expenses {
		predicted, trend := projectSeries(series, months)
		forecast.Categories = append(forecast.Categories, CategoryForecast{
			CategoryID:   id,
			CategoryName: h.categoryNames[id],
			Predicted:    predicted,
			Trend:        trend,
		})
		forecast.Predicted = forecast.Predicted.Add(predicted)
	}

	sort.Slice(forecast.Categories, func(i, j int) bool {
		a, b := forecast.Categories[i], forecast.Categories[j]
		if !a.Predicted.Equal(b.Predicted) {
			return a.Predicted.GreaterThan(b.Predicted)
		}
		return a.CategoryName < b.CategoryName
	})

	return forecast
}

func recommendBudget(income IncomeForecast, expenses ExpenseForecast) BudgetRecommendation {
	recommendation := BudgetRecommendation{
		RecommendedBudget: income.Predicted.Mul(nearLimitFactor).Round(2),
		Categories:        make([]CategoryLimitRecommendation, 0, len(expenses.Categories)),
	}

	for _, c := range expenses.Categories {
		r := CategoryLimitRecommendation{
			CategoryID:   c.CategoryID,
			CategoryName: c.CategoryName,
			Predicted:    c.Predicted,
		}

		switch {
		case c.Trend.Direction == TrendIncreasing && c.Trend.Volatility == VolatilityHigh:
			r.RecommendedLimit = c.Predicted.Mul(alertFactor).Round(2)
			r.Priority = PriorityHigh
			r.Reason = "Spending is rising and erratic, the limit includes a 10% buffer"
		case c.Trend.Direction == TrendDecreasing:
			r.RecommendedLimit = c.Predicted.Mul(decimal.NewFromFloat(0.95)).Round(2)
			r.Priority = PriorityLow
			r.Reason = "Spending is going down, a tighter limit locks in the savings"
		case c.Trend.Volatility == VolatilityLow:
			r.RecommendedLimit = c.Predicted.Mul(decimal.NewFromFloat(1.05)).Round(2)
			r.Priority = PriorityLow
			r.Reason = "Spending is steady, a small buffer is enough"
		default:
			r.RecommendedLimit = c.Predicted
			r.Priority = PriorityMedium
			r.Reason = "Spending varies, the limit follows the forecast"
		}

		recommendation.Categories = append(recommendation.Categories, r)
	}

	return recommendation
}

func forecastSavings(income IncomeForecast, expenses ExpenseForecast) SavingsForecast {
	predicted := income.Predicted.Sub(expenses.Predicted)
	rate := percentOf(predicted, income.Predicted)

	forecast := SavingsForecast{
		Predicted:             predicted,
		AchievableSavingsRate: math.Max(5, rate),
	}

	switch {
	case predicted.IsNegative():
		forecast.Recommendations = []string{
			printer.Sprintf("Expenses are expected to exceed income by %s. Cut non-essential spending now.", amount(predicted.Neg())),
			"Look for additional income or postpone large purchases.",
		}
	case rate < 10:
		forecast.Recommendations = []string{
			printer.Sprintf("The expected savings rate is only %.1f%%. Tighten the largest categories to reach 10%%.", rate),
		}
	case rate > 25:
		forecast.Recommendations = []string{
			printer.Sprintf("You can expect to save %s. Consider investing part of it.", amount(predicted)),
		}
	default:
		forecast.Recommendations = []string{
			printer.Sprintf("You are on track to save %s. Keep your current habits.", amount(predicted)),
		}
	}

	return forecast
}

// analyzeRisks lists the risks of a forecast, most probable first.
func analyzeRisks(forecast ForecastData, budget *Budget) []Risk {
	risks := []Risk{}

	if budget != nil && budget.TotalLimit.IsPositive() && forecast.Months > 0 {
		monthly := forecast.ExpenseForecast.Predicted.Div(decimal.NewFromInt(int64(forecast.Months)))
		ratio := monthly.Div(budget.TotalLimit).InexactFloat64()

		if ratio > 1.10 {
			risks = append(risks, Risk{
				Type:        RiskBudgetOverspend,
				Probability: round2(math.Min(90, ratio*50)),
				Impact:      PriorityHigh,
				Description: printer.Sprintf("Expected monthly expenses of %s exceed the budget %s of %s", amount(monthly), budget.Name, amount(budget.TotalLimit)),
				Mitigation:  "Reduce spending in the growing categories or adjust the budget",
			})
		}
	}

	if forecast.IncomeForecast.Confidence < shortageCutoff {
		risks = append(risks, Risk{
			Type:        RiskIncomeShortage,
			Probability: 100 - forecast.IncomeForecast.Confidence,
			Impact:      PriorityHigh,
			Description: "Income is irregular or there is little income history",
			Mitigation:  "Build an emergency fund covering at least three months of expenses",
		})
	}

	var volatile []string
	increasing := 0
	for _, c := range forecast.ExpenseForecast.Categories {
		if c.Trend.Volatility == VolatilityHigh {
			volatile = append(volatile, c.CategoryName)
		}

		if c.Trend.Direction == TrendIncreasing {
			increasing++
		}
	}

	if len(volatile) > 0 {
		risks = append(risks, Risk{
			Type:        RiskSeasonalSpike,
			Probability: 60,
			Impact:      PriorityMedium,
			Description: printer.Sprintf("Spending in %s varies strongly from month to month", volatile[0]),
			Mitigation:  "Set money aside in calm months for the expensive ones",
		})
	}

	if categories := len(forecast.ExpenseForecast.Categories); categories > 0 && increasing*2 > categories {
		risks = append(risks, Risk{
			Type:        RiskTrendChange,
			Probability: 70,
			Impact:      PriorityMedium,
			Description: printer.Sprintf("Spending is rising in %d of %d categories", increasing, categories),
			Mitigation:  "Review recurring costs and subscriptions",
		})
	}

	sort.SliceStable(risks, func(i, j int) bool {
		return risks[i].Probability > risks[j].Probability
	})

	return risks
}
