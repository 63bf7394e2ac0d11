package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/envelope-zero/insights/internal/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monthly adds the same income and expense to each of the months before now.
func monthly(g *fakeGateway, months int, salary string, expenses ...string) *fakeGateway {
	for i := range months {
		day := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC).AddDate(0, i-months, 0)
		if salary != "" {
			g.income(analytics.IncomeSalary, salary, day)
		}

		if len(expenses) > 0 {
			g.expense(groceries, expenses[i%len(expenses)], day)
		}
	}

	return g
}

func riskTypes(risks []analytics.Risk) []analytics.RiskType {
	types := make([]analytics.RiskType, 0, len(risks))
	for _, r := range risks {
		types = append(types, r.Type)
	}
	return types
}

func TestForecastInvalidHorizon(t *testing.T) {
	engine := newEngine(newFakeGateway())

	for _, months := range []int{-1, 0, 25} {
		_, err := engine.Forecasts.Generate(context.Background(), owner, months)
		assert.ErrorIs(t, err, analytics.ErrInvalidHorizon, "months: %d", months)
	}
}

func TestForecastNewUser(t *testing.T) {
	forecast, err := newEngine(newFakeGateway()).Forecasts.Generate(context.Background(), owner, 6)
	require.Nil(t, err)

	assert.Equal(t, 6, forecast.Months)
	assert.True(t, forecast.Period.From.Equal(march2024.Time()))
	assert.True(t, forecast.Period.Until.Equal(march2024.AddDate(0, 6).Time()))

	assert.True(t, forecast.IncomeForecast.Predicted.IsZero())
	assert.True(t, forecast.ExpenseForecast.Predicted.IsZero())
	assert.Equal(t, 0.0, forecast.IncomeForecast.Confidence)
	assert.Equal(t, analytics.TrendStable, forecast.IncomeForecast.Trend.Direction)
	assert.Len(t, forecast.ExpenseForecast.Categories, 0)

	assert.Equal(t, 5.0, forecast.SavingsForecast.AchievableSavingsRate)
	assert.Len(t, forecast.SavingsForecast.Recommendations, 1)

	require.Len(t, forecast.Risks, 1)
	assert.Equal(t, analytics.RiskIncomeShortage, forecast.Risks[0].Type)
	assert.Equal(t, 100.0, forecast.Risks[0].Probability)
}

func TestForecastSteadyHistory(t *testing.T) {
	g := monthly(newFakeGateway(), 12, "3000", "1000")

	forecast, err := newEngine(g).Forecasts.Generate(context.Background(), owner, 3)
	require.Nil(t, err)

	assertDecimal(t, "9000", forecast.IncomeForecast.Predicted)
	assert.Equal(t, 95.0, forecast.IncomeForecast.Confidence)
	require.Len(t, forecast.IncomeForecast.Types, 1)
	assert.Equal(t, analytics.IncomeSalary, forecast.IncomeForecast.Types[0].Type)

	assertDecimal(t, "3000", forecast.ExpenseForecast.Predicted)
	require.Len(t, forecast.ExpenseForecast.Categories, 1)
	assert.Equal(t, "Groceries", forecast.ExpenseForecast.Categories[0].CategoryName)

	assertDecimal(t, "8100", forecast.BudgetRecommendation.RecommendedBudget)
	require.Len(t, forecast.BudgetRecommendation.Categories, 1)
	assertDecimal(t, "3150", forecast.BudgetRecommendation.Categories[0].RecommendedLimit)
	assert.Equal(t, analytics.PriorityLow, forecast.BudgetRecommendation.Categories[0].Priority)

	assertDecimal(t, "6000", forecast.SavingsForecast.Predicted)
	assert.InDelta(t, 66.67, forecast.SavingsForecast.AchievableSavingsRate, 0.001)
	assert.Contains(t, forecast.SavingsForecast.Recommendations[0], "investing")

	assert.Len(t, forecast.Risks, 0)
}

func TestForecastRisingExpenses(t *testing.T) {
	g := monthly(newFakeGateway(), 6, "1000", "100", "120", "140", "160", "180", "200").
		budget(analytics.Budget{
			ID:         householdID,
			Name:       "Household",
			TotalLimit: decimal100,
			StartDate:  march2024Start,
			EndDate:    march2024LastDay,
		})

	forecast, err := newEngine(g).Forecasts.Generate(context.Background(), owner, 1)
	require.Nil(t, err)

	require.Len(t, forecast.ExpenseForecast.Categories, 1)
	category := forecast.ExpenseForecast.Categories[0]
	assert.Equal(t, analytics.TrendIncreasing, category.Trend.Direction)
	assertDecimal(t, "182", category.Predicted)

	// Six constant salaries: (90 + 50) / 2
	assert.Equal(t, 70.0, forecast.IncomeForecast.Confidence)
	assertDecimal(t, "1000", forecast.IncomeForecast.Predicted)

	assert.Equal(t, []analytics.RiskType{analytics.RiskBudgetOverspend, analytics.RiskTrendChange}, riskTypes(forecast.Risks))
	assert.Equal(t, 90.0, forecast.Risks[0].Probability)
	assert.Equal(t, 70.0, forecast.Risks[1].Probability)
}

func TestForecastBudgetOverspendActiveBudget(t *testing.T) {
	g := monthly(newFakeGateway(), 6, "1000", "100", "120", "140", "160", "180", "200").
		budget(analytics.Budget{
			ID:         householdID,
			Name:       "Household",
			TotalLimit: decimal100,
			StartDate:  march2024Start,
			EndDate:    march2024LastDay,
		}).
		budget(event(25, 28))

	forecast, err := newEngine(g).Forecasts.Generate(context.Background(), owner, 1)
	require.Nil(t, err)

	require.Contains(t, riskTypes(forecast.Risks), analytics.RiskBudgetOverspend)
	assert.Contains(t, forecast.Risks[0].Description, "Household")
}

func TestForecastEndedBudget(t *testing.T) {
	g := monthly(newFakeGateway(), 6, "1000", "100", "120", "140", "160", "180", "200").
		budget(analytics.Budget{
			ID:         householdID,
			Name:       "Household",
			TotalLimit: decimal100,
			StartDate:  march2024Start,
			EndDate:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		})

	forecast, err := newEngine(g).Forecasts.Generate(context.Background(), owner, 1)
	require.Nil(t, err)

	assert.NotContains(t, riskTypes(forecast.Risks), analytics.RiskBudgetOverspend)
}

func TestForecastVolatileExpenses(t *testing.T) {
	g := monthly(newFakeGateway(), 6, "", "10", "100")

	forecast, err := newEngine(g).Forecasts.Generate(context.Background(), owner, 2)
	require.Nil(t, err)

	require.Len(t, forecast.BudgetRecommendation.Categories, 1)
	assert.Equal(t, analytics.PriorityHigh, forecast.BudgetRecommendation.Categories[0].Priority)

	// The alternating series fits a slightly rising line
	assert.Equal(t, []analytics.RiskType{analytics.RiskTrendChange, analytics.RiskSeasonalSpike}, riskTypes(forecast.Risks))
	assert.Equal(t, 60.0, forecast.Risks[1].Probability)
}

func TestForecastNegativeSavings(t *testing.T) {
	g := monthly(newFakeGateway(), 12, "1000", "2000")

	forecast, err := newEngine(g).Forecasts.Generate(context.Background(), owner, 2)
	require.Nil(t, err)

	assertDecimal(t, "-2000", forecast.SavingsForecast.Predicted)
	assert.Equal(t, 5.0, forecast.SavingsForecast.AchievableSavingsRate)
	assert.Contains(t, forecast.SavingsForecast.Recommendations[0], "exceed income")
}

func TestForecastGatewayError(t *testing.T) {
	g := newFakeGateway()
	g.err = errGatewayDisabled

	_, err := newEngine(g).Forecasts.Generate(context.Background(), owner, 3)
	assert.ErrorIs(t, err, errGatewayDisabled)
}
