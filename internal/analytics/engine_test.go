package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/envelope-zero/insights/internal/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	engine := analytics.New(newFakeGateway())

	require.NotNil(t, engine.Budgets)
	require.NotNil(t, engine.Reports)
	require.NotNil(t, engine.Forecasts)
	require.NotNil(t, engine.Advice)
	require.NotNil(t, engine.Clock)

	// The system clock and the global random source are used
	advice := engine.Advice.Daily(context.Background(), owner)
	assert.NotEmpty(t, advice)
}

func TestSystemClockIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, analytics.SystemClock.Now().Location())
}

func TestBudgetRangeIncludesLastDay(t *testing.T) {
	b := household()

	assert.True(t, b.Range().Contains(time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, b.Range().Contains(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, b.Range().Contains(march2024Start))
}

func TestIncomeTypeValid(t *testing.T) {
	assert.True(t, analytics.IncomeSalary.Valid())
	assert.True(t, analytics.IncomeOther.Valid())
	assert.False(t, analytics.IncomeType("lottery").Valid())
}
