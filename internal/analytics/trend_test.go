package analytics_test

import (
	"testing"

	"github.com/envelope-zero/insights/internal/analytics"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeTrendFewPoints(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
	}{
		{"No points", nil},
		{"One point", []float64{500}},
		{"Two points", []float64{100, 900}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := analytics.AnalyzeTrend(tt.series)
			assert.Equal(t, analytics.TrendStable, trend.Direction)
			assert.Equal(t, 0.0, trend.Strength)
			assert.Equal(t, 0.0, trend.Confidence)
			assert.False(t, trend.Seasonality.HasPattern)
		})
	}
}

func TestAnalyzeTrend(t *testing.T) {
	tests := []struct {
		name       string
		series     []float64
		direction  analytics.TrendDirection
		strength   float64
		volatility analytics.Volatility
		confidence float64
	}{
		{"Constant", []float64{100, 100, 100, 100}, analytics.TrendStable, 0, analytics.VolatilityLow, 62},
		{"Increasing", []float64{100, 120, 140, 160, 180, 200}, analytics.TrendIncreasing, 13.33, analytics.VolatilityMedium, 60},
		{"Decreasing", []float64{200, 180, 160, 140, 120, 100}, analytics.TrendDecreasing, 13.33, analytics.VolatilityMedium, 60},
		{"All zero", []float64{0, 0, 0}, analytics.TrendStable, 0, analytics.VolatilityLow, 58},
		{"Only last twelve count", []float64{1000, 1000, 1000, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100}, analytics.TrendStable, 0, analytics.VolatilityLow, 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := analytics.AnalyzeTrend(tt.series)
			assert.Equal(t, tt.direction, trend.Direction)
			assert.InDelta(t, tt.strength, trend.Strength, 0.01)
			assert.Equal(t, tt.volatility, trend.Volatility)
			assert.Equal(t, tt.confidence, trend.Confidence)
		})
	}
}

func TestAnalyzeTrendHighVolatility(t *testing.T) {
	trend := analytics.AnalyzeTrend([]float64{10, 100, 10, 100})
	assert.Equal(t, analytics.VolatilityHigh, trend.Volatility)

	// (50 + 4/12*100) / 2, rounded
	assert.Equal(t, 42.0, trend.Confidence)
}

func TestAnalyzeTrendIncompleteHistoryLowersConfidence(t *testing.T) {
	trend := analytics.AnalyzeTrend([]float64{100, 120, 140, 160, 180, 200})
	assert.Less(t, trend.Confidence, 100.0)
	assert.Greater(t, trend.Strength, 0.0)
}

func TestProject(t *testing.T) {
	tests := []struct {
		name   string
		base   float64
		trend  analytics.Trend
		months int
		want   float64
	}{
		{"Stable", 100, analytics.Trend{Direction: analytics.TrendStable, Strength: 50}, 3, 300},
		{"Increasing compounds", 100, analytics.Trend{Direction: analytics.TrendIncreasing, Strength: 12}, 2, 203.01},
		{"Decreasing compounds", 100, analytics.Trend{Direction: analytics.TrendDecreasing, Strength: 12}, 2, 197.01},
		{"No months", 100, analytics.Trend{Direction: analytics.TrendIncreasing, Strength: 12}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, analytics.Project(tt.base, tt.trend, tt.months), 0.0001)
		})
	}
}
