package analytics

import (
	"math"
)

// trendWindow is the maximum number of monthly samples a trend is computed on.
const trendWindow = 12

// minTrendPoints is the minimum number of samples needed to fit a trend.
const minTrendPoints = 3

// swagger:enum TrendDirection
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// swagger:enum Volatility
type Volatility string

const (
	VolatilityLow    Volatility = "low"
	VolatilityMedium Volatility = "medium"
	VolatilityHigh   Volatility = "high"
)

type Seasonality struct {
	HasPattern bool `json:"hasPattern" example:"false"` // Whether a periodic pattern has been detected
}

// Trend summarizes a monthly series.
type Trend struct {
	Direction   TrendDirection `json:"direction" example:"increasing"`
	Strength    float64        `json:"strength" example:"13.33"`    // Slope relative to the mean in percent, 0 to 100
	Volatility  Volatility     `json:"volatility" example:"medium"` // Classification of the coefficient of variation
	Confidence  float64        `json:"confidence" example:"60"`     // 0 to 100
	Seasonality Seasonality    `json:"seasonality"`
}

// AnalyzeTrend fits a trend to a series of monthly values, oldest first.
//
// Only the last 12 values are considered. Series with less than three values
// are always stable with zero strength and confidence.
func AnalyzeTrend(series []float64) Trend {
	if len(series) > trendWindow {
		series = series[len(series)-trendWindow:]
	}

	trend := Trend{
		Direction:  TrendStable,
		Volatility: volatility(series),
	}

	if len(series) < minTrendPoints {
		return trend
	}

	completeness := math.Min(100, float64(len(series))/trendWindow*100)
	trend.Confidence = math.Round((volatilityScore(trend.Volatility) + completeness) / 2)

	m := math.Abs(mean(series))
	if m == 0 {
		return trend
	}

	slope := slope(series)
	trend.Strength = round2(clamp(math.Abs(slope)/m*100, 0, 100))

	switch {
	case slope > 0.05*m:
		trend.Direction = TrendIncreasing
	case slope < -0.05*m:
		trend.Direction = TrendDecreasing
	}

	return trend
}

// Project sums the expected values of the next months, starting from a
// monthly base value.
//
// Stable trends project the base unchanged. Otherwise, the base grows or
// shrinks by strength/100/12 each month, compounded.
func Project(base float64, trend Trend, months int) float64 {
	if months <= 0 {
		return 0
	}

	if trend.Direction == TrendStable {
		return base * float64(months)
	}

	rate := trend.Strength / 100 / 12
	multiplier := 1 + rate
	if trend.Direction == TrendDecreasing {
		multiplier = 1 - rate
	}

	var total float64
	factor := 1.0
	for i := 1; i <= months; i++ {
		factor *= multiplier
		total += base * factor
	}

	return total
}

// baseValue is the mean of the last three samples of a series.
func baseValue(series []float64) float64 {
	if len(series) > minTrendPoints {
		series = series[len(series)-minTrendPoints:]
	}

	return mean(series)
}

func mean(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}

	var sum float64
	for _, v := range series {
		sum += v
	}

	return sum / float64(len(series))
}

// slope is the ordinary least squares slope of the values against their index.
func slope(series []float64) float64 {
	n := float64(len(series))

	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range series {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	denominator := n*sumX2 - sumX*sumX
	if denominator == 0 {
		return 0
	}

	return (n*sumXY - sumX*sumY) / denominator
}

// volatility classifies the coefficient of variation of a series.
func volatility(series []float64) Volatility {
	if len(series) < 2 {
		return VolatilityLow
	}

	m := mean(series)
	if m == 0 {
		return VolatilityLow
	}

	var squares float64
	for _, v := range series {
		squares += (v - m) * (v - m)
	}
	cv := math.Sqrt(squares/float64(len(series))) / math.Abs(m)

	switch {
	case cv < 0.2:
		return VolatilityLow
	case cv < 0.5:
		return VolatilityMedium
	default:
		return VolatilityHigh
	}
}

func volatilityScore(v Volatility) float64 {
	switch v {
	case VolatilityLow:
		return 90
	case VolatilityMedium:
		return 70
	default:
		return 50
	}
}
