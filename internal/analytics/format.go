package analytics

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

var hundred = decimal.NewFromInt(100)

// swagger:enum Priority
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// rank orders priorities, lower is more important.
func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// amount formats a monetary amount with thousands separators.
func amount(d decimal.Decimal) string {
	return printer.Sprintf("%.2f", d.InexactFloat64())
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// percentOf returns part as a percentage of total, rounded to two decimals.
// A zero total yields 0.
func percentOf(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}

	return round2(part.Div(total).Mul(hundred).InexactFloat64())
}

// percentChange returns the change from previous to current in percent.
//
// The absolute previous value is the denominator so that the sign of the
// result always follows the direction of the change. A change from zero is
// 100%, unless current is zero as well.
func percentChange(previous, current decimal.Decimal) float64 {
	if previous.IsZero() {
		if current.IsZero() {
			return 0
		}
		return 100
	}

	return round2(current.Sub(previous).Div(previous.Abs()).Mul(hundred).InexactFloat64())
}

func clamp(f, low, high float64) float64 {
	return math.Max(low, math.Min(high, f))
}
