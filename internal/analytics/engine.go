package analytics

import (
	"math/rand"
)

// Engine bundles the services of the analytics engine.
type Engine struct {
	Clock     Clock
	Budgets   *BudgetMonitor
	Reports   *ReportAggregator
	Forecasts *ForecastGenerator
	Advice    *AdviceGenerator
}

type options struct {
	clock Clock
	rand  RandomSource
}

type Option func(*options)

// WithClock sets the clock used for everything that depends on the current time.
func WithClock(clock Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithRand sets the random source for randomized content.
func WithRand(rand RandomSource) Option {
	return func(o *options) {
		o.rand = rand
	}
}

// globalRand uses the concurrency safe top-level functions of math/rand.
type globalRand struct{}

func (globalRand) Intn(n int) int {
	return rand.Intn(n)
}

// New wires up an Engine reading from the gateway.
func New(gateway Gateway, opts ...Option) *Engine {
	o := options{
		clock: SystemClock,
		rand:  globalRand{},
	}

	for _, opt := range opts {
		opt(&o)
	}

	budgets := NewBudgetMonitor(gateway, o.clock)
	reports := NewReportAggregator(gateway, o.clock)

	return &Engine{
		Clock:     o.clock,
		Budgets:   budgets,
		Reports:   reports,
		Forecasts: NewForecastGenerator(gateway, o.clock),
		Advice:    NewAdviceGenerator(gateway, o.clock, o.rand, reports, budgets),
	}
}
