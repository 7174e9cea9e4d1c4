package calculation

import (
	"fmt"
	"time"

	"github.com/mribeiro/tributa/internal/domain"
	"github.com/shopspring/decimal"
)

// EngineConfig carries the tunable pieces of the engine. Zero values fall
// back to the statutory defaults.
type EngineConfig struct {
	Schedules             Schedules
	CriticalMonthlyDelta  decimal.Decimal
	RegimeSpreadThreshold decimal.Decimal
	ForecastMonths        int
}

// DefaultEngineConfig returns the statutory schedules and thresholds.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Schedules:             DefaultSchedules(),
		CriticalMonthlyDelta:  decimal.NewFromInt(5000),
		RegimeSpreadThreshold: decimal.NewFromInt(10000),
		ForecastMonths:        domain.MaxProjections,
	}
}

// Engine composes the regime calculators, the transition analyzer and the
// advisor into a single computation over one input record. It holds no
// request state; one engine may serve any number of independent inputs.
type Engine struct {
	Simples   *SimplesCalculator
	Presumido *PresumidoCalculator
	Real      *RealCalculator
	Analyzer  *TransitionAnalyzer
	Advisor   *Advisor

	ForecastMonths int
	Logger         Logger
}

// NewEngine creates an engine with the default configuration.
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultEngineConfig())
}

// NewEngineWithConfig creates an engine from explicit configuration.
func NewEngineWithConfig(cfg EngineConfig) *Engine {
	if len(cfg.Schedules.Goods.Brackets) == 0 {
		cfg.Schedules = DefaultSchedules()
	}
	simples := NewSimplesCalculatorWithSchedules(cfg.Schedules)
	presumido := NewPresumidoCalculator()
	real := NewRealCalculator()

	analyzer := NewTransitionAnalyzer(simples)
	if cfg.CriticalMonthlyDelta.IsPositive() {
		analyzer.CriticalMonthlyDelta = cfg.CriticalMonthlyDelta
	}
	advisor := NewAdvisor(simples, presumido, real, analyzer)
	if cfg.RegimeSpreadThreshold.IsPositive() {
		advisor.RegimeSpreadThreshold = cfg.RegimeSpreadThreshold
	}

	months := cfg.ForecastMonths
	if months <= 0 || months > domain.MaxProjections {
		months = domain.MaxProjections
	}

	return &Engine{
		Simples:        simples,
		Presumido:      presumido,
		Real:           real,
		Analyzer:       analyzer,
		Advisor:        advisor,
		ForecastMonths: months,
		Logger:         NopLogger{},
	}
}

// SetLogger installs a logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

// RunAll computes the requested regimes and, in derived mode, the transition
// alerts, the monthly forecast and the optimization suggestions. With no
// regimes given, all three are computed.
func (e *Engine) RunAll(input *domain.FinancialInput, regimes ...domain.RegimeType) (*domain.Analysis, error) {
	if input == nil {
		return nil, fmt.Errorf("financial input is required")
	}
	if len(regimes) == 0 {
		regimes = domain.AllRegimes
	}

	analysis := &domain.Analysis{
		Results: make(map[domain.RegimeType]*domain.RegimeResult, len(regimes)),
	}
	for _, regime := range regimes {
		result, err := e.runRegime(input, regime)
		if err != nil {
			return nil, err
		}
		e.deriveSummary(input, result)
		analysis.Results[regime] = result
		e.Logger.Debugf("computed %s: total cost %s", regime.DisplayName(), result.TotalCost)
	}

	analysis.Recommended = recommend(analysis.Results)

	if input.Mode == domain.ModeDerived {
		analysis.Transitions = e.Analyzer.Analyze(input)
		analysis.Projections = e.forecast(input)
		analysis.Suggestions = e.Advisor.Suggest(input)
	}
	return analysis, nil
}

func (e *Engine) runRegime(input *domain.FinancialInput, regime domain.RegimeType) (*domain.RegimeResult, error) {
	switch regime {
	case domain.RegimeSimples:
		return e.Simples.Calculate(input, nil), nil
	case domain.RegimePresumido:
		return e.Presumido.Calculate(input), nil
	case domain.RegimeReal:
		return e.Real.Calculate(input), nil
	}
	return nil, fmt.Errorf("unknown regime %q", regime)
}

// deriveSummary fills the cross-regime summary figures: net profit and the
// effective overall rate as a percentage of total revenue.
func (e *Engine) deriveSummary(input *domain.FinancialInput, result *domain.RegimeResult) {
	result.NetProfit = input.TotalRevenue.Sub(input.OperatingCosts()).Sub(result.TotalCost)
	if input.TotalRevenue.IsZero() {
		result.EffectiveRate = decimal.Zero
		return
	}
	result.EffectiveRate = result.TotalCost.Div(input.TotalRevenue).Mul(decimal.NewFromInt(100))
}

// recommend picks the cheapest computed regime, breaking ties by the
// canonical regime order: the first minimum wins.
func recommend(results map[domain.RegimeType]*domain.RegimeResult) domain.RegimeType {
	var best domain.RegimeType
	var bestCost decimal.Decimal
	for _, regime := range domain.AllRegimes {
		result, ok := results[regime]
		if !ok {
			continue
		}
		if best == "" || result.TotalCost.LessThan(bestCost) {
			best = regime
			bestCost = result.TotalCost
		}
	}
	return best
}

// forecast builds the month-by-month projection table over the horizon. The
// profit regimes do not depend on the rolling window, so their cost is
// computed once.
func (e *Engine) forecast(input *domain.FinancialInput) []domain.MonthlyProjection {
	rolling := NewRollingRevenue(input)
	months := rolling.Horizon()
	if months > e.ForecastMonths {
		months = e.ForecastMonths
	}

	presumidoCost := e.Presumido.Calculate(input).TotalCost
	realCost := e.Real.Calculate(input).TotalCost

	projections := make([]domain.MonthlyProjection, 0, months)
	for month := 0; month < months; month++ {
		rbt12 := rolling.At(month)
		simples := e.Simples.Calculate(input, &rbt12)
		projections = append(projections, domain.MonthlyProjection{
			MonthOffset:    month,
			RBT12:          rbt12,
			SimplesCost:    simples.TotalCost,
			PresumidoCost:  presumidoCost,
			RealCost:       realCost,
			SimplesBracket: simples.BracketIndex,
		})
	}
	return projections
}

// BuildReport wraps a full computation with the input echo and a generation
// timestamp for export.
func (e *Engine) BuildReport(input *domain.FinancialInput, regimes ...domain.RegimeType) (*domain.Report, error) {
	analysis, err := e.RunAll(input, regimes...)
	if err != nil {
		return nil, err
	}
	return &domain.Report{
		GeneratedAt: time.Now(),
		Mode:        input.Mode,
		Input:       input,
		Analysis:    analysis,
	}, nil
}
