package calculation

import (
	"github.com/mribeiro/tributa/internal/domain"
	"github.com/shopspring/decimal"
)

// TransitionAnalyzer walks the forecast horizon and flags months where the
// Simples Nacional bracket changes between consecutive rolling windows.
type TransitionAnalyzer struct {
	Simples *SimplesCalculator

	// CriticalMonthlyDelta is the absolute monthly tax impact above which a
	// transition is classified critical.
	CriticalMonthlyDelta decimal.Decimal
}

// NewTransitionAnalyzer uses the default 5,000/month severity threshold.
func NewTransitionAnalyzer(simples *SimplesCalculator) *TransitionAnalyzer {
	return &TransitionAnalyzer{
		Simples:              simples,
		CriticalMonthlyDelta: decimal.NewFromInt(5000),
	}
}

// Analyze returns one alert per detected bracket change. It returns nothing
// in direct mode, where no projection horizon exists.
func (ta *TransitionAnalyzer) Analyze(input *domain.FinancialInput) []domain.TransitionAlert {
	if input.Mode != domain.ModeDerived {
		return nil
	}

	rolling := NewRollingRevenue(input)
	months := rolling.Horizon()
	twelve := decimal.NewFromInt(12)

	var alerts []domain.TransitionAlert
	for month := 0; month < months; month++ {
		rbt12Current := rolling.At(month)
		rbt12Next := rolling.At(month + 1)

		current := ta.Simples.Calculate(input, &rbt12Current)
		next := ta.Simples.Calculate(input, &rbt12Next)
		if current.BracketIndex == next.BracketIndex {
			continue
		}

		monthlyDelta := next.TotalCost.Sub(current.TotalCost).Div(twelve)
		severity := domain.SeverityModerate
		if monthlyDelta.Abs().GreaterThan(ta.CriticalMonthlyDelta) {
			severity = domain.SeverityCritical
		}

		alerts = append(alerts, domain.TransitionAlert{
			MonthOffset:     month + 1,
			FromBracket:     current.BracketIndex,
			ToBracket:       next.BracketIndex,
			FromName:        domain.BracketName(current.BracketIndex),
			ToName:          domain.BracketName(next.BracketIndex),
			RBT12Before:     rbt12Current,
			RBT12After:      rbt12Next,
			MonthlyTaxDelta: monthlyDelta,
			Severity:        severity,
			Upgrading:       next.BracketIndex > current.BracketIndex,
		})
	}
	return alerts
}
