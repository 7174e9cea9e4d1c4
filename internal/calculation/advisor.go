package calculation

import (
	"fmt"

	"github.com/mribeiro/tributa/internal/domain"
	"github.com/mribeiro/tributa/pkg/moneyfmt"
	"github.com/shopspring/decimal"
)

// Advisor synthesizes optimization suggestions from bracket transitions, the
// Factor R position and a cross-regime cost comparison. The three rule
// passes are independent; any subset of them may fire.
type Advisor struct {
	Simples   *SimplesCalculator
	Presumido *PresumidoCalculator
	Real      *RealCalculator
	Analyzer  *TransitionAnalyzer

	// RegimeSpreadThreshold is the cheapest-to-most-expensive cost spread
	// above which a regime-choice suggestion fires.
	RegimeSpreadThreshold decimal.Decimal
}

// NewAdvisor wires an advisor over the given calculators with the default
// 10,000 regime-spread threshold.
func NewAdvisor(simples *SimplesCalculator, presumido *PresumidoCalculator, real *RealCalculator, analyzer *TransitionAnalyzer) *Advisor {
	return &Advisor{
		Simples:               simples,
		Presumido:             presumido,
		Real:                  real,
		Analyzer:              analyzer,
		RegimeSpreadThreshold: decimal.NewFromInt(10000),
	}
}

// Suggest runs all rule passes over the input.
func (a *Advisor) Suggest(input *domain.FinancialInput) []domain.Suggestion {
	var suggestions []domain.Suggestion
	suggestions = append(suggestions, a.suggestTransitionDeferrals(input)...)
	suggestions = append(suggestions, a.suggestFactorR(input)...)
	suggestions = append(suggestions, a.suggestRegimeChoice(input)...)
	return suggestions
}

// suggestTransitionDeferrals flags critical upgrading bracket transitions and
// recommends deferring the triggering revenue into the following month.
func (a *Advisor) suggestTransitionDeferrals(input *domain.FinancialInput) []domain.Suggestion {
	var out []domain.Suggestion
	for _, alert := range a.Analyzer.Analyze(input) {
		if !alert.Upgrading || alert.Severity != domain.SeverityCritical {
			continue
		}
		revenueDelta := alert.RBT12After.Sub(alert.RBT12Before)
		out = append(out, domain.Suggestion{
			Category:    domain.SuggestionBracketTransition,
			Priority:    domain.PriorityHigh,
			Title:       fmt.Sprintf("Bracket change in %d month(s)", alert.MonthOffset),
			Description: fmt.Sprintf("You will move from the %s to the %s", alert.FromName, alert.ToName),
			Impact:      fmt.Sprintf("Tax increase of %s per month", moneyfmt.BRL(alert.MonthlyTaxDelta)),
			Recommendation: fmt.Sprintf("Consider deferring %s of revenue into the following month",
				moneyfmt.BRL(revenueDelta)),
		})
	}
	return out
}

// suggestFactorR quantifies the payroll increase needed to reach the Factor R
// threshold and migrate services from Anexo V to Anexo III.
func (a *Advisor) suggestFactorR(input *domain.FinancialInput) []domain.Suggestion {
	if !input.IntellectualService || !input.ServicesRevenue.IsPositive() {
		return nil
	}
	factorR := input.FactorR()
	if factorR.GreaterThanOrEqual(a.Simples.FactorRThreshold) {
		return nil
	}

	needed := a.Simples.FactorRThreshold.Mul(input.TotalRevenue).Sub(input.LaborMass())
	return []domain.Suggestion{{
		Category:    domain.SuggestionFactorR,
		Priority:    domain.PriorityMedium,
		Title:       "Factor R optimization",
		Description: fmt.Sprintf("Your current Factor R is %s", moneyfmt.Percent(factorR)),
		Impact:      "Services are taxed under Anexo V (higher rates)",
		Recommendation: fmt.Sprintf("Increase the labor mass by %s to migrate to Anexo III",
			moneyfmt.BRL(needed)),
	}}
}

// suggestRegimeChoice compares the three regimes and fires when the annual
// spread justifies switching.
func (a *Advisor) suggestRegimeChoice(input *domain.FinancialInput) []domain.Suggestion {
	costs := map[domain.RegimeType]decimal.Decimal{
		domain.RegimeSimples:   a.Simples.Calculate(input, nil).TotalCost,
		domain.RegimePresumido: a.Presumido.Calculate(input).TotalCost,
		domain.RegimeReal:      a.Real.Calculate(input).TotalCost,
	}

	cheapest := domain.AllRegimes[0]
	minCost := costs[cheapest]
	maxCost := costs[cheapest]
	for _, regime := range domain.AllRegimes[1:] {
		if costs[regime].LessThan(minCost) {
			cheapest = regime
			minCost = costs[regime]
		}
		if costs[regime].GreaterThan(maxCost) {
			maxCost = costs[regime]
		}
	}

	spread := maxCost.Sub(minCost)
	if spread.LessThanOrEqual(a.RegimeSpreadThreshold) {
		return nil
	}
	return []domain.Suggestion{{
		Category:       domain.SuggestionRegimeChoice,
		Priority:       domain.PriorityHigh,
		Title:          "Potential saving from a regime change",
		Description:    fmt.Sprintf("%s is the most advantageous regime", cheapest.DisplayName()),
		Impact:         fmt.Sprintf("Potential saving of up to %s per year", moneyfmt.BRL(spread)),
		Recommendation: "Consider switching regimes at the next fiscal year",
	}}
}
