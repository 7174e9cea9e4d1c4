package calculation

import (
	"github.com/mribeiro/tributa/internal/domain"
	"github.com/shopspring/decimal"
)

// SimplesCalculator computes the Simples Nacional consolidated tax (DAS).
// Goods revenue resolves against Anexo I; services revenue resolves against
// Anexo V when the business provides qualifying intellectual services and its
// labor-cost ratio (Factor R) stays below the threshold, otherwise Anexo III.
type SimplesCalculator struct {
	Schedules        Schedules
	FactorRThreshold decimal.Decimal
}

// NewSimplesCalculator creates a calculator with the default schedules and
// the statutory 28% Factor R threshold.
func NewSimplesCalculator() *SimplesCalculator {
	return NewSimplesCalculatorWithSchedules(DefaultSchedules())
}

// NewSimplesCalculatorWithSchedules creates a calculator over custom
// schedules, keeping the statutory Factor R threshold.
func NewSimplesCalculatorWithSchedules(s Schedules) *SimplesCalculator {
	return &SimplesCalculator{
		Schedules:        s,
		FactorRThreshold: decimal.NewFromFloat(0.28),
	}
}

// ServicesSchedule picks the schedule applicable to the input's services
// revenue under the Factor R rule.
func (sc *SimplesCalculator) ServicesSchedule(input *domain.FinancialInput) Schedule {
	if input.IntellectualService && input.FactorR().LessThan(sc.FactorRThreshold) {
		return sc.Schedules.Intellectual
	}
	return sc.Schedules.Services
}

// Calculate computes the Simples Nacional result. rbt12Override, when
// non-nil, replaces the input's own rolling revenue; a zero override is
// honored as a real value, absence is expressed by nil.
func (sc *SimplesCalculator) Calculate(input *domain.FinancialInput, rbt12Override *decimal.Decimal) *domain.RegimeResult {
	rbt12 := input.RBT12
	if rbt12Override != nil {
		rbt12 = *rbt12Override
	}

	result := &domain.RegimeResult{
		Regime:       domain.RegimeSimples,
		BracketIndex: 1,
		RBT12Used:    rbt12,
	}
	if input.TotalRevenue.IsZero() {
		return result
	}

	goodsTax := decimal.Zero
	goodsBracket := 1
	if input.GoodsRevenue.IsPositive() {
		_, _, goodsBracket = sc.Schedules.Goods.Resolve(rbt12)
		goodsTax = input.GoodsRevenue.Mul(sc.Schedules.Goods.EffectiveRate(rbt12))
	}

	servicesTax := decimal.Zero
	servicesBracket := 1
	if input.ServicesRevenue.IsPositive() {
		schedule := sc.ServicesSchedule(input)
		_, _, servicesBracket = schedule.Resolve(rbt12)
		servicesTax = input.ServicesRevenue.Mul(schedule.EffectiveRate(rbt12))
	}

	result.DAS = goodsTax.Add(servicesTax)
	result.TotalCost = result.DAS.Add(input.AnnualFGTS)
	result.BracketIndex = goodsBracket
	if servicesBracket > goodsBracket {
		result.BracketIndex = servicesBracket
	}
	return result
}
