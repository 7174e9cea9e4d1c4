package compare

import (
	"github.com/mribeiro/tributa/internal/domain"
	"github.com/shopspring/decimal"
)

// BuildComparisonSet turns a computed analysis into comparison rows in the
// canonical regime order, with deltas against the recommended regime.
func BuildComparisonSet(analysis *domain.Analysis, inputPath string) *ComparisonSet {
	set := &ComparisonSet{
		Recommended: analysis.Recommended,
		Suggestions: analysis.Suggestions,
		InputPath:   inputPath,
	}

	best := analysis.Result(analysis.Recommended)

	minCost := decimal.Zero
	maxCost := decimal.Zero
	first := true
	for _, regime := range domain.AllRegimes {
		result := analysis.Result(regime)
		if result == nil {
			continue
		}

		row := RegimeComparison{
			Regime:        regime,
			DisplayName:   regime.DisplayName(),
			TotalCost:     result.TotalCost,
			NetProfit:     result.NetProfit,
			EffectiveRate: result.EffectiveRate,
			Recommended:   regime == analysis.Recommended,
		}
		if best != nil {
			row.CostDiffFromBest = result.TotalCost.Sub(best.TotalCost)
			if best.TotalCost.IsPositive() {
				row.CostPctFromBest = row.CostDiffFromBest.Div(best.TotalCost).Mul(decimal.NewFromInt(100))
			}
		}
		set.Results = append(set.Results, row)

		if first || result.TotalCost.LessThan(minCost) {
			minCost = result.TotalCost
		}
		if first || result.TotalCost.GreaterThan(maxCost) {
			maxCost = result.TotalCost
		}
		first = false
	}

	if !first {
		set.Spread = maxCost.Sub(minCost)
	}
	return set
}
