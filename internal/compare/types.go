package compare

import (
	"github.com/mribeiro/tributa/internal/domain"
	"github.com/shopspring/decimal"
)

// RegimeComparison is one regime's row in a comparison, with its deltas
// against the cheapest regime.
type RegimeComparison struct {
	Regime        domain.RegimeType `json:"regime"`
	DisplayName   string            `json:"displayName"`
	TotalCost     decimal.Decimal   `json:"totalCost"`
	NetProfit     decimal.Decimal   `json:"netProfit"`
	EffectiveRate decimal.Decimal   `json:"effectiveRate"`

	// Deltas against the recommended (cheapest) regime.
	CostDiffFromBest decimal.Decimal `json:"costDiffFromBest"`
	CostPctFromBest  decimal.Decimal `json:"costPctFromBest"`
	Recommended      bool            `json:"recommended"`
}

// ComparisonSet aggregates the per-regime rows with the recommendation and
// the annual cost spread.
type ComparisonSet struct {
	Results     []RegimeComparison  `json:"results"`
	Recommended domain.RegimeType   `json:"recommended"`
	Spread      decimal.Decimal     `json:"spread"`
	Suggestions []domain.Suggestion `json:"suggestions,omitempty"`
	InputPath   string              `json:"inputPath,omitempty"`
}
