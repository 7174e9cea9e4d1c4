package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegimeType identifies one of the supported tax regimes.
type RegimeType string

const (
	RegimeSimples   RegimeType = "simples_nacional"
	RegimePresumido RegimeType = "lucro_presumido"
	RegimeReal      RegimeType = "lucro_real"
)

// AllRegimes lists the regimes in their canonical order. Recommendation
// tie-breaks follow this order: the first minimum wins.
var AllRegimes = []RegimeType{RegimeSimples, RegimePresumido, RegimeReal}

// DisplayName returns the regime name used in reports.
func (r RegimeType) DisplayName() string {
	switch r {
	case RegimeSimples:
		return "Simples Nacional"
	case RegimePresumido:
		return "Lucro Presumido"
	case RegimeReal:
		return "Lucro Real"
	}
	return string(r)
}

// RegimeResult holds the tax breakdown for one regime. Fields that do not
// apply to a regime stay zero.
type RegimeResult struct {
	Regime RegimeType `json:"regime"`

	// Simples Nacional
	DAS          decimal.Decimal `json:"das"`
	BracketIndex int             `json:"bracket_index"`
	RBT12Used    decimal.Decimal `json:"rbt12_used"`

	// Lucro Presumido and Lucro Real
	IRPJ         decimal.Decimal `json:"irpj"`
	IRPJSurtax   decimal.Decimal `json:"irpj_surtax"`
	CSLL         decimal.Decimal `json:"csll"`
	PIS          decimal.Decimal `json:"pis"`
	COFINS       decimal.Decimal `json:"cofins"`
	INSSPatronal decimal.Decimal `json:"inss_patronal"`

	// Lucro Real
	AccountingProfit decimal.Decimal `json:"accounting_profit"`
	FiscalLoss       decimal.Decimal `json:"fiscal_loss"`

	// TotalCost includes every levy plus employer charges and FGTS.
	TotalCost decimal.Decimal `json:"total_cost"`

	// Derived by the orchestrator from the input.
	NetProfit     decimal.Decimal `json:"net_profit"`
	EffectiveRate decimal.Decimal `json:"effective_rate"` // percent of total revenue
}

// Analysis is the aggregated output of a full computation. Transition alerts,
// projections and suggestions are only present in derived mode.
type Analysis struct {
	Results     map[RegimeType]*RegimeResult `json:"results"`
	Recommended RegimeType                   `json:"recommended"`

	Transitions []TransitionAlert   `json:"transitions,omitempty"`
	Projections []MonthlyProjection `json:"projections,omitempty"`
	Suggestions []Suggestion        `json:"suggestions,omitempty"`
}

// Result returns the result for a regime, or nil when it was not computed.
func (a *Analysis) Result(r RegimeType) *RegimeResult {
	if a == nil || a.Results == nil {
		return nil
	}
	return a.Results[r]
}

// MonthlyProjection records one month of the forecast horizon: the rolling
// revenue and each regime's projected annual cost at that point.
type MonthlyProjection struct {
	MonthOffset    int             `json:"month_offset"`
	RBT12          decimal.Decimal `json:"rbt12"`
	SimplesCost    decimal.Decimal `json:"simples_cost"`
	PresumidoCost  decimal.Decimal `json:"presumido_cost"`
	RealCost       decimal.Decimal `json:"real_cost"`
	SimplesBracket int             `json:"simples_bracket"`
}

// Report is the exportable record combining input, results and a generation
// timestamp.
type Report struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Mode        CalculationMode `json:"mode"`
	Input       *FinancialInput `json:"input"`
	Analysis    *Analysis       `json:"analysis"`
}
