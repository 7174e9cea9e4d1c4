package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TransitionSeverity classifies a bracket transition by its monthly tax
// impact.
type TransitionSeverity string

const (
	SeverityModerate TransitionSeverity = "moderate"
	SeverityCritical TransitionSeverity = "critical"
)

// TransitionAlert flags a month-to-month Simples Nacional bracket change in
// the forecast horizon.
type TransitionAlert struct {
	// MonthOffset is the 1-based month in which the new bracket applies.
	MonthOffset int    `json:"month_offset"`
	FromBracket int    `json:"from_bracket"`
	ToBracket   int    `json:"to_bracket"`
	FromName    string `json:"from_name"`
	ToName      string `json:"to_name"`

	RBT12Before decimal.Decimal `json:"rbt12_before"`
	RBT12After  decimal.Decimal `json:"rbt12_after"`

	// MonthlyTaxDelta is the annual cost difference spread over twelve
	// months. Negative when the transition lowers the tax load.
	MonthlyTaxDelta decimal.Decimal    `json:"monthly_tax_delta"`
	Severity        TransitionSeverity `json:"severity"`
	Upgrading       bool               `json:"upgrading"`
}

// BracketName returns the conventional name of a 1-based bracket index,
// e.g. "3ª Faixa".
func BracketName(index int) string {
	return fmt.Sprintf("%dª Faixa", index)
}

// SuggestionCategory tags an optimization suggestion by the rule that
// produced it.
type SuggestionCategory string

const (
	SuggestionBracketTransition SuggestionCategory = "bracket_transition"
	SuggestionFactorR           SuggestionCategory = "factor_r"
	SuggestionRegimeChoice      SuggestionCategory = "regime_choice"
)

// SuggestionPriority orders suggestions for presentation.
type SuggestionPriority string

const (
	PriorityHigh   SuggestionPriority = "high"
	PriorityMedium SuggestionPriority = "medium"
)

// Suggestion is a human-readable optimization recommendation.
type Suggestion struct {
	Category       SuggestionCategory `json:"category"`
	Priority       SuggestionPriority `json:"priority"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Impact         string             `json:"impact"`
	Recommendation string             `json:"recommendation"`
}
