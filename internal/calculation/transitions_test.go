package calculation

import (
	"testing"

	"github.com/mribeiro/tributa/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitions_DetectsUpgrade(t *testing.T) {
	// Flat 15,000 months put the window exactly at the 180,000 first
	// ceiling; a 30,000 projection pushes the next window to 195,000.
	input := mustInput(t, domain.InputData{
		Mode:           domain.ModeDerived,
		GoodsRevenue:   decimal.NewFromInt(100000),
		MonthlyHistory: flatHistory(15000),
		Projections:    []decimal.Decimal{decimal.NewFromInt(30000)},
	})

	alerts := NewTransitionAnalyzer(NewSimplesCalculator()).Analyze(input)

	require.Len(t, alerts, 1)
	alert := alerts[0]
	assert.Equal(t, 1, alert.MonthOffset)
	assert.Equal(t, 1, alert.FromBracket)
	assert.Equal(t, 2, alert.ToBracket)
	assert.Equal(t, "1ª Faixa", alert.FromName)
	assert.Equal(t, "2ª Faixa", alert.ToName)
	assert.True(t, alert.Upgrading)
	assert.True(t, alert.RBT12Before.Equal(decimal.NewFromInt(180000)))
	assert.True(t, alert.RBT12After.Equal(decimal.NewFromInt(195000)))
	assert.Equal(t, domain.SeverityModerate, alert.Severity)
	assert.True(t, alert.MonthlyTaxDelta.IsPositive())
}

func TestTransitions_SeverityThreshold(t *testing.T) {
	input := mustInput(t, domain.InputData{
		Mode:           domain.ModeDerived,
		GoodsRevenue:   decimal.NewFromInt(100000),
		MonthlyHistory: flatHistory(15000),
		Projections:    []decimal.Decimal{decimal.NewFromInt(30000)},
	})

	analyzer := NewTransitionAnalyzer(NewSimplesCalculator())
	analyzer.CriticalMonthlyDelta = decimal.NewFromInt(10)

	alerts := analyzer.Analyze(input)
	require.Len(t, alerts, 1)
	assert.Equal(t, domain.SeverityCritical, alerts[0].Severity)
}

func TestTransitions_DetectsDowngrade(t *testing.T) {
	// A 240,000 window shrinking by 20,000 per month crosses back below
	// the first ceiling after three projected months.
	zeros := make([]decimal.Decimal, domain.MaxProjections)
	input := mustInput(t, domain.InputData{
		Mode:           domain.ModeDerived,
		GoodsRevenue:   decimal.NewFromInt(100000),
		MonthlyHistory: flatHistory(20000),
		Projections:    zeros,
	})

	alerts := NewTransitionAnalyzer(NewSimplesCalculator()).Analyze(input)

	require.Len(t, alerts, 1)
	alert := alerts[0]
	assert.Equal(t, 2, alert.FromBracket)
	assert.Equal(t, 1, alert.ToBracket)
	assert.False(t, alert.Upgrading)
	assert.True(t, alert.MonthlyTaxDelta.IsNegative(), "downgrades lower the tax load")
}

func TestTransitions_StableWindowNoAlerts(t *testing.T) {
	input := mustInput(t, domain.InputData{
		Mode:           domain.ModeDerived,
		GoodsRevenue:   decimal.NewFromInt(100000),
		MonthlyHistory: flatHistory(10000),
	})

	alerts := NewTransitionAnalyzer(NewSimplesCalculator()).Analyze(input)
	assert.Empty(t, alerts, "defaulted projections keep the window flat")
}

func TestTransitions_DirectModeReturnsNothing(t *testing.T) {
	input := mustInput(t, domain.InputData{
		Mode:         domain.ModeDirect,
		GoodsRevenue: decimal.NewFromInt(100000),
	})

	alerts := NewTransitionAnalyzer(NewSimplesCalculator()).Analyze(input)
	assert.Nil(t, alerts)
}
