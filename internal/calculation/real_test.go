package calculation

import (
	"testing"

	"github.com/mribeiro/tributa/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReal_ProfitExactlyZero(t *testing.T) {
	// Revenue fully consumed by COGS: accounting profit is exactly zero,
	// which sits on the loss side of the boundary.
	input := mustInput(t, domain.InputData{
		Mode:            domain.ModeDirect,
		GoodsRevenue:    decimal.NewFromInt(100000),
		CostOfGoodsSold: decimal.NewFromInt(100000),
	})

	result := NewRealCalculator().Calculate(input)

	assert.True(t, result.IRPJ.IsZero())
	assert.True(t, result.IRPJSurtax.IsZero())
	assert.True(t, result.CSLL.IsZero())
	assert.True(t, result.PIS.IsZero())
	assert.True(t, result.COFINS.IsZero())
	assert.True(t, result.FiscalLoss.IsZero(), "a zero profit is not a loss")
}

func TestReal_Loss(t *testing.T) {
	input := mustInput(t, domain.InputData{
		Mode:              domain.ModeDirect,
		GoodsRevenue:      decimal.NewFromInt(100000),
		CostOfGoodsSold:   decimal.NewFromInt(80000),
		OperatingExpenses: decimal.NewFromInt(50000),
		INSSBaseSalary:    decimal.NewFromInt(10000),
		AnnualFGTS:        decimal.NewFromInt(5000),
	})

	result := NewRealCalculator().Calculate(input)

	assert.True(t, result.FiscalLoss.Equal(decimal.NewFromInt(35000)), "loss is reported as its absolute value")
	assert.True(t, result.IRPJ.IsZero())
	// Only the employer charge and the FGTS remain.
	expectedCost := decimal.NewFromInt(10000).Mul(decimal.NewFromFloat(0.258)).Add(decimal.NewFromInt(5000))
	assert.True(t, result.TotalCost.Equal(expectedCost))
}

func TestReal_PositiveProfit(t *testing.T) {
	input := mustInput(t, domain.InputData{
		Mode:            domain.ModeDirect,
		GoodsRevenue:    decimal.NewFromInt(500000),
		CostOfGoodsSold: decimal.NewFromInt(200000),
	})

	result := NewRealCalculator().Calculate(input)

	profit := decimal.NewFromInt(300000)
	assert.True(t, result.AccountingProfit.Equal(profit))
	assert.True(t, result.IRPJ.Equal(profit.Mul(decimal.NewFromFloat(0.15))))
	// Surtax: 10% of the 60,000 excess over 240,000.
	assert.True(t, result.IRPJSurtax.Equal(decimal.NewFromInt(6000)))
	assert.True(t, result.CSLL.Equal(profit.Mul(decimal.NewFromFloat(0.09))))
}

func TestReal_NonCumulativePISCOFINS(t *testing.T) {
	input := mustInput(t, domain.InputData{
		Mode:            domain.ModeDirect,
		GoodsRevenue:    decimal.NewFromInt(500000),
		CostOfGoodsSold: decimal.NewFromInt(200000),
	})

	result := NewRealCalculator().Calculate(input)

	// Debits on revenue minus credits on COGS: net base 300,000.
	assert.True(t, result.PIS.Equal(decimal.NewFromInt(300000).Mul(decimal.NewFromFloat(0.0165))))
	assert.True(t, result.COFINS.Equal(decimal.NewFromInt(300000).Mul(decimal.NewFromFloat(0.076))))
}

func TestReal_SurtaxBoundary(t *testing.T) {
	input := mustInput(t, domain.InputData{
		Mode:         domain.ModeDirect,
		GoodsRevenue: decimal.NewFromInt(240000),
	})

	result := NewRealCalculator().Calculate(input)
	assert.True(t, result.IRPJSurtax.IsZero(), "profit exactly at the threshold owes no surtax")
}
