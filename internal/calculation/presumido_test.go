package calculation

import (
	"testing"

	"github.com/mribeiro/tributa/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPresumido_Bases(t *testing.T) {
	input := mustInput(t, domain.InputData{
		Mode:            domain.ModeDirect,
		GoodsRevenue:    decimal.NewFromInt(100000),
		ServicesRevenue: decimal.NewFromInt(50000),
	})

	result := NewPresumidoCalculator().Calculate(input)

	// IRPJ base: 8% of goods + 32% of services = 8,000 + 16,000.
	assert.True(t, result.IRPJ.Equal(decimal.NewFromInt(24000).Mul(decimal.NewFromFloat(0.15))))
	// CSLL base: 12% of goods + 32% of services = 12,000 + 16,000.
	assert.True(t, result.CSLL.Equal(decimal.NewFromInt(28000).Mul(decimal.NewFromFloat(0.09))))
	// Cumulative PIS/COFINS on total revenue.
	assert.True(t, result.PIS.Equal(decimal.NewFromInt(150000).Mul(decimal.NewFromFloat(0.0065))))
	assert.True(t, result.COFINS.Equal(decimal.NewFromInt(150000).Mul(decimal.NewFromFloat(0.03))))
	assert.True(t, result.IRPJSurtax.IsZero())
}

func TestPresumido_SurtaxBoundary(t *testing.T) {
	// Goods revenue of 3,000,000 puts the IRPJ base exactly at the
	// annualized 240,000 threshold: no surtax.
	input := mustInput(t, domain.InputData{
		Mode:         domain.ModeDirect,
		GoodsRevenue: decimal.NewFromInt(3000000),
	})
	result := NewPresumidoCalculator().Calculate(input)
	assert.True(t, result.IRPJSurtax.IsZero(), "base exactly at the threshold owes no surtax, got %s", result.IRPJSurtax)

	// One more unit of base (12.50 more revenue at the 8% margin) owes
	// 10% of the excess.
	input = mustInput(t, domain.InputData{
		Mode:         domain.ModeDirect,
		GoodsRevenue: decimal.NewFromFloat(3000012.5),
	})
	result = NewPresumidoCalculator().Calculate(input)
	assert.True(t, result.IRPJSurtax.Equal(decimal.NewFromFloat(0.10)), "expected 0.10, got %s", result.IRPJSurtax)
}

func TestPresumido_EmployerCharge(t *testing.T) {
	input := mustInput(t, domain.InputData{
		Mode:              domain.ModeDirect,
		GoodsRevenue:      decimal.NewFromInt(100000),
		INSSBaseSalary:    decimal.NewFromInt(10000),
		INSSBaseProLabore: decimal.NewFromInt(5000),
	})

	result := NewPresumidoCalculator().Calculate(input)

	// 25.8% of the salary base plus 20% of the pro-labore base.
	expected := decimal.NewFromInt(10000).Mul(decimal.NewFromFloat(0.258)).
		Add(decimal.NewFromInt(5000).Mul(decimal.NewFromFloat(0.20)))
	assert.True(t, result.INSSPatronal.Equal(expected))
}

func TestPresumido_TotalCost(t *testing.T) {
	input := mustInput(t, domain.InputData{
		Mode:              domain.ModeDirect,
		GoodsRevenue:      decimal.NewFromInt(100000),
		INSSBaseSalary:    decimal.NewFromInt(10000),
		AnnualFGTS:        decimal.NewFromInt(8000),
	})

	result := NewPresumidoCalculator().Calculate(input)

	federal := result.IRPJ.Add(result.IRPJSurtax).Add(result.CSLL).Add(result.PIS).Add(result.COFINS)
	assert.True(t, result.TotalCost.Equal(federal.Add(result.INSSPatronal).Add(decimal.NewFromInt(8000))))
}

func TestPresumido_ZeroRevenue(t *testing.T) {
	input := mustInput(t, domain.InputData{Mode: domain.ModeDirect})

	result := NewPresumidoCalculator().Calculate(input)

	assert.True(t, result.IRPJ.IsZero())
	assert.True(t, result.TotalCost.IsZero(), "zero revenue and no payroll means zero cost")
}
