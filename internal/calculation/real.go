package calculation

import (
	"github.com/mribeiro/tributa/internal/domain"
	"github.com/shopspring/decimal"
)

// RealCalculator computes the Lucro Real regime: income taxes on actual
// accounting profit and non-cumulative PIS/COFINS with input credits on the
// cost of goods sold.
type RealCalculator struct {
	IRPJRate        decimal.Decimal
	SurtaxRate      decimal.Decimal
	SurtaxThreshold decimal.Decimal
	CSLLRate        decimal.Decimal
	PISRate         decimal.Decimal
	COFINSRate      decimal.Decimal

	EmployerCharge *EmployerChargeCalculator
}

// NewRealCalculator creates a calculator with the statutory rates.
func NewRealCalculator() *RealCalculator {
	return &RealCalculator{
		IRPJRate:        decimal.NewFromFloat(0.15),
		SurtaxRate:      decimal.NewFromFloat(0.10),
		SurtaxThreshold: decimal.NewFromInt(240000),
		CSLLRate:        decimal.NewFromFloat(0.09),
		PISRate:         decimal.NewFromFloat(0.0165),
		COFINSRate:      decimal.NewFromFloat(0.076),
		EmployerCharge:  NewEmployerChargeCalculator(),
	}
}

// AccountingProfit is the actual profit base: total revenue minus COGS,
// operating expenses, payroll, pro-labore and the annual FGTS accrual.
func (rc *RealCalculator) AccountingProfit(input *domain.FinancialInput) decimal.Decimal {
	return input.TotalRevenue.
		Sub(input.CostOfGoodsSold).
		Sub(input.OperatingExpenses).
		Sub(input.Payroll).
		Sub(input.ProLabore).
		Sub(input.AnnualFGTS)
}

// Calculate computes the Lucro Real result. A non-positive accounting profit
// yields no income-based tax; the loss is reported as a fiscal-loss figure
// and only payroll charges remain.
func (rc *RealCalculator) Calculate(input *domain.FinancialInput) *domain.RegimeResult {
	profit := rc.AccountingProfit(input)
	patronal := rc.EmployerCharge.Charge(input)

	result := &domain.RegimeResult{
		Regime:           domain.RegimeReal,
		INSSPatronal:     patronal,
		AccountingProfit: profit,
	}

	if profit.LessThanOrEqual(decimal.Zero) {
		result.FiscalLoss = profit.Abs()
		result.TotalCost = patronal.Add(input.AnnualFGTS)
		return result
	}

	result.IRPJ = profit.Mul(rc.IRPJRate)
	result.IRPJSurtax = decimal.Max(decimal.Zero, profit.Sub(rc.SurtaxThreshold)).Mul(rc.SurtaxRate)
	result.CSLL = profit.Mul(rc.CSLLRate)

	pisDebit := input.TotalRevenue.Mul(rc.PISRate)
	cofinsDebit := input.TotalRevenue.Mul(rc.COFINSRate)
	pisCredit := input.CostOfGoodsSold.Mul(rc.PISRate)
	cofinsCredit := input.CostOfGoodsSold.Mul(rc.COFINSRate)
	result.PIS = decimal.Max(decimal.Zero, pisDebit.Sub(pisCredit))
	result.COFINS = decimal.Max(decimal.Zero, cofinsDebit.Sub(cofinsCredit))

	federal := result.IRPJ.Add(result.IRPJSurtax).Add(result.CSLL).Add(result.PIS).Add(result.COFINS)
	result.TotalCost = federal.Add(patronal).Add(input.AnnualFGTS)
	return result
}
