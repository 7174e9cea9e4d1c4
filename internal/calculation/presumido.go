package calculation

import (
	"github.com/mribeiro/tributa/internal/domain"
	"github.com/shopspring/decimal"
)

// PresumidoCalculator computes the Lucro Presumido regime: federal taxes on
// statutorily presumed profit margins, cumulative PIS/COFINS on revenue, and
// employer payroll charges.
type PresumidoCalculator struct {
	// Presumption margins applied to revenue when building the tax bases.
	IRPJGoodsMargin    decimal.Decimal
	IRPJServicesMargin decimal.Decimal
	CSLLGoodsMargin    decimal.Decimal
	CSLLServicesMargin decimal.Decimal

	IRPJRate        decimal.Decimal
	SurtaxRate      decimal.Decimal
	SurtaxThreshold decimal.Decimal // annualized: 20,000/month
	CSLLRate        decimal.Decimal
	PISRate         decimal.Decimal
	COFINSRate      decimal.Decimal

	EmployerCharge *EmployerChargeCalculator
}

// NewPresumidoCalculator creates a calculator with the statutory 2018+ rates.
func NewPresumidoCalculator() *PresumidoCalculator {
	return &PresumidoCalculator{
		IRPJGoodsMargin:    decimal.NewFromFloat(0.08),
		IRPJServicesMargin: decimal.NewFromFloat(0.32),
		CSLLGoodsMargin:    decimal.NewFromFloat(0.12),
		CSLLServicesMargin: decimal.NewFromFloat(0.32),
		IRPJRate:           decimal.NewFromFloat(0.15),
		SurtaxRate:         decimal.NewFromFloat(0.10),
		SurtaxThreshold:    decimal.NewFromInt(240000),
		CSLLRate:           decimal.NewFromFloat(0.09),
		PISRate:            decimal.NewFromFloat(0.0065),
		COFINSRate:         decimal.NewFromFloat(0.03),
		EmployerCharge:     NewEmployerChargeCalculator(),
	}
}

// Calculate computes the Lucro Presumido result. The formula is closed-form
// and does not branch on the sign of any input.
func (pc *PresumidoCalculator) Calculate(input *domain.FinancialInput) *domain.RegimeResult {
	baseIRPJ := input.GoodsRevenue.Mul(pc.IRPJGoodsMargin).
		Add(input.ServicesRevenue.Mul(pc.IRPJServicesMargin))
	baseCSLL := input.GoodsRevenue.Mul(pc.CSLLGoodsMargin).
		Add(input.ServicesRevenue.Mul(pc.CSLLServicesMargin))

	irpj := baseIRPJ.Mul(pc.IRPJRate)
	surtax := decimal.Max(decimal.Zero, baseIRPJ.Sub(pc.SurtaxThreshold)).Mul(pc.SurtaxRate)
	csll := baseCSLL.Mul(pc.CSLLRate)
	pis := input.TotalRevenue.Mul(pc.PISRate)
	cofins := input.TotalRevenue.Mul(pc.COFINSRate)

	patronal := pc.EmployerCharge.Charge(input)
	federal := irpj.Add(surtax).Add(csll).Add(pis).Add(cofins)

	return &domain.RegimeResult{
		Regime:       domain.RegimePresumido,
		IRPJ:         irpj,
		IRPJSurtax:   surtax,
		CSLL:         csll,
		PIS:          pis,
		COFINS:       cofins,
		INSSPatronal: patronal,
		TotalCost:    federal.Add(patronal).Add(input.AnnualFGTS),
	}
}
