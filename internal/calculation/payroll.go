package calculation

import (
	"github.com/mribeiro/tributa/internal/domain"
	"github.com/shopspring/decimal"
)

// EmployerChargeCalculator computes the employer-side social contribution
// (INSS patronal) on the salary and pro-labore bases. Both profit regimes
// share it; under the Simples the charge is folded into the DAS.
type EmployerChargeCalculator struct {
	SalaryRate    decimal.Decimal
	ProLaboreRate decimal.Decimal
}

// NewEmployerChargeCalculator uses the standard 25.8% salary-base and 20%
// pro-labore rates.
func NewEmployerChargeCalculator() *EmployerChargeCalculator {
	return &EmployerChargeCalculator{
		SalaryRate:    decimal.NewFromFloat(0.258),
		ProLaboreRate: decimal.NewFromFloat(0.20),
	}
}

// Charge returns the employer contribution for the input's INSS bases.
func (ec *EmployerChargeCalculator) Charge(input *domain.FinancialInput) decimal.Decimal {
	return input.INSSBaseSalary.Mul(ec.SalaryRate).
		Add(input.INSSBaseProLabore.Mul(ec.ProLaboreRate))
}
