package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CalculationMode selects how the rolling twelve-month revenue (RBT12) is
// obtained.
type CalculationMode string

const (
	// ModeDirect uses the RBT12 figure exactly as supplied.
	ModeDirect CalculationMode = "direct"
	// ModeDerived derives the RBT12 from a twelve-month revenue history and
	// enables forward projections.
	ModeDerived CalculationMode = "derived"
)

const (
	// HistoryMonths is the required length of the trailing revenue window.
	HistoryMonths = 12
	// MaxProjections caps the forward-looking projection months.
	MaxProjections = 6
)

// InputData carries the raw figures supplied by the shell, before validation.
// Missing monetary values are treated as zero.
type InputData struct {
	Mode CalculationMode `yaml:"mode" json:"mode"`

	GoodsRevenue    decimal.Decimal `yaml:"goods_revenue" json:"goods_revenue"`
	ServicesRevenue decimal.Decimal `yaml:"services_revenue" json:"services_revenue"`

	Payroll           decimal.Decimal `yaml:"payroll" json:"payroll"`
	ProLabore         decimal.Decimal `yaml:"pro_labore" json:"pro_labore"`
	INSSBaseSalary    decimal.Decimal `yaml:"inss_base_salary" json:"inss_base_salary"`
	INSSBaseProLabore decimal.Decimal `yaml:"inss_base_pro_labore" json:"inss_base_pro_labore"`
	AnnualFGTS        decimal.Decimal `yaml:"annual_fgts" json:"annual_fgts"`

	CostOfGoodsSold   decimal.Decimal `yaml:"cost_of_goods_sold" json:"cost_of_goods_sold"`
	OperatingExpenses decimal.Decimal `yaml:"operating_expenses" json:"operating_expenses"`

	ISSRate          *decimal.Decimal `yaml:"iss_rate,omitempty" json:"iss_rate,omitempty"`
	ICMSRate         *decimal.Decimal `yaml:"icms_rate,omitempty" json:"icms_rate,omitempty"`
	PISCofinsCredits decimal.Decimal  `yaml:"pis_cofins_credits" json:"pis_cofins_credits"`

	IntellectualService bool `yaml:"intellectual_service" json:"intellectual_service"`

	// RBT12 applies to direct mode only; when absent the total revenue is
	// used, matching the behavior of the reference form.
	RBT12 *decimal.Decimal `yaml:"rbt12,omitempty" json:"rbt12,omitempty"`

	// MonthlyHistory must hold exactly twelve entries in derived mode,
	// oldest first. Projections may hold up to six entries; months beyond
	// the supplied ones default to the mean of the last three history
	// months.
	MonthlyHistory []decimal.Decimal `yaml:"monthly_history,omitempty" json:"monthly_history,omitempty"`
	Projections    []decimal.Decimal `yaml:"projections,omitempty" json:"projections,omitempty"`
}

// FinancialInput is the validated, immutable record the engine computes from.
// Build it with NewFinancialInput; the zero value is not usable.
type FinancialInput struct {
	Mode CalculationMode `json:"mode"`

	GoodsRevenue    decimal.Decimal `json:"goods_revenue"`
	ServicesRevenue decimal.Decimal `json:"services_revenue"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`

	Payroll           decimal.Decimal `json:"payroll"`
	ProLabore         decimal.Decimal `json:"pro_labore"`
	INSSBaseSalary    decimal.Decimal `json:"inss_base_salary"`
	INSSBaseProLabore decimal.Decimal `json:"inss_base_pro_labore"`
	AnnualFGTS        decimal.Decimal `json:"annual_fgts"`

	CostOfGoodsSold   decimal.Decimal `json:"cost_of_goods_sold"`
	OperatingExpenses decimal.Decimal `json:"operating_expenses"`

	ISSRate          decimal.Decimal `json:"iss_rate"`
	ICMSRate         decimal.Decimal `json:"icms_rate"`
	PISCofinsCredits decimal.Decimal `json:"pis_cofins_credits"`

	IntellectualService bool `json:"intellectual_service"`

	RBT12          decimal.Decimal   `json:"rbt12"`
	MonthlyHistory []decimal.Decimal `json:"monthly_history,omitempty"`
	Projections    []decimal.Decimal `json:"projections,omitempty"`
}

// Default municipal/state rates carried for the presentation shell. The
// regime calculators do not consume them.
var (
	defaultISSRate  = decimal.NewFromFloat(0.05)
	defaultICMSRate = decimal.NewFromFloat(0.17)
)

// NewFinancialInput validates raw input data and builds the immutable record,
// applying the documented defaults. It rejects malformed input up front so
// the calculators never see it.
func NewFinancialInput(d InputData) (*FinancialInput, error) {
	mode := d.Mode
	if mode == "" {
		mode = ModeDirect
	}
	if mode != ModeDirect && mode != ModeDerived {
		return nil, fmt.Errorf("unknown calculation mode %q", mode)
	}

	if d.GoodsRevenue.IsNegative() {
		return nil, fmt.Errorf("goods revenue cannot be negative, got %s", d.GoodsRevenue)
	}
	if d.ServicesRevenue.IsNegative() {
		return nil, fmt.Errorf("services revenue cannot be negative, got %s", d.ServicesRevenue)
	}

	in := &FinancialInput{
		Mode:                mode,
		GoodsRevenue:        d.GoodsRevenue,
		ServicesRevenue:     d.ServicesRevenue,
		TotalRevenue:        d.GoodsRevenue.Add(d.ServicesRevenue),
		Payroll:             d.Payroll,
		ProLabore:           d.ProLabore,
		INSSBaseSalary:      d.INSSBaseSalary,
		INSSBaseProLabore:   d.INSSBaseProLabore,
		AnnualFGTS:          d.AnnualFGTS,
		CostOfGoodsSold:     d.CostOfGoodsSold,
		OperatingExpenses:   d.OperatingExpenses,
		PISCofinsCredits:    d.PISCofinsCredits,
		IntellectualService: d.IntellectualService,
		ISSRate:             defaultISSRate,
		ICMSRate:            defaultICMSRate,
	}
	if d.ISSRate != nil {
		in.ISSRate = *d.ISSRate
	}
	if d.ICMSRate != nil {
		in.ICMSRate = *d.ICMSRate
	}

	switch mode {
	case ModeDerived:
		if len(d.MonthlyHistory) != HistoryMonths {
			return nil, fmt.Errorf("monthly history must have exactly %d entries in derived mode, got %d",
				HistoryMonths, len(d.MonthlyHistory))
		}
		if len(d.Projections) > MaxProjections {
			return nil, fmt.Errorf("at most %d projection months are supported, got %d",
				MaxProjections, len(d.Projections))
		}
		in.MonthlyHistory = make([]decimal.Decimal, HistoryMonths)
		total := decimal.Zero
		for i, m := range d.MonthlyHistory {
			if m.IsNegative() {
				return nil, fmt.Errorf("history month %d cannot be negative, got %s", i+1, m)
			}
			in.MonthlyHistory[i] = m
			total = total.Add(m)
		}
		in.RBT12 = total
		in.Projections = defaultProjections(in.MonthlyHistory, d.Projections)
		for i, p := range in.Projections {
			if p.IsNegative() {
				return nil, fmt.Errorf("projection month %d cannot be negative, got %s", i+1, p)
			}
		}
	case ModeDirect:
		rbt12 := in.TotalRevenue
		if d.RBT12 != nil {
			rbt12 = *d.RBT12
		}
		if rbt12.IsNegative() {
			return nil, fmt.Errorf("rolling revenue (RBT12) cannot be negative, got %s", rbt12)
		}
		in.RBT12 = rbt12
	}

	return in, nil
}

// defaultProjections extends the supplied projections to the full horizon.
// Explicitly supplied months are kept as-is, including zeros; missing months
// use the mean of the last three history months.
func defaultProjections(history, supplied []decimal.Decimal) []decimal.Decimal {
	mean := decimal.Zero
	if len(history) >= 3 {
		tail := history[len(history)-3:]
		mean = tail[0].Add(tail[1]).Add(tail[2]).Div(decimal.NewFromInt(3))
	}

	out := make([]decimal.Decimal, MaxProjections)
	for i := 0; i < MaxProjections; i++ {
		if i < len(supplied) {
			out[i] = supplied[i]
		} else {
			out[i] = mean
		}
	}
	return out
}

// LaborMass is the combined payroll and pro-labore compensation.
func (in *FinancialInput) LaborMass() decimal.Decimal {
	return in.Payroll.Add(in.ProLabore)
}

// FactorR is the labor-cost ratio that gates the services schedule. It is
// zero when there is no revenue.
func (in *FinancialInput) FactorR() decimal.Decimal {
	if in.TotalRevenue.IsZero() {
		return decimal.Zero
	}
	return in.LaborMass().Div(in.TotalRevenue)
}

// OperatingCosts is the cost base used to derive net profit: COGS, operating
// expenses, payroll, pro-labore and the annual FGTS accrual.
func (in *FinancialInput) OperatingCosts() decimal.Decimal {
	return in.CostOfGoodsSold.
		Add(in.OperatingExpenses).
		Add(in.Payroll).
		Add(in.ProLabore).
		Add(in.AnnualFGTS)
}
