package calculation

import (
	"github.com/shopspring/decimal"
)

// Bracket is one tier of a Simples Nacional schedule: revenue ceiling,
// nominal rate and fixed deduction.
type Bracket struct {
	Ceiling   decimal.Decimal `yaml:"ceiling" json:"ceiling"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	Deduction decimal.Decimal `yaml:"deduction" json:"deduction"`
}

// ScheduleSize is the fixed number of brackets per schedule.
const ScheduleSize = 6

// Schedule is an ordered step function over the rolling twelve-month revenue.
// Ceilings ascend; revenue above the last ceiling stays in the top bracket.
type Schedule struct {
	Name     string    `yaml:"name" json:"name"`
	Brackets []Bracket `yaml:"brackets" json:"brackets"`
}

// Resolve returns the nominal rate, fixed deduction and 1-based bracket index
// for the given rolling revenue. The caller must not pass a negative value.
func (s Schedule) Resolve(rbt12 decimal.Decimal) (rate, deduction decimal.Decimal, index int) {
	for i, b := range s.Brackets {
		if rbt12.LessThanOrEqual(b.Ceiling) {
			return b.Rate, b.Deduction, i + 1
		}
	}
	last := s.Brackets[len(s.Brackets)-1]
	return last.Rate, last.Deduction, len(s.Brackets)
}

// EffectiveRate applies the nominal-rate-minus-deduction formula for the
// given rolling revenue: (rbt12*rate - deduction) / rbt12, zero when the
// rolling revenue is zero.
func (s Schedule) EffectiveRate(rbt12 decimal.Decimal) decimal.Decimal {
	if rbt12.IsZero() {
		return decimal.Zero
	}
	rate, deduction, _ := s.Resolve(rbt12)
	return rbt12.Mul(rate).Sub(deduction).Div(rbt12)
}

// Schedules groups the three fixed Simples Nacional schedules.
type Schedules struct {
	Goods        Schedule `yaml:"goods" json:"goods"`
	Services     Schedule `yaml:"services" json:"services"`
	Intellectual Schedule `yaml:"intellectual" json:"intellectual"`
}

func bracket(ceiling int64, rate float64, deduction int64) Bracket {
	return Bracket{
		Ceiling:   decimal.NewFromInt(ceiling),
		Rate:      decimal.NewFromFloat(rate),
		Deduction: decimal.NewFromInt(deduction),
	}
}

// DefaultSchedules returns the 2018-reform Simples Nacional tables: Anexo I
// (commerce), Anexo III (general services) and Anexo V (intellectual
// services).
func DefaultSchedules() Schedules {
	return Schedules{
		Goods: Schedule{
			Name: "Anexo I",
			Brackets: []Bracket{
				bracket(180000, 0.04, 0),
				bracket(360000, 0.073, 5940),
				bracket(720000, 0.095, 13860),
				bracket(1800000, 0.107, 22500),
				bracket(3600000, 0.143, 87300),
				bracket(4800000, 0.19, 378000),
			},
		},
		Services: Schedule{
			Name: "Anexo III",
			Brackets: []Bracket{
				bracket(180000, 0.06, 0),
				bracket(360000, 0.112, 9360),
				bracket(720000, 0.135, 17640),
				bracket(1800000, 0.16, 35640),
				bracket(3600000, 0.21, 125640),
				bracket(4800000, 0.33, 648000),
			},
		},
		Intellectual: Schedule{
			Name: "Anexo V",
			Brackets: []Bracket{
				bracket(180000, 0.155, 0),
				bracket(360000, 0.18, 4500),
				bracket(720000, 0.195, 11250),
				bracket(1800000, 0.205, 17100),
				bracket(3600000, 0.23, 62100),
				bracket(4800000, 0.305, 540000),
			},
		},
	}
}
