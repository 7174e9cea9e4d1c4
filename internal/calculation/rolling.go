package calculation

import (
	"github.com/mribeiro/tributa/internal/domain"
	"github.com/shopspring/decimal"
)

// RollingRevenue produces the rolling twelve-month revenue (RBT12) for the
// current month and for future offsets along the projection horizon. The
// window ages out the oldest history months and admits projected months in
// their place.
type RollingRevenue struct {
	input *domain.FinancialInput
}

// NewRollingRevenue wraps an input record. The engine is only meaningful in
// derived mode; in direct mode every offset returns the supplied RBT12.
func NewRollingRevenue(input *domain.FinancialInput) *RollingRevenue {
	return &RollingRevenue{input: input}
}

// At returns the rolling revenue at the given month offset. Offset 0 is the
// current window.
func (rr *RollingRevenue) At(offset int) decimal.Decimal {
	in := rr.input
	if in.Mode != domain.ModeDerived || offset <= 0 {
		return in.RBT12
	}

	if offset > len(in.MonthlyHistory) {
		offset = len(in.MonthlyHistory)
	}
	total := decimal.Zero
	for _, m := range in.MonthlyHistory[offset:] {
		total = total.Add(m)
	}
	admitted := offset
	if admitted > len(in.Projections) {
		admitted = len(in.Projections)
	}
	for _, p := range in.Projections[:admitted] {
		total = total.Add(p)
	}
	return total
}

// Horizon is the number of forecast months available: the projection count,
// capped at the supported maximum.
func (rr *RollingRevenue) Horizon() int {
	if rr.input.Mode != domain.ModeDerived {
		return 0
	}
	n := len(rr.input.Projections)
	if n > domain.MaxProjections {
		n = domain.MaxProjections
	}
	return n
}
