package calculation

import (
	"testing"

	"github.com/mribeiro/tributa/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func mustInput(t *testing.T, d domain.InputData) *domain.FinancialInput {
	t.Helper()
	input, err := domain.NewFinancialInput(d)
	require.NoError(t, err)
	return input
}

func decPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// flatHistory returns twelve identical monthly revenue figures.
func flatHistory(monthly int64) []decimal.Decimal {
	history := make([]decimal.Decimal, domain.HistoryMonths)
	for i := range history {
		history[i] = decimal.NewFromInt(monthly)
	}
	return history
}
