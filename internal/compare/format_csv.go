package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats a comparison set as CSV for spreadsheet import.
type CSVFormatter struct{}

// Format generates CSV output with one row per regime.
func (cf *CSVFormatter) Format(set *ComparisonSet) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := []string{"regime", "annual_cost", "net_profit", "effective_rate_pct", "diff_from_cheapest", "recommended"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, row := range set.Results {
		record := []string{
			row.DisplayName,
			row.TotalCost.StringFixed(2),
			row.NetProfit.StringFixed(2),
			row.EffectiveRate.StringFixed(2),
			row.CostDiffFromBest.StringFixed(2),
			strconv.FormatBool(row.Recommended),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
