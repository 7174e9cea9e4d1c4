package compare

import (
	"fmt"
	"strings"

	"github.com/mribeiro/tributa/pkg/moneyfmt"
)

// TableFormatter formats a comparison set as a console table.
type TableFormatter struct{}

// Format generates the comparison table.
func (tf *TableFormatter) Format(set *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("TAX REGIME COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	if set.InputPath != "" {
		sb.WriteString(fmt.Sprintf("Input: %s\n", set.InputPath))
	}
	sb.WriteString("\n")

	nameWidth := 20
	numWidth := 18

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Regime",
		numWidth, "Annual Cost",
		numWidth, "Net Profit",
		numWidth, "Effective Rate",
		numWidth, "vs Cheapest"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for _, row := range set.Results {
		marker := ""
		if row.Recommended {
			marker = " *"
		}
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s%s\n",
			nameWidth, row.DisplayName,
			numWidth, moneyfmt.Numeric(row.TotalCost),
			numWidth, moneyfmt.Numeric(row.NetProfit),
			numWidth, row.EffectiveRate.StringFixed(2)+"%",
			numWidth, moneyfmt.Numeric(row.CostDiffFromBest),
			marker))
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Recommended: %s (annual spread %s)\n",
		set.Recommended.DisplayName(), moneyfmt.BRL(set.Spread)))

	if len(set.Suggestions) > 0 {
		sb.WriteString("\nSUGGESTIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, s := range set.Suggestions {
			sb.WriteString(fmt.Sprintf("[%s] %s\n", strings.ToUpper(string(s.Priority)), s.Title))
			sb.WriteString(fmt.Sprintf("  %s\n", s.Description))
			sb.WriteString(fmt.Sprintf("  Impact: %s\n", s.Impact))
			sb.WriteString(fmt.Sprintf("  Recommendation: %s\n", s.Recommendation))
		}
	}

	return sb.String()
}
