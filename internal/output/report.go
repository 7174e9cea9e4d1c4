package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mribeiro/tributa/internal/domain"
	"github.com/mribeiro/tributa/pkg/moneyfmt"
)

// ReportGenerator renders a full report in the supported formats.
type ReportGenerator struct{}

// NewReportGenerator creates a new report generator.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// Render produces the report in the requested format.
func (rg *ReportGenerator) Render(report *domain.Report, format string) (string, error) {
	switch format {
	case "console", "":
		return rg.ConsoleReport(report), nil
	case "json":
		return rg.JSONReport(report)
	case "csv":
		return rg.CSVReport(report)
	}
	return "", fmt.Errorf("unsupported format: %s", format)
}

// JSONReport marshals the full report, indented.
func (rg *ReportGenerator) JSONReport(report *domain.Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// CSVReport emits one row per regime plus, in derived mode, the monthly
// forecast table.
func (rg *ReportGenerator) CSVReport(report *domain.Report) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"regime", "total_cost", "net_profit", "effective_rate_pct", "recommended"}); err != nil {
		return "", err
	}
	for _, regime := range domain.AllRegimes {
		result := report.Analysis.Result(regime)
		if result == nil {
			continue
		}
		record := []string{
			regime.DisplayName(),
			result.TotalCost.StringFixed(2),
			result.NetProfit.StringFixed(2),
			result.EffectiveRate.StringFixed(2),
			strconv.FormatBool(regime == report.Analysis.Recommended),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	if len(report.Analysis.Projections) > 0 {
		if err := w.Write([]string{}); err != nil {
			return "", err
		}
		if err := w.Write([]string{"month_offset", "rbt12", "simples_cost", "presumido_cost", "real_cost", "simples_bracket"}); err != nil {
			return "", err
		}
		for _, p := range report.Analysis.Projections {
			record := []string{
				strconv.Itoa(p.MonthOffset),
				p.RBT12.StringFixed(2),
				p.SimplesCost.StringFixed(2),
				p.PresumidoCost.StringFixed(2),
				p.RealCost.StringFixed(2),
				strconv.Itoa(p.SimplesBracket),
			}
			if err := w.Write(record); err != nil {
				return "", err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ConsoleReport renders the styled terminal report.
func (rg *ReportGenerator) ConsoleReport(report *domain.Report) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("TAX REGIME ANALYSIS") + "\n")
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("generated %s | mode: %s",
		report.GeneratedAt.Format(time.RFC3339), report.Mode)) + "\n\n")

	rg.writeInputSummary(&sb, report.Input)
	rg.writeRegimes(&sb, report.Analysis)
	rg.writeTransitions(&sb, report.Analysis.Transitions)
	rg.writeProjections(&sb, report.Analysis.Projections)
	rg.writeSuggestions(&sb, report.Analysis.Suggestions)

	return sb.String()
}

func (rg *ReportGenerator) writeInputSummary(sb *strings.Builder, input *domain.FinancialInput) {
	sb.WriteString(sectionStyle.Render("INPUT") + "\n")
	sb.WriteString(fmt.Sprintf("  Goods revenue:     %s\n", moneyfmt.BRL(input.GoodsRevenue)))
	sb.WriteString(fmt.Sprintf("  Services revenue:  %s\n", moneyfmt.BRL(input.ServicesRevenue)))
	sb.WriteString(fmt.Sprintf("  RBT12:             %s\n", moneyfmt.BRL(input.RBT12)))
	sb.WriteString(fmt.Sprintf("  Payroll:           %s\n", moneyfmt.BRL(input.Payroll)))
	sb.WriteString(fmt.Sprintf("  Pro-labore:        %s\n", moneyfmt.BRL(input.ProLabore)))
	sb.WriteString(fmt.Sprintf("  COGS:              %s\n", moneyfmt.BRL(input.CostOfGoodsSold)))
	sb.WriteString(fmt.Sprintf("  Operating expenses: %s\n", moneyfmt.BRL(input.OperatingExpenses)))
	sb.WriteString("\n")
}

func (rg *ReportGenerator) writeRegimes(sb *strings.Builder, analysis *domain.Analysis) {
	sb.WriteString(sectionStyle.Render("REGIMES") + "\n")
	for _, regime := range domain.AllRegimes {
		result := analysis.Result(regime)
		if result == nil {
			continue
		}
		name := regime.DisplayName()
		if regime == analysis.Recommended {
			name = recommendedStyle.Render(name + " (recommended)")
		}
		sb.WriteString("  " + name + "\n")

		switch regime {
		case domain.RegimeSimples:
			sb.WriteString(fmt.Sprintf("    DAS:            %s (bracket %s, RBT12 %s)\n",
				moneyfmt.BRL(result.DAS), domain.BracketName(result.BracketIndex), moneyfmt.BRL(result.RBT12Used)))
		default:
			sb.WriteString(fmt.Sprintf("    IRPJ:           %s (+ surtax %s)\n",
				moneyfmt.BRL(result.IRPJ), moneyfmt.BRL(result.IRPJSurtax)))
			sb.WriteString(fmt.Sprintf("    CSLL:           %s\n", moneyfmt.BRL(result.CSLL)))
			sb.WriteString(fmt.Sprintf("    PIS/COFINS:     %s / %s\n",
				moneyfmt.BRL(result.PIS), moneyfmt.BRL(result.COFINS)))
			sb.WriteString(fmt.Sprintf("    INSS patronal:  %s\n", moneyfmt.BRL(result.INSSPatronal)))
			if regime == domain.RegimeReal && result.FiscalLoss.IsPositive() {
				sb.WriteString(fmt.Sprintf("    Fiscal loss:    %s\n", moneyfmt.BRL(result.FiscalLoss)))
			}
		}
		sb.WriteString(fmt.Sprintf("    Total cost:     %s | Net profit: %s | Effective rate: %s%%\n",
			moneyfmt.BRL(result.TotalCost), moneyfmt.BRL(result.NetProfit), result.EffectiveRate.StringFixed(2)))
	}
	sb.WriteString("\n")
}

func (rg *ReportGenerator) writeTransitions(sb *strings.Builder, transitions []domain.TransitionAlert) {
	if len(transitions) == 0 {
		return
	}
	sb.WriteString(sectionStyle.Render("BRACKET TRANSITIONS") + "\n")
	for _, t := range transitions {
		severity := moderateStyle.Render(string(t.Severity))
		if t.Severity == domain.SeverityCritical {
			severity = criticalStyle.Render(string(t.Severity))
		}
		direction := "down to"
		if t.Upgrading {
			direction = "up to"
		}
		sb.WriteString(fmt.Sprintf("  Month %d: %s %s %s [%s], monthly impact %s\n",
			t.MonthOffset, t.FromName, direction, t.ToName, severity, moneyfmt.BRL(t.MonthlyTaxDelta)))
	}
	sb.WriteString("\n")
}

func (rg *ReportGenerator) writeProjections(sb *strings.Builder, projections []domain.MonthlyProjection) {
	if len(projections) == 0 {
		return
	}
	sb.WriteString(sectionStyle.Render("FORECAST") + "\n")
	sb.WriteString(fmt.Sprintf("  %-6s %18s %18s %18s %18s %8s\n",
		"Month", "RBT12", "Simples", "Presumido", "Real", "Bracket"))
	for _, p := range projections {
		sb.WriteString(fmt.Sprintf("  %-6d %18s %18s %18s %18s %8d\n",
			p.MonthOffset,
			moneyfmt.Numeric(p.RBT12),
			moneyfmt.Numeric(p.SimplesCost),
			moneyfmt.Numeric(p.PresumidoCost),
			moneyfmt.Numeric(p.RealCost),
			p.SimplesBracket))
	}
	sb.WriteString("\n")
}

func (rg *ReportGenerator) writeSuggestions(sb *strings.Builder, suggestions []domain.Suggestion) {
	if len(suggestions) == 0 {
		return
	}
	sb.WriteString(sectionStyle.Render("SUGGESTIONS") + "\n")
	for _, s := range suggestions {
		priority := string(s.Priority)
		if s.Priority == domain.PriorityHigh {
			priority = criticalStyle.Render(priority)
		}
		sb.WriteString(fmt.Sprintf("  [%s] %s\n", priority, s.Title))
		sb.WriteString(fmt.Sprintf("    %s\n", s.Description))
		sb.WriteString(fmt.Sprintf("    Impact: %s\n", s.Impact))
		sb.WriteString(fmt.Sprintf("    Recommendation: %s\n", s.Recommendation))
	}
	sb.WriteString("\n")
}
