package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/project-evaluator/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed evaluation with both yearly schedules.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(results *domain.Evaluation) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "SOLAR VS WIND CAPITAL INVESTMENT EVALUATION")
	fmt.Fprintln(&buf, "=================================================================================")
	if results.ID != "" {
		fmt.Fprintf(&buf, "Evaluation ID: %s\n", results.ID)
	}
	fmt.Fprintln(&buf)

	for _, sc := range results.Scenarios() {
		writeScenario(&buf, sc.Rounded())
	}

	fmt.Fprintln(&buf, "ASSUMPTIONS:")
	for _, note := range GenerateAssumptions(results) {
		fmt.Fprintf(&buf, "  • %s\n", note)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, results.Comparison.Recommendation)
	return buf.Bytes(), nil
}

func writeScenario(buf *bytes.Buffer, sc domain.ScenarioResult) {
	title := strings.ToUpper(sc.Name) + " PROJECT"
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("-", len(title)))
	fmt.Fprintf(buf, "  Initial Investment:       %s\n", FormatCurrency(sc.Input.Investment))
	fmt.Fprintf(buf, "  Annual Cash Flow:         %s\n", FormatCurrency(sc.Input.AnnualCashflow))
	fmt.Fprintf(buf, "  Net Profit:               %s\n", FormatCurrency(sc.Input.NetProfit))
	fmt.Fprintf(buf, "  Duration:                 %d years\n", sc.Input.Duration)
	fmt.Fprintf(buf, "  ROI (annualized):         %s\n", FormatPercentage(sc.ROIPercent))
	fmt.Fprintf(buf, "  NPV @ %-6s              %s\n", FormatRate(sc.Input.DiscountRateLow)+":", FormatCurrency(sc.NPVLow))
	fmt.Fprintf(buf, "  NPV @ %-6s              %s\n", FormatRate(sc.Input.DiscountRateHigh)+":", FormatCurrency(sc.NPVHigh))
	fmt.Fprintf(buf, "  IRR (approx.):            %s\n", FormatPercentage(sc.IRRPercentApprox))
	fmt.Fprintln(buf)

	writeSchedule(buf, sc.Input.DiscountRateLow.String(), sc.YearlyRowsLow)
	writeSchedule(buf, sc.Input.DiscountRateHigh.String(), sc.YearlyRowsHigh)
}

func writeSchedule(buf *bytes.Buffer, rate string, rows []domain.YearlyRow) {
	fmt.Fprintf(buf, "  Discounted cash flows @ %s%%\n", rate)
	fmt.Fprintf(buf, "  %-6s %-16s %s\n", "Year", "Discount Factor", "Discounted Cash Flow")
	for _, row := range rows {
		fmt.Fprintf(buf, "  %-6d %-16s %d\n", row.Year, row.DiscountFactor.StringFixed(4), row.DiscountedCashflow)
	}
	fmt.Fprintln(buf)
}
