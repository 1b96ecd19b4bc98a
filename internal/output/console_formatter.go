package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/project-evaluator/internal/domain"
)

// ConsoleFormatter is the condensed console output: one line per scenario and the verdict.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console-lite" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(results *domain.Evaluation) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "PROJECT EVALUATION SUMMARY")
	fmt.Fprintln(&buf, "==========================")
	for _, sc := range results.Scenarios() {
		r := sc.Rounded()
		fmt.Fprintf(&buf, "%-8s ROI %8s  NPV@%-6s %14s  NPV@%-6s %14s  IRR~ %8s\n",
			r.Name,
			FormatPercentage(r.ROIPercent),
			FormatRate(r.Input.DiscountRateLow), FormatCurrency(r.NPVLow),
			FormatRate(r.Input.DiscountRateHigh), FormatCurrency(r.NPVHigh),
			FormatPercentage(r.IRRPercentApprox))
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Recommended: %s\n", results.Comparison.Winner)
	return buf.Bytes(), nil
}
