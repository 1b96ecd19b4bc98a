package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/project-evaluator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.Evaluation) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Investment", "AnnualCashflow", "NetProfit", "Duration", "DiscountRateLow", "DiscountRateHigh", "ROIPercent", "NPVLow", "NPVHigh", "IRRPercentApprox", "Recommended"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i, sc := range results.Scenarios() {
		r := sc.Rounded()
		recommended := "false"
		if i == results.Comparison.WinnerIndex {
			recommended = "true"
		}
		row := []string{
			r.Name,
			r.Input.Investment.StringFixed(2),
			r.Input.AnnualCashflow.StringFixed(2),
			r.Input.NetProfit.StringFixed(2),
			intToString(r.Input.Duration),
			r.Input.DiscountRateLow.String(),
			r.Input.DiscountRateHigh.String(),
			r.ROIPercent.StringFixed(2),
			r.NPVLow.StringFixed(2),
			r.NPVHigh.StringFixed(2),
			r.IRRPercentApprox.StringFixed(2),
			recommended,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
