package domain

import (
	money "github.com/rpgo/project-evaluator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// YearlyRow is one year of a discounted cash flow schedule, rounded for display.
type YearlyRow struct {
	Year               int             `json:"year"`
	DiscountFactor     decimal.Decimal `json:"discount_factor"`     // 4 places
	DiscountedCashflow int64           `json:"discounted_cashflow"` // whole currency units
}

// ScenarioResult holds the full-precision metrics for one scenario.
type ScenarioResult struct {
	Name             string          `json:"name"`
	Input            ScenarioInput   `json:"input"`
	ROIPercent       decimal.Decimal `json:"roi_percent"`
	NPVLow           decimal.Decimal `json:"npv_low"`
	NPVHigh          decimal.Decimal `json:"npv_high"`
	IRRPercentApprox decimal.Decimal `json:"irr_percent_approx"`
	YearlyRowsLow    []YearlyRow     `json:"yearly_rows_low"`
	YearlyRowsHigh   []YearlyRow     `json:"yearly_rows_high"`
}

// Rounded returns a copy with both NPVs rounded to cents and ROI and IRR
// rounded to 2 places. Schedules are already rounded and are shared with the
// receiver.
func (r ScenarioResult) Rounded() ScenarioResult {
	r.ROIPercent = r.ROIPercent.Round(2)
	r.NPVLow = roundCents(r.NPVLow)
	r.NPVHigh = roundCents(r.NPVHigh)
	r.IRRPercentApprox = r.IRRPercentApprox.Round(2)
	return r
}

func roundCents(d decimal.Decimal) decimal.Decimal {
	return money.NewMoneyFromDecimal(d).Round().Decimal
}

// Comparison is the outcome of ranking two scenarios by NPV at their low rate.
// WinnerIndex is the winner's position in Evaluation.Scenarios (0 solar, 1 wind),
// which stays unambiguous when both scenarios carry the same name.
type Comparison struct {
	WinnerIndex    int             `json:"winner_index"`
	Winner         string          `json:"winner"`
	Loser          string          `json:"loser"`
	WinnerNPV      decimal.Decimal `json:"winner_npv"`
	LoserNPV       decimal.Decimal `json:"loser_npv"`
	WinnerRate     decimal.Decimal `json:"winner_rate"`
	LoserRate      decimal.Decimal `json:"loser_rate"`
	Recommendation string          `json:"recommendation"`
}

// Evaluation is the complete output record for one solar/wind request.
type Evaluation struct {
	ID         string         `json:"id"`
	Solar      ScenarioResult `json:"solar"`
	Wind       ScenarioResult `json:"wind"`
	Comparison Comparison     `json:"comparison"`
}

// Rounded returns the display form of the evaluation.
func (e Evaluation) Rounded() Evaluation {
	e.Solar = e.Solar.Rounded()
	e.Wind = e.Wind.Rounded()
	e.Comparison.WinnerNPV = roundCents(e.Comparison.WinnerNPV)
	e.Comparison.LoserNPV = roundCents(e.Comparison.LoserNPV)
	return e
}

// Scenarios returns solar then wind, the order every report uses.
func (e *Evaluation) Scenarios() []ScenarioResult {
	return []ScenarioResult{e.Solar, e.Wind}
}
