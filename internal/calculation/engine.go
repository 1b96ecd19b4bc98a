package calculation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rpgo/project-evaluator/internal/domain"
)

// Evaluator orchestrates the per-scenario metrics and the solar/wind comparison.
// It holds no per-request state and is safe for concurrent use once configured.
type Evaluator struct {
	Logger Logger
	// NewID produces Evaluation IDs; defaults to random UUIDs.
	NewID func() string
}

// NewEvaluator creates an evaluator with a no-op logger
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Logger: NopLogger{},
		NewID:  func() string { return uuid.NewString() },
	}
}

// SetLogger sets the logger for the evaluator. If nil is provided, a no-op logger is used.
func (e *Evaluator) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// EvaluateScenario computes ROI, NPV at both discount rates, both yearly
// schedules and the interpolated IRR for one scenario.
func (e *Evaluator) EvaluateScenario(ctx context.Context, in domain.ScenarioInput) (*domain.ScenarioResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	roi, err := CalculateROI(in.NetProfit, in.Investment, in.Duration)
	if err != nil {
		return nil, fmt.Errorf("roi: %w", err)
	}

	npvLow, rowsLow := CalculateNPVSchedule(in.Investment, in.AnnualCashflow, in.DiscountRateLow, in.Duration)
	npvHigh, rowsHigh := CalculateNPVSchedule(in.Investment, in.AnnualCashflow, in.DiscountRateHigh, in.Duration)

	irr, err := ApproximateIRR(in.DiscountRateLow, in.DiscountRateHigh, npvLow, npvHigh)
	if err != nil {
		return nil, fmt.Errorf("irr between %s%% and %s%%: %w", in.DiscountRateLow, in.DiscountRateHigh, err)
	}

	e.Logger.Debugf("%s: roi=%s npv@%s%%=%s npv@%s%%=%s irr~%s%%",
		in.Name, roi.StringFixed(2),
		in.DiscountRateLow, npvLow.StringFixed(2),
		in.DiscountRateHigh, npvHigh.StringFixed(2),
		irr.StringFixed(2))

	return &domain.ScenarioResult{
		Name:             in.Name,
		Input:            in,
		ROIPercent:       roi,
		NPVLow:           npvLow,
		NPVHigh:          npvHigh,
		IRRPercentApprox: irr,
		YearlyRowsLow:    rowsLow,
		YearlyRowsHigh:   rowsHigh,
	}, nil
}

// EvaluatePair evaluates the solar and wind scenarios and recommends the one
// with the higher NPV at its low discount rate. Blank names default to
// "Solar" and "Wind".
func (e *Evaluator) EvaluatePair(ctx context.Context, solar, wind domain.ScenarioInput) (*domain.Evaluation, error) {
	solar.Name = solar.DisplayName(domain.SolarProjectName)
	wind.Name = wind.DisplayName(domain.WindProjectName)

	solarResult, err := e.EvaluateScenario(ctx, solar)
	if err != nil {
		return nil, fmt.Errorf("%s project: %w", solar.Name, err)
	}
	windResult, err := e.EvaluateScenario(ctx, wind)
	if err != nil {
		return nil, fmt.Errorf("%s project: %w", wind.Name, err)
	}

	comparison := CompareScenarios(*solarResult, *windResult)
	e.Logger.Infof("evaluation complete: %s wins (%s vs %s)",
		comparison.Winner, comparison.WinnerNPV.StringFixed(2), comparison.LoserNPV.StringFixed(2))

	id := ""
	if e.NewID != nil {
		id = e.NewID()
	}
	return &domain.Evaluation{
		ID:         id,
		Solar:      *solarResult,
		Wind:       *windResult,
		Comparison: comparison,
	}, nil
}
