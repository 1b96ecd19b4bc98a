package calculation

import (
	"errors"

	"github.com/rpgo/project-evaluator/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrZeroInvestment is returned when a metric would divide by a zero investment.
	ErrZeroInvestment = errors.New("investment must be non-zero")
	// ErrNonPositiveDuration is returned when a metric would divide by a duration below one year.
	ErrNonPositiveDuration = errors.New("duration must be at least one year")
	// ErrFlatNPV is returned when both NPV samples are equal and the interpolation has no slope.
	ErrFlatNPV = errors.New("npv is identical at both discount rates")
)

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalHundred = decimal.NewFromInt(100)
)

// CalculateROI returns the average annual profit as a percentage of the investment:
// (netProfit / duration) / investment * 100.
func CalculateROI(netProfit, investment decimal.Decimal, duration int) (decimal.Decimal, error) {
	if duration <= 0 {
		return decimal.Zero, ErrNonPositiveDuration
	}
	if investment.IsZero() {
		return decimal.Zero, ErrZeroInvestment
	}
	averageAnnualProfit := netProfit.Div(decimal.NewFromInt(int64(duration)))
	return averageAnnualProfit.Div(investment).Mul(decimalHundred), nil
}

// CalculateNPVSchedule discounts a level annual cash flow over duration years and
// returns the net present value together with the per-year schedule.
//
// The discount factor is carried forward year to year as df(t) = df(t-1) / (1+r),
// each division held to decimal.DivisionPrecision places, so the cost per year
// stays constant. The NPV accumulates from these unrounded factors; only the
// returned rows are rounded (discount factor to 4 places, discounted cash flow
// to whole units, both half away from zero).
// A duration of zero or less yields an empty schedule and an NPV of
// -initialInvestment. discountRatePercent must be greater than -100.
func CalculateNPVSchedule(initialInvestment, annualCashflow, discountRatePercent decimal.Decimal, duration int) (decimal.Decimal, []domain.YearlyRow) {
	rate := discountRatePercent.Div(decimalHundred)
	onePlusRate := decimalOne.Add(rate)

	npv := initialInvestment.Neg()
	rows := make([]domain.YearlyRow, 0, max(duration, 0))
	discountFactor := decimalOne
	for t := 1; t <= duration; t++ {
		discountFactor = discountFactor.Div(onePlusRate)
		discountedCashflow := discountFactor.Mul(annualCashflow)
		npv = npv.Add(discountedCashflow)

		rows = append(rows, domain.YearlyRow{
			Year:               t,
			DiscountFactor:     discountFactor.Round(4),
			DiscountedCashflow: discountedCashflow.Round(0).IntPart(),
		})
	}
	return npv, rows
}

// ApproximateIRR estimates the internal rate of return by one linear
// interpolation between two NPV samples:
//
//	irr = rateLow + npvLow / (npvLow - npvHigh) * (rateHigh - rateLow)
//
// This is not a root finder. The estimate is only as good as the linearity of
// NPV over [rateLow, rateHigh]. Rates are percentages and so is the result.
func ApproximateIRR(rateLow, rateHigh, npvLow, npvHigh decimal.Decimal) (decimal.Decimal, error) {
	spread := npvLow.Sub(npvHigh)
	if spread.IsZero() {
		return decimal.Zero, ErrFlatNPV
	}
	return rateLow.Add(npvLow.Div(spread).Mul(rateHigh.Sub(rateLow))), nil
}
