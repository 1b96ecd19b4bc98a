package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rpgo/project-evaluator/internal/domain"
	money "github.com/rpgo/project-evaluator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// InvalidInputMessage is the single user-facing message for malformed form input.
const InvalidInputMessage = "Invalid input: Please enter numeric values."

// Scenario prefixes used by the submitted form fields.
const (
	SolarPrefix = "solar"
	WindPrefix  = "wind"
)

// ErrMissingField marks a form field that was not submitted at all.
var ErrMissingField = errors.New("missing field")

// ValidationError reports a form field that could not be coerced to a number.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %s: %q is not numeric: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// FieldGetter looks up a submitted form value. url.Values.Get and
// gin.Context.PostForm both fit once adapted to return presence.
type FieldGetter func(name string) (string, bool)

// ParseScenarioForm reads the six <prefix>_* fields of one scenario.
// Only numeric coercion happens here; see ValidateScenario for preconditions.
func ParseScenarioForm(get FieldGetter, prefix string) (domain.ScenarioInput, error) {
	var (
		in  domain.ScenarioInput
		err error
	)
	amounts := []struct {
		suffix string
		dst    *decimal.Decimal
	}{
		{"investment", &in.Investment},
		{"annual_cashflow", &in.AnnualCashflow},
		{"net_profit", &in.NetProfit},
	}
	for _, f := range amounts {
		if *f.dst, err = parseMoneyField(get, prefix+"_"+f.suffix); err != nil {
			return domain.ScenarioInput{}, err
		}
	}

	rates := []struct {
		suffix string
		dst    *decimal.Decimal
	}{
		{"discount_low", &in.DiscountRateLow},
		{"discount_high", &in.DiscountRateHigh},
	}
	for _, f := range rates {
		if *f.dst, err = parseDecimalField(get, prefix+"_"+f.suffix); err != nil {
			return domain.ScenarioInput{}, err
		}
	}

	name := prefix + "_duration"
	raw, ok := get(name)
	if !ok {
		return domain.ScenarioInput{}, &ValidationError{Field: name, Err: ErrMissingField}
	}
	in.Duration, err = strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return domain.ScenarioInput{}, &ValidationError{Field: name, Value: raw, Err: err}
	}
	return in, nil
}

// ParseEvaluationForm reads both scenarios from a submitted form.
func ParseEvaluationForm(get FieldGetter) (solar, wind domain.ScenarioInput, err error) {
	if solar, err = ParseScenarioForm(get, SolarPrefix); err != nil {
		return domain.ScenarioInput{}, domain.ScenarioInput{}, err
	}
	if wind, err = ParseScenarioForm(get, WindPrefix); err != nil {
		return domain.ScenarioInput{}, domain.ScenarioInput{}, err
	}
	solar.Name = domain.SolarProjectName
	wind.Name = domain.WindProjectName
	return solar, wind, nil
}

func parseMoneyField(get FieldGetter, name string) (decimal.Decimal, error) {
	raw, ok := get(name)
	if !ok {
		return decimal.Zero, &ValidationError{Field: name, Err: ErrMissingField}
	}
	m, err := money.NewMoneyFromString(raw)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: name, Value: raw, Err: err}
	}
	return m.Decimal, nil
}

func parseDecimalField(get FieldGetter, name string) (decimal.Decimal, error) {
	raw, ok := get(name)
	if !ok {
		return decimal.Zero, &ValidationError{Field: name, Err: ErrMissingField}
	}
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, &ValidationError{Field: name, Value: raw, Err: err}
	}
	return v, nil
}
