package domain

import (
	"github.com/shopspring/decimal"
)

// Default project names used when a scenario leaves Name empty.
const (
	SolarProjectName = "Solar"
	WindProjectName  = "Wind"
)

// ScenarioInput holds the six numeric inputs describing one capital project.
// Discount rates are percentages (5 means 5%).
type ScenarioInput struct {
	Name             string          `yaml:"name,omitempty" json:"name,omitempty"`
	Investment       decimal.Decimal `yaml:"investment" json:"investment"`
	AnnualCashflow   decimal.Decimal `yaml:"annual_cashflow" json:"annual_cashflow"`
	NetProfit        decimal.Decimal `yaml:"net_profit" json:"net_profit"`
	Duration         int             `yaml:"duration" json:"duration"` // years
	DiscountRateLow  decimal.Decimal `yaml:"discount_rate_low" json:"discount_rate_low"`
	DiscountRateHigh decimal.Decimal `yaml:"discount_rate_high" json:"discount_rate_high"`
}

// DisplayName returns Name, or fallback when Name is blank.
func (s ScenarioInput) DisplayName(fallback string) string {
	if s.Name == "" {
		return fallback
	}
	return s.Name
}

// Configuration is the top-level scenario file.
type Configuration struct {
	Solar ScenarioInput `yaml:"solar" json:"solar"`
	Wind  ScenarioInput `yaml:"wind" json:"wind"`

	// Optional planning sections
	PERTTasks    []PERTTask          `yaml:"pert_tasks,omitempty" json:"pert_tasks,omitempty"`
	Productivity []ProductivityEntry `yaml:"productivity,omitempty" json:"productivity,omitempty"`
	Network      []NetworkTask       `yaml:"network,omitempty" json:"network,omitempty"`
}
