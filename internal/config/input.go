package config

import (
	"fmt"
	"os"

	"github.com/rpgo/project-evaluator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a scenario configuration.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ValidateScenario(&config.Solar); err != nil {
		return fmt.Errorf("solar scenario validation failed: %w", err)
	}
	if err := ValidateScenario(&config.Wind); err != nil {
		return fmt.Errorf("wind scenario validation failed: %w", err)
	}
	return ip.ValidatePlanning(config)
}

// LoadPlanningFromFile loads a file that may carry only the planning sections.
// The solar and wind scenarios are not validated.
func (ip *InputParser) LoadPlanningFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidatePlanning(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

// ValidatePlanning checks the optional PERT, productivity and network sections.
func (ip *InputParser) ValidatePlanning(config *domain.Configuration) error {
	for i, task := range config.PERTTasks {
		if task.Name == "" {
			return fmt.Errorf("pert task %d: name is required", i+1)
		}
	}
	for i, entry := range config.Productivity {
		if entry.ProjectName == "" {
			return fmt.Errorf("productivity entry %d: project name is required", i+1)
		}
	}
	for i, task := range config.Network {
		if task.ID <= 0 {
			return fmt.Errorf("network task %d: id must be positive", i+1)
		}
	}
	return nil
}

var minDiscountRate = decimal.NewFromInt(-100)

// MaxDuration is the longest project life, in years, accepted from any input.
const MaxDuration = 100

// ValidateScenario checks the arithmetic preconditions of the evaluator:
// a positive investment, between one and MaxDuration years, two distinct
// discount rates and rates above -100%.
func ValidateScenario(scenario *domain.ScenarioInput) error {
	if !scenario.Investment.IsPositive() {
		return fmt.Errorf("investment must be positive")
	}
	if scenario.Duration < 1 {
		return fmt.Errorf("duration must be at least 1 year")
	}
	if scenario.Duration > MaxDuration {
		return fmt.Errorf("duration must be at most %d years", MaxDuration)
	}
	if !scenario.DiscountRateLow.GreaterThan(minDiscountRate) || !scenario.DiscountRateHigh.GreaterThan(minDiscountRate) {
		return fmt.Errorf("discount rates must be greater than -100%%")
	}
	if scenario.DiscountRateLow.Equal(scenario.DiscountRateHigh) {
		return fmt.Errorf("discount_rate_low and discount_rate_high must differ")
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Solar: domain.ScenarioInput{
			Name:             domain.SolarProjectName,
			Investment:       decimal.NewFromInt(10000),
			AnnualCashflow:   decimal.NewFromInt(3000),
			NetProfit:        decimal.NewFromInt(15000),
			Duration:         5,
			DiscountRateLow:  decimal.NewFromInt(5),
			DiscountRateHigh: decimal.NewFromInt(15),
		},
		Wind: domain.ScenarioInput{
			Name:             domain.WindProjectName,
			Investment:       decimal.NewFromInt(20000),
			AnnualCashflow:   decimal.NewFromInt(4000),
			NetProfit:        decimal.NewFromInt(12000),
			Duration:         8,
			DiscountRateLow:  decimal.NewFromInt(7),
			DiscountRateHigh: decimal.NewFromInt(12),
		},
		PERTTasks: []domain.PERTTask{
			{Name: "Site survey", Optimistic: decimal.NewFromInt(2), MostLikely: decimal.NewFromInt(4), Pessimistic: decimal.NewFromInt(8)},
			{Name: "Procurement", Optimistic: decimal.NewFromInt(10), MostLikely: decimal.NewFromInt(14), Pessimistic: decimal.NewFromInt(30)},
			{Name: "Installation", Optimistic: decimal.NewFromInt(5), MostLikely: decimal.NewFromInt(7), Pessimistic: decimal.NewFromInt(10)},
		},
		Productivity: []domain.ProductivityEntry{
			{ProjectName: "monitoring-dashboard", SLOC: decimal.NewFromInt(12000), WorkMonths: decimal.NewFromInt(8)},
			{ProjectName: "inverter-firmware", SLOC: decimal.NewFromInt(3000), WorkMonths: decimal.NewFromInt(12)},
		},
		Network: []domain.NetworkTask{
			{ID: 1, Name: "Site survey", Duration: decimal.NewFromInt(3)},
			{ID: 2, Name: "Install panels", Duration: decimal.NewFromInt(5), Dependencies: []int{1}},
			{ID: 3, Name: "Grid permit", Duration: decimal.NewFromInt(3), Dependencies: []int{1}},
			{ID: 4, Name: "Commission", Duration: decimal.NewFromInt(1), Dependencies: []int{2, 3}},
		},
	}
}
