package domain

import (
	"github.com/shopspring/decimal"
)

// PERTTask is a three-point time estimate for one task (days).
type PERTTask struct {
	Name        string          `yaml:"name" json:"name"`
	Optimistic  decimal.Decimal `yaml:"optimistic" json:"optimistic"`
	MostLikely  decimal.Decimal `yaml:"most_likely" json:"most_likely"`
	Pessimistic decimal.Decimal `yaml:"pessimistic" json:"pessimistic"`
}

// PERTEstimate is a PERTTask with its derived statistics.
type PERTEstimate struct {
	PERTTask
	ExpectedTime      decimal.Decimal `json:"expected_time"`
	StandardDeviation decimal.Decimal `json:"standard_deviation"`
}

// PERTSummary aggregates estimates for a list of tasks executed in sequence.
type PERTSummary struct {
	Tasks                    []PERTEstimate  `json:"tasks"`
	TotalExpectedTime        decimal.Decimal `json:"total_expected_time"`
	ProjectStandardDeviation decimal.Decimal `json:"project_standard_deviation"`
}

// ProductivityEntry records delivered source lines for one software project.
type ProductivityEntry struct {
	ProjectName string          `yaml:"project_name" json:"project_name"`
	SLOC        decimal.Decimal `yaml:"sloc" json:"sloc"`
	WorkMonths  decimal.Decimal `yaml:"work_months" json:"work_months"`
}

// ProductivityResult is a ProductivityEntry with SLOC per work-month.
type ProductivityResult struct {
	ProductivityEntry
	Productivity decimal.Decimal `json:"productivity"`
}

// ProductivitySummary totals a set of productivity entries.
type ProductivitySummary struct {
	Entries             []ProductivityResult `json:"entries"`
	TotalSLOC           decimal.Decimal      `json:"total_sloc"`
	TotalWorkMonths     decimal.Decimal      `json:"total_work_months"`
	OverallProductivity decimal.Decimal      `json:"overall_productivity"`
	MeanProductivity    decimal.Decimal      `json:"mean_productivity"`
}

// NetworkTask is a node of a precedence (activity-on-node) network.
type NetworkTask struct {
	ID           int             `yaml:"id" json:"id"`
	Name         string          `yaml:"name" json:"name"`
	Duration     decimal.Decimal `yaml:"duration" json:"duration"`
	Dependencies []int           `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
}

// ScheduledTask carries the forward and backward pass times of a NetworkTask.
type ScheduledTask struct {
	NetworkTask
	EarlyStart  decimal.Decimal `json:"early_start"`
	EarlyFinish decimal.Decimal `json:"early_finish"`
	LateStart   decimal.Decimal `json:"late_start"`
	LateFinish  decimal.Decimal `json:"late_finish"`
	Slack       decimal.Decimal `json:"slack"`
}

// IsCritical reports whether the task has no slack.
func (t ScheduledTask) IsCritical() bool {
	return t.Slack.IsZero()
}

// NetworkSchedule is the result of a critical path analysis.
type NetworkSchedule struct {
	Tasks           []ScheduledTask `json:"tasks"` // topological order
	CriticalPath    []int           `json:"critical_path"`
	ProjectDuration decimal.Decimal `json:"project_duration"`
}
