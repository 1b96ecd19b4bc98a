package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/rpgo/project-evaluator/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPERTTask          = errors.New("invalid PERT task")
	ErrInvalidProductivityEntry = errors.New("invalid productivity entry")
	ErrInvalidNetworkTask       = errors.New("invalid network task")
	ErrUnknownDependency        = errors.New("unknown dependency")
	ErrCyclicNetwork            = errors.New("precedence network contains a cycle")
)

var decimalSix = decimal.NewFromInt(6)

// statsPrecision is applied to values that pass through float64 statistics.
const statsPrecision = 4

// PERTExpectedTime returns the beta-weighted mean (O + 4M + P) / 6.
func PERTExpectedTime(optimistic, mostLikely, pessimistic decimal.Decimal) decimal.Decimal {
	return optimistic.Add(mostLikely.Mul(decimal.NewFromInt(4))).Add(pessimistic).Div(decimalSix)
}

// PERTStandardDeviation returns (P - O) / 6.
func PERTStandardDeviation(optimistic, pessimistic decimal.Decimal) decimal.Decimal {
	return pessimistic.Sub(optimistic).Div(decimalSix)
}

// EstimatePERT computes expected time and spread per task, plus totals for the
// tasks run back to back. Project deviation is sqrt of the summed variances.
func EstimatePERT(tasks []domain.PERTTask) (*domain.PERTSummary, error) {
	summary := &domain.PERTSummary{
		Tasks:                    make([]domain.PERTEstimate, 0, len(tasks)),
		TotalExpectedTime:        decimal.Zero,
		ProjectStandardDeviation: decimal.Zero,
	}
	if len(tasks) == 0 {
		return summary, nil
	}

	variances := make(stats.Float64Data, 0, len(tasks))
	for i, task := range tasks {
		if task.Name == "" {
			return nil, fmt.Errorf("%w %d: name is required", ErrInvalidPERTTask, i+1)
		}
		if task.Optimistic.IsNegative() || task.MostLikely.IsNegative() || task.Pessimistic.IsNegative() {
			return nil, fmt.Errorf("%w %q: estimates cannot be negative", ErrInvalidPERTTask, task.Name)
		}

		expected := PERTExpectedTime(task.Optimistic, task.MostLikely, task.Pessimistic)
		sd := PERTStandardDeviation(task.Optimistic, task.Pessimistic)
		summary.Tasks = append(summary.Tasks, domain.PERTEstimate{
			PERTTask:          task,
			ExpectedTime:      expected,
			StandardDeviation: sd,
		})
		summary.TotalExpectedTime = summary.TotalExpectedTime.Add(expected)
		variances = append(variances, sd.Mul(sd).InexactFloat64())
	}

	totalVariance, err := stats.Sum(variances)
	if err != nil {
		return nil, fmt.Errorf("summing task variances: %w", err)
	}
	summary.ProjectStandardDeviation = decimal.NewFromFloat(math.Sqrt(totalVariance)).Round(statsPrecision)
	return summary, nil
}

// CalculateProductivity returns SLOC per work-month, or zero when no effort was recorded.
func CalculateProductivity(sloc, workMonths decimal.Decimal) decimal.Decimal {
	if !workMonths.IsPositive() {
		return decimal.Zero
	}
	return sloc.Div(workMonths)
}

// SummarizeProductivity computes per-project and overall productivity. Every
// entry needs a project name and positive SLOC and work-months.
func SummarizeProductivity(entries []domain.ProductivityEntry) (*domain.ProductivitySummary, error) {
	summary := &domain.ProductivitySummary{
		Entries:             make([]domain.ProductivityResult, 0, len(entries)),
		TotalSLOC:           decimal.Zero,
		TotalWorkMonths:     decimal.Zero,
		OverallProductivity: decimal.Zero,
		MeanProductivity:    decimal.Zero,
	}
	if len(entries) == 0 {
		return summary, nil
	}

	perProject := make(stats.Float64Data, 0, len(entries))
	for i, entry := range entries {
		if entry.ProjectName == "" || !entry.SLOC.IsPositive() || !entry.WorkMonths.IsPositive() {
			return nil, fmt.Errorf("%w %d: project name, SLOC and work-months greater than 0 are required", ErrInvalidProductivityEntry, i+1)
		}
		p := CalculateProductivity(entry.SLOC, entry.WorkMonths)
		summary.Entries = append(summary.Entries, domain.ProductivityResult{ProductivityEntry: entry, Productivity: p})
		summary.TotalSLOC = summary.TotalSLOC.Add(entry.SLOC)
		summary.TotalWorkMonths = summary.TotalWorkMonths.Add(entry.WorkMonths)
		perProject = append(perProject, p.InexactFloat64())
	}

	summary.OverallProductivity = CalculateProductivity(summary.TotalSLOC, summary.TotalWorkMonths)
	mean, err := stats.Mean(perProject)
	if err != nil {
		return nil, fmt.Errorf("averaging productivity: %w", err)
	}
	summary.MeanProductivity = decimal.NewFromFloat(mean).Round(statsPrecision)
	return summary, nil
}

// AnalyzeNetwork runs the critical path method over a precedence network.
// Tasks may be listed in any order; the schedule is returned in topological
// order (ties broken by input order).
func AnalyzeNetwork(tasks []domain.NetworkTask) (*domain.NetworkSchedule, error) {
	schedule := &domain.NetworkSchedule{
		Tasks:           []domain.ScheduledTask{},
		CriticalPath:    []int{},
		ProjectDuration: decimal.Zero,
	}
	if len(tasks) == 0 {
		return schedule, nil
	}

	index := make(map[int]int, len(tasks))
	for i, task := range tasks {
		if task.Name == "" || !task.Duration.IsPositive() {
			return nil, fmt.Errorf("%w %d: name and a positive duration are required", ErrInvalidNetworkTask, task.ID)
		}
		if _, dup := index[task.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidNetworkTask, task.ID)
		}
		index[task.ID] = i
	}

	order, err := topologicalOrder(tasks, index)
	if err != nil {
		return nil, err
	}

	scheduled := make([]domain.ScheduledTask, len(tasks))
	for _, i := range order {
		st := domain.ScheduledTask{NetworkTask: tasks[i], EarlyStart: decimal.Zero}
		for _, dep := range tasks[i].Dependencies {
			if ef := scheduled[index[dep]].EarlyFinish; ef.GreaterThan(st.EarlyStart) {
				st.EarlyStart = ef
			}
		}
		st.EarlyFinish = st.EarlyStart.Add(st.Duration)
		if st.EarlyFinish.GreaterThan(schedule.ProjectDuration) {
			schedule.ProjectDuration = st.EarlyFinish
		}
		scheduled[i] = st
	}

	successors := make(map[int][]int, len(tasks))
	for _, task := range tasks {
		for _, dep := range task.Dependencies {
			successors[dep] = append(successors[dep], task.ID)
		}
	}

	for k := len(order) - 1; k >= 0; k-- {
		i := order[k]
		st := scheduled[i]
		st.LateFinish = schedule.ProjectDuration
		for _, succ := range successors[st.ID] {
			if ls := scheduled[index[succ]].LateStart; ls.LessThan(st.LateFinish) {
				st.LateFinish = ls
			}
		}
		st.LateStart = st.LateFinish.Sub(st.Duration)
		st.Slack = st.LateStart.Sub(st.EarlyStart)
		scheduled[i] = st
	}

	for _, i := range order {
		schedule.Tasks = append(schedule.Tasks, scheduled[i])
		if scheduled[i].IsCritical() {
			schedule.CriticalPath = append(schedule.CriticalPath, scheduled[i].ID)
		}
	}
	return schedule, nil
}

// topologicalOrder returns task positions so every task follows its dependencies.
func topologicalOrder(tasks []domain.NetworkTask, index map[int]int) ([]int, error) {
	indegree := make([]int, len(tasks))
	for i, task := range tasks {
		for _, dep := range task.Dependencies {
			if _, ok := index[dep]; !ok {
				return nil, fmt.Errorf("%w: task %d depends on %d", ErrUnknownDependency, task.ID, dep)
			}
			if dep == task.ID {
				return nil, fmt.Errorf("%w: task %d depends on itself", ErrCyclicNetwork, task.ID)
			}
			indegree[i]++
		}
	}

	order := make([]int, 0, len(tasks))
	done := make([]bool, len(tasks))
	for len(order) < len(tasks) {
		progressed := false
		for i := range tasks {
			if done[i] || indegree[i] > 0 {
				continue
			}
			done[i] = true
			order = append(order, i)
			progressed = true
			for j, other := range tasks {
				for _, dep := range other.Dependencies {
					if dep == tasks[i].ID {
						indegree[j]--
					}
				}
			}
		}
		if !progressed {
			return nil, ErrCyclicNetwork
		}
	}
	return order, nil
}
