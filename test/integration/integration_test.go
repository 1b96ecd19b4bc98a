package integration

import (
	"context"
	"testing"

	"github.com/rpgo/project-evaluator/internal/calculation"
	"github.com/rpgo/project-evaluator/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEndEvaluation(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	results, err := calculation.NewEvaluator().EvaluatePair(context.Background(), cfg.Solar, cfg.Wind)
	require.NoError(t, err)
	assert.NotEmpty(t, results.ID)

	rounded := results.Rounded()
	assert.Equal(t, "30.00", rounded.Solar.ROIPercent.StringFixed(2))
	assert.Equal(t, "2988.43", rounded.Solar.NPVLow.StringFixed(2))
	assert.Equal(t, "56.47", rounded.Solar.NPVHigh.StringFixed(2))
	assert.Equal(t, "15.19", rounded.Solar.IRRPercentApprox.StringFixed(2))

	assert.Equal(t, "7.50", rounded.Wind.ROIPercent.StringFixed(2))
	assert.Equal(t, "3885.19", rounded.Wind.NPVLow.StringFixed(2))
	assert.Equal(t, "-129.44", rounded.Wind.NPVHigh.StringFixed(2))
	assert.Equal(t, "11.84", rounded.Wind.IRRPercentApprox.StringFixed(2))

	assert.Len(t, rounded.Solar.YearlyRowsLow, 5)
	assert.Len(t, rounded.Wind.YearlyRowsHigh, 8)
	assert.Equal(t, "Recommendation: Select the Wind Project. It has a higher NPV of $3,885.19 at 7% "+
		"compared to the Solar Project's NPV of $2,988.43 at 5%, indicating better long-term value.",
		rounded.Comparison.Recommendation)
}

func TestTieGoesToWind(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/tie_config.yaml")
	require.NoError(t, err)

	results, err := calculation.NewEvaluator().EvaluatePair(context.Background(), cfg.Solar, cfg.Wind)
	require.NoError(t, err)
	assert.Equal(t, "Wind", results.Comparison.Winner)
	assert.True(t, results.Solar.NPVLow.Equal(results.Wind.NPVLow))
}

func TestPlanningSections(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	pert, err := calculation.EstimatePERT(cfg.PERTTasks)
	require.NoError(t, err)
	// 26/6 + 96/6
	assert.Equal(t, "20.33", pert.TotalExpectedTime.StringFixed(2))

	productivity, err := calculation.SummarizeProductivity(cfg.Productivity)
	require.NoError(t, err)
	assert.Equal(t, "750.00", productivity.OverallProductivity.StringFixed(2))

	schedule, err := calculation.AnalyzeNetwork(cfg.Network)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, schedule.CriticalPath)
	assert.Equal(t, "9", schedule.ProjectDuration.String())
}
