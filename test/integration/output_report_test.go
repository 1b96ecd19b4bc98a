package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/project-evaluator/internal/calculation"
	"github.com/rpgo/project-evaluator/internal/config"
	"github.com/rpgo/project-evaluator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReport_AllFormats(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)
	results, err := calculation.NewEvaluator().EvaluatePair(context.Background(), cfg.Solar, cfg.Wind)
	require.NoError(t, err)

	dir := t.TempDir()
	paths, err := output.GenerateReport(results, "all", dir)
	require.NoError(t, err)
	require.Len(t, paths, len(output.AvailableFormatterNames()))

	for _, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err, p)
		assert.NotEmpty(t, data, p)
		if filepath.Ext(p) == ".html" {
			assert.True(t, strings.HasPrefix(string(data), "<!DOCTYPE html>"))
		}
	}
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, output.SaveConfiguration(cfg, out))

	reloaded, err := parser.LoadFromFile(out)
	require.NoError(t, err)
	assert.True(t, reloaded.Wind.DiscountRateHigh.Equal(cfg.Wind.DiscountRateHigh))
	assert.Equal(t, cfg.Network[0].Dependencies, reloaded.Network[0].Dependencies)
}
