package calculation

import (
	"testing"

	"github.com/rpgo/project-evaluator/internal/domain"
	"github.com/stretchr/testify/assert"
)

func resultWithNPV(name, npvLow, rateLow string) domain.ScenarioResult {
	return domain.ScenarioResult{
		Name:   name,
		Input:  domain.ScenarioInput{Name: name, DiscountRateLow: d(rateLow)},
		NPVLow: d(npvLow),
	}
}

func TestCompareScenarios_SolarWins(t *testing.T) {
	solar := resultWithNPV("Solar", "2989.35", "5")
	wind := resultWithNPV("Wind", "1500.00", "6")

	c := CompareScenarios(solar, wind)
	assert.Equal(t, 0, c.WinnerIndex)
	assert.Equal(t, "Solar", c.Winner)
	assert.Equal(t, "Wind", c.Loser)
	assert.True(t, c.WinnerNPV.Equal(d("2989.35")))
	assert.Equal(t,
		"Recommendation: Select the Solar Project. It has a higher NPV of $2,989.35 at 5% "+
			"compared to the Wind Project's NPV of $1,500.00 at 6%, indicating better long-term value.",
		c.Recommendation)
}

func TestCompareScenarios_WindWins(t *testing.T) {
	solar := resultWithNPV("Solar", "-250.5", "4.5")
	wind := resultWithNPV("Wind", "12000", "7")

	c := CompareScenarios(solar, wind)
	assert.Equal(t, "Wind", c.Winner)
	assert.Contains(t, c.Recommendation, "Select the Wind Project")
	assert.Contains(t, c.Recommendation, "$12,000.00 at 7%")
	assert.Contains(t, c.Recommendation, "Solar Project's NPV of $-250.50 at 4.5%")
}

func TestCompareScenarios_TieGoesToSecond(t *testing.T) {
	solar := resultWithNPV("Solar", "1000", "5")
	wind := resultWithNPV("Wind", "1000.00", "5")

	c := CompareScenarios(solar, wind)
	assert.Equal(t, 1, c.WinnerIndex)
	assert.Equal(t, "Wind", c.Winner)
	assert.Equal(t, "Solar", c.Loser)
}

func TestCompareScenarios_UsesEachScenariosOwnLowRate(t *testing.T) {
	// solar has the larger NPV only because it is discounted at a lower rate
	solar := resultWithNPV("Solar", "900.01", "3")
	wind := resultWithNPV("Wind", "900", "9")

	c := CompareScenarios(solar, wind)
	assert.Equal(t, "Solar", c.Winner)
	assert.True(t, c.WinnerRate.Equal(d("3")))
	assert.True(t, c.LoserRate.Equal(d("9")))
}
