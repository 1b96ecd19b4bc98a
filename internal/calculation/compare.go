package calculation

import (
	"fmt"

	"github.com/rpgo/project-evaluator/internal/domain"
	money "github.com/rpgo/project-evaluator/pkg/decimal"
)

// CompareScenarios ranks two evaluated scenarios by NPV at their own low
// discount rate. The first scenario wins only on a strictly greater NPV, so a
// tie goes to the second.
func CompareScenarios(first, second domain.ScenarioResult) domain.Comparison {
	winner, loser, winnerIndex := second, first, 1
	if first.NPVLow.GreaterThan(second.NPVLow) {
		winner, loser, winnerIndex = first, second, 0
	}

	c := domain.Comparison{
		WinnerIndex: winnerIndex,
		Winner:     winner.Name,
		Loser:      loser.Name,
		WinnerNPV:  winner.NPVLow,
		LoserNPV:   loser.NPVLow,
		WinnerRate: winner.Input.DiscountRateLow,
		LoserRate:  loser.Input.DiscountRateLow,
	}
	c.Recommendation = FormatRecommendation(c)
	return c
}

// FormatRecommendation renders the human-readable verdict for a comparison.
func FormatRecommendation(c domain.Comparison) string {
	return fmt.Sprintf(
		"Recommendation: Select the %s Project. It has a higher NPV of %s at %s%% "+
			"compared to the %s Project's NPV of %s at %s%%, indicating better long-term value.",
		c.Winner,
		money.NewMoneyFromDecimal(c.WinnerNPV).FormatGrouped(),
		c.WinnerRate.String(),
		c.Loser,
		money.NewMoneyFromDecimal(c.LoserNPV).FormatGrouped(),
		c.LoserRate.String(),
	)
}
