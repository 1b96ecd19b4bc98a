package output

import (
	"fmt"

	"github.com/rpgo/project-evaluator/internal/domain"
)

// GenerateAssumptions lists the modeling assumptions behind an evaluation,
// rendered in the detailed console and HTML outputs.
func GenerateAssumptions(results *domain.Evaluation) []string {
	notes := []string{
		"Cash flows are level, received at the end of each year, in nominal terms",
		"ROI is average annual net profit divided by the initial investment",
	}
	for _, sc := range results.Scenarios() {
		notes = append(notes, fmt.Sprintf(
			"%s: IRR interpolated linearly between NPV at %s and %s (approximation, not a root find)",
			sc.Name, FormatRate(sc.Input.DiscountRateLow), FormatRate(sc.Input.DiscountRateHigh)))
	}
	notes = append(notes, "Recommendation compares NPV at each project's lower discount rate")
	return notes
}
