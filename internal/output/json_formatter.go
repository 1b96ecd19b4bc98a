package output

import (
	"encoding/json"

	"github.com/rpgo/project-evaluator/internal/domain"
)

// JSONFormatter serializes the rounded evaluation as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(results *domain.Evaluation) ([]byte, error) {
	return json.MarshalIndent(results.Rounded(), "", "  ")
}
