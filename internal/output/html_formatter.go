package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rpgo/project-evaluator/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces the results page, also served by the HTTP shell.
type HTMLFormatter struct {
	// BackLink, when set, adds a link back to the input form.
	BackLink string
}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"pct":    FormatPercentage,
	"rate":   FormatRate,
	"factor": func(d decimal.Decimal) string { return d.StringFixed(4) },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.Evaluation) ([]byte, error) {
	var buf bytes.Buffer
	rounded := results.Rounded()
	data := struct {
		ID          string
		Scenarios   []domain.ScenarioResult
		Comparison  domain.Comparison
		Assumptions []string
		BackLink    string
	}{rounded.ID, rounded.Scenarios(), rounded.Comparison, GenerateAssumptions(results), h.BackLink}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
