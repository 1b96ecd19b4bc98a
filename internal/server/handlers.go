package server

import (
	"bytes"
	_ "embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/project-evaluator/internal/calculation"
	"github.com/rpgo/project-evaluator/internal/config"
	"github.com/rpgo/project-evaluator/internal/domain"
	"github.com/rpgo/project-evaluator/internal/logging"
	"github.com/rpgo/project-evaluator/internal/output"
)

//go:embed templates/form.html.tmpl
var formTemplateSource string

var formTemplate = template.Must(template.New("form").Parse(formTemplateSource))

// formField is one labelled input of the evaluation form.
type formField struct {
	Name  string
	Label string
	Value string
}

var formFieldLabels = []struct{ suffix, label string }{
	{"investment", "Initial Investment"},
	{"annual_cashflow", "Annual Cash Flow"},
	{"net_profit", "Net Profit"},
	{"duration", "Duration (years)"},
	{"discount_low", "Discount Rate Low (%)"},
	{"discount_high", "Discount Rate High (%)"},
}

type formSection struct {
	Title  string
	Fields []formField
}

func (s *Server) renderForm(c *gin.Context, status int, message string) {
	sections := make([]formSection, 0, 2)
	for _, p := range []struct{ prefix, title string }{
		{config.SolarPrefix, domain.SolarProjectName},
		{config.WindPrefix, domain.WindProjectName},
	} {
		section := formSection{Title: p.title}
		for _, f := range formFieldLabels {
			name := p.prefix + "_" + f.suffix
			section.Fields = append(section.Fields, formField{Name: name, Label: f.label, Value: c.PostForm(name)})
		}
		sections = append(sections, section)
	}

	var buf bytes.Buffer
	data := struct {
		Error    string
		Sections []formSection
	}{message, sections}
	if err := formTemplate.Execute(&buf, data); err != nil {
		returnErrorJSON(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) showForm(c *gin.Context) {
	s.renderForm(c, http.StatusOK, "")
}

func (s *Server) submitForm(c *gin.Context) {
	logger := logging.FromContext(c.Request.Context())

	solar, wind, err := config.ParseEvaluationForm(c.GetPostForm)
	if err != nil {
		logger.Warnw("rejected form", "error", err)
		s.renderForm(c, http.StatusBadRequest, config.InvalidInputMessage)
		return
	}
	if err := validatePair(solar, wind); err != nil {
		logger.Warnw("rejected form", "error", err)
		s.renderForm(c, http.StatusBadRequest, err.Error())
		return
	}

	results, err := s.evaluator(c).EvaluatePair(c.Request.Context(), solar, wind)
	if err != nil {
		s.renderForm(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	page, err := output.HTMLFormatter{BackLink: "/"}.Format(results)
	if err != nil {
		returnErrorJSON(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

type evaluateRequest struct {
	Solar domain.ScenarioInput `json:"solar"`
	Wind  domain.ScenarioInput `json:"wind"`
}

func (s *Server) evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		returnErrorJSON(c, http.StatusBadRequest, errors.New(config.InvalidInputMessage))
		return
	}
	if err := validatePair(req.Solar, req.Wind); err != nil {
		returnErrorJSON(c, http.StatusBadRequest, err)
		return
	}

	results, err := s.evaluator(c).EvaluatePair(c.Request.Context(), req.Solar, req.Wind)
	if err != nil {
		returnErrorJSON(c, http.StatusUnprocessableEntity, err)
		return
	}
	c.JSON(http.StatusOK, results.Rounded())
}

type pertRequest struct {
	Tasks []domain.PERTTask `json:"tasks"`
}

func (s *Server) pert(c *gin.Context) {
	var req pertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		returnErrorJSON(c, http.StatusBadRequest, err)
		return
	}
	summary, err := calculation.EstimatePERT(req.Tasks)
	if err != nil {
		returnErrorJSON(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type productivityRequest struct {
	Entries []domain.ProductivityEntry `json:"entries"`
}

func (s *Server) productivity(c *gin.Context) {
	var req productivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		returnErrorJSON(c, http.StatusBadRequest, err)
		return
	}
	summary, err := calculation.SummarizeProductivity(req.Entries)
	if err != nil {
		returnErrorJSON(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type networkRequest struct {
	Tasks []domain.NetworkTask `json:"tasks"`
}

func (s *Server) network(c *gin.Context) {
	var req networkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		returnErrorJSON(c, http.StatusBadRequest, err)
		return
	}
	schedule, err := calculation.AnalyzeNetwork(req.Tasks)
	if err != nil {
		returnErrorJSON(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// evaluator returns a per-request evaluator that logs with the request logger
// and stamps results with the request ID.
func (s *Server) evaluator(c *gin.Context) *calculation.Evaluator {
	ev := calculation.NewEvaluator()
	ev.SetLogger(logging.FromContext(c.Request.Context()))
	if id := c.GetString(requestIDKey); id != "" {
		ev.NewID = func() string { return id }
	}
	return ev
}

func validatePair(solar, wind domain.ScenarioInput) error {
	if err := config.ValidateScenario(&solar); err != nil {
		return errors.New("solar: " + err.Error())
	}
	if err := config.ValidateScenario(&wind); err != nil {
		return errors.New("wind: " + err.Error())
	}
	return nil
}

func returnErrorJSON(c *gin.Context, code int, err error) {
	c.AbortWithStatusJSON(code, gin.H{"error": err.Error()})
}
