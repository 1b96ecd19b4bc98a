package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rpgo/project-evaluator/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func workedForm() url.Values {
	return url.Values{
		"solar_investment":      {"10000"},
		"solar_annual_cashflow": {"3000"},
		"solar_net_profit":      {"15000"},
		"solar_duration":        {"5"},
		"solar_discount_low":    {"5"},
		"solar_discount_high":   {"15"},
		"wind_investment":       {"20000"},
		"wind_annual_cashflow":  {"4000"},
		"wind_net_profit":       {"12000"},
		"wind_duration":         {"8"},
		"wind_discount_low":     {"7"},
		"wind_discount_high":    {"12"},
	}
}

func postForm(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestShowForm(t *testing.T) {
	h := New(nil).Handler()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `name="solar_investment"`)
	assert.Contains(t, body, `name="wind_discount_high"`)
	assert.NotContains(t, body, config.InvalidInputMessage)
}

func TestSubmitForm(t *testing.T) {
	rec := postForm(t, New(nil).Handler(), workedForm())

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Project Evaluation Results")
	assert.Contains(t, body, "$2,988.43")
	assert.Contains(t, body, "$3,885.19")
	assert.Contains(t, body, "Recommendation: Select the Wind Project.")
}

func TestSubmitForm_NonNumeric(t *testing.T) {
	form := workedForm()
	form.Set("wind_duration", "eight")
	rec := postForm(t, New(nil).Handler(), form)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, config.InvalidInputMessage)
	// submitted values are kept
	assert.Contains(t, body, `value="eight"`)
}

func TestSubmitForm_MissingField(t *testing.T) {
	form := workedForm()
	form.Del("solar_net_profit")
	rec := postForm(t, New(nil).Handler(), form)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), config.InvalidInputMessage)
}

func TestSubmitForm_ZeroInvestment(t *testing.T) {
	form := workedForm()
	form.Set("solar_investment", "0")
	rec := postForm(t, New(nil).Handler(), form)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "solar: investment must be positive")
}

func TestSubmitForm_DurationTooLong(t *testing.T) {
	form := workedForm()
	form.Set("solar_duration", "50000")
	start := time.Now()
	rec := postForm(t, New(nil).Handler(), form)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "solar: duration must be at most 100 years")
	assert.Less(t, time.Since(start), time.Second)
}

const workedJSON = `{
  "solar": {"investment": 10000, "annual_cashflow": 3000, "net_profit": 15000, "duration": 5, "discount_rate_low": 5, "discount_rate_high": 15},
  "wind":  {"investment": "20000", "annual_cashflow": "4000", "net_profit": "12000", "duration": 8, "discount_rate_low": "7", "discount_rate_high": "12"}
}`

func TestEvaluateAPI(t *testing.T) {
	rec := postJSON(t, New(nil).Handler(), "/api/v1/evaluate", workedJSON)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		ID    string `json:"id"`
		Solar struct {
			ROIPercent       string `json:"roi_percent"`
			NPVLow           string `json:"npv_low"`
			NPVHigh          string `json:"npv_high"`
			IRRPercentApprox string `json:"irr_percent_approx"`
			YearlyRowsLow    []struct {
				Year               int    `json:"year"`
				DiscountFactor     string `json:"discount_factor"`
				DiscountedCashflow int64  `json:"discounted_cashflow"`
			} `json:"yearly_rows_low"`
		} `json:"solar"`
		Comparison struct {
			Winner         string `json:"winner"`
			Recommendation string `json:"recommendation"`
		} `json:"comparison"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, rec.Header().Get(requestIDHeader), resp.ID)
	assert.Equal(t, "30", resp.Solar.ROIPercent)
	assert.Equal(t, "2988.43", resp.Solar.NPVLow)
	assert.Equal(t, "56.47", resp.Solar.NPVHigh)
	assert.Equal(t, "15.19", resp.Solar.IRRPercentApprox)
	require.Len(t, resp.Solar.YearlyRowsLow, 5)
	assert.Equal(t, "0.907", resp.Solar.YearlyRowsLow[1].DiscountFactor)
	assert.Equal(t, int64(2721), resp.Solar.YearlyRowsLow[1].DiscountedCashflow)
	assert.Equal(t, "Wind", resp.Comparison.Winner)
	assert.Contains(t, resp.Comparison.Recommendation, "$3,885.19 at 7%")
}

func TestEvaluateAPI_BadRequests(t *testing.T) {
	h := New(nil).Handler()

	rec := postJSON(t, h, "/api/v1/evaluate", `{"solar": {"investment": "lots"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), config.InvalidInputMessage)

	rec = postJSON(t, h, "/api/v1/evaluate", strings.Replace(workedJSON, `"duration": 8`, `"duration": 0`, 1))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "wind: duration must be at least 1 year")
}

func TestEvaluateAPI_FlatNPV(t *testing.T) {
	body := `{
	  "solar": {"investment": 1000, "annual_cashflow": 0, "net_profit": 0, "duration": 3, "discount_rate_low": 5, "discount_rate_high": 10},
	  "wind":  {"investment": 1000, "annual_cashflow": 500, "net_profit": 500, "duration": 3, "discount_rate_low": 5, "discount_rate_high": 10}
	}`
	rec := postJSON(t, New(nil).Handler(), "/api/v1/evaluate", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Solar project")
}

func TestPlanningAPIs(t *testing.T) {
	h := New(nil).Handler()

	rec := postJSON(t, h, "/api/v1/pert", `{"tasks": [{"name": "Design", "optimistic": 1, "most_likely": 2, "pessimistic": 3}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"total_expected_time":"2"`)

	rec = postJSON(t, h, "/api/v1/productivity", `{"entries": [{"project_name": "billing", "sloc": 12000, "work_months": 8}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"overall_productivity":"1500"`)

	rec = postJSON(t, h, "/api/v1/network", `{"tasks": [
		{"id": 1, "name": "Survey", "duration": 3},
		{"id": 2, "name": "Build", "duration": 5, "dependencies": [1]}
	]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"critical_path":[1,2]`)
	assert.Contains(t, rec.Body.String(), `"project_duration":"8"`)

	rec = postJSON(t, h, "/api/v1/network", `{"tasks": [{"id": 1, "name": "Loop", "duration": 1, "dependencies": [1]}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "cycle")
}

func TestRequestID(t *testing.T) {
	h := New(nil).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := uuid.Parse(rec.Header().Get(requestIDHeader))
	assert.NoError(t, err)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, id)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(requestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(requestIDHeader))
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(nil).Run(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(resp.Body)
		return resp.StatusCode == http.StatusOK && strings.Contains(buf.String(), "ok")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
