package output

import (
	"github.com/gocarina/gocsv"
	"github.com/rpgo/project-evaluator/internal/domain"
)

// scheduleRecord is one row of the yearly schedule export.
type scheduleRecord struct {
	Scenario           string `csv:"scenario"`
	DiscountRate       string `csv:"discount_rate"`
	Year               int    `csv:"year"`
	DiscountFactor     string `csv:"discount_factor"`
	DiscountedCashflow int64  `csv:"discounted_cashflow"`
}

// ScheduleCSVExporter writes every yearly row of both schedules of both scenarios.
type ScheduleCSVExporter struct{}

func (s ScheduleCSVExporter) Name() string      { return "schedule-csv" }
func (s ScheduleCSVExporter) Extension() string { return "csv" }

func (s ScheduleCSVExporter) Format(results *domain.Evaluation) ([]byte, error) {
	records := make([]*scheduleRecord, 0)
	for _, sc := range results.Scenarios() {
		records = appendSchedule(records, sc.Name, sc.Input.DiscountRateLow.String(), sc.YearlyRowsLow)
		records = appendSchedule(records, sc.Name, sc.Input.DiscountRateHigh.String(), sc.YearlyRowsHigh)
	}
	return gocsv.MarshalBytes(&records)
}

func appendSchedule(records []*scheduleRecord, name, rate string, rows []domain.YearlyRow) []*scheduleRecord {
	for _, row := range rows {
		records = append(records, &scheduleRecord{
			Scenario:           name,
			DiscountRate:       rate,
			Year:               row.Year,
			DiscountFactor:     row.DiscountFactor.StringFixed(4),
			DiscountedCashflow: row.DiscountedCashflow,
		})
	}
	return records
}
