package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySeriesPoint is one day of the assembled period view: actual and
// forecast value plus the running cumulatives and the pack-rounded
// cumulative forecast bounds. Recomputed per request, never persisted.
type DailySeriesPoint struct {
	Date                    time.Time       `json:"date"`
	ActualValue             decimal.Decimal `json:"actualValue"`
	ForecastValue           decimal.Decimal `json:"forecastValue"`
	CumulativeActual        decimal.Decimal `json:"cumulativeActual"`
	CumulativeForecast      decimal.Decimal `json:"cumulativeForecast"`
	CumulativeForecastLower decimal.Decimal `json:"cumulativeForecastLower"`
	CumulativeForecastUpper decimal.Decimal `json:"cumulativeForecastUpper"`
}

// PeriodAggregate holds one (department, material) pair's total actual
// and forecast value over a single month.
type PeriodAggregate struct {
	ActualValue   decimal.Decimal
	ForecastValue decimal.Decimal
}

// PeriodTotals are the scalar roll-ups for the whole filtered period.
// UsagePct is nil when the period has no forecast value.
type PeriodTotals struct {
	ForecastValue decimal.Decimal  `json:"forecastValue"`
	ActualValue   decimal.Decimal  `json:"actualValue"`
	UsagePct      *decimal.Decimal `json:"usagePct"`
}

// SeriesStats is the dashboard headline strip over the month's daily
// actual values: computed over the span from the first to the last day
// with a non-zero actual. Zero value when the period has no actuals.
type SeriesStats struct {
	MeanDailyActual  float64    `json:"meanDailyActual"`
	StdevDailyActual float64    `json:"stdevDailyActual"`
	PeakDailyActual  float64    `json:"peakDailyActual"`
	PeakDate         *time.Time `json:"peakDate"`
}
