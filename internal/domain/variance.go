package domain

import (
	"github.com/shopspring/decimal"
)

// ContinuousWindowMonths is the number of consecutive months a variance
// must keep its sign to count as continuous over/under usage.
const ContinuousWindowMonths = 3

// VarianceRecord is one (department, material) pair whose actual value
// diverged from forecast in the current period. DeltaValue is
// actual - forecast; the sign decides over vs under classification.
type VarianceRecord struct {
	Department string          `json:"department"`
	MaterialID string          `json:"materialId"`
	DeltaValue decimal.Decimal `json:"deltaValue"`
}

// ContinuousVarianceRecord is a pair whose monthly delta kept the same
// sign for the full rolling window. Deltas run oldest to newest.
// ThreeMonthUsageRatio is sum(actual)/sum(forecast)*100 over the window,
// nil when the window's forecast sum is zero.
type ContinuousVarianceRecord struct {
	Department           string                          `json:"department"`
	MaterialID           string                          `json:"materialId"`
	Deltas               [ContinuousWindowMonths]decimal.Decimal `json:"deltas"`
	ThreeMonthUsageRatio *decimal.Decimal                `json:"threeMonthUsageRatio"`
}

// CurrentDelta is the newest month's delta in the window.
func (r ContinuousVarianceRecord) CurrentDelta() decimal.Decimal {
	return r.Deltas[ContinuousWindowMonths-1]
}

// DelayRecord is an actual transaction posted before its document date
// was reached, indicating late recording. DelayDays is the whole-day gap
// rounded up.
type DelayRecord struct {
	MaterialID string          `json:"materialId"`
	Department string          `json:"department"`
	Quantity   decimal.Decimal `json:"quantity"`
	DelayDays  int             `json:"delayDays"`
}

// DepartmentSummary is the per-department roll-up of period forecast and
// actual value. UsagePct is nil when the department has no forecast.
type DepartmentSummary struct {
	Department    string           `json:"department"`
	ForecastValue decimal.Decimal  `json:"forecastValue"`
	ActualValue   decimal.Decimal  `json:"actualValue"`
	UsagePct      *decimal.Decimal `json:"usagePct"`
}

// PeriodView is the assembled result bundle for one period and filter
// set. It is a plain serializable value with no engine-owned state.
type PeriodView struct {
	Period            string                     `json:"period"`
	DailySeries       []DailySeriesPoint         `json:"dailySeries"`
	PeriodTotals      PeriodTotals               `json:"periodTotals"`
	OverUsage         []VarianceRecord           `json:"overUsage"`
	UnderUsage        []VarianceRecord           `json:"underUsage"`
	ContinuousOver    []ContinuousVarianceRecord `json:"continuousOver"`
	ContinuousUnder   []ContinuousVarianceRecord `json:"continuousUnder"`
	DelayedPostings   []DelayRecord              `json:"delayedPostings"`
	DepartmentSummary []DepartmentSummary        `json:"departmentSummary"`
	SeriesStats       SeriesStats                `json:"seriesStats"`
}
