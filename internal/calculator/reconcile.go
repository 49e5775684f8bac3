package calculator

import (
	"sort"
	"time"

	"matusage/internal/domain"

	"github.com/shopspring/decimal"
)

// ActualSeries is the daily and cumulative actual value over one month.
// Days with no transactions carry zero.
type ActualSeries struct {
	Month      domain.Month
	Dates      []time.Time
	Daily      []decimal.Decimal
	Cumulative []decimal.Decimal
}

// ReconcilePeriod buckets the month's actual transactions into daily
// value totals by posting date, accumulates the running cumulative, and
// joins the per-pair actual totals against the redistributor's forecast
// totals into one aggregate map over the identical filtered universe.
// Transactions posted outside the month are ignored.
func ReconcilePeriod(
	transactions []domain.ActualTransaction,
	materialRefs map[string]domain.MaterialRef,
	forecastTotals map[domain.DeptMaterialKey]decimal.Decimal,
	month domain.Month,
) (*ActualSeries, map[domain.DeptMaterialKey]domain.PeriodAggregate, domain.PeriodTotals) {
	numDays := month.Days()
	series := &ActualSeries{
		Month:      month,
		Dates:      make([]time.Time, numDays),
		Daily:      zeroSeries(numDays),
		Cumulative: zeroSeries(numDays),
	}
	first := month.First()
	for i := range series.Dates {
		series.Dates[i] = first.AddDate(0, 0, i)
	}

	actualsByKey := AggregateActuals(transactions, materialRefs, month)

	for _, txn := range transactions {
		if !month.Contains(txn.PostingDate) {
			continue
		}
		value := transactionValue(txn, materialRefs)
		i := txn.PostingDate.Day() - 1
		series.Daily[i] = series.Daily[i].Add(value)
	}

	running := decimal.Zero
	for i := range series.Cumulative {
		running = running.Add(series.Daily[i])
		series.Cumulative[i] = running
	}

	aggregates := map[domain.DeptMaterialKey]domain.PeriodAggregate{}
	for key, actual := range actualsByKey {
		aggregates[key] = domain.PeriodAggregate{ActualValue: actual}
	}
	for key, forecast := range forecastTotals {
		agg := aggregates[key]
		agg.ForecastValue = forecast
		aggregates[key] = agg
	}

	totals := domain.PeriodTotals{
		ForecastValue: decimal.Zero,
		ActualValue:   decimal.Zero,
	}
	for _, agg := range aggregates {
		totals.ForecastValue = totals.ForecastValue.Add(agg.ForecastValue)
		totals.ActualValue = totals.ActualValue.Add(agg.ActualValue)
	}
	if !totals.ForecastValue.IsZero() {
		pct := totals.ActualValue.Div(totals.ForecastValue).Mul(decimal.NewFromInt(100))
		totals.UsagePct = &pct
	}

	return series, aggregates, totals
}

// AggregateActuals totals each (department, material) pair's actual value
// for one month, bucketed by posting date.
func AggregateActuals(
	transactions []domain.ActualTransaction,
	materialRefs map[string]domain.MaterialRef,
	month domain.Month,
) map[domain.DeptMaterialKey]decimal.Decimal {
	totals := map[domain.DeptMaterialKey]decimal.Decimal{}
	for _, txn := range transactions {
		if !month.Contains(txn.PostingDate) {
			continue
		}
		key := domain.DeptMaterialKey{
			Department: domain.DepartmentOf(txn.Department),
			MaterialID: txn.MaterialID,
		}
		totals[key] = totals[key].Add(transactionValue(txn, materialRefs))
	}
	return totals
}

// JoinAggregates merges per-pair actual and forecast totals for one month
// into a single aggregate map covering both key spaces.
func JoinAggregates(
	actuals map[domain.DeptMaterialKey]decimal.Decimal,
	forecasts map[domain.DeptMaterialKey]decimal.Decimal,
) map[domain.DeptMaterialKey]domain.PeriodAggregate {
	out := map[domain.DeptMaterialKey]domain.PeriodAggregate{}
	for key, actual := range actuals {
		out[key] = domain.PeriodAggregate{ActualValue: actual}
	}
	for key, forecast := range forecasts {
		agg := out[key]
		agg.ForecastValue = forecast
		out[key] = agg
	}
	return out
}

// BuildDailySeries zips the redistributed forecast and the reconciled
// actuals into the period view's daily points. Both series cover the
// same month, one slot per day.
func BuildDailySeries(forecast *ForecastSeries, actual *ActualSeries) []domain.DailySeriesPoint {
	points := make([]domain.DailySeriesPoint, len(forecast.Dates))
	for i := range points {
		points[i] = domain.DailySeriesPoint{
			Date:                    forecast.Dates[i],
			ActualValue:             actual.Daily[i],
			ForecastValue:           forecast.Daily[i],
			CumulativeActual:        actual.Cumulative[i],
			CumulativeForecast:      forecast.CumulativeMid[i],
			CumulativeForecastLower: forecast.CumulativeLower[i],
			CumulativeForecastUpper: forecast.CumulativeUpper[i],
		}
	}
	return points
}

// SummarizeDepartments rolls the period aggregates up to one row per
// department, sorted by department name. UsagePct is nil for departments
// with no forecast value.
func SummarizeDepartments(aggregates map[domain.DeptMaterialKey]domain.PeriodAggregate) []domain.DepartmentSummary {
	byDept := map[string]*domain.DepartmentSummary{}
	for key, agg := range aggregates {
		summary, ok := byDept[key.Department]
		if !ok {
			summary = &domain.DepartmentSummary{
				Department:    key.Department,
				ForecastValue: decimal.Zero,
				ActualValue:   decimal.Zero,
			}
			byDept[key.Department] = summary
		}
		summary.ForecastValue = summary.ForecastValue.Add(agg.ForecastValue)
		summary.ActualValue = summary.ActualValue.Add(agg.ActualValue)
	}

	out := make([]domain.DepartmentSummary, 0, len(byDept))
	for _, summary := range byDept {
		if !summary.ForecastValue.IsZero() {
			pct := summary.ActualValue.Div(summary.ForecastValue).Mul(decimal.NewFromInt(100))
			summary.UsagePct = &pct
		}
		out = append(out, *summary)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Department < out[j].Department
	})
	return out
}

func transactionValue(txn domain.ActualTransaction, materialRefs map[string]domain.MaterialRef) decimal.Decimal {
	unitValue := decimal.Zero
	if ref, ok := materialRefs[txn.MaterialID]; ok {
		unitValue = ref.UnitValue
	}
	return txn.Quantity.Mul(unitValue)
}
