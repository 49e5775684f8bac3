package calculator

import (
	"fmt"
	"time"

	"matusage/internal/domain"

	"github.com/shopspring/decimal"
)

// ForecastSeries is the redistributed daily forecast for one month,
// summed over all contributing forecast lines. Cumulative bounds are the
// pack-rounded envelope around the continuous midpoint; Daily is the
// first difference of the midpoint.
type ForecastSeries struct {
	Month           domain.Month
	Dates           []time.Time
	Daily           []decimal.Decimal
	CumulativeMid   []decimal.Decimal
	CumulativeLower []decimal.Decimal
	CumulativeUpper []decimal.Decimal

	// TotalsByKey holds each (department, material) pair's full-month
	// forecast value, feeding the period reconciler.
	TotalsByKey map[domain.DeptMaterialKey]decimal.Decimal
}

// Redistribute spreads each forecast line's monthly quantity across the
// days of the target month proportionally to its calendar's weights, and
// superimposes the per-line value series into one monthly series. The
// cumulative unit quantity stays unrounded day to day; only the
// cumulative is pack-rounded for the lower/upper bounds, so rounding
// error never compounds across the month. Lines for other months are
// skipped.
func Redistribute(
	lines []domain.ForecastLine,
	weightsByCalendar map[int]MonthWeights,
	materialRefs map[string]domain.MaterialRef,
	departmentRefs map[string]domain.DepartmentRef,
	month domain.Month,
) (*ForecastSeries, error) {
	numDays := month.Days()
	series := &ForecastSeries{
		Month:           month,
		Dates:           make([]time.Time, numDays),
		Daily:           zeroSeries(numDays),
		CumulativeMid:   zeroSeries(numDays),
		CumulativeLower: zeroSeries(numDays),
		CumulativeUpper: zeroSeries(numDays),
		TotalsByKey:     map[domain.DeptMaterialKey]decimal.Decimal{},
	}
	first := month.First()
	for i := range series.Dates {
		series.Dates[i] = first.AddDate(0, 0, i)
	}

	for _, line := range lines {
		if !line.PeriodMonth.Equal(month) {
			continue
		}

		weights, err := selectWeights(line.Department, weightsByCalendar, departmentRefs)
		if err != nil {
			return nil, err
		}

		ref, ok := materialRefs[line.MaterialID]
		if !ok {
			// unknown material: quantities still flow, value is zero
			ref = domain.MaterialRef{ID: line.MaterialID, PackSize: 1, Category: domain.MaterialCategory_Unassigned}
		}
		pack := decimal.NewFromInt(ref.PackSize)

		cumUnits := decimal.Zero
		for i := 0; i < numDays; i++ {
			cumUnits = cumUnits.Add(line.MonthlyQuantity.Mul(weights.Weights[i]))

			packs := cumUnits.Div(pack)
			series.CumulativeLower[i] = series.CumulativeLower[i].Add(packs.Floor().Mul(pack).Mul(ref.UnitValue))
			series.CumulativeUpper[i] = series.CumulativeUpper[i].Add(packs.Ceil().Mul(pack).Mul(ref.UnitValue))
			series.CumulativeMid[i] = series.CumulativeMid[i].Add(cumUnits.Mul(ref.UnitValue))
		}

		key := domain.DeptMaterialKey{
			Department: domain.DepartmentOf(line.Department),
			MaterialID: line.MaterialID,
		}
		series.TotalsByKey[key] = series.TotalsByKey[key].Add(line.MonthlyQuantity.Mul(ref.UnitValue))
	}

	prev := decimal.Zero
	for i := range series.Daily {
		series.Daily[i] = series.CumulativeMid[i].Sub(prev)
		prev = series.CumulativeMid[i]
	}

	return series, nil
}

// ForecastTotalsByKey computes only the per-pair monthly forecast value,
// used for the prior months of the continuous variance window where no
// daily series is needed.
func ForecastTotalsByKey(
	lines []domain.ForecastLine,
	materialRefs map[string]domain.MaterialRef,
	month domain.Month,
) map[domain.DeptMaterialKey]decimal.Decimal {
	totals := map[domain.DeptMaterialKey]decimal.Decimal{}
	for _, line := range lines {
		if !line.PeriodMonth.Equal(month) {
			continue
		}
		unitValue := decimal.Zero
		if ref, ok := materialRefs[line.MaterialID]; ok {
			unitValue = ref.UnitValue
		}
		key := domain.DeptMaterialKey{
			Department: domain.DepartmentOf(line.Department),
			MaterialID: line.MaterialID,
		}
		totals[key] = totals[key].Add(line.MonthlyQuantity.Mul(unitValue))
	}
	return totals
}

func selectWeights(
	department *string,
	weightsByCalendar map[int]MonthWeights,
	departmentRefs map[string]domain.DepartmentRef,
) (MonthWeights, error) {
	calendarID := domain.CalendarID_Primary
	if department != nil {
		if ref, ok := departmentRefs[*department]; ok {
			calendarID = ref.CalendarID
		}
	}
	weights, ok := weightsByCalendar[calendarID]
	if !ok {
		return MonthWeights{}, fmt.Errorf("no weights loaded for calendar %d", calendarID)
	}
	return weights, nil
}

func zeroSeries(n int) []decimal.Decimal {
	s := make([]decimal.Decimal, n)
	for i := range s {
		s[i] = decimal.Zero
	}
	return s
}
