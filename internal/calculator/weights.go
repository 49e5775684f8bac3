package calculator

import (
	"time"

	"matusage/internal/domain"

	"github.com/shopspring/decimal"
)

// MonthWeights is a normalized per-day weight vector for one month of one
// work calendar. Weights sum to 1; days the calendar does not cover carry
// zero weight unless the whole month is uncovered, in which case every
// day carries an equal share.
type MonthWeights struct {
	Month   domain.Month
	Dates   []time.Time
	Weights []decimal.Decimal
}

// BuildMonthWeights normalizes a calendar's raw daily weights (working
// time plus overtime) over one month. Entries outside the month are
// ignored; duplicate dates are summed. A month with zero total raw weight
// falls back to uniform weighting so the redistributor always has a valid
// vector and never divides by zero.
func BuildMonthWeights(days []domain.CalendarDay, month domain.Month) MonthWeights {
	numDays := month.Days()
	first := month.First()

	dates := make([]time.Time, numDays)
	raw := make([]decimal.Decimal, numDays)
	for i := range dates {
		dates[i] = first.AddDate(0, 0, i)
		raw[i] = decimal.Zero
	}

	for _, day := range days {
		if !month.Contains(day.Date) || day.Weight.IsNegative() {
			continue
		}
		i := day.Date.Day() - 1
		raw[i] = raw[i].Add(day.Weight)
	}

	total := decimal.Zero
	for _, w := range raw {
		total = total.Add(w)
	}
	if total.IsZero() {
		// uniform fallback
		one := decimal.NewFromInt(1)
		for i := range raw {
			raw[i] = one
		}
		total = decimal.NewFromInt(int64(numDays))
	}

	weights := make([]decimal.Decimal, numDays)
	for i, w := range raw {
		weights[i] = w.Div(total)
	}

	return MonthWeights{
		Month:   month,
		Dates:   dates,
		Weights: weights,
	}
}
