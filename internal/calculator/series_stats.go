package calculator

import (
	"matusage/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// ComputeSeriesStats summarizes the month's daily actual values over the
// span from the first to the last day with a non-zero actual. Returns the
// zero value when the period has no actuals. Stdev is the sample standard
// deviation and zero when the span has fewer than two days.
func ComputeSeriesStats(series *ActualSeries) domain.SeriesStats {
	first, last := -1, -1
	for i, v := range series.Daily {
		if v.IsZero() {
			continue
		}
		if first == -1 {
			first = i
		}
		last = i
	}
	if first == -1 {
		return domain.SeriesStats{}
	}

	span := make([]float64, 0, last-first+1)
	peak := decimal.Zero
	peakIdx := first
	for i := first; i <= last; i++ {
		span = append(span, series.Daily[i].InexactFloat64())
		if series.Daily[i].GreaterThan(peak) {
			peak = series.Daily[i]
			peakIdx = i
		}
	}

	mean, err := stats.Mean(span)
	if err != nil {
		mean = 0
	}
	stdev := 0.0
	if len(span) > 1 {
		stdev, err = stats.StandardDeviationSample(span)
		if err != nil {
			stdev = 0
		}
	}

	peakDate := series.Dates[peakIdx]
	return domain.SeriesStats{
		MeanDailyActual:  mean,
		StdevDailyActual: stdev,
		PeakDailyActual:  peak.InexactFloat64(),
		PeakDate:         &peakDate,
	}
}
