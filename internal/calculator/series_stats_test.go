package calculator

import (
	"testing"
	"time"

	"matusage/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_ComputeSeriesStats(t *testing.T) {
	june := domain.NewMonth(2025, time.June)
	materials := map[string]domain.MaterialRef{
		"M1": {ID: "M1", UnitValue: decimal.NewFromInt(1), PackSize: 1},
	}

	t.Run("stats over the non-zero span", func(t *testing.T) {
		series, _, _ := ReconcilePeriod([]domain.ActualTransaction{
			{MaterialID: "M1", Quantity: decimal.NewFromInt(10), PostingDate: date(2025, 6, 5)},
			{MaterialID: "M1", Quantity: decimal.NewFromInt(30), PostingDate: date(2025, 6, 6)},
			{MaterialID: "M1", Quantity: decimal.NewFromInt(20), PostingDate: date(2025, 6, 7)},
		}, materials, nil, june)

		got := ComputeSeriesStats(series)

		require.InDelta(t, 20.0, got.MeanDailyActual, 1e-9)
		require.InDelta(t, 10.0, got.StdevDailyActual, 1e-9)
		require.InDelta(t, 30.0, got.PeakDailyActual, 1e-9)
		require.NotNil(t, got.PeakDate)
		require.Equal(t, date(2025, 6, 6), *got.PeakDate)
	})

	t.Run("interior zero days stay in the span", func(t *testing.T) {
		series, _, _ := ReconcilePeriod([]domain.ActualTransaction{
			{MaterialID: "M1", Quantity: decimal.NewFromInt(10), PostingDate: date(2025, 6, 5)},
			{MaterialID: "M1", Quantity: decimal.NewFromInt(20), PostingDate: date(2025, 6, 7)},
		}, materials, nil, june)

		got := ComputeSeriesStats(series)

		require.InDelta(t, 10.0, got.MeanDailyActual, 1e-9)
	})

	t.Run("zero value on empty series", func(t *testing.T) {
		series, _, _ := ReconcilePeriod(nil, materials, nil, june)

		got := ComputeSeriesStats(series)

		require.Equal(t, domain.SeriesStats{}, got)
	})
}
