package calculator

import (
	"testing"
	"time"

	"matusage/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_ReconcilePeriod(t *testing.T) {
	june := domain.NewMonth(2025, time.June)
	pressShop := "Press Shop"
	materials := map[string]domain.MaterialRef{
		"M1": {ID: "M1", UnitValue: decimal.NewFromInt(10), PackSize: 1},
	}

	transactions := []domain.ActualTransaction{
		{MaterialID: "M1", Department: &pressShop, Quantity: decimal.NewFromInt(5), PostingDate: date(2025, 6, 2)},
		{MaterialID: "M1", Department: &pressShop, Quantity: decimal.NewFromInt(3), PostingDate: date(2025, 6, 2)},
		{MaterialID: "M1", Department: &pressShop, Quantity: decimal.NewFromInt(4), PostingDate: date(2025, 6, 10)},
		// outside the month, must be ignored
		{MaterialID: "M1", Department: &pressShop, Quantity: decimal.NewFromInt(99), PostingDate: date(2025, 7, 1)},
	}

	forecastTotals := map[domain.DeptMaterialKey]decimal.Decimal{
		{Department: pressShop, MaterialID: "M1"}: decimal.NewFromInt(100),
		{Department: "Weld Shop", MaterialID: "M1"}: decimal.NewFromInt(40),
	}

	series, aggregates, totals := ReconcilePeriod(transactions, materials, forecastTotals, june)

	t.Run("daily buckets by posting date with zero fill", func(t *testing.T) {
		require.Len(t, series.Daily, 30)
		requireDecimalApprox(t, decimal.NewFromInt(80), series.Daily[1])
		require.True(t, series.Daily[2].IsZero())
		requireDecimalApprox(t, decimal.NewFromInt(40), series.Daily[9])
	})

	t.Run("cumulative runs in date order", func(t *testing.T) {
		require.True(t, series.Cumulative[0].IsZero())
		requireDecimalApprox(t, decimal.NewFromInt(80), series.Cumulative[5])
		requireDecimalApprox(t, decimal.NewFromInt(120), series.Cumulative[29])
	})

	t.Run("aggregates join actual and forecast key spaces", func(t *testing.T) {
		require.Len(t, aggregates, 2)

		press := aggregates[domain.DeptMaterialKey{Department: pressShop, MaterialID: "M1"}]
		requireDecimalApprox(t, decimal.NewFromInt(120), press.ActualValue)
		requireDecimalApprox(t, decimal.NewFromInt(100), press.ForecastValue)

		weld := aggregates[domain.DeptMaterialKey{Department: "Weld Shop", MaterialID: "M1"}]
		require.True(t, weld.ActualValue.IsZero())
		requireDecimalApprox(t, decimal.NewFromInt(40), weld.ForecastValue)
	})

	t.Run("period totals", func(t *testing.T) {
		requireDecimalApprox(t, decimal.NewFromInt(140), totals.ForecastValue)
		requireDecimalApprox(t, decimal.NewFromInt(120), totals.ActualValue)
		require.NotNil(t, totals.UsagePct)
		requireDecimalApprox(t, decimal.NewFromFloat(85.71428571428571), *totals.UsagePct)
	})

	t.Run("usage pct nil when forecast is zero", func(t *testing.T) {
		_, _, emptyTotals := ReconcilePeriod(transactions, materials, nil, june)
		require.Nil(t, emptyTotals.UsagePct)
	})

	t.Run("unknown material contributes zero value", func(t *testing.T) {
		s, aggs, _ := ReconcilePeriod([]domain.ActualTransaction{
			{MaterialID: "GHOST", Quantity: decimal.NewFromInt(50), PostingDate: date(2025, 6, 2)},
		}, materials, nil, june)

		require.True(t, s.Daily[1].IsZero())
		agg := aggs[domain.DeptMaterialKey{Department: "", MaterialID: "GHOST"}]
		require.True(t, agg.ActualValue.IsZero())
	})
}

func Test_BuildDailySeries(t *testing.T) {
	june := domain.NewMonth(2025, time.June)
	materials := map[string]domain.MaterialRef{
		"M1": {ID: "M1", UnitValue: decimal.NewFromInt(10), PackSize: 20},
	}
	pressShop := "Press Shop"
	departments := map[string]domain.DepartmentRef{
		pressShop: {Name: pressShop, CalendarID: 1},
	}

	weights := BuildMonthWeights([]domain.CalendarDay{
		{Date: date(2025, 6, 2), Weight: decimal.NewFromInt(8)},
		{Date: date(2025, 6, 3), Weight: decimal.NewFromInt(8)},
	}, june)

	forecast, err := Redistribute(
		[]domain.ForecastLine{
			{MaterialID: "M1", Department: &pressShop, MonthlyQuantity: decimal.NewFromInt(100), PeriodMonth: june},
		},
		map[int]MonthWeights{1: weights},
		materials,
		departments,
		june,
	)
	require.NoError(t, err)

	actual, _, _ := ReconcilePeriod([]domain.ActualTransaction{
		{MaterialID: "M1", Department: &pressShop, Quantity: decimal.NewFromInt(45), PostingDate: date(2025, 6, 2)},
	}, materials, forecast.TotalsByKey, june)

	points := BuildDailySeries(forecast, actual)

	require.Len(t, points, 30)
	require.Equal(t, date(2025, 6, 2), points[1].Date)
	requireDecimalApprox(t, decimal.NewFromInt(450), points[1].ActualValue)
	requireDecimalApprox(t, decimal.NewFromInt(500), points[1].ForecastValue)
	requireDecimalApprox(t, decimal.NewFromInt(450), points[29].CumulativeActual)
	requireDecimalApprox(t, decimal.NewFromInt(400), points[1].CumulativeForecastLower)
	requireDecimalApprox(t, decimal.NewFromInt(600), points[1].CumulativeForecastUpper)
}

func Test_SummarizeDepartments(t *testing.T) {
	aggregates := map[domain.DeptMaterialKey]domain.PeriodAggregate{
		{Department: "Press Shop", MaterialID: "M1"}: {
			ActualValue:   decimal.NewFromInt(120),
			ForecastValue: decimal.NewFromInt(100),
		},
		{Department: "Press Shop", MaterialID: "M2"}: {
			ActualValue:   decimal.NewFromInt(30),
			ForecastValue: decimal.NewFromInt(50),
		},
		{Department: "Weld Shop", MaterialID: "M1"}: {
			ActualValue: decimal.NewFromInt(10),
		},
	}

	summaries := SummarizeDepartments(aggregates)

	require.Len(t, summaries, 2)
	require.Equal(t, "Press Shop", summaries[0].Department)
	requireDecimalApprox(t, decimal.NewFromInt(150), summaries[0].ActualValue)
	requireDecimalApprox(t, decimal.NewFromInt(150), summaries[0].ForecastValue)
	require.NotNil(t, summaries[0].UsagePct)
	requireDecimalApprox(t, decimal.NewFromInt(100), *summaries[0].UsagePct)

	require.Equal(t, "Weld Shop", summaries[1].Department)
	require.Nil(t, summaries[1].UsagePct)
}
