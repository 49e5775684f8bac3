package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"matusage/internal/domain"
	mock_repository "matusage/internal/repository/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandler(ctrl *gomock.Controller) (
	PeriodViewHandler,
	*mock_repository.MockMaterialMasterRepository,
	*mock_repository.MockShopMasterRepository,
	*mock_repository.MockWorkCalendarRepository,
	*mock_repository.MockForecastLineRepository,
	*mock_repository.MockActualTransactionRepository,
) {
	materials := mock_repository.NewMockMaterialMasterRepository(ctrl)
	shops := mock_repository.NewMockShopMasterRepository(ctrl)
	calendars := mock_repository.NewMockWorkCalendarRepository(ctrl)
	forecast := mock_repository.NewMockForecastLineRepository(ctrl)
	actuals := mock_repository.NewMockActualTransactionRepository(ctrl)

	handler := PeriodViewHandler{
		MaterialMasterRepository:    materials,
		ShopMasterRepository:        shops,
		WorkCalendarRepository:      calendars,
		ForecastLineRepository:      forecast,
		ActualTransactionRepository: actuals,
	}
	return handler, materials, shops, calendars, forecast, actuals
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func expectFixtureReads(
	materials *mock_repository.MockMaterialMasterRepository,
	shops *mock_repository.MockShopMasterRepository,
	calendars *mock_repository.MockWorkCalendarRepository,
	forecast *mock_repository.MockForecastLineRepository,
	actuals *mock_repository.MockActualTransactionRepository,
	times int,
) {
	price := decimal.NewFromInt(10)
	packSize := int64(20)
	category := "direct"
	calendarTwo := int32(2)
	pressShop := "Press Shop"
	june := domain.NewMonth(2025, time.June)
	april := domain.NewMonth(2025, time.April)

	materials.EXPECT().List().Return([]domain.MaterialRow{
		{ID: "M1", Price: &price, PackSize: &packSize, Category: &category},
	}, nil).Times(times)

	shops.EXPECT().List().Return([]domain.ShopRow{
		{Name: pressShop},
		{Name: "Weld Shop", CalendarID: &calendarTwo},
	}, nil).Times(times)

	calendars.EXPECT().
		List(domain.CalendarID_Primary, date(2025, 6, 1), date(2025, 7, 1)).
		Return([]domain.CalendarDay{
			{Date: date(2025, 6, 2), Weight: decimal.NewFromInt(8)},
			{Date: date(2025, 6, 3), Weight: decimal.NewFromInt(8)},
		}, nil).
		Times(times)
	calendars.EXPECT().
		List(domain.CalendarID_Secondary, date(2025, 6, 1), date(2025, 7, 1)).
		Return([]domain.CalendarDay{}, nil).
		Times(times)

	forecast.EXPECT().
		List(april, domain.NewMonth(2025, time.July)).
		Return([]domain.ForecastLine{
			{MaterialID: "M1", Department: &pressShop, MonthlyQuantity: decimal.NewFromInt(100), PeriodMonth: june},
			{MaterialID: "M1", Department: &pressShop, MonthlyQuantity: decimal.NewFromInt(100), PeriodMonth: domain.NewMonth(2025, time.May)},
			{MaterialID: "M1", Department: &pressShop, MonthlyQuantity: decimal.NewFromInt(100), PeriodMonth: april},
		}, nil).
		Times(times)

	documentDate := date(2025, 6, 12)
	actuals.EXPECT().
		List(date(2025, 4, 1), date(2025, 6, 30)).
		Return([]domain.ActualTransaction{
			{MaterialID: "M1", Department: &pressShop, Quantity: decimal.NewFromInt(120), PostingDate: date(2025, 6, 2)},
			{MaterialID: "M1", Department: &pressShop, Quantity: decimal.NewFromInt(110), PostingDate: date(2025, 5, 10)},
			{MaterialID: "M1", Department: &pressShop, Quantity: decimal.NewFromInt(105), PostingDate: date(2025, 4, 10)},
			{
				MaterialID: "M1", Department: &pressShop, Quantity: decimal.NewFromInt(5),
				PostingDate: date(2025, 6, 10), DocumentDate: &documentDate,
			},
		}, nil).
		Times(times)
}

func Test_ComputePeriodView(t *testing.T) {
	june := domain.NewMonth(2025, time.June)
	input := PeriodViewInput{
		Period:     june,
		Department: domain.DepartmentFilter{Mode: domain.DepartmentFilterMode_All},
		Material:   domain.MaterialFilter{Mode: domain.MaterialFilterMode_All},
	}

	t.Run("assembles the full bundle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, materials, shops, calendars, forecast, actuals := newTestHandler(ctrl)
		expectFixtureReads(materials, shops, calendars, forecast, actuals, 1)

		view, err := handler.ComputePeriodView(context.Background(), input)
		require.NoError(t, err)

		require.Equal(t, "2025-06", view.Period)
		require.Len(t, view.DailySeries, 30)

		// forecast 100 units at 10 spread over 06-02 and 06-03
		requireDecimalApprox(t, decimal.NewFromInt(500), view.DailySeries[1].ForecastValue)
		requireDecimalApprox(t, decimal.NewFromInt(1000), view.DailySeries[29].CumulativeForecast)
		// actuals on 06-02 (120 units) and 06-10 (5 units)
		requireDecimalApprox(t, decimal.NewFromInt(1200), view.DailySeries[1].ActualValue)
		requireDecimalApprox(t, decimal.NewFromInt(1250), view.DailySeries[29].CumulativeActual)

		requireDecimalApprox(t, decimal.NewFromInt(1000), view.PeriodTotals.ForecastValue)
		requireDecimalApprox(t, decimal.NewFromInt(1250), view.PeriodTotals.ActualValue)
		require.NotNil(t, view.PeriodTotals.UsagePct)
		requireDecimalApprox(t, decimal.NewFromInt(125), *view.PeriodTotals.UsagePct)

		// deltas: Apr +50, May +100, Jun +250 -> continuous over
		require.Len(t, view.OverUsage, 1)
		requireDecimalApprox(t, decimal.NewFromInt(250), view.OverUsage[0].DeltaValue)
		require.Empty(t, view.UnderUsage)
		require.Len(t, view.ContinuousOver, 1)
		requireDecimalApprox(t, decimal.NewFromInt(50), view.ContinuousOver[0].Deltas[0])
		requireDecimalApprox(t, decimal.NewFromInt(100), view.ContinuousOver[0].Deltas[1])
		requireDecimalApprox(t, decimal.NewFromInt(250), view.ContinuousOver[0].Deltas[2])
		require.Empty(t, view.ContinuousUnder)

		require.Len(t, view.DelayedPostings, 1)
		require.Equal(t, 2, view.DelayedPostings[0].DelayDays)

		require.Len(t, view.DepartmentSummary, 1)
		require.Equal(t, "Press Shop", view.DepartmentSummary[0].Department)
	})

	t.Run("identical inputs yield identical output", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, materials, shops, calendars, forecast, actuals := newTestHandler(ctrl)
		expectFixtureReads(materials, shops, calendars, forecast, actuals, 2)

		first, err := handler.ComputePeriodView(context.Background(), input)
		require.NoError(t, err)
		second, err := handler.ComputePeriodView(context.Background(), input)
		require.NoError(t, err)

		diff := cmp.Diff(first, second, cmp.Comparer(func(d1, d2 decimal.Decimal) bool {
			return d1.Equal(d2)
		}))
		require.Empty(t, diff)
	})

	t.Run("a failed fetch fails the whole call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, materials, shops, calendars, forecast, actuals := newTestHandler(ctrl)

		materials.EXPECT().List().Return(nil, fmt.Errorf("store unavailable")).AnyTimes()
		shops.EXPECT().List().Return([]domain.ShopRow{}, nil).AnyTimes()
		calendars.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		forecast.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		actuals.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := handler.ComputePeriodView(context.Background(), input)
		require.Error(t, err)
		require.ErrorContains(t, err, "store unavailable")
	})

	t.Run("invalid filter mode is rejected before fetching", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _, _, _, _, _ := newTestHandler(ctrl)

		_, err := handler.ComputePeriodView(context.Background(), PeriodViewInput{
			Period:     june,
			Department: domain.DepartmentFilter{Mode: "sideways"},
			Material:   domain.MaterialFilter{Mode: domain.MaterialFilterMode_All},
		})
		require.Error(t, err)
	})
}

func Test_GetFilterOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler, _, shops, _, _, _ := newTestHandler(ctrl)

	shops.EXPECT().List().Return([]domain.ShopRow{
		{Name: "Press Shop"},
		{Name: "Weld Shop"},
	}, nil)

	options, err := handler.GetFilterOptions(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Press Shop", "Weld Shop"}, options.Departments)
	require.Len(t, options.MaterialCategories, 3)
}

func requireDecimalApprox(t *testing.T, want, got decimal.Decimal) {
	t.Helper()
	diff := want.Sub(got).Abs()
	require.True(
		t,
		diff.LessThan(decimal.New(1, -9)),
		"want %s, got %s", want.String(), got.String(),
	)
}
