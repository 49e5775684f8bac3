package calculator

import (
	"testing"

	"matusage/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func aggregate(actual, forecast int64) domain.PeriodAggregate {
	return domain.PeriodAggregate{
		ActualValue:   decimal.NewFromInt(actual),
		ForecastValue: decimal.NewFromInt(forecast),
	}
}

func Test_DetectVariance(t *testing.T) {
	aggregates := map[domain.DeptMaterialKey]domain.PeriodAggregate{
		{Department: "A", MaterialID: "M1"}: aggregate(200, 100),
		{Department: "A", MaterialID: "M2"}: aggregate(150, 100),
		{Department: "B", MaterialID: "M3"}: aggregate(40, 100),
		{Department: "B", MaterialID: "M4"}: aggregate(90, 100),
		{Department: "C", MaterialID: "M5"}: aggregate(100, 100),
	}

	over, under := DetectVariance(aggregates)

	t.Run("over usage sorted by delta descending", func(t *testing.T) {
		require.Len(t, over, 2)
		require.Equal(t, "M1", over[0].MaterialID)
		requireDecimalApprox(t, decimal.NewFromInt(100), over[0].DeltaValue)
		require.Equal(t, "M2", over[1].MaterialID)
	})

	t.Run("under usage sorted by magnitude descending", func(t *testing.T) {
		require.Len(t, under, 2)
		require.Equal(t, "M3", under[0].MaterialID)
		requireDecimalApprox(t, decimal.NewFromInt(-60), under[0].DeltaValue)
		require.Equal(t, "M4", under[1].MaterialID)
	})

	t.Run("exact match is neither over nor under", func(t *testing.T) {
		for _, r := range append(over, under...) {
			require.NotEqual(t, "M5", r.MaterialID)
		}
	})
}

func Test_DetectContinuousVariance(t *testing.T) {
	key := domain.DeptMaterialKey{Department: "A", MaterialID: "M1"}

	t.Run("three same-signed deltas qualify", func(t *testing.T) {
		// deltas +100, +50, +75 oldest to newest
		over, under := DetectContinuousVariance([3]map[domain.DeptMaterialKey]domain.PeriodAggregate{
			{key: aggregate(200, 100)},
			{key: aggregate(150, 100)},
			{key: aggregate(175, 100)},
		})

		require.Empty(t, under)
		require.Len(t, over, 1)
		require.Equal(t, "M1", over[0].MaterialID)
		requireDecimalApprox(t, decimal.NewFromInt(100), over[0].Deltas[0])
		requireDecimalApprox(t, decimal.NewFromInt(50), over[0].Deltas[1])
		requireDecimalApprox(t, decimal.NewFromInt(75), over[0].Deltas[2])
		require.NotNil(t, over[0].ThreeMonthUsageRatio)
		requireDecimalApprox(t, decimal.NewFromInt(175), *over[0].ThreeMonthUsageRatio)
	})

	t.Run("a sign flip disqualifies", func(t *testing.T) {
		// deltas +100, -50, +75
		over, under := DetectContinuousVariance([3]map[domain.DeptMaterialKey]domain.PeriodAggregate{
			{key: aggregate(200, 100)},
			{key: aggregate(50, 100)},
			{key: aggregate(175, 100)},
		})

		require.Empty(t, over)
		require.Empty(t, under)
	})

	t.Run("missing month counts as zero delta and disqualifies", func(t *testing.T) {
		over, under := DetectContinuousVariance([3]map[domain.DeptMaterialKey]domain.PeriodAggregate{
			{key: aggregate(200, 100)},
			{},
			{key: aggregate(175, 100)},
		})

		require.Empty(t, over)
		require.Empty(t, under)
	})

	t.Run("continuous under with zero forecast has nil ratio", func(t *testing.T) {
		under1 := domain.DeptMaterialKey{Department: "B", MaterialID: "M2"}
		over, under := DetectContinuousVariance([3]map[domain.DeptMaterialKey]domain.PeriodAggregate{
			{under1: {ActualValue: decimal.NewFromInt(-10)}},
			{under1: {ActualValue: decimal.NewFromInt(-20)}},
			{under1: {ActualValue: decimal.NewFromInt(-30)}},
		})

		require.Empty(t, over)
		require.Len(t, under, 1)
		require.Nil(t, under[0].ThreeMonthUsageRatio)
	})

	t.Run("over sorted by current delta descending", func(t *testing.T) {
		k1 := domain.DeptMaterialKey{Department: "A", MaterialID: "M1"}
		k2 := domain.DeptMaterialKey{Department: "A", MaterialID: "M2"}
		over, _ := DetectContinuousVariance([3]map[domain.DeptMaterialKey]domain.PeriodAggregate{
			{k1: aggregate(110, 100), k2: aggregate(120, 100)},
			{k1: aggregate(110, 100), k2: aggregate(120, 100)},
			{k1: aggregate(150, 100), k2: aggregate(300, 100)},
		})

		require.Len(t, over, 2)
		require.Equal(t, "M2", over[0].MaterialID)
		require.Equal(t, "M1", over[1].MaterialID)
	})
}

func Test_DetectDelayedPostings(t *testing.T) {
	pressShop := "Press Shop"

	t.Run("posting before document date emits the ceil day gap", func(t *testing.T) {
		docDate := date(2025, 3, 4)
		delays := DetectDelayedPostings([]domain.ActualTransaction{
			{
				MaterialID:   "M1",
				Department:   &pressShop,
				Quantity:     decimal.NewFromInt(10),
				PostingDate:  date(2025, 3, 1),
				DocumentDate: &docDate,
			},
		})

		require.Len(t, delays, 1)
		require.Equal(t, 3, delays[0].DelayDays)
		require.Equal(t, "M1", delays[0].MaterialID)
		require.Equal(t, "Press Shop", delays[0].Department)
	})

	t.Run("posting on or after document date emits nothing", func(t *testing.T) {
		same := date(2025, 3, 1)
		earlier := date(2025, 2, 20)
		delays := DetectDelayedPostings([]domain.ActualTransaction{
			{MaterialID: "M1", PostingDate: date(2025, 3, 1), DocumentDate: &same},
			{MaterialID: "M2", PostingDate: date(2025, 3, 1), DocumentDate: &earlier},
			{MaterialID: "M3", PostingDate: date(2025, 3, 1)},
		})

		require.Empty(t, delays)
	})

	t.Run("sorted by delay descending", func(t *testing.T) {
		doc1 := date(2025, 3, 2)
		doc2 := date(2025, 3, 10)
		delays := DetectDelayedPostings([]domain.ActualTransaction{
			{MaterialID: "M1", PostingDate: date(2025, 3, 1), DocumentDate: &doc1},
			{MaterialID: "M2", PostingDate: date(2025, 3, 1), DocumentDate: &doc2},
		})

		require.Len(t, delays, 2)
		require.Equal(t, "M2", delays[0].MaterialID)
		require.Equal(t, 9, delays[0].DelayDays)
		require.Equal(t, "M1", delays[1].MaterialID)
		require.Equal(t, 1, delays[1].DelayDays)
	})
}
