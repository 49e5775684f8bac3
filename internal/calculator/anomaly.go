package calculator

import (
	"math"
	"sort"

	"matusage/internal/domain"

	"github.com/shopspring/decimal"
)

// DetectVariance splits the current period's aggregates into over-usage
// (actual exceeded forecast) and under-usage (forecast exceeded actual)
// records. Over-usage sorts by delta descending, under-usage by delta
// magnitude descending; ties break on department then material so the
// ordering is deterministic.
func DetectVariance(aggregates map[domain.DeptMaterialKey]domain.PeriodAggregate) (over, under []domain.VarianceRecord) {
	over = []domain.VarianceRecord{}
	under = []domain.VarianceRecord{}
	for key, agg := range aggregates {
		delta := agg.ActualValue.Sub(agg.ForecastValue)
		record := domain.VarianceRecord{
			Department: key.Department,
			MaterialID: key.MaterialID,
			DeltaValue: delta,
		}
		if delta.IsPositive() {
			over = append(over, record)
		} else if delta.IsNegative() {
			under = append(under, record)
		}
	}

	sortVariance(over)
	sortVariance(under)
	return over, under
}

func sortVariance(records []domain.VarianceRecord) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i].DeltaValue.Abs(), records[j].DeltaValue.Abs()
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		if records[i].Department != records[j].Department {
			return records[i].Department < records[j].Department
		}
		return records[i].MaterialID < records[j].MaterialID
	})
}

// DetectContinuousVariance evaluates the rolling window of monthly
// aggregates, oldest first, and emits pairs whose delta stayed strictly
// positive (continuous over) or strictly negative (continuous under) in
// every month. The usage ratio is the window's actual over forecast in
// percent, nil when the window has no forecast value.
func DetectContinuousVariance(
	window [domain.ContinuousWindowMonths]map[domain.DeptMaterialKey]domain.PeriodAggregate,
) (over, under []domain.ContinuousVarianceRecord) {
	keys := map[domain.DeptMaterialKey]bool{}
	for _, month := range window {
		for key := range month {
			keys[key] = true
		}
	}

	over = []domain.ContinuousVarianceRecord{}
	under = []domain.ContinuousVarianceRecord{}
	for key := range keys {
		var deltas [domain.ContinuousWindowMonths]decimal.Decimal
		sumActual := decimal.Zero
		sumForecast := decimal.Zero
		allPositive := true
		allNegative := true
		for i, month := range window {
			agg := month[key]
			deltas[i] = agg.ActualValue.Sub(agg.ForecastValue)
			sumActual = sumActual.Add(agg.ActualValue)
			sumForecast = sumForecast.Add(agg.ForecastValue)
			allPositive = allPositive && deltas[i].IsPositive()
			allNegative = allNegative && deltas[i].IsNegative()
		}
		if !allPositive && !allNegative {
			continue
		}

		record := domain.ContinuousVarianceRecord{
			Department: key.Department,
			MaterialID: key.MaterialID,
			Deltas:     deltas,
		}
		if !sumForecast.IsZero() {
			ratio := sumActual.Div(sumForecast).Mul(decimal.NewFromInt(100))
			record.ThreeMonthUsageRatio = &ratio
		}

		if allPositive {
			over = append(over, record)
		} else {
			under = append(under, record)
		}
	}

	// over: current delta descending, ratio descending as tiebreak
	sortContinuous(over, false)
	// under: current delta magnitude descending, ratio ascending as tiebreak
	sortContinuous(under, true)
	return over, under
}

func sortContinuous(records []domain.ContinuousVarianceRecord, ratioAscending bool) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i].CurrentDelta().Abs(), records[j].CurrentDelta().Abs()
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		ri, rj := records[i].ThreeMonthUsageRatio, records[j].ThreeMonthUsageRatio
		if ri != nil && rj != nil && !ri.Equal(*rj) {
			if ratioAscending {
				return ri.LessThan(*rj)
			}
			return ri.GreaterThan(*rj)
		}
		// undefined ratios sort after defined ones
		if (ri != nil) != (rj != nil) {
			return ri != nil
		}
		if records[i].Department != records[j].Department {
			return records[i].Department < records[j].Department
		}
		return records[i].MaterialID < records[j].MaterialID
	})
}

// DetectDelayedPostings emits a record for every transaction whose
// posting date precedes its document date, with the whole-day gap rounded
// up. Transactions without a document date never qualify. Sorted by delay
// descending.
func DetectDelayedPostings(transactions []domain.ActualTransaction) []domain.DelayRecord {
	out := []domain.DelayRecord{}
	for _, txn := range transactions {
		if txn.DocumentDate == nil || !txn.PostingDate.Before(*txn.DocumentDate) {
			continue
		}
		delayDays := int(math.Ceil(txn.DocumentDate.Sub(txn.PostingDate).Hours() / 24))
		out = append(out, domain.DelayRecord{
			MaterialID: txn.MaterialID,
			Department: domain.DepartmentOf(txn.Department),
			Quantity:   txn.Quantity,
			DelayDays:  delayDays,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DelayDays != out[j].DelayDays {
			return out[i].DelayDays > out[j].DelayDays
		}
		if out[i].Department != out[j].Department {
			return out[i].Department < out[j].Department
		}
		return out[i].MaterialID < out[j].MaterialID
	})
	return out
}
