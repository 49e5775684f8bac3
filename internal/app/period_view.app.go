package app

import (
	"context"
	"fmt"

	"matusage/internal/calculator"
	"matusage/internal/domain"
	"matusage/internal/logger"
	"matusage/internal/repository"

	"golang.org/x/sync/errgroup"
)

// PeriodViewHandler assembles the full analytics bundle for one period
// and filter set. Every invocation works on its own snapshot of the
// store's collections; nothing is cached between calls.
type PeriodViewHandler struct {
	MaterialMasterRepository    repository.MaterialMasterRepository
	ShopMasterRepository        repository.ShopMasterRepository
	WorkCalendarRepository      repository.WorkCalendarRepository
	ForecastLineRepository      repository.ForecastLineRepository
	ActualTransactionRepository repository.ActualTransactionRepository
}

type PeriodViewInput struct {
	Period     domain.Month
	Department domain.DepartmentFilter
	Material   domain.MaterialFilter
}

// fetchResult is the snapshot of the six collections one computation
// needs. The forecast and actual ranges cover the full rolling window,
// not just the requested month.
type fetchResult struct {
	Materials []domain.MaterialRow
	Shops     []domain.ShopRow
	Calendar1 []domain.CalendarDay
	Calendar2 []domain.CalendarDay
	Forecast  []domain.ForecastLine
	Actuals   []domain.ActualTransaction
}

// ComputePeriodView runs the pipeline: fetch all collections behind a
// single barrier, resolve references, filter both sides identically,
// build calendar weights, redistribute the month's forecast, reconcile
// actuals over the rolling window, detect anomalies, and assemble the
// bundle. A failure fetching any collection fails the whole call;
// partial results would misstate the variance and delay figures.
func (h PeriodViewHandler) ComputePeriodView(ctx context.Context, in PeriodViewInput) (*domain.PeriodView, error) {
	log := logger.FromContext(ctx)

	if err := in.Department.Validate(); err != nil {
		return nil, err
	}
	if err := in.Material.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := h.fetch(ctx, in.Period)
	if err != nil {
		return nil, fmt.Errorf("failed to load collections for %s: %w", in.Period, err)
	}

	materialRefs, departmentRefs := calculator.ResolveReferences(snapshot.Materials, snapshot.Shops)

	lines, transactions := calculator.ApplyFilters(
		snapshot.Forecast,
		snapshot.Actuals,
		calculator.FilterSet{Department: in.Department, Material: in.Material},
		materialRefs,
		departmentRefs,
	)
	log.Debugw("filtered computation universe",
		"period", in.Period.String(),
		"forecastLines", len(lines),
		"actualTransactions", len(transactions),
	)

	weightsByCalendar := map[int]calculator.MonthWeights{
		domain.CalendarID_Primary:   calculator.BuildMonthWeights(snapshot.Calendar1, in.Period),
		domain.CalendarID_Secondary: calculator.BuildMonthWeights(snapshot.Calendar2, in.Period),
	}

	forecastSeries, err := calculator.Redistribute(lines, weightsByCalendar, materialRefs, departmentRefs, in.Period)
	if err != nil {
		return nil, fmt.Errorf("failed to redistribute forecast for %s: %w", in.Period, err)
	}

	actualSeries, currentAggregates, totals := calculator.ReconcilePeriod(
		transactions, materialRefs, forecastSeries.TotalsByKey, in.Period,
	)

	var window [domain.ContinuousWindowMonths]map[domain.DeptMaterialKey]domain.PeriodAggregate
	for i := 0; i < domain.ContinuousWindowMonths-1; i++ {
		month := in.Period.AddMonths(i + 1 - domain.ContinuousWindowMonths)
		window[i] = calculator.JoinAggregates(
			calculator.AggregateActuals(transactions, materialRefs, month),
			calculator.ForecastTotalsByKey(lines, materialRefs, month),
		)
	}
	window[domain.ContinuousWindowMonths-1] = currentAggregates

	over, under := calculator.DetectVariance(currentAggregates)
	continuousOver, continuousUnder := calculator.DetectContinuousVariance(window)

	currentMonthTxns := make([]domain.ActualTransaction, 0, len(transactions))
	for _, txn := range transactions {
		if in.Period.Contains(txn.PostingDate) {
			currentMonthTxns = append(currentMonthTxns, txn)
		}
	}
	delays := calculator.DetectDelayedPostings(currentMonthTxns)

	return &domain.PeriodView{
		Period:            in.Period.String(),
		DailySeries:       calculator.BuildDailySeries(forecastSeries, actualSeries),
		PeriodTotals:      totals,
		OverUsage:         over,
		UnderUsage:        under,
		ContinuousOver:    continuousOver,
		ContinuousUnder:   continuousUnder,
		DelayedPostings:   delays,
		DepartmentSummary: calculator.SummarizeDepartments(currentAggregates),
		SeriesStats:       calculator.ComputeSeriesStats(actualSeries),
	}, nil
}

// fetch issues the six independent reads concurrently and waits for all
// of them before any aggregation begins.
func (h PeriodViewHandler) fetch(ctx context.Context, period domain.Month) (*fetchResult, error) {
	windowStart := period.AddMonths(1 - domain.ContinuousWindowMonths)
	out := &fetchResult{}

	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		out.Materials, err = h.MaterialMasterRepository.List()
		return err
	})
	group.Go(func() error {
		var err error
		out.Shops, err = h.ShopMasterRepository.List()
		return err
	})
	group.Go(func() error {
		var err error
		out.Calendar1, err = h.WorkCalendarRepository.List(
			domain.CalendarID_Primary, period.First(), period.NextMonth().First(),
		)
		return err
	})
	group.Go(func() error {
		var err error
		out.Calendar2, err = h.WorkCalendarRepository.List(
			domain.CalendarID_Secondary, period.First(), period.NextMonth().First(),
		)
		return err
	})
	group.Go(func() error {
		var err error
		out.Forecast, err = h.ForecastLineRepository.List(windowStart, period.NextMonth())
		return err
	})
	group.Go(func() error {
		var err error
		out.Actuals, err = h.ActualTransactionRepository.List(windowStart.First(), period.Last())
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// FilterOptions lists the department names and material categories the
// dashboard offers as filter values.
type FilterOptions struct {
	Departments        []string                  `json:"departments"`
	MaterialCategories []domain.MaterialCategory `json:"materialCategories"`
}

func (h PeriodViewHandler) GetFilterOptions(ctx context.Context) (*FilterOptions, error) {
	shops, err := h.ShopMasterRepository.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}

	departments := make([]string, 0, len(shops))
	for _, s := range shops {
		departments = append(departments, s.Name)
	}

	return &FilterOptions{
		Departments: departments,
		MaterialCategories: []domain.MaterialCategory{
			domain.MaterialCategory_Direct,
			domain.MaterialCategory_Indirect,
			domain.MaterialCategory_Unassigned,
		},
	}, nil
}
