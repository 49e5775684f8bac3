package repository

import (
	"database/sql"
	"fmt"

	"matusage/internal/db/models/postgres/public/model"
	. "matusage/internal/db/models/postgres/public/table"
	"matusage/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/shopspring/decimal"
)

type ForecastLineRepository interface {
	// List returns lines for months in the half-open range
	// [start, endExclusive).
	List(start, endExclusive domain.Month) ([]domain.ForecastLine, error)
	Add(tx *sql.Tx, lines []model.ForecastLine) error
}

type forecastLineRepositoryHandler struct {
	Db *sql.DB
}

func NewForecastLineRepository(db *sql.DB) ForecastLineRepository {
	return forecastLineRepositoryHandler{Db: db}
}

func (h forecastLineRepositoryHandler) List(start, endExclusive domain.Month) ([]domain.ForecastLine, error) {
	query := ForecastLine.
		SELECT(ForecastLine.AllColumns).
		WHERE(
			AND(
				ForecastLine.PeriodMonth.GT_EQ(DateT(start.First())),
				ForecastLine.PeriodMonth.LT(DateT(endExclusive.First())),
			),
		).
		ORDER_BY(ForecastLine.PeriodMonth.ASC(), ForecastLine.MaterialID.ASC())

	result := []model.ForecastLine{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list forecast lines: %w", err)
	}

	out := make([]domain.ForecastLine, 0, len(result))
	for _, line := range result {
		quantity := decimal.Zero
		if line.Quantity != nil {
			quantity = *line.Quantity
		}
		out = append(out, domain.ForecastLine{
			MaterialID:      line.MaterialID,
			Department:      line.Shop,
			MonthlyQuantity: quantity,
			PeriodMonth:     domain.MonthOf(line.PeriodMonth),
		})
	}

	return out, nil
}

func (h forecastLineRepositoryHandler) Add(tx *sql.Tx, lines []model.ForecastLine) error {
	if len(lines) == 0 {
		return nil
	}

	query := ForecastLine.
		INSERT(ForecastLine.MutableColumns).
		MODELS(lines)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add forecast lines: %w", err)
	}

	return nil
}
