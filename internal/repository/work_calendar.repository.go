package repository

import (
	"database/sql"
	"fmt"
	"time"

	"matusage/internal/db/models/postgres/public/model"
	. "matusage/internal/db/models/postgres/public/table"
	"matusage/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/shopspring/decimal"
)

type WorkCalendarRepository interface {
	// List returns the calendar's days in the half-open range [start, end).
	List(calendarID int, start, end time.Time) ([]domain.CalendarDay, error)
	Add(tx *sql.Tx, days []model.WorkCalendar) error
}

type workCalendarRepositoryHandler struct {
	Db *sql.DB
}

func NewWorkCalendarRepository(db *sql.DB) WorkCalendarRepository {
	return workCalendarRepositoryHandler{Db: db}
}

func (h workCalendarRepositoryHandler) List(calendarID int, start, end time.Time) ([]domain.CalendarDay, error) {
	query := WorkCalendar.
		SELECT(WorkCalendar.AllColumns).
		WHERE(
			AND(
				WorkCalendar.CalendarID.EQ(Int(int64(calendarID))),
				WorkCalendar.Date.GT_EQ(DateT(start)),
				WorkCalendar.Date.LT(DateT(end)),
			),
		).
		ORDER_BY(WorkCalendar.Date.ASC())

	result := []model.WorkCalendar{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar %d days: %w", calendarID, err)
	}

	out := make([]domain.CalendarDay, 0, len(result))
	for _, d := range result {
		weight := decimal.Zero
		if d.WorkingTime != nil {
			weight = weight.Add(*d.WorkingTime)
		}
		if d.OverTime != nil {
			weight = weight.Add(*d.OverTime)
		}
		out = append(out, domain.CalendarDay{
			Date:   d.Date,
			Weight: weight,
		})
	}

	return out, nil
}

func (h workCalendarRepositoryHandler) Add(tx *sql.Tx, days []model.WorkCalendar) error {
	if len(days) == 0 {
		return nil
	}

	query := WorkCalendar.
		INSERT(WorkCalendar.AllColumns).
		MODELS(days).
		ON_CONFLICT(WorkCalendar.CalendarID, WorkCalendar.Date).
		DO_UPDATE(
			SET(
				WorkCalendar.WorkingTime.SET(WorkCalendar.EXCLUDED.WorkingTime),
				WorkCalendar.OverTime.SET(WorkCalendar.EXCLUDED.OverTime),
			),
		)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add calendar days: %w", err)
	}

	return nil
}
