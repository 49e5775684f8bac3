package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// The two named work calendars. Every department maps to one of
	// them; calendar 1 is the default for unmapped departments.
	CalendarID_Primary   = 1
	CalendarID_Secondary = 2
)

// CalendarDay is one day of a work calendar. Weight is the day's working
// time plus overtime, the raw input to weight normalization.
type CalendarDay struct {
	Date   time.Time
	Weight decimal.Decimal
}
