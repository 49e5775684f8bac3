package domain

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

// Month identifies one planning period (calendar month).
type Month struct {
	Year  int
	Month time.Month
}

func NewMonth(year int, month time.Month) Month {
	return Month{Year: year, Month: month}
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a period in "YYYY-MM" form.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("failed to parse period %q: %w", s, err)
	}
	return MonthOf(t), nil
}

func (m Month) String() string {
	return m.First().Format(monthLayout)
}

// First returns midnight UTC on the first day of the month.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Last returns midnight UTC on the last day of the month.
func (m Month) Last() time.Time {
	return m.First().AddDate(0, 1, -1)
}

func (m Month) AddMonths(n int) Month {
	return MonthOf(m.First().AddDate(0, n, 0))
}

func (m Month) NextMonth() Month {
	return m.AddMonths(1)
}

// Days returns the number of calendar days in the month.
func (m Month) Days() int {
	return m.First().AddDate(0, 1, -1).Day()
}

func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

func (m Month) Equal(other Month) bool {
	return m.Year == other.Year && m.Month == other.Month
}
