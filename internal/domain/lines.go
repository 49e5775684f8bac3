package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastLine is one externally supplied monthly plan row. Department is
// nil when the plan row carries no shop assignment.
type ForecastLine struct {
	MaterialID      string
	Department      *string
	MonthlyQuantity decimal.Decimal
	PeriodMonth     Month
}

// ActualTransaction is one recorded material movement. PostingDate drives
// period bucketing; DocumentDate, when present, drives delay detection.
type ActualTransaction struct {
	MaterialID   string
	Department   *string
	Quantity     decimal.Decimal
	PostingDate  time.Time
	DocumentDate *time.Time
}

// DeptMaterialKey keys period aggregates. Department is the empty string
// for lines with no department assignment.
type DeptMaterialKey struct {
	Department string
	MaterialID string
}

// DepartmentOf returns the aggregate key department for a nullable
// department field: blank for nil, the raw value otherwise.
func DepartmentOf(dept *string) string {
	if dept == nil {
		return ""
	}
	return *dept
}
