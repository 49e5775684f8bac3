package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type MaterialCategory string

const (
	MaterialCategory_Direct     MaterialCategory = "DIRECT"
	MaterialCategory_Indirect   MaterialCategory = "INDIRECT"
	MaterialCategory_Unassigned MaterialCategory = "UNASSIGNED"
)

// NormalizeMaterialCategory maps the free-text category variants found in
// the material master to the canonical enum. Unknown values, including
// empty strings, normalize to Unassigned.
func NormalizeMaterialCategory(raw *string) MaterialCategory {
	if raw == nil {
		return MaterialCategory_Unassigned
	}
	switch strings.ToLower(strings.TrimSpace(*raw)) {
	case "direct", "dm":
		return MaterialCategory_Direct
	case "indirect", "im":
		return MaterialCategory_Indirect
	default:
		return MaterialCategory_Unassigned
	}
}

// MaterialRow is one material-master record as delivered by the store,
// before reference resolution. Numeric fields are nullable on the wire.
type MaterialRow struct {
	ID              string
	Price           *decimal.Decimal
	QuantityPerUnit *decimal.Decimal
	PackSize        *int64
	Category        *string
}

// ShopRow is one shop/department record as delivered by the store.
type ShopRow struct {
	Name       string
	CalendarID *int32
}

// MaterialRef is the resolved per-material lookup entry. UnitValue is
// price divided by quantity-per-unit; it is zero when the master has no
// usable price, which zeroes the material's monetary contribution without
// excluding it from quantity series.
type MaterialRef struct {
	ID        string
	UnitValue decimal.Decimal
	PackSize  int64
	Category  MaterialCategory
}

// DepartmentRef maps a department/shop name to the work calendar that
// drives its forecast distribution.
type DepartmentRef struct {
	Name       string
	CalendarID int
}
