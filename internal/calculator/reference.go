package calculator

import (
	"matusage/internal/domain"

	"github.com/shopspring/decimal"
)

// ResolveReferences builds the per-request material and department lookup
// maps from the raw master rows. Pure construction, no side effects.
// Missing or malformed master data degrades rather than fails: a material
// without a usable price resolves to unit value zero, pack size floors at
// one, and a department without an explicit calendar mapping falls back
// to calendar 1.
func ResolveReferences(materials []domain.MaterialRow, shops []domain.ShopRow) (map[string]domain.MaterialRef, map[string]domain.DepartmentRef) {
	materialRefs := make(map[string]domain.MaterialRef, len(materials))
	for _, row := range materials {
		materialRefs[row.ID] = domain.MaterialRef{
			ID:        row.ID,
			UnitValue: unitValue(row.Price, row.QuantityPerUnit),
			PackSize:  packSize(row.PackSize),
			Category:  domain.NormalizeMaterialCategory(row.Category),
		}
	}

	departmentRefs := make(map[string]domain.DepartmentRef, len(shops))
	for _, row := range shops {
		calendarID := domain.CalendarID_Primary
		if row.CalendarID != nil && *row.CalendarID == domain.CalendarID_Secondary {
			calendarID = domain.CalendarID_Secondary
		}
		departmentRefs[row.Name] = domain.DepartmentRef{
			Name:       row.Name,
			CalendarID: calendarID,
		}
	}

	return materialRefs, departmentRefs
}

func unitValue(price, quantityPerUnit *decimal.Decimal) decimal.Decimal {
	if price == nil {
		return decimal.Zero
	}
	qty := decimal.NewFromInt(1)
	if quantityPerUnit != nil && quantityPerUnit.GreaterThan(qty) {
		qty = *quantityPerUnit
	}
	return price.Div(qty)
}

func packSize(raw *int64) int64 {
	if raw == nil || *raw < 1 {
		return 1
	}
	return *raw
}
