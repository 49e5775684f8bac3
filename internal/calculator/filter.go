package calculator

import (
	"matusage/internal/domain"
)

// FilterSet is the filtered-universe definition for one period view
// request. Both filters apply identically to forecast lines and actual
// transactions before any aggregation, so daily series, period totals
// and anomaly detection see the same universe.
type FilterSet struct {
	Department domain.DepartmentFilter
	Material   domain.MaterialFilter
}

// ApplyFilters returns the subset of lines and transactions passing both
// the department and material filters.
func ApplyFilters(
	lines []domain.ForecastLine,
	transactions []domain.ActualTransaction,
	filters FilterSet,
	materialRefs map[string]domain.MaterialRef,
	departmentRefs map[string]domain.DepartmentRef,
) ([]domain.ForecastLine, []domain.ActualTransaction) {
	outLines := []domain.ForecastLine{}
	for _, line := range lines {
		if passesDepartment(line.Department, filters.Department, departmentRefs) &&
			passesMaterial(line.MaterialID, filters.Material, materialRefs) {
			outLines = append(outLines, line)
		}
	}

	outTxns := []domain.ActualTransaction{}
	for _, txn := range transactions {
		if passesDepartment(txn.Department, filters.Department, departmentRefs) &&
			passesMaterial(txn.MaterialID, filters.Material, materialRefs) {
			outTxns = append(outTxns, txn)
		}
	}

	return outLines, outTxns
}

func passesDepartment(department *string, filter domain.DepartmentFilter, departmentRefs map[string]domain.DepartmentRef) bool {
	switch filter.Mode {
	case domain.DepartmentFilterMode_List:
		if department == nil {
			return false
		}
		for _, name := range filter.Names {
			if *department == name {
				return true
			}
		}
		return false
	case domain.DepartmentFilterMode_Unassigned:
		if department == nil || *department == "" {
			return false
		}
		_, known := departmentRefs[*department]
		return !known
	default:
		return true
	}
}

func passesMaterial(materialID string, filter domain.MaterialFilter, materialRefs map[string]domain.MaterialRef) bool {
	category := domain.MaterialCategory_Unassigned
	if ref, ok := materialRefs[materialID]; ok {
		category = ref.Category
	}
	switch filter.Mode {
	case domain.MaterialFilterMode_Direct:
		return category == domain.MaterialCategory_Direct
	case domain.MaterialFilterMode_Indirect:
		return category == domain.MaterialCategory_Indirect
	case domain.MaterialFilterMode_Unassigned:
		return category == domain.MaterialCategory_Unassigned
	default:
		return true
	}
}
