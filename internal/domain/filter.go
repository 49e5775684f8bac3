package domain

import "fmt"

type DepartmentFilterMode string

const (
	DepartmentFilterMode_All        DepartmentFilterMode = "all"
	DepartmentFilterMode_List       DepartmentFilterMode = "list"
	DepartmentFilterMode_Unassigned DepartmentFilterMode = "unassigned"
)

type MaterialFilterMode string

const (
	MaterialFilterMode_All        MaterialFilterMode = "all"
	MaterialFilterMode_Direct     MaterialFilterMode = "direct"
	MaterialFilterMode_Indirect   MaterialFilterMode = "indirect"
	MaterialFilterMode_Unassigned MaterialFilterMode = "unassigned"
)

// DepartmentFilter restricts the computation universe by department.
// Names is only consulted in list mode.
type DepartmentFilter struct {
	Mode  DepartmentFilterMode `json:"mode"`
	Names []string             `json:"names,omitempty"`
}

func (f DepartmentFilter) Validate() error {
	switch f.Mode {
	case DepartmentFilterMode_All, DepartmentFilterMode_Unassigned:
		return nil
	case DepartmentFilterMode_List:
		if len(f.Names) == 0 {
			return fmt.Errorf("department filter mode %q requires at least one name", f.Mode)
		}
		return nil
	default:
		return fmt.Errorf("unknown department filter mode %q", f.Mode)
	}
}

// MaterialFilter restricts the computation universe by material category.
type MaterialFilter struct {
	Mode MaterialFilterMode `json:"mode"`
}

func (f MaterialFilter) Validate() error {
	switch f.Mode {
	case MaterialFilterMode_All, MaterialFilterMode_Direct,
		MaterialFilterMode_Indirect, MaterialFilterMode_Unassigned:
		return nil
	default:
		return fmt.Errorf("unknown material filter mode %q", f.Mode)
	}
}
