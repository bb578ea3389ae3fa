package model

import (
	"github.com/secmon-lab/roster/pkg/domain/types"
)

// Department is read-only reference data selectable on an employee
type Department struct {
	ID   types.DepartmentID `json:"id"`
	Name string             `json:"name"`
}

// Employee is the record edited by the employee form
type Employee struct {
	ID         types.EmployeeID `json:"id,omitempty"`
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Department []Department     `json:"department"`
}

// Values returns the editable fields of the employee
func (e *Employee) Values() EmployeeValues {
	return EmployeeValues{
		Name:       e.Name,
		Email:      e.Email,
		Department: append([]Department(nil), e.Department...),
	}
}

// EmployeeValues holds the current field values of the form and is sent
// verbatim as the create/update request body. It never carries an id.
type EmployeeValues struct {
	Name       string       `json:"name" validate:"required"`
	Email      string       `json:"email" validate:"required,looseemail"`
	Department []Department `json:"department" validate:"min=1"`
}

// HasDepartment reports whether the department with id is selected
func (v EmployeeValues) HasDepartment(id types.DepartmentID) bool {
	for _, d := range v.Department {
		if d.ID == id {
			return true
		}
	}
	return false
}

// SelectConfig is the accessor pair used by the department multi-select
type SelectConfig struct {
	Label func(Department) string
	Value func(Department) string
}

// DefaultSelectConfig labels options by name and keys them by decimal id
func DefaultSelectConfig() SelectConfig {
	return SelectConfig{
		Label: func(d Department) string { return d.Name },
		Value: func(d Department) string { return d.ID.String() },
	}
}

// Resolve maps posted option values back to departments from options.
// Unknown values are dropped and duplicates collapse; the posted order is kept.
func (c SelectConfig) Resolve(options []Department, values []string) []Department {
	byValue := make(map[string]Department, len(options))
	for _, opt := range options {
		byValue[c.Value(opt)] = opt
	}

	seen := make(map[string]bool, len(values))
	result := make([]Department, 0, len(values))
	for _, v := range values {
		dept, ok := byValue[v]
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		result = append(result, dept)
	}
	return result
}
