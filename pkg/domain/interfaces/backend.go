package interfaces

//go:generate moq -out mocks/backend_mock.go -pkg mocks . Backend

import (
	"context"

	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/secmon-lab/roster/pkg/domain/types"
)

// Backend is the REST service that owns employees and departments
type Backend interface {
	// ListDepartments fetches the full department collection (GET /departments)
	ListDepartments(ctx context.Context) ([]model.Department, error)

	// GetEmployee fetches one employee (GET /employees/{id})
	GetEmployee(ctx context.Context, id types.EmployeeID) (*model.Employee, error)

	// CreateEmployee creates an employee (POST /employees)
	CreateEmployee(ctx context.Context, values model.EmployeeValues) (*model.Employee, error)

	// UpdateEmployee replaces an employee (PUT /employees/{id})
	UpdateEmployee(ctx context.Context, id types.EmployeeID, values model.EmployeeValues) (*model.Employee, error)
}
