package interfaces

import (
	"context"

	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/secmon-lab/roster/pkg/domain/types"
)

// EmployeeForm drives one employee form lifetime
type EmployeeForm interface {
	// Mount builds a form state and runs the option and record loaders
	Mount(ctx context.Context, routeID types.RouteID) *model.FormState

	// Restore builds a form state from posted values, loading only options
	Restore(ctx context.Context, routeID types.RouteID, input model.FormInput) *model.FormState

	// Submit validates and saves the state's values
	Submit(ctx context.Context, state *model.FormState) (*model.SubmitResult, error)

	// Cancel discards the state and returns the list route
	Cancel(ctx context.Context, state *model.FormState) *model.Navigation
}

// Notifications delivers transient toasts to the current browser session
type Notifications interface {
	Info(ctx context.Context, text string) error
	Error(ctx context.Context, text string) error
	Drain(ctx context.Context) ([]*model.Notification, error)
}
