package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/pkg/domain/interfaces"
	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/secmon-lab/roster/pkg/domain/types"
	slackSvc "github.com/secmon-lab/roster/pkg/service/slack"
	"github.com/secmon-lab/roster/pkg/utils/async"
	"github.com/slack-go/slack"
	"golang.org/x/sync/errgroup"
)

// EmployeeFormOption is a functional option for configuring EmployeeForm
type EmployeeFormOption func(*EmployeeForm)

// WithSlackAnnounce posts a message to channelID after every successful save
func WithSlackAnnounce(client interfaces.SlackClient, channelID string) EmployeeFormOption {
	return func(u *EmployeeForm) {
		u.slackClient = client
		u.slackChannel = channelID
	}
}

// EmployeeForm implements interfaces.EmployeeForm
type EmployeeForm struct {
	backend       interfaces.Backend
	notifications interfaces.Notifications
	messages      *model.Messages

	slackClient  interfaces.SlackClient
	slackChannel string
}

// NewEmployeeForm creates a new EmployeeForm use case
func NewEmployeeForm(backend interfaces.Backend, notifications interfaces.Notifications, messages *model.Messages, opts ...EmployeeFormOption) *EmployeeForm {
	if messages == nil {
		messages = model.DefaultMessages()
	}
	u := &EmployeeForm{
		backend:       backend,
		notifications: notifications,
		messages:      messages,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Messages returns the catalog used for validation and notification texts
func (u *EmployeeForm) Messages() *model.Messages {
	return u.messages
}

// Mount builds a fresh form state and runs the option loader, plus the
// record loader in edit mode, concurrently
func (u *EmployeeForm) Mount(ctx context.Context, routeID types.RouteID) *model.FormState {
	state := model.NewFormState(routeID)
	mountCtx := state.Bind(ctx)

	var eg errgroup.Group
	eg.Go(func() error {
		u.loadOptions(mountCtx, state)
		return nil
	})

	if id, ok := state.EmployeeID(); ok {
		u.transition(ctx, state, types.FormPhaseLoadingRecord)
		eg.Go(func() error {
			u.loadRecord(mountCtx, state, id)
			return nil
		})
	}

	_ = eg.Wait()
	u.transition(ctx, state, types.FormPhaseIdle)
	return state
}

// Restore rebuilds a form state from posted values. Only the option set is
// fetched; the record is never reloaded over what the user typed.
func (u *EmployeeForm) Restore(ctx context.Context, routeID types.RouteID, input model.FormInput) *model.FormState {
	state := model.NewFormState(routeID)
	u.loadOptions(state.Bind(ctx), state)

	state.SetValues(model.EmployeeValues{
		Name:       input.Name,
		Email:      input.Email,
		Department: state.ResolveDepartments(input.Department),
	})
	u.transition(ctx, state, types.FormPhaseIdle)
	return state
}

// Submit validates the state's values and, when they pass, creates or
// updates the employee
func (u *EmployeeForm) Submit(ctx context.Context, state *model.FormState) (*model.SubmitResult, error) {
	if err := state.Transition(types.FormPhaseValidating); err != nil {
		return nil, err
	}

	values := state.Values()
	errs := model.ValidateEmployee(values, u.messages)
	state.SetErrors(errs)
	if len(errs) > 0 {
		if err := state.Transition(types.FormPhaseIdle); err != nil {
			return nil, err
		}
		return &model.SubmitResult{Errors: errs}, nil
	}

	if err := state.Transition(types.FormPhaseSubmitting); err != nil {
		return nil, err
	}

	saved, err := u.save(ctx, state, values)
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to save employee",
			"error", err,
			"routeID", state.RouteID(),
			"mode", state.Mode(),
		)
		u.notify(ctx, types.NotificationError, u.messages.SaveFailed)
		if err := state.Transition(types.FormPhaseIdle); err != nil {
			return nil, err
		}
		return &model.SubmitResult{}, nil
	}

	u.notify(ctx, types.NotificationInfo, u.messages.SaveSucceeded)
	u.announce(ctx, state.Mode(), saved)

	if err := state.Transition(types.FormPhaseUnmounted); err != nil {
		return nil, err
	}

	return &model.SubmitResult{
		Saved:      saved,
		Navigation: &model.Navigation{Path: model.EmployeeListRoute},
	}, nil
}

// Cancel discards the form without saving and returns the list route
func (u *EmployeeForm) Cancel(ctx context.Context, state *model.FormState) *model.Navigation {
	if state != nil {
		state.Unmount()
	}
	return &model.Navigation{Path: model.EmployeeListRoute}
}

func (u *EmployeeForm) save(ctx context.Context, state *model.FormState, values model.EmployeeValues) (*model.Employee, error) {
	if id, ok := state.EmployeeID(); ok {
		employee, err := u.backend.UpdateEmployee(ctx, id, values)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to update employee", goerr.V("employeeID", id))
		}
		return employee, nil
	}

	employee, err := u.backend.CreateEmployee(ctx, values)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create employee")
	}
	return employee, nil
}

func (u *EmployeeForm) loadOptions(ctx context.Context, state *model.FormState) {
	departments, err := u.backend.ListDepartments(ctx)
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to load department options", "error", err)
		return
	}
	if !state.ApplyOptions(departments) {
		ctxlog.From(ctx).Debug("Discarded department options for unmounted form")
	}
}

func (u *EmployeeForm) loadRecord(ctx context.Context, state *model.FormState, id types.EmployeeID) {
	employee, err := u.backend.GetEmployee(ctx, id)
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to load employee",
			"error", err,
			"employeeID", id,
		)
		return
	}
	if !state.ApplyRecord(employee) {
		ctxlog.From(ctx).Debug("Discarded employee record for unmounted form",
			"employeeID", id)
	}
}

func (u *EmployeeForm) transition(ctx context.Context, state *model.FormState, next types.FormPhase) {
	if err := state.Transition(next); err != nil {
		ctxlog.From(ctx).Debug("Form phase transition skipped", "error", err)
	}
}

func (u *EmployeeForm) notify(ctx context.Context, kind types.NotificationKind, text string) {
	if u.notifications == nil {
		return
	}

	var err error
	switch kind {
	case types.NotificationError:
		err = u.notifications.Error(ctx, text)
	default:
		err = u.notifications.Info(ctx, text)
	}
	if err != nil {
		ctxlog.From(ctx).Error("Failed to queue notification",
			"error", err,
			"kind", kind,
		)
	}
}

func (u *EmployeeForm) announce(ctx context.Context, mode types.FormMode, employee *model.Employee) {
	if u.slackClient == nil || u.slackChannel == "" || employee == nil {
		return
	}

	client, channel := u.slackClient, u.slackChannel
	async.Dispatch(ctx, func(ctx context.Context) error {
		_, _, err := client.PostMessage(ctx, channel,
			slack.MsgOptionText(slackSvc.EmployeeSavedText(mode, employee), false),
			slack.MsgOptionBlocks(slackSvc.BuildEmployeeSavedBlocks(mode, employee)...),
		)
		if err != nil {
			return goerr.Wrap(err, "failed to announce saved employee",
				goerr.V("channel", channel),
				goerr.V("employeeID", employee.ID))
		}
		return nil
	})
}

var _ interfaces.EmployeeForm = (*EmployeeForm)(nil)
