package model

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/pkg/domain/types"
)

// FormState is the state container of one mounted employee form. It is owned
// by a single form lifetime and never shared across mounts.
type FormState struct {
	mu      sync.Mutex
	routeID types.RouteID
	phase   types.FormPhase
	mounted bool
	cancel  context.CancelFunc

	values  EmployeeValues
	errors  FieldErrors
	options []Department
	selects SelectConfig
}

// NewFormState creates a mounted form state in the options-loading phase
func NewFormState(routeID types.RouteID) *FormState {
	return &FormState{
		routeID: routeID,
		phase:   types.FormPhaseLoadingOptions,
		mounted: true,
		selects: DefaultSelectConfig(),
	}
}

// Bind derives a context that is cancelled when the form unmounts
func (s *FormState) Bind(ctx context.Context) context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	if !s.mounted {
		cancel()
		return ctx
	}
	prev := s.cancel
	s.cancel = func() {
		if prev != nil {
			prev()
		}
		cancel()
	}
	return ctx
}

func (s *FormState) RouteID() types.RouteID { return s.routeID }

func (s *FormState) Mode() types.FormMode { return s.routeID.Mode() }

// EmployeeID returns the record key in edit mode
func (s *FormState) EmployeeID() (types.EmployeeID, bool) {
	if s.routeID.IsCreate() {
		return "", false
	}
	return s.routeID.EmployeeID(), true
}

func (s *FormState) Phase() types.FormPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *FormState) IsMounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted
}

// Transition moves the form to next, rejecting edges the lifecycle forbids
func (s *FormState) Transition(next types.FormPhase) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mounted {
		return goerr.Wrap(ErrFormUnmounted, "cannot transition unmounted form",
			goerr.V("next", next))
	}
	if !s.phase.CanTransitionTo(next) {
		return goerr.Wrap(ErrInvalidTransition, "form phase transition rejected",
			goerr.V("from", s.phase),
			goerr.V("to", next))
	}
	s.phase = next
	if next == types.FormPhaseUnmounted {
		s.unmountLocked()
	}
	return nil
}

// Unmount disposes the form. Loader results arriving afterwards are dropped.
func (s *FormState) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = types.FormPhaseUnmounted
	s.unmountLocked()
}

func (s *FormState) unmountLocked() {
	s.mounted = false
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// ApplyOptions stores the department option set. It returns false when the
// form is no longer mounted and the options were discarded.
func (s *FormState) ApplyOptions(options []Department) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.mounted {
		return false
	}
	s.options = append([]Department(nil), options...)
	return true
}

// ApplyRecord overwrites name, email and department with a loaded record.
// It returns false when the form is no longer mounted.
func (s *FormState) ApplyRecord(employee *Employee) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.mounted || employee == nil {
		return false
	}
	s.values = employee.Values()
	return true
}

// SetValues replaces the field values with user input
func (s *FormState) SetValues(values EmployeeValues) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = values
}

// SetErrors replaces the per-field validation errors
func (s *FormState) SetErrors(errs FieldErrors) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = errs
}

func (s *FormState) Values() EmployeeValues {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values
	v.Department = append([]Department(nil), s.values.Department...)
	return v
}

func (s *FormState) Errors() FieldErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(FieldErrors, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

func (s *FormState) Options() []Department {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Department(nil), s.options...)
}

func (s *FormState) SelectConfig() SelectConfig {
	return s.selects
}

// ResolveDepartments maps posted select values to departments of the option set
func (s *FormState) ResolveDepartments(values []string) []Department {
	return s.selects.Resolve(s.Options(), values)
}

// SelectOption is one entry of the rendered department multi-select
type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

// SelectOptions returns the option set in order followed by any selected
// department the option set does not contain, so a loaded record keeps its
// selection visible even if the option fetch failed.
func (s *FormState) SelectOptions() []SelectOption {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]SelectOption, 0, len(s.options)+len(s.values.Department))
	listed := make(map[types.DepartmentID]bool, len(s.options))
	for _, opt := range s.options {
		listed[opt.ID] = true
		result = append(result, SelectOption{
			Value:    s.selects.Value(opt),
			Label:    s.selects.Label(opt),
			Selected: s.values.HasDepartment(opt.ID),
		})
	}
	for _, dept := range s.values.Department {
		if listed[dept.ID] {
			continue
		}
		listed[dept.ID] = true
		result = append(result, SelectOption{
			Value:    s.selects.Value(dept),
			Label:    s.selects.Label(dept),
			Selected: true,
		})
	}
	return result
}
