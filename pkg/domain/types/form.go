package types

// FormMode distinguishes creating a new employee from editing an existing one
type FormMode string

const (
	FormModeCreate FormMode = "create"
	FormModeEdit   FormMode = "edit"
)

// String returns the string representation
func (m FormMode) String() string {
	return string(m)
}

// FormPhase is a lifecycle phase of a mounted employee form
type FormPhase string

const (
	FormPhaseLoadingOptions FormPhase = "loading_options"
	FormPhaseLoadingRecord  FormPhase = "loading_record"
	FormPhaseIdle           FormPhase = "idle"
	FormPhaseValidating     FormPhase = "validating"
	FormPhaseSubmitting     FormPhase = "submitting"
	FormPhaseUnmounted      FormPhase = "unmounted"
)

// String returns the string representation
func (p FormPhase) String() string {
	return string(p)
}

// formPhaseEdges lists the allowed transitions between phases
var formPhaseEdges = map[FormPhase][]FormPhase{
	FormPhaseLoadingOptions: {FormPhaseIdle, FormPhaseLoadingRecord, FormPhaseUnmounted},
	FormPhaseLoadingRecord:  {FormPhaseIdle, FormPhaseUnmounted},
	FormPhaseIdle:           {FormPhaseValidating, FormPhaseUnmounted},
	FormPhaseValidating:     {FormPhaseIdle, FormPhaseSubmitting, FormPhaseUnmounted},
	FormPhaseSubmitting:     {FormPhaseIdle, FormPhaseUnmounted},
}

// CanTransitionTo reports whether the phase may move to next
func (p FormPhase) CanTransitionTo(next FormPhase) bool {
	for _, to := range formPhaseEdges[p] {
		if to == next {
			return true
		}
	}
	return false
}

// NotificationKind is the severity of a transient notification
type NotificationKind string

const (
	NotificationInfo  NotificationKind = "info"
	NotificationError NotificationKind = "error"
)

// String returns the string representation
func (k NotificationKind) String() string {
	return string(k)
}

// IsValid checks if the kind is a known value
func (k NotificationKind) IsValid() bool {
	return k == NotificationInfo || k == NotificationError
}
