package model

// EmployeeListRoute is where the form navigates after success or cancel
const EmployeeListRoute = "/admin/employees"

// ActionCancel is the posted action value of the non-submitting cancel control
const ActionCancel = "cancel"

// FormInput is the raw posted form. Department carries select option values.
type FormInput struct {
	Name       string   `form:"name"`
	Email      string   `form:"email"`
	Department []string `form:"department"`
	Action     string   `form:"action"`
}

// IsCancel reports whether the post came from the cancel control
func (in FormInput) IsCancel() bool {
	return in.Action == ActionCancel
}

// Navigation is a request to leave the form for another route
type Navigation struct {
	Path string
}

// SubmitResult describes how a submission ended. Exactly one of Navigation
// (success) or a retained, still mounted form (failure) applies.
type SubmitResult struct {
	Saved      *Employee
	Errors     FieldErrors
	Navigation *Navigation
}

// Succeeded reports whether the record was saved
func (r *SubmitResult) Succeeded() bool {
	return r != nil && r.Navigation != nil
}

// Invalid reports whether validation blocked the submission
func (r *SubmitResult) Invalid() bool {
	return r != nil && len(r.Errors) > 0
}
