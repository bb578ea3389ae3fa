package types_test

import (
	"encoding/json"
	"testing"

	"github.com/secmon-lab/roster/pkg/domain/types"
)

func TestRouteIDMode(t *testing.T) {
	tests := []struct {
		name     string
		id       types.RouteID
		expected types.FormMode
	}{
		{"create token", types.RouteID("create"), types.FormModeCreate},
		{"numeric id", types.RouteID("42"), types.FormModeEdit},
		{"uppercase token is a record key", types.RouteID("Create"), types.FormModeEdit},
		{"padded token is a record key", types.RouteID(" create"), types.FormModeEdit},
		{"string id", types.RouteID("emp-7"), types.FormModeEdit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.Mode(); got != tt.expected {
				t.Errorf("RouteID(%q).Mode() = %v, want %v", tt.id, got, tt.expected)
			}
		})
	}
}

func TestFormPhaseTransitions(t *testing.T) {
	tests := []struct {
		from     types.FormPhase
		to       types.FormPhase
		expected bool
	}{
		{types.FormPhaseLoadingOptions, types.FormPhaseIdle, true},
		{types.FormPhaseLoadingOptions, types.FormPhaseLoadingRecord, true},
		{types.FormPhaseLoadingRecord, types.FormPhaseIdle, true},
		{types.FormPhaseIdle, types.FormPhaseValidating, true},
		{types.FormPhaseValidating, types.FormPhaseIdle, true},
		{types.FormPhaseValidating, types.FormPhaseSubmitting, true},
		{types.FormPhaseSubmitting, types.FormPhaseIdle, true},
		{types.FormPhaseSubmitting, types.FormPhaseUnmounted, true},
		{types.FormPhaseIdle, types.FormPhaseSubmitting, false},
		{types.FormPhaseLoadingRecord, types.FormPhaseSubmitting, false},
		{types.FormPhaseUnmounted, types.FormPhaseIdle, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.expected {
				t.Errorf("%s.CanTransitionTo(%s) = %v, want %v", tt.from, tt.to, got, tt.expected)
			}
		})
	}
}

func TestParseDepartmentID(t *testing.T) {
	id, ok := types.ParseDepartmentID("12")
	if !ok || id != types.DepartmentID(12) {
		t.Errorf("ParseDepartmentID(\"12\") = %v, %v", id, ok)
	}
	if id.String() != "12" {
		t.Errorf("DepartmentID.String() = %q, want \"12\"", id.String())
	}

	if _, ok := types.ParseDepartmentID("x"); ok {
		t.Error("ParseDepartmentID(\"x\") should fail")
	}
}

func TestEmployeeIDUnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected types.EmployeeID
	}{
		{`42`, "42"},
		{`"42"`, "42"},
		{`"emp-7"`, "emp-7"},
		{`null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var id types.EmployeeID
			if err := json.Unmarshal([]byte(tt.input), &id); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if id != tt.expected {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.input, id, tt.expected)
			}
		})
	}

	var id types.EmployeeID
	if err := json.Unmarshal([]byte(`{}`), &id); err == nil {
		t.Error("Unmarshal({}) should fail")
	}
}
