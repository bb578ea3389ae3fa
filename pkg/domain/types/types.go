package types

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
)

// CreateRouteToken is the route identifier that selects create mode
const CreateRouteToken = "create"

// RouteID is the raw identifier segment of the employee form route.
// It is either CreateRouteToken or the key of an existing employee.
type RouteID string

// String returns the string representation
func (id RouteID) String() string {
	return string(id)
}

// IsCreate reports whether the identifier is exactly the create token.
// The comparison is case-sensitive: "Create" is treated as a record key.
func (id RouteID) IsCreate() bool {
	return string(id) == CreateRouteToken
}

// Mode returns the form mode selected by the identifier
func (id RouteID) Mode() FormMode {
	if id.IsCreate() {
		return FormModeCreate
	}
	return FormModeEdit
}

// EmployeeID returns the identifier as an employee key
func (id RouteID) EmployeeID() EmployeeID {
	return EmployeeID(id)
}

// EmployeeID represents an employee identifier owned by the backend
type EmployeeID string

// String returns the string representation
func (id EmployeeID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both JSON strings and JSON numbers, since backends
// commonly key employees by integer
func (id *EmployeeID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = EmployeeID(s)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = EmployeeID(n.String())
	return nil
}

// DepartmentID represents a department identifier owned by the backend
type DepartmentID int

// String returns the string representation
func (id DepartmentID) String() string {
	return strconv.Itoa(int(id))
}

// Int returns the int representation
func (id DepartmentID) Int() int {
	return int(id)
}

// ParseDepartmentID parses the decimal form produced by String
func ParseDepartmentID(s string) (DepartmentID, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return DepartmentID(n), true
}

// SessionID identifies a browser session that receives notifications
type SessionID string

// String returns the string representation
func (id SessionID) String() string {
	return string(id)
}

// NewSessionID creates a new SessionID using UUID v7
func NewSessionID() (SessionID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return SessionID(id.String()), nil
}

// NotificationID represents a notification identifier
type NotificationID string

// String returns the string representation
func (id NotificationID) String() string {
	return string(id)
}

// NewNotificationID creates a new NotificationID using UUID v7
func NewNotificationID() NotificationID {
	id, err := uuid.NewV7()
	if err != nil {
		return NotificationID(uuid.New().String())
	}
	return NotificationID(id.String())
}
