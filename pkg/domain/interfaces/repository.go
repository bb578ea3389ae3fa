package interfaces

import (
	"context"

	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/secmon-lab/roster/pkg/domain/types"
)

// Repository defines the interface for notification persistence. Employees
// and departments are owned by the backend and never stored here.
type Repository interface {
	// PutNotification stores a notification for later delivery
	PutNotification(ctx context.Context, notification *model.Notification) error

	// PopNotifications returns the unexpired notifications of a session in
	// creation order and removes every notification of that session
	PopNotifications(ctx context.Context, sessionID types.SessionID) ([]*model.Notification, error)

	// Close closes the repository connection
	Close() error
}
