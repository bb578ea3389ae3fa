package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/pkg/domain/interfaces"
	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/secmon-lab/roster/pkg/domain/types"
)

// Notifications queues toasts for the session carried by the context
type Notifications struct {
	repo interfaces.Repository
}

// NewNotifications creates a new Notifications use case
func NewNotifications(repo interfaces.Repository) *Notifications {
	return &Notifications{repo: repo}
}

func (u *Notifications) Info(ctx context.Context, text string) error {
	return u.push(ctx, types.NotificationInfo, text)
}

func (u *Notifications) Error(ctx context.Context, text string) error {
	return u.push(ctx, types.NotificationError, text)
}

// Drain returns the pending notifications of the session and forgets them.
// A context without a session has nothing to drain.
func (u *Notifications) Drain(ctx context.Context) ([]*model.Notification, error) {
	sessionID, ok := model.GetSessionID(ctx)
	if !ok {
		return nil, nil
	}

	notifications, err := u.repo.PopNotifications(ctx, sessionID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to pop notifications",
			goerr.V("sessionID", sessionID))
	}
	return notifications, nil
}

func (u *Notifications) push(ctx context.Context, kind types.NotificationKind, text string) error {
	sessionID, ok := model.GetSessionID(ctx)
	if !ok {
		return goerr.Wrap(model.ErrSessionNotFound, "cannot queue notification",
			goerr.V("kind", kind))
	}

	notification, err := model.NewNotification(sessionID, kind, text)
	if err != nil {
		return goerr.Wrap(err, "failed to create notification")
	}

	if err := u.repo.PutNotification(ctx, notification); err != nil {
		return goerr.Wrap(err, "failed to store notification",
			goerr.V("sessionID", sessionID),
			goerr.V("kind", kind))
	}
	return nil
}

var _ interfaces.Notifications = (*Notifications)(nil)
