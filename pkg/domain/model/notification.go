package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/pkg/domain/types"
)

// NotificationTTL bounds how long an undelivered notification is kept
const NotificationTTL = 5 * time.Minute

// Notification is a transient toast shown once to a browser session
type Notification struct {
	ID        types.NotificationID   `json:"id" firestore:"id"`
	SessionID types.SessionID        `json:"session_id" firestore:"session_id"`
	Kind      types.NotificationKind `json:"kind" firestore:"kind"`
	Text      string                 `json:"text" firestore:"text"`
	CreatedAt time.Time              `json:"created_at" firestore:"created_at"`
	ExpiresAt time.Time              `json:"expires_at" firestore:"expires_at"`
}

// NewNotification creates a notification addressed to sessionID
func NewNotification(sessionID types.SessionID, kind types.NotificationKind, text string) (*Notification, error) {
	if sessionID == "" {
		return nil, goerr.New("session ID is empty")
	}
	if !kind.IsValid() {
		return nil, goerr.New("invalid notification kind", goerr.V("kind", kind))
	}

	now := time.Now()
	return &Notification{
		ID:        types.NewNotificationID(),
		SessionID: sessionID,
		Kind:      kind,
		Text:      text,
		CreatedAt: now,
		ExpiresAt: now.Add(NotificationTTL),
	}, nil
}

// IsExpired checks if the notification should no longer be shown
func (n *Notification) IsExpired() bool {
	return time.Now().After(n.ExpiresAt)
}
