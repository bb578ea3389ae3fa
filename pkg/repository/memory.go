package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/pkg/domain/interfaces"
	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/secmon-lab/roster/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu            sync.Mutex
	notifications map[types.SessionID][]*model.Notification
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		notifications: make(map[types.SessionID][]*model.Notification),
	}
}

// PutNotification saves a notification to memory
func (m *Memory) PutNotification(ctx context.Context, notification *model.Notification) error {
	if notification == nil {
		return goerr.New("notification is nil")
	}
	if notification.ID == "" {
		return goerr.New("notification ID is empty")
	}
	if notification.SessionID == "" {
		return goerr.New("notification session ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Store a copy to prevent external modification
	n := *notification
	m.notifications[n.SessionID] = append(m.notifications[n.SessionID], &n)
	return nil
}

// PopNotifications returns and removes the notifications of a session
func (m *Memory) PopNotifications(ctx context.Context, sessionID types.SessionID) ([]*model.Notification, error) {
	if sessionID == "" {
		return nil, goerr.New("session ID is empty")
	}

	m.mu.Lock()
	stored := m.notifications[sessionID]
	delete(m.notifications, sessionID)
	m.mu.Unlock()

	result := make([]*model.Notification, 0, len(stored))
	for _, n := range stored {
		if n.IsExpired() {
			continue
		}
		result = append(result, n)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// Count returns the number of sessions holding undelivered notifications
func (m *Memory) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.notifications)
}

// Close closes the memory repository (no-op)
func (m *Memory) Close() error {
	return nil
}
