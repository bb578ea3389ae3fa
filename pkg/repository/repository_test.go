package repository_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roster/pkg/domain/interfaces"
	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/secmon-lab/roster/pkg/domain/types"
	"github.com/secmon-lab/roster/pkg/repository"
)

func newSessionID(t *testing.T) types.SessionID {
	id, err := types.NewSessionID()
	gt.NoError(t, err).Required()
	return id
}

func testRepository(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Run("PutAndPopNotifications", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		sessionID := newSessionID(t)

		first, err := model.NewNotification(sessionID, types.NotificationInfo, "Cadastrado com sucesso")
		gt.NoError(t, err).Required()
		second, err := model.NewNotification(sessionID, types.NotificationError, "Erro ao cadastrar funcionário")
		gt.NoError(t, err).Required()
		second.CreatedAt = first.CreatedAt.Add(time.Millisecond)

		gt.NoError(t, repo.PutNotification(ctx, second))
		gt.NoError(t, repo.PutNotification(ctx, first))

		popped, err := repo.PopNotifications(ctx, sessionID)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(popped), 2)
		gt.Equal(t, popped[0].ID, first.ID)
		gt.Equal(t, popped[0].Kind, types.NotificationInfo)
		gt.Equal(t, popped[1].Text, "Erro ao cadastrar funcionário")
	})

	t.Run("PopIsDeliveredOnce", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		sessionID := newSessionID(t)

		n, err := model.NewNotification(sessionID, types.NotificationInfo, "hello")
		gt.NoError(t, err).Required()
		gt.NoError(t, repo.PutNotification(ctx, n))

		popped, err := repo.PopNotifications(ctx, sessionID)
		gt.NoError(t, err)
		gt.Equal(t, len(popped), 1)

		popped, err = repo.PopNotifications(ctx, sessionID)
		gt.NoError(t, err)
		gt.Equal(t, len(popped), 0)
	})

	t.Run("SessionsAreIsolated", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		mine := newSessionID(t)
		other := newSessionID(t)

		n, err := model.NewNotification(other, types.NotificationInfo, "not for me")
		gt.NoError(t, err).Required()
		gt.NoError(t, repo.PutNotification(ctx, n))

		popped, err := repo.PopNotifications(ctx, mine)
		gt.NoError(t, err)
		gt.Equal(t, len(popped), 0)

		popped, err = repo.PopNotifications(ctx, other)
		gt.NoError(t, err)
		gt.Equal(t, len(popped), 1)
	})

	t.Run("ExpiredNotificationsAreDropped", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		sessionID := newSessionID(t)

		n, err := model.NewNotification(sessionID, types.NotificationInfo, "stale")
		gt.NoError(t, err).Required()
		n.ExpiresAt = time.Now().Add(-time.Minute)
		gt.NoError(t, repo.PutNotification(ctx, n))

		popped, err := repo.PopNotifications(ctx, sessionID)
		gt.NoError(t, err)
		gt.Equal(t, len(popped), 0)
	})

	t.Run("InvalidInput", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		gt.Error(t, repo.PutNotification(ctx, nil))
		gt.Error(t, repo.PutNotification(ctx, &model.Notification{ID: "n1"}))

		_, err := repo.PopNotifications(ctx, "")
		gt.Error(t, err)
	})
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) interfaces.Repository {
		return repository.NewMemory()
	})
}

func TestFirestoreRepository(t *testing.T) {
	// Skip test if Firestore test environment variables are not set
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE")

	if projectID == "" || databaseID == "" {
		t.Skip("Skipping Firestore test: TEST_FIRESTORE_PROJECT and TEST_FIRESTORE_DATABASE must be set")
	}

	testRepository(t, func(t *testing.T) interfaces.Repository {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		ctx = ctxlog.With(ctx, logger)

		repo, err := repository.NewFirestore(ctx, projectID, databaseID)
		gt.NoError(t, err)
		return repo
	})
}
