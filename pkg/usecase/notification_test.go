package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/secmon-lab/roster/pkg/domain/types"
	"github.com/secmon-lab/roster/pkg/repository"
	"github.com/secmon-lab/roster/pkg/usecase"
)

func TestNotifications(t *testing.T) {
	t.Run("drain returns queued toasts once", func(t *testing.T) {
		uc := usecase.NewNotifications(repository.NewMemory())
		ctx := model.WithSessionID(context.Background(), types.SessionID("s1"))

		gt.NoError(t, uc.Info(ctx, "first"))
		gt.NoError(t, uc.Error(ctx, "second"))

		got, err := uc.Drain(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(got), 2)
		gt.Equal(t, got[0].Text, "first")
		gt.Equal(t, got[0].Kind, types.NotificationInfo)
		gt.Equal(t, got[1].Kind, types.NotificationError)

		got, err = uc.Drain(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(got), 0)
	})

	t.Run("sessions do not see each other's toasts", func(t *testing.T) {
		uc := usecase.NewNotifications(repository.NewMemory())
		ctxA := model.WithSessionID(context.Background(), types.SessionID("a"))
		ctxB := model.WithSessionID(context.Background(), types.SessionID("b"))

		gt.NoError(t, uc.Info(ctxA, "for a"))

		got, err := uc.Drain(ctxB)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(got), 0)

		got, err = uc.Drain(ctxA)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(got), 1)
	})

	t.Run("no session", func(t *testing.T) {
		uc := usecase.NewNotifications(repository.NewMemory())

		err := uc.Info(context.Background(), "lost")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrSessionNotFound))

		got, err := uc.Drain(context.Background())
		gt.NoError(t, err)
		gt.Equal(t, len(got), 0)
	})
}
