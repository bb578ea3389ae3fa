package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/roster/pkg/domain/model"
)

// Dispatch runs handler in a new goroutine on a context detached from the
// request, so the response can be written before the handler finishes.
// Panics and returned errors are logged, never propagated.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(newCtx).Error("Panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("Error in async handler",
				"error", err,
			)
		}
	}()
}

// newBackgroundContext carries the logger and session over to a context
// that outlives the request
func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()

	if logger := ctxlog.From(ctx); logger != nil {
		newCtx = ctxlog.With(newCtx, logger)
	}
	if sessionID, ok := model.GetSessionID(ctx); ok {
		newCtx = model.WithSessionID(newCtx, sessionID)
	}

	return newCtx
}
