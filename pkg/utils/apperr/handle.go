package apperr

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/roster/pkg/domain/model"
)

// Handle logs an error that cannot be returned to a caller. Backend
// failures are expected operational conditions and log at WARN.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if errors.Is(err, model.ErrBackendNetwork) || errors.Is(err, model.ErrBackendServer) {
		logger.Warn("backend error", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}
