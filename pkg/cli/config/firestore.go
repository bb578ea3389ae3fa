package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/pkg/domain/interfaces"
	"github.com/secmon-lab/roster/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Firestore holds the notification store configuration
type Firestore struct {
	ProjectID  string
	DatabaseID string
}

// Flags returns CLI flags for Firestore configuration
func (f *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID of the Firestore notification store",
			Category:    "Firestore",
			Sources:     cli.EnvVars("ROSTER_FIRESTORE_PROJECT"),
			Destination: &f.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Value:       "(default)",
			Sources:     cli.EnvVars("ROSTER_FIRESTORE_DATABASE"),
			Destination: &f.DatabaseID,
		},
	}
}

// Configure returns the Firestore notification store, or an in-memory one
// when no project is set. Only the in-memory store is safe for a single
// replica.
func (f *Firestore) Configure(ctx context.Context) (interfaces.Repository, error) {
	if f.ProjectID == "" {
		ctxlog.From(ctx).Warn("Firestore not configured, notifications are kept in memory and are not shared across replicas")
		return repository.NewMemory(), nil
	}

	repo, err := repository.NewFirestore(ctx, f.ProjectID, f.DatabaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to init firestore",
			goerr.V("project", f.ProjectID),
			goerr.V("database", f.DatabaseID),
		)
	}
	return repo, nil
}

// LogValue returns structured log value
func (f Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project", f.ProjectID),
		slog.String("database", f.DatabaseID),
	)
}
