package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/pkg/service/backend"
	"github.com/urfave/cli/v3"
)

// Backend holds the REST backend configuration
type Backend struct {
	URL     string
	Token   string
	Timeout time.Duration
}

// Flags returns CLI flags for Backend configuration
func (b *Backend) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "backend-url",
			Usage:       "Base URL of the employee REST backend",
			Category:    "Backend",
			Sources:     cli.EnvVars("ROSTER_BACKEND_URL"),
			Destination: &b.URL,
		},
		&cli.StringFlag{
			Name:        "backend-token",
			Usage:       "Bearer token forwarded on every backend call",
			Category:    "Backend",
			Sources:     cli.EnvVars("ROSTER_BACKEND_TOKEN"),
			Destination: &b.Token,
		},
		&cli.DurationFlag{
			Name:        "backend-timeout",
			Usage:       "Timeout of one backend call (0 disables)",
			Category:    "Backend",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("ROSTER_BACKEND_TIMEOUT"),
			Destination: &b.Timeout,
		},
	}
}

// Configure creates the backend client
func (b *Backend) Configure() (*backend.Client, error) {
	if b.URL == "" {
		return nil, goerr.New("backend URL is required. Please provide ROSTER_BACKEND_URL")
	}
	if b.Timeout < 0 {
		return nil, goerr.New("backend timeout must not be negative", goerr.V("timeout", b.Timeout))
	}

	opts := []backend.Option{backend.WithTimeout(b.Timeout)}
	if b.Token != "" {
		opts = append(opts, backend.WithBearerToken(b.Token))
	}

	client, err := backend.New(b.URL, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create backend client", goerr.V("url", b.URL))
	}
	return client, nil
}

// LogValue returns structured log value
func (b Backend) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", b.URL),
		slog.Bool("has_token", b.Token != ""),
		slog.Duration("timeout", b.Timeout),
	)
}
