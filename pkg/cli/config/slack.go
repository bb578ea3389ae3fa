package config

import (
	"log/slog"

	slackSvc "github.com/secmon-lab/roster/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration for saved-employee announcements
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for API access",
			Category:    "Slack",
			Sources:     cli.EnvVars("ROSTER_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID that receives saved-employee announcements",
			Category:    "Slack",
			Sources:     cli.EnvVars("ROSTER_SLACK_CHANNEL"),
			Destination: &s.ChannelID,
		},
	}
}

// ConfigureOptional creates a Slack service if configured, returns nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger) *slackSvc.Service {
	if !s.IsConfigured() {
		logger.Info("Slack not configured - saved employees will not be announced")
		return nil
	}

	logger.Info("Configuring Slack announcements", slog.String("channel", s.ChannelID))
	return slackSvc.New(s.OAuthToken)
}

// IsConfigured checks if both the token and the channel are set
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.ChannelID),
	)
}
