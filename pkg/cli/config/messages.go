package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Messages holds the location of an optional copy override file
type Messages struct {
	Path string
}

// Flags returns CLI flags for Messages configuration
func (m *Messages) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "messages",
			Usage:       "YAML file overriding form labels and messages",
			Category:    "Messages",
			Sources:     cli.EnvVars("ROSTER_MESSAGES"),
			Destination: &m.Path,
		},
	}
}

// Configure returns the default catalog merged with the override file, if any
func (m *Messages) Configure() (*model.Messages, error) {
	if m.Path == "" {
		return model.DefaultMessages(), nil
	}
	return LoadMessagesFromFile(m.Path)
}

// LoadMessagesFromFile loads an override catalog and merges it over the defaults
func LoadMessagesFromFile(path string) (*model.Messages, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "messages file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read messages file",
			goerr.V("path", path))
	}

	var override model.Messages
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML messages",
			goerr.V("path", path))
	}

	messages := model.DefaultMessages().Merge(&override)
	if err := messages.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid messages",
			goerr.V("path", path))
	}
	return messages, nil
}

// LogValue returns structured log value
func (m Messages) LogValue() slog.Value {
	return slog.GroupValue(slog.String("path", m.Path))
}
