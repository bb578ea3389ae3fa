package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roster/pkg/cli/config"
)

func TestLoggerConfigure(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := config.Logger{Level: "debug", Format: "json", Output: "stderr"}
		logger, err := cfg.Configure()
		gt.NoError(t, err).Required()
		gt.NotNil(t, logger)
	})

	t.Run("invalid format", func(t *testing.T) {
		cfg := config.Logger{Format: "xml"}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})

	t.Run("invalid output", func(t *testing.T) {
		cfg := config.Logger{Output: "syslog"}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})
}
