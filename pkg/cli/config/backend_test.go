package config_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roster/pkg/cli/config"
)

func TestBackendConfigure(t *testing.T) {
	t.Run("url is required", func(t *testing.T) {
		var cfg config.Backend
		_, err := cfg.Configure()
		gt.Error(t, err)
	})

	t.Run("negative timeout", func(t *testing.T) {
		cfg := config.Backend{URL: "http://localhost:3000", Timeout: -time.Second}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})

	t.Run("valid", func(t *testing.T) {
		cfg := config.Backend{URL: "http://localhost:3000", Token: "t", Timeout: 30 * time.Second}
		client, err := cfg.Configure()
		gt.NoError(t, err).Required()
		gt.NotNil(t, client)
	})
}
