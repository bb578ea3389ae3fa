package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roster/pkg/cli/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "messages.yaml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestMessagesConfigure(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		var cfg config.Messages
		msgs, err := cfg.Configure()
		gt.NoError(t, err).Required()
		gt.Equal(t, msgs.Title, "INFORME OS DADOS")
	})

	t.Run("override is merged over defaults", func(t *testing.T) {
		path := writeFile(t, "title: ENTER DETAILS\nsave_failed: Could not save\n")
		cfg := config.Messages{Path: path}

		msgs, err := cfg.Configure()
		gt.NoError(t, err).Required()
		gt.Equal(t, msgs.Title, "ENTER DETAILS")
		gt.Equal(t, msgs.SaveFailed, "Could not save")
		gt.Equal(t, msgs.InvalidEmail, "Email inválido")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadMessagesFromFile(filepath.Join(t.TempDir(), "none.yaml"))
		gt.Error(t, err)
	})

	t.Run("broken yaml", func(t *testing.T) {
		_, err := config.LoadMessagesFromFile(writeFile(t, "title: [unclosed"))
		gt.Error(t, err)
	})
}
