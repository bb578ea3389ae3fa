package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roster/pkg/utils/logging"
)

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		input    string
		expected logging.Format
		wantErr  bool
	}{
		{"", logging.FormatAuto, false},
		{"auto", logging.FormatAuto, false},
		{"console", logging.FormatConsole, false},
		{"JSON", logging.FormatJSON, false},
		{"xml", logging.FormatAuto, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := logging.ParseFormat(tc.input)
			if tc.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, got, tc.expected)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	gt.Equal(t, logging.ParseLogLevel("debug"), slog.LevelDebug)
	gt.Equal(t, logging.ParseLogLevel("WARNING"), slog.LevelWarn)
	gt.Equal(t, logging.ParseLogLevel("error"), slog.LevelError)
	gt.Equal(t, logging.ParseLogLevel("unknown"), slog.LevelInfo)
}

func TestNewLoggerAutoWritesJSONToBuffers(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(slog.LevelInfo, &buf)

	logger.Debug("hidden")
	logger.Info("saved", "employee", "42")

	gt.S(t, buf.String()).Contains(`"msg":"saved"`)
	gt.S(t, buf.String()).Contains(`"employee":"42"`)
	gt.False(t, bytes.Contains(buf.Bytes(), []byte("hidden")))
}
