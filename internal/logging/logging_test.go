// internal/logging/logging_test.go
package logging

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewWithFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logforge.log")
	log := New("debug", path)
	log.Infow("test entry", "k", "v")
	if err := log.Sync(); err != nil {
		// Sync on stderr can fail on some platforms; the file sink is what
		// matters here and lumberjack has no sync error to surface.
		t.Logf("Sync: %v", err)
	}
}
