// internal/summary/extract_test.go
package summary

import (
	"testing"
	"time"
)

func TestRegexExtractor(t *testing.T) {
	ext := RegexExtractor{}

	tests := []struct {
		line      string
		wantTS    string // "" means zero time
		wantLevel string
	}{
		{"2025-10-20 12:00:00 ERROR database timeout", "2025-10-20 12:00:00", "ERROR"},
		{"2025-10-20T12:00:00 INFO started", "2025-10-20 12:00:00", "INFO"},
		{"prefix 2025-10-21 03:15:09 CRITICAL disk full", "2025-10-21 03:15:09", "CRITICAL"},
		{"WARN low memory", "", "WARN"},
		{"2025-10-20 12:00:00 WARNING slow query", "2025-10-20 12:00:00", "WARNING"},
		{"DEBUG verbose output", "", "DEBUG"},
		{"no structure whatsoever", "", UnknownLevel},
		{"INFORMATIONAL is not a level token", "", UnknownLevel},
		{"", "", UnknownLevel},
		{"2025-13-99 99:99:99 ERROR bad date digits", "", "ERROR"},
	}

	for _, tt := range tests {
		p := ext.Extract(tt.line)
		if p.Level != tt.wantLevel {
			t.Errorf("Extract(%q).Level = %q, want %q", tt.line, p.Level, tt.wantLevel)
		}
		if tt.wantTS == "" {
			if !p.Timestamp.IsZero() {
				t.Errorf("Extract(%q).Timestamp = %v, want zero", tt.line, p.Timestamp)
			}
			continue
		}
		want, _ := time.Parse("2006-01-02 15:04:05", tt.wantTS)
		if !p.Timestamp.Equal(want) {
			t.Errorf("Extract(%q).Timestamp = %v, want %v", tt.line, p.Timestamp, want)
		}
	}
}

func TestExtractTrimsMessage(t *testing.T) {
	p := RegexExtractor{}.Extract("   spaced out line \t ")
	if p.Message != "spaced out line" {
		t.Errorf("Message = %q, want surrounding whitespace trimmed", p.Message)
	}
}
