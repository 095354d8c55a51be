// internal/summary/summarize_test.go
package summary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.log")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSummarizeMissingFile(t *testing.T) {
	_, err := Summarize(filepath.Join(t.TempDir(), "nope.log"), RegexExtractor{}, Options{})
	if err == nil {
		t.Fatal("Summarize on a missing file returned nil error")
	}
	if !strings.Contains(err.Error(), "nope.log") {
		t.Errorf("error %q does not name the missing path", err)
	}
}

func TestSummarizeStream(t *testing.T) {
	path := writeFixture(t, []byte(strings.Join(fixtureLines, "\n")+"\n"))

	agg, err := Summarize(path, RegexExtractor{}, Options{})
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	if agg.TotalLines != len(fixtureLines) {
		t.Errorf("TotalLines = %d, want %d", agg.TotalLines, len(fixtureLines))
	}
	if agg.Path != path {
		t.Errorf("Path = %q, want %q", agg.Path, path)
	}
}

func TestSummarizeDirtyBytes(t *testing.T) {
	// Invalid UTF-8 mid-line must not abort the pass; the line still counts
	// and its level token is still found.
	dirty := append([]byte("2025-10-20 10:00:00 ERROR broken "), 0xff, 0xfe)
	dirty = append(dirty, []byte(" payload bytes here\nplain second line\n")...)
	path := writeFixture(t, dirty)

	agg, err := Summarize(path, RegexExtractor{}, Options{})
	if err != nil {
		t.Fatalf("Summarize error on dirty input: %v", err)
	}
	if agg.TotalLines != 2 {
		t.Errorf("TotalLines = %d, want 2", agg.TotalLines)
	}
	levels := agg.Levels()
	if len(levels) == 0 || levels[0].Level != "ERROR" {
		t.Errorf("Levels() = %v, want ERROR counted first", levels)
	}
}

func TestSummarizeEmptyFile(t *testing.T) {
	path := writeFixture(t, nil)

	agg, err := Summarize(path, RegexExtractor{}, Options{})
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	if agg.TotalLines != 0 {
		t.Errorf("TotalLines = %d, want 0", agg.TotalLines)
	}
	if !agg.FirstSeen.IsZero() {
		t.Error("empty file produced a time span")
	}
}
