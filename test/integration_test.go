// test/integration_test.go
package test

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/emberfall/logforge/internal/gen"
	"github.com/emberfall/logforge/internal/history"
	"github.com/emberfall/logforge/internal/summary"
)

// TestIntegrationGenerateSummarize runs the full pipeline: synthesize a log
// file, stream it through the summarizer, render the report.
func TestIntegrationGenerateSummarize(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "fw.log")
	start := time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)

	g := gen.New(gen.DefaultModel(), rand.New(rand.NewSource(42)))
	if err := g.GenerateFile(logPath, 1000, start); err != nil {
		t.Fatalf("GenerateFile: %v", err)
	}

	agg, err := summary.Summarize(logPath, summary.RegexExtractor{}, summary.Options{})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if agg.TotalLines != 1000 {
		t.Errorf("TotalLines = %d, want 1000", agg.TotalLines)
	}

	// Severity tokens in the generated lines land in the level table; NOTICE
	// is not in the summarizer vocabulary and falls under UNKNOWN.
	total := 0
	for _, lc := range agg.Levels() {
		total += lc.Count
		switch lc.Level {
		case "INFO", "WARNING", "ERROR", "CRITICAL", summary.UnknownLevel:
		default:
			t.Errorf("unexpected level %q in generated output", lc.Level)
		}
	}
	if total != 1000 {
		t.Errorf("level counts sum to %d, want 1000", total)
	}

	// Generated lines carry syslog-style timestamps, not ISO ones.
	if !agg.FirstSeen.IsZero() {
		t.Errorf("syslog-format input produced a time span: %v", agg.FirstSeen)
	}

	report := summary.Render(agg, 5)
	if !strings.Contains(report, "Time span: N/A") {
		t.Errorf("report missing N/A span:\n%s", report)
	}
	if report != summary.Render(agg, 5) {
		t.Error("report rendering is not idempotent")
	}
}

// TestIntegrationDeterministicFiles checks the cross-invocation determinism
// contract at the file level.
func TestIntegrationDeterministicFiles(t *testing.T) {
	dir := t.TempDir()
	start := time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)

	paths := []string{filepath.Join(dir, "a.log"), filepath.Join(dir, "b.log")}
	for _, p := range paths {
		g := gen.New(gen.DefaultModel(), rand.New(rand.NewSource(42)))
		if err := g.GenerateFile(p, 100, start); err != nil {
			t.Fatalf("GenerateFile(%s): %v", p, err)
		}
	}

	a, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(paths[1])
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("seed 42 produced different files across invocations")
	}
}

// TestIntegrationRunIndex records both pipeline stages in the history index.
func TestIntegrationRunIndex(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "fw.log")

	g := gen.New(gen.DefaultModel(), rand.New(rand.NewSource(7)))
	if err := g.GenerateFile(logPath, 50, time.Now()); err != nil {
		t.Fatalf("GenerateFile: %v", err)
	}
	agg, err := summary.Summarize(logPath, summary.RegexExtractor{}, summary.Options{})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	db, err := history.Open(filepath.Join(dir, "runs.db"))
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	defer db.Close()

	if err := db.Insert(&history.Run{Kind: "generate", Path: logPath, Lines: 50, Detail: "seed=7"}); err != nil {
		t.Fatalf("Insert generate run: %v", err)
	}
	if err := db.Insert(&history.Run{Kind: "summarize", Path: logPath, Lines: int64(agg.TotalLines)}); err != nil {
		t.Fatalf("Insert summarize run: %v", err)
	}

	counts, err := db.CountsByKind()
	if err != nil {
		t.Fatalf("CountsByKind: %v", err)
	}
	if counts["generate"] != 1 || counts["summarize"] != 1 {
		t.Errorf("counts = %v, want one of each kind", counts)
	}
}
