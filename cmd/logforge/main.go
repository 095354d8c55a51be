// cmd/logforge/main.go
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emberfall/logforge/internal/config"
	"github.com/emberfall/logforge/internal/gen"
	"github.com/emberfall/logforge/internal/history"
	"github.com/emberfall/logforge/internal/logging"
	"github.com/emberfall/logforge/internal/summary"
)

const timeFlagFormat = "2006-01-02 15:04:05"

var (
	cfgPath string

	genCount      int
	genOut        string
	genSeed       int64
	genStart      string
	genHost       string
	genBurstiness float64

	sumKeyword string
	sumStart   string
	sumEnd     string
	sumOutput  string

	histLimit int
)

var rootCmd = &cobra.Command{
	Use:           "logforge",
	Short:         "Synthetic firewall log generation and streaming log summarization",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write synthetic firewall syslog lines",
	RunE:  runGenerate,
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize LOGFILE",
	Short: "Summarize a log file in one streaming pass",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummarize,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded generate/summarize runs",
	RunE:  runHistory,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "logforge.yaml", "config file path")

	generateCmd.Flags().IntVar(&genCount, "count", 500, "number of log lines to generate")
	generateCmd.Flags().StringVar(&genOut, "out", "./firewall_sample.log", "output file path")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed for reproducible output")
	generateCmd.Flags().StringVar(&genStart, "start", "", "start timestamp (YYYY-MM-DD HH:MM:SS), default now")
	generateCmd.Flags().StringVar(&genHost, "host", "", "hostname stamped on every line")
	generateCmd.Flags().Float64Var(&genBurstiness, "burstiness", 0.2, "burstiness factor 0.0-1.0 (reserved, no effect on timing yet)")

	summarizeCmd.Flags().StringVar(&sumKeyword, "keyword", "", "only count error signatures whose line contains this substring")
	summarizeCmd.Flags().StringVar(&sumStart, "start", "", "exclude error signatures dated before this time (YYYY-MM-DD HH:MM:SS)")
	summarizeCmd.Flags().StringVar(&sumEnd, "end", "", "exclude error signatures dated after this time (YYYY-MM-DD HH:MM:SS)")
	summarizeCmd.Flags().StringVar(&sumOutput, "output", "", "write the summary to this path instead of stdout")

	historyCmd.Flags().IntVar(&histLimit, "limit", 20, "maximum runs to list")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(historyCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	log := logging.New(cfg.Log.Level, cfg.Log.Path)
	defer log.Sync()

	model := gen.DefaultModel()
	model.Host = cfg.Generator.Host
	model.SourcePrivateBias = cfg.Generator.SourcePrivateBias
	model.DestPrivateBias = cfg.Generator.DestPrivateBias
	model.Burstiness = cfg.Generator.Burstiness
	if cmd.Flags().Changed("host") {
		model.Host = genHost
	}
	if cmd.Flags().Changed("burstiness") {
		model.Burstiness = genBurstiness
	}

	seed := genSeed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	if genStart != "" {
		start, err = time.Parse(timeFlagFormat, strings.Replace(genStart, "T", " ", 1))
		if err != nil {
			return fmt.Errorf("parse --start: %w", err)
		}
	}

	g := gen.New(model, rand.New(rand.NewSource(seed)))
	began := time.Now()
	if err := g.GenerateFile(genOut, genCount, start); err != nil {
		log.Errorw("generate failed", "path", genOut, "error", err)
		return err
	}
	elapsed := time.Since(began)
	log.Infow("generate complete", "path", genOut, "lines", genCount, "seed", seed, "elapsed", elapsed)

	recordRun(log, cfg, &history.Run{
		Kind:       "generate",
		Path:       genOut,
		Lines:      int64(genCount),
		DurationMs: elapsed.Milliseconds(),
		Detail:     fmt.Sprintf("seed=%d", seed),
	})

	// Skip the status line when output is piped; the log line above already
	// carries the same information.
	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Printf("Wrote %s log lines to: %s\n", humanize.Comma(int64(genCount)), genOut)
	}
	return nil
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	log := logging.New(cfg.Log.Level, cfg.Log.Path)
	defer log.Sync()

	opts := summary.Options{Keyword: sumKeyword}
	if sumStart != "" {
		opts.Start, err = time.Parse(timeFlagFormat, strings.Replace(sumStart, "T", " ", 1))
		if err != nil {
			return fmt.Errorf("parse --start: %w", err)
		}
	}
	if sumEnd != "" {
		opts.End, err = time.Parse(timeFlagFormat, strings.Replace(sumEnd, "T", " ", 1))
		if err != nil {
			return fmt.Errorf("parse --end: %w", err)
		}
	}

	began := time.Now()
	agg, err := summary.Summarize(args[0], summary.RegexExtractor{}, opts)
	if err != nil {
		log.Errorw("summarize failed", "path", args[0], "error", err)
		return err
	}
	elapsed := time.Since(began)
	log.Infow("summarize complete", "path", args[0], "lines", agg.TotalLines, "elapsed", elapsed)

	report := summary.Render(agg, cfg.Summarizer.TopErrors)
	if sumOutput != "" {
		if err := os.WriteFile(sumOutput, []byte(report), 0644); err != nil {
			return fmt.Errorf("write summary %s: %w", sumOutput, err)
		}
		fmt.Printf("Summary written to %s\n", sumOutput)
	} else {
		fmt.Print(report)
	}

	detail := ""
	if sumKeyword != "" || sumStart != "" || sumEnd != "" {
		detail = "filtered"
	}
	recordRun(log, cfg, &history.Run{
		Kind:       "summarize",
		Path:       args[0],
		Lines:      int64(agg.TotalLines),
		DurationMs: elapsed.Milliseconds(),
		Detail:     detail,
	})
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if cfg.HistoryDB == "" {
		fmt.Println("history index not configured (set history_db or LOGFORGE_HISTORY_DB)")
		return nil
	}

	db, err := history.Open(cfg.HistoryDB)
	if err != nil {
		return fmt.Errorf("open history %s: %w", cfg.HistoryDB, err)
	}
	defer db.Close()

	runs, err := db.Recent(histLimit)
	if err != nil {
		return err
	}
	counts, err := db.CountsByKind()
	if err != nil {
		return err
	}

	for _, r := range runs {
		fmt.Printf("%s  %-9s  %s  %s lines  %s\n",
			r.CreatedAt.Format(timeFlagFormat), r.Kind, r.Path, humanize.Comma(r.Lines), r.Detail)
	}
	fmt.Printf("\n%d generate, %d summarize runs recorded\n", counts["generate"], counts["summarize"])
	return nil
}

// recordRun is best-effort: a missing or broken index never fails the command.
func recordRun(log *zap.SugaredLogger, cfg *config.Config, r *history.Run) {
	if cfg.HistoryDB == "" {
		return
	}
	db, err := history.Open(cfg.HistoryDB)
	if err != nil {
		log.Warnw("history index unavailable", "path", cfg.HistoryDB, "error", err)
		return
	}
	defer db.Close()
	if err := db.Insert(r); err != nil {
		log.Warnw("history insert failed", "error", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
