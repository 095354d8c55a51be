// internal/summary/aggregate.go
package summary

import (
	"sort"
	"strings"
	"time"
)

// Options narrow which lines feed the error-signature counters. The filters
// gate signature extraction only; level counts, the line total, and the
// first/last timestamp markers always reflect the whole stream.
type Options struct {
	Keyword string
	Start   time.Time
	End     time.Time
}

// LevelCount is one row of the level table, in first-seen order.
type LevelCount struct {
	Level string
	Count int
}

// SigCount is one ranked error signature.
type SigCount struct {
	Signature string
	Count     int
}

// Aggregate is the whole-stream running state. Its memory is bounded by the
// number of distinct levels and signatures, never by the input size.
type Aggregate struct {
	Path       string
	TotalLines int
	FirstSeen  time.Time
	LastSeen   time.Time

	levelOrder  []string
	levelCounts map[string]int

	sigOrder  []string
	sigCounts map[string]int
}

func newAggregate(path string) *Aggregate {
	return &Aggregate{
		Path:        path,
		levelCounts: make(map[string]int),
		sigCounts:   make(map[string]int),
	}
}

// observe folds one parsed line into the aggregate.
func (a *Aggregate) observe(p ParsedLine, opts Options) {
	a.TotalLines++

	if _, seen := a.levelCounts[p.Level]; !seen {
		a.levelOrder = append(a.levelOrder, p.Level)
	}
	a.levelCounts[p.Level]++

	if !p.Timestamp.IsZero() {
		if a.FirstSeen.IsZero() {
			a.FirstSeen = p.Timestamp
		}
		a.LastSeen = p.Timestamp

		if !opts.Start.IsZero() && p.Timestamp.Before(opts.Start) {
			return
		}
		if !opts.End.IsZero() && p.Timestamp.After(opts.End) {
			return
		}
	}

	if opts.Keyword != "" && !strings.Contains(strings.ToLower(p.Message), strings.ToLower(opts.Keyword)) {
		return
	}

	if p.Level == "ERROR" || p.Level == "CRITICAL" {
		sig := signature(p.Message)
		if _, seen := a.sigCounts[sig]; !seen {
			a.sigOrder = append(a.sigOrder, sig)
		}
		a.sigCounts[sig]++
	}
}

// Levels returns the level table in first-seen order.
func (a *Aggregate) Levels() []LevelCount {
	out := make([]LevelCount, 0, len(a.levelOrder))
	for _, l := range a.levelOrder {
		out = append(out, LevelCount{Level: l, Count: a.levelCounts[l]})
	}
	return out
}

// TopErrors returns up to n signatures by descending count. Ties keep their
// first-seen order.
func (a *Aggregate) TopErrors(n int) []SigCount {
	out := make([]SigCount, 0, len(a.sigOrder))
	for _, s := range a.sigOrder {
		out = append(out, SigCount{Signature: s, Count: a.sigCounts[s]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// signature drops the message's first whitespace token (usually a timestamp
// or tag) and joins the next seven, which groups near-identical error lines
// under one key.
func signature(msg string) string {
	fields := strings.Fields(msg)
	if len(fields) < 2 {
		return ""
	}
	end := len(fields)
	if end > 8 {
		end = 8
	}
	return strings.Join(fields[1:end], " ")
}
