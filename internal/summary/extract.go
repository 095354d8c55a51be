// internal/summary/extract.go
package summary

import (
	"regexp"
	"strings"
	"time"
)

var (
	timestampRe = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}:\d{2})\b`)
	levelRe     = regexp.MustCompile(`\b(INFO|WARN|WARNING|ERROR|DEBUG|CRITICAL)\b`)
)

// UnknownLevel buckets lines carrying none of the recognized level tokens.
const UnknownLevel = "UNKNOWN"

// ParsedLine is one line's worth of extracted fields. Timestamp is the zero
// time when no recognizable timestamp was found.
type ParsedLine struct {
	Timestamp time.Time
	Level     string
	Message   string
}

// Extractor pulls the timestamp, level, and message out of a raw line. The
// aggregation code depends only on this interface, so a stricter grammar can
// replace the regex matching without touching it.
type Extractor interface {
	Extract(line string) ParsedLine
}

// RegexExtractor matches an ISO-style timestamp anywhere in the line and the
// first whole-word level token.
type RegexExtractor struct{}

func (RegexExtractor) Extract(line string) ParsedLine {
	p := ParsedLine{Level: UnknownLevel, Message: strings.TrimSpace(line)}

	if m := timestampRe.FindStringSubmatch(line); m != nil {
		ts, err := time.Parse("2006-01-02 15:04:05", strings.Replace(m[1], "T", " ", 1))
		if err == nil {
			p.Timestamp = ts
		}
	}
	if m := levelRe.FindStringSubmatch(line); m != nil {
		p.Level = m[1]
	}
	return p
}
