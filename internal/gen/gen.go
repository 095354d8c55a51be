// internal/gen/gen.go
package gen

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ncruces/go-strftime"
)

// Generator synthesizes firewall-style syslog lines from a fixed statistical
// model. One Generator owns one random stream and is not safe for concurrent
// use; seeding the stream fixes the output byte for byte.
type Generator struct {
	model Model
	rng   *rand.Rand
	pid   int
}

// New builds a generator over the given model and random stream. The daemon
// pid stamped on every line is drawn once here, so it is the first draw a
// seeded run makes.
func New(model Model, rng *rand.Rand) *Generator {
	return &Generator{
		model: model,
		rng:   rng,
		pid:   1000 + rng.Intn(9000),
	}
}

// Generate writes count records to w, one per line. The record clock advances
// by an exponentially distributed interval (mean MeanInterval seconds) before
// each record, so timestamps never go backwards.
func (g *Generator) Generate(w io.Writer, count int, start time.Time) error {
	bw := bufio.NewWriter(w)
	ts := start
	for i := 0; i < count; i++ {
		ts = ts.Add(time.Duration(g.rng.ExpFloat64() * g.model.MeanInterval * float64(time.Second)))
		if _, err := bw.WriteString(g.line(ts)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// GenerateFile writes count records to path. An unopenable path is fatal to
// the run; there is no retry.
func (g *Generator) GenerateFile(path string, count int, start time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open output %s: %w", path, err)
	}
	if err := g.Generate(f, count, start); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func (g *Generator) line(ts time.Time) string {
	m := &g.model

	sev := weightedChoice(g.rng, m.Severities)
	proto := m.Protocols[g.rng.Intn(len(m.Protocols))]
	srcIP := randomIPv4(g.rng, m.SourcePrivateBias)
	dstIP := randomIPv4(g.rng, m.DestPrivateBias)

	var srcPort, dstPort int
	if proto == "TCP" || proto == "UDP" {
		srcPort = 1 + g.rng.Intn(65535)
		dstPort = m.ServicePorts[g.rng.Intn(len(m.ServicePorts))]
	}

	inIf := m.Interfaces[g.rng.Intn(len(m.Interfaces))]
	outIf := m.Interfaces[g.rng.Intn(len(m.Interfaces))]
	action := weightedChoice(g.rng, m.Actions)

	bytesCnt := g.rng.Intn(15001)
	var pkts int
	if bytesCnt > 0 {
		if pkts = bytesCnt / (60 + g.rng.Intn(61)); pkts < 1 {
			pkts = 1
		}
	} else {
		pkts = g.rng.Intn(5)
	}

	rule := 100 + g.rng.Intn(3900)
	uid := g.correlationID()

	msg := fmt.Sprintf(
		"%%FW-%s-*.%d: %s; src=%s dst=%s proto=%s spt=%d dpt=%d action=%s bytes=%d pkts=%d rule=%d in=%s out=%s uid=%s",
		sev, rule, g.reason(sev), srcIP, dstIP, proto, srcPort, dstPort, action,
		bytesCnt, pkts, rule, inIf, outIf, uid)

	return fmt.Sprintf("%s %s firewall[%d]: %s",
		strftime.Format("%b %d %H:%M:%S", ts), m.Host, g.pid, stripControl(msg))
}

func (g *Generator) reason(sev string) string {
	var pool []string
	switch sev {
	case "INFO", "NOTICE":
		pool = g.model.ReasonsInfo
	case "WARNING":
		pool = g.model.ReasonsWarn
	default:
		pool = g.model.ReasonsError
	}
	return pool[g.rng.Intn(len(pool))]
}

// correlationID returns 8 lowercase hex characters. The UUID is drawn from the
// generator's own stream so seeded runs reproduce ids too; collisions are
// allowed.
func (g *Generator) correlationID() string {
	id, _ := uuid.NewRandomFromReader(g.rng) // rand.Rand.Read cannot fail
	return hex.EncodeToString(id[:4])
}

// stripControl removes any control character that could break the
// one-record-per-line framing.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\r', '\n', '\t', '\v', '\f':
			return -1
		}
		return r
	}, s)
}
