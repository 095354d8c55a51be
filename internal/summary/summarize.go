// internal/summary/summarize.go
package summary

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// maxLineBytes caps a single input line. Real-world logs occasionally carry
// very long lines and the default Scanner limit is too small for them.
const maxLineBytes = 1 << 20

// Summarize streams the file at path through the extractor in one forward
// pass. A missing file is fatal; malformed bytes inside the file are not,
// they are replaced and the line still counts.
func Summarize(path string, ext Extractor, opts Options) (*Aggregate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	defer f.Close()

	agg := newAggregate(path)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := strings.ToValidUTF8(sc.Text(), "�")
		agg.observe(ext.Extract(line), opts)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read log %s: %w", path, err)
	}
	return agg, nil
}
