package item

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ItemRegistry_Go/internal/domain"
	"github.com/osse101/ItemRegistry_Go/internal/metrics"
	"github.com/osse101/ItemRegistry_Go/internal/script"
	"github.com/osse101/ItemRegistry_Go/internal/testing/leaktest"
)

// trackedScript counts how often it is released
type trackedScript struct {
	source   string
	line     int
	released atomic.Int32
}

func (s *trackedScript) Source() string { return s.source }
func (s *trackedScript) Line() int      { return s.line }
func (s *trackedScript) Release()       { s.released.Add(1) }

// recordingCompiler hands out trackedScripts and remembers them in order
type recordingCompiler struct {
	mu      sync.Mutex
	scripts []*trackedScript
}

func (c *recordingCompiler) Compile(text string, line int) (domain.Script, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := &trackedScript{source: text, line: line}
	c.scripts = append(c.scripts, s)
	return s, nil
}

func (c *recordingCompiler) compiled() []*trackedScript {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*trackedScript(nil), c.scripts...)
}

// writeDB writes lines to a temp item database and returns its path
func writeDB(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "item_db.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

// itemLine builds the 17 fixed fields of a line with zero stats
func itemLine(id, alias string, class, buy, sell string) string {
	return strings.Join([]string{
		id, alias, alias, class, buy, sell,
		"10", "0", "0", "0", "0", "0", "2", "0", "0", "0", "0",
	}, ",")
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content+"\n"), 0o644)
}

// countedCompiler compiles with the block compiler and reports every handle
// to a leaktest.HandleCounter
type countedCompiler struct {
	inner   *script.BlockCompiler
	handles *leaktest.HandleCounter
}

type countedScript struct {
	domain.Script
	release func()
}

func (s *countedScript) Release() {
	s.release()
	s.Script.Release()
}

func (c *countedCompiler) Compile(text string, line int) (domain.Script, error) {
	s, err := c.inner.Compile(text, line)
	if err != nil {
		return nil, err
	}
	return &countedScript{Script: s, release: c.handles.Acquire()}, nil
}

// recordsGauge reads the current value of the records gauge
func recordsGauge(t *testing.T) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, metrics.ItemDBRecords.Write(&m))
	return m.GetGauge().GetValue()
}

// failingReader returns data, then err instead of io.EOF
type failingReader struct {
	data *strings.Reader
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.data.Len() == 0 {
		return 0, r.err
	}
	return r.data.Read(p)
}
