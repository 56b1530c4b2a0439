package item

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/osse101/ItemRegistry_Go/internal/domain"
	"github.com/osse101/ItemRegistry_Go/internal/logger"
	"github.com/osse101/ItemRegistry_Go/internal/metrics"
	"github.com/osse101/ItemRegistry_Go/internal/script"
)

// LineError describes one database line that could not be used in full
type LineError struct {
	File string
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	if errors.Is(e.Err, domain.ErrScriptCompile) {
		return fmt.Sprintf(ErrFmtScriptLine, e.File, e.Line, e.Err)
	}
	return fmt.Sprintf(ErrFmtBadItemLine, e.File, e.Line, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// LoadResult summarizes one database file
type LoadResult struct {
	Path   string
	Lines  int
	Loaded int
	Errors []*LineError
}

// Failed returns the number of lines with errors
func (r *LoadResult) Failed() int {
	return len(r.Errors)
}

// OK reports whether every line loaded cleanly
func (r *LoadResult) OK() bool {
	return len(r.Errors) == 0
}

// Err joins the line errors under ErrLoadIncomplete, or returns nil
func (r *LoadResult) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, 0, len(r.Errors)+1)
	errs = append(errs, fmt.Errorf("%w: %s: %d bad lines", domain.ErrLoadIncomplete, r.Path, len(r.Errors)))
	for _, e := range r.Errors {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

// Loader reads item database files into a Registry
type Loader struct {
	registry *Registry
	compiler script.Compiler
}

// NewLoader creates a Loader that fills registry, compiling scripts with compiler
func NewLoader(registry *Registry, compiler script.Compiler) *Loader {
	return &Loader{
		registry: registry,
		compiler: compiler,
	}
}

// Load reads path into the registry.
// A file that cannot be opened leaves the registry untouched and returns an
// error wrapping domain.ErrOpenDatabase; so does a read failure partway
// through, after the lines before it were stored. Bad lines, oversized ones
// included, are skipped; the result lists them and the returned error wraps
// domain.ErrLoadIncomplete.
func (l *Loader) Load(ctx context.Context, path string) (*LoadResult, error) {
	log := logger.FromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		log.Error(LogMsgOpenFailed, "file", path, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrOpenDatabase, path, err)
	}
	defer f.Close()

	return l.LoadReader(ctx, path, f)
}

// LoadReader reads database lines from r, using name in diagnostics
func (l *Loader) LoadReader(ctx context.Context, name string, r io.Reader) (*LoadResult, error) {
	log := logger.FromContext(ctx)
	start := time.Now()
	defer func() {
		metrics.ItemDBLoadDuration.Observe(time.Since(start).Seconds())
	}()

	result := &LoadResult{Path: name}

	br := bufio.NewReaderSize(r, readBufferSize)
	for {
		line, tooLong, err := readLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Error(LogMsgReadFailed, "file", name, "line", result.Lines+1, "error", err)
			return result, fmt.Errorf("%w: "+ErrFmtReadFailed, domain.ErrOpenDatabase, name, err)
		}
		result.Lines++

		var lineErrs []*LineError
		switch {
		case tooLong:
			metrics.ItemDBLines.WithLabelValues(lineResultMalformed).Inc()
			lineErrs = []*LineError{{
				File: name,
				Line: result.Lines,
				Text: line,
				Err:  fmt.Errorf("%w: "+ErrMsgLineTooLong, domain.ErrMalformedLine, MaxLineLength),
			}}
		case IsComment(line):
			continue
		default:
			var stored bool
			lineErrs, stored = l.loadLine(name, result.Lines, line)
			if stored {
				result.Loaded++
			}
		}

		for _, e := range lineErrs {
			if errors.Is(e.Err, domain.ErrScriptCompile) {
				log.Error(LogMsgScriptFailed, "file", e.File, "line", e.Line, "error", e.Err)
				continue
			}
			log.Error(e.Error(), "file", e.File, "line", e.Line)
		}
		result.Errors = append(result.Errors, lineErrs...)
	}

	log.Info(LogMsgLoadCompleted, "file", name, "count", result.Loaded, "failed", result.Failed())
	return result, result.Err()
}

// readLine returns the next line without its terminator. A line longer than
// MaxLineLength is consumed in full but only its first lineErrorTextLen bytes
// are returned, with tooLong set. err is io.EOF once r is exhausted.
func readLine(r *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	read := false
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if err == io.EOF && read {
				break
			}
			return "", false, err
		}
		read = true
		if !tooLong && len(buf)+len(chunk) > MaxLineLength {
			tooLong = true
			buf = buf[:min(len(buf), lineErrorTextLen)]
		}
		if !tooLong {
			buf = append(buf, chunk...)
		} else if len(buf) < lineErrorTextLen {
			buf = append(buf, chunk[:min(len(chunk), lineErrorTextLen-len(buf))]...)
		}
		if !isPrefix {
			break
		}
	}
	return strings.TrimSuffix(string(buf), "\r"), tooLong, nil
}

// LoadAll loads every path in order; later files override earlier ids.
// It stops at the first file that cannot be opened or read to the end.
func (l *Loader) LoadAll(ctx context.Context, paths []string) ([]*LoadResult, error) {
	results := make([]*LoadResult, 0, len(paths))
	var incomplete []error
	for _, path := range paths {
		res, err := l.Load(ctx, path)
		if res != nil {
			results = append(results, res)
		}
		if errors.Is(err, domain.ErrOpenDatabase) {
			return results, err
		}
		if err != nil {
			incomplete = append(incomplete, err)
		}
	}
	return results, errors.Join(incomplete...)
}

// Reload loads paths into a fresh registry and swaps it in.
// If a file cannot be opened or read the live registry is left as it was.
func (l *Loader) Reload(ctx context.Context, paths []string) ([]*LoadResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgReloadStarted, "paths", paths)

	staging := NewLoader(newStagingRegistry(), l.compiler)
	results, err := staging.LoadAll(ctx, paths)
	if errors.Is(err, domain.ErrOpenDatabase) {
		staging.registry.Clear()
		return results, err
	}

	l.registry.replaceWith(staging.registry)
	log.Info(LogMsgReloadFinished, "records", l.registry.Len())
	return results, err
}

// loadLine stores the item described by line. ok is false when the fixed
// fields are unusable; script failures still store the item.
func (l *Loader) loadLine(file string, lineNo int, line string) (errs []*LineError, ok bool) {
	parts := SplitLine(line)

	it, err := ExtractFields(parts.Fixed)
	if err != nil {
		metrics.ItemDBLines.WithLabelValues(lineResultMalformed).Inc()
		return []*LineError{{
			File: file,
			Line: lineNo,
			Text: line,
			Err:  fmt.Errorf("%w: %w", domain.ErrMalformedLine, err),
		}}, false
	}
	it.DerivePrices()

	if parts.HasUseScript() {
		s, err := l.compile(file, lineNo, line, parts.UseTail)
		if err != nil {
			errs = append(errs, err)
		}
		it.UseScript = s
	}
	if parts.HasEquipScript() {
		s, err := l.compile(file, lineNo, line, parts.EquipTail)
		if err != nil {
			errs = append(errs, err)
		}
		it.EquipScript = s
	}

	l.registry.Store(&it)

	if len(errs) > 0 {
		metrics.ItemDBLines.WithLabelValues(lineResultScriptError).Inc()
	} else {
		metrics.ItemDBLines.WithLabelValues(lineResultLoaded).Inc()
	}
	return errs, true
}

func (l *Loader) compile(file string, lineNo int, line, tail string) (domain.Script, *LineError) {
	s, err := l.compiler.Compile(tail, lineNo)
	if err != nil {
		return nil, &LineError{
			File: file,
			Line: lineNo,
			Text: line,
			Err:  fmt.Errorf("%w: %w", domain.ErrScriptCompile, err),
		}
	}
	return s, nil
}
