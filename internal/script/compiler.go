package script

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/osse101/ItemRegistry_Go/internal/domain"
)

// Sentinel errors for script compilation
var (
	ErrNotABlock          = errors.New("script does not start with '{'")
	ErrUnterminatedBlock  = errors.New("unterminated script block")
	ErrUnterminatedString = errors.New("unterminated string in script")
)

// Compiler turns the text of a brace-delimited block into an owned script.
// text starts at the opening '{' and may run past the closing '}'; anything
// after the matching brace is ignored. line is used for diagnostics only.
type Compiler interface {
	Compile(text string, line int) (domain.Script, error)
}

// BlockCompiler is the default Compiler. It checks that the block is closed
// and keeps its body; it does not execute anything.
type BlockCompiler struct{}

// NewBlockCompiler creates a new BlockCompiler
func NewBlockCompiler() *BlockCompiler {
	return &BlockCompiler{}
}

// Compile extracts the first balanced block of text
func (c *BlockCompiler) Compile(text string, line int) (domain.Script, error) {
	body, err := Block(text)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", line, err)
	}
	return &Script{source: strings.TrimSpace(body), line: line}, nil
}

// Block returns the body between text's leading '{' and its matching '}'.
// Braces inside double-quoted strings do not count.
func Block(text string) (string, error) {
	if !strings.HasPrefix(text, "{") {
		return "", ErrNotABlock
	}

	depth := 0
	inString := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch ch {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[1:i], nil
			}
		}
	}

	if inString {
		return "", ErrUnterminatedString
	}
	return "", ErrUnterminatedBlock
}

// Script is the handle produced by BlockCompiler
type Script struct {
	mu       sync.Mutex
	source   string
	line     int
	released bool
}

// Source returns the block body, empty once released
func (s *Script) Source() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return ""
	}
	return s.source
}

// Line returns the database line the script was compiled from
func (s *Script) Line() int {
	return s.line
}

// Release frees the script. Safe to call more than once.
func (s *Script) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.released = true
	s.source = ""
}

// Released reports whether Release has been called
func (s *Script) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released
}
