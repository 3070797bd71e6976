package textparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Scanner holds the input string and the current parse position.
type Scanner struct {
	input string
	pos   int
}

// NewScanner returns a scanner positioned at the start of input.
func NewScanner(input string) *Scanner {
	return &Scanner{input: input}
}

// Rest returns the unconsumed remainder of the input.
func (s *Scanner) Rest() string {
	return s.input[s.pos:]
}

// Pos returns the current offset, for snapshot/restore in combinators.
func (s *Scanner) Pos() int {
	return s.pos
}

// Reset rewinds the scanner to a previously captured offset.
func (s *Scanner) Reset(pos int) {
	s.pos = pos
}

func (s *Scanner) errorf(format string, args ...any) error {
	return &ParseError{Offset: s.pos, Message: fmt.Sprintf(format, args...)}
}

// ParseError reports where in the description a grammar stopped matching.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("at offset %d: %s", e.Offset, e.Message)
}

// Tag consumes the literal lit or fails without consuming anything.
func (s *Scanner) Tag(lit string) error {
	if !strings.HasPrefix(s.Rest(), lit) {
		return s.errorf("expected %q", lit)
	}
	s.pos += len(lit)
	return nil
}

// TryTag consumes lit if present and reports whether it did.
func (s *Scanner) TryTag(lit string) bool {
	if strings.HasPrefix(s.Rest(), lit) {
		s.pos += len(lit)
		return true
	}
	return false
}

// Terminated consumes and returns the non-empty text before the first
// occurrence of terminator, then consumes the terminator. The matched text
// must not span a newline.
//
// When the terminator is a bare "." the scanner first looks for "..": a
// name that itself ends in a period ("Kaj Statter Jr.") is followed by the
// sentence period, and the name's own period belongs to the match.
func (s *Scanner) Terminated(terminator string) (string, error) {
	rest := s.Rest()

	if terminator == "." {
		if idx := strings.Index(rest, ".."); idx > 0 {
			value := rest[:idx+1]
			if !strings.Contains(value, "\n") {
				s.pos += idx + 2
				return value, nil
			}
		}
	}

	idx := strings.Index(rest, terminator)
	if idx <= 0 {
		return "", s.errorf("expected text terminated by %q", terminator)
	}
	value := rest[:idx]
	if strings.Contains(value, "\n") {
		return "", s.errorf("text before %q spans a newline", terminator)
	}
	s.pos += idx + len(terminator)
	return value, nil
}

// UntilPeriodEOF consumes the rest of the current line and strips one
// trailing period. It replaces Terminated(".") at the end of the input,
// where cutting at the first period would truncate a name like
// "Kaj Statter Jr.".
func (s *Scanner) UntilPeriodEOF() (string, error) {
	rest := s.Rest()
	line := rest
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		line = rest[:idx]
	}
	if line == "" {
		return "", s.errorf("expected text ending in a period")
	}
	value, ok := strings.CutSuffix(line, ".")
	if !ok {
		return "", s.errorf("expected text ending in a period")
	}
	s.pos += len(line)
	return value, nil
}

// WholeNumber consumes one or more digits as a non-negative integer.
func (s *Scanner) WholeNumber() (int, error) {
	rest := s.Rest()
	n := 0
	for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, s.errorf("expected a number")
	}
	value, err := strconv.Atoi(rest[:n])
	if err != nil {
		return 0, s.errorf("number out of range: %q", rest[:n])
	}
	s.pos += n
	return value, nil
}

// Float consumes a decimal number with an optional sign and fraction.
func (s *Scanner) Float() (float64, error) {
	rest := s.Rest()
	n := 0
	if n < len(rest) && (rest[n] == '-' || rest[n] == '+') {
		n++
	}
	digits := 0
	for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
		n++
		digits++
	}
	if n < len(rest) && rest[n] == '.' {
		frac := n + 1
		for frac < len(rest) && rest[frac] >= '0' && rest[frac] <= '9' {
			frac++
		}
		if frac > n+1 {
			digits += frac - n - 1
			n = frac
		}
	}
	if digits == 0 {
		return 0, s.errorf("expected a decimal number")
	}
	value, err := strconv.ParseFloat(rest[:n], 64)
	if err != nil {
		return 0, s.errorf("bad decimal number %q", rest[:n])
	}
	s.pos += n
	return value, nil
}

// EOF fails unless the whole input has been consumed.
func (s *Scanner) EOF() error {
	if s.pos != len(s.input) {
		return s.errorf("unparsed trailing text %q", s.Rest())
	}
	return nil
}
