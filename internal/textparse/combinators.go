package textparse

// Parser is one grammar step: it advances the scanner on success and
// leaves it where it failed otherwise. Combinators that try alternatives
// rewind explicitly.
type Parser[T any] func(*Scanner) (T, error)

// Run applies the parser to the whole input and requires it to consume
// every byte.
func Run[T any](input string, parser Parser[T]) (T, error) {
	s := NewScanner(input)
	value, err := parser(s)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := s.EOF(); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

// Alt tries each parser in order from the same starting position and
// returns the first success.
func Alt[T any](parsers ...Parser[T]) Parser[T] {
	return func(s *Scanner) (T, error) {
		start := s.Pos()
		var lastErr error
		for _, parser := range parsers {
			s.Reset(start)
			value, err := parser(s)
			if err == nil {
				return value, nil
			}
			lastErr = err
		}
		s.Reset(start)
		var zero T
		if lastErr == nil {
			lastErr = s.errorf("no alternatives given")
		}
		return zero, lastErr
	}
}

// Opt applies the parser and returns (zero, false) without consuming
// anything when it fails.
func Opt[T any](parser Parser[T]) Parser[Maybe[T]] {
	return func(s *Scanner) (Maybe[T], error) {
		start := s.Pos()
		value, err := parser(s)
		if err != nil {
			s.Reset(start)
			return Maybe[T]{}, nil
		}
		return Maybe[T]{Value: value, OK: true}, nil
	}
}

// Maybe is the result of Opt.
type Maybe[T any] struct {
	Value T
	OK    bool
}

// Many0 applies the parser repeatedly until it fails, returning all
// results. Zero matches is a success.
func Many0[T any](parser Parser[T]) Parser[[]T] {
	return func(s *Scanner) ([]T, error) {
		var values []T
		for {
			start := s.Pos()
			value, err := parser(s)
			if err != nil {
				s.Reset(start)
				return values, nil
			}
			if s.Pos() == start {
				return values, nil
			}
			values = append(values, value)
		}
	}
}

// SeparatedList1 parses one or more items separated by the literal sep.
func SeparatedList1[T any](sep string, parser Parser[T]) Parser[[]T] {
	return func(s *Scanner) ([]T, error) {
		first, err := parser(s)
		if err != nil {
			return nil, err
		}
		values := []T{first}
		for {
			start := s.Pos()
			if !s.TryTag(sep) {
				return values, nil
			}
			value, err := parser(s)
			if err != nil {
				s.Reset(start)
				return values, nil
			}
			values = append(values, value)
		}
	}
}
