package textparse

import (
	"reflect"
	"testing"
)

func word(lit string) Parser[string] {
	return func(s *Scanner) (string, error) {
		if err := s.Tag(lit); err != nil {
			return "", err
		}
		return lit, nil
	}
}

func TestRun(t *testing.T) {
	got, err := Run("Ball.", word("Ball."))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != "Ball." {
		t.Errorf("Run() = %q, want %q", got, "Ball.")
	}

	if _, err := Run("Ball. leftover", word("Ball.")); err == nil {
		t.Error("Run() with trailing text: error = nil, want error")
	}
}

func TestAlt(t *testing.T) {
	parser := Alt(word("Top"), word("Bottom"))

	for _, input := range []string{"Top", "Bottom"} {
		if got, err := Run(input, parser); err != nil || got != input {
			t.Errorf("Run(%q) = %q, %v", input, got, err)
		}
	}

	s := NewScanner("Middle")
	if _, err := parser(s); err == nil {
		t.Fatal("Alt() on no match: error = nil, want error")
	}
	if s.Pos() != 0 {
		t.Errorf("Alt() consumed input on failure, pos = %d", s.Pos())
	}
}

func TestOpt(t *testing.T) {
	parser := Opt(word("maybe "))

	s := NewScanner("maybe so")
	got, err := parser(s)
	if err != nil || !got.OK {
		t.Fatalf("Opt() = %+v, %v, want match", got, err)
	}

	s = NewScanner("definitely")
	got, err = parser(s)
	if err != nil || got.OK {
		t.Fatalf("Opt() = %+v, %v, want no match", got, err)
	}
	if s.Pos() != 0 {
		t.Errorf("Opt() consumed input on failure, pos = %d", s.Pos())
	}
}

func TestMany0(t *testing.T) {
	parser := Many0(word("ab"))

	got, err := Run("ababab", parser)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Many0() matched %d times, want 3", len(got))
	}

	s := NewScanner("xyz")
	values, err := parser(s)
	if err != nil || len(values) != 0 {
		t.Errorf("Many0() on no match = %v, %v, want empty success", values, err)
	}
}

func TestSeparatedList1(t *testing.T) {
	item := func(s *Scanner) (int, error) { return s.WholeNumber() }
	parser := SeparatedList1(", ", item)

	got, err := Run("1, 2, 3", parser)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("SeparatedList1() = %v, want %v", got, want)
	}

	s := NewScanner("7 and done")
	values, err := parser(s)
	if err != nil || len(values) != 1 {
		t.Errorf("SeparatedList1() single item = %v, %v", values, err)
	}
	if s.Rest() != " and done" {
		t.Errorf("Rest() = %q, want %q", s.Rest(), " and done")
	}
}
