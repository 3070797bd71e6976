package textparse

import "testing"

func TestScanner_Terminated(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		terminator string
		want       string
		wantRest   string
		wantErr    bool
	}{
		{"simple", "Jessica Telephone hits a Double!", " hits a ", "Jessica Telephone", "Double!", false},
		{"period", "Tot Fox reaches base. More text", ".", "Tot Fox reaches base", " More text", false},
		{"name ending in period", "Kaj Statter Jr.. More text", ".", "Kaj Statter Jr.", " More text", false},
		{"empty match", " hits", " hits", "", "", true},
		{"missing terminator", "no terminator here", "!", "", "", true},
		{"newline inside match", "line one\nline two!", "!", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner(tt.input)
			got, err := s.Terminated(tt.terminator)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Terminated() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got != tt.want {
				t.Errorf("Terminated() = %q, want %q", got, tt.want)
			}
			if s.Rest() != tt.wantRest {
				t.Errorf("Rest() = %q, want %q", s.Rest(), tt.wantRest)
			}
		})
	}
}

func TestScanner_UntilPeriodEOF(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain name", "Wyatt Mason.", "Wyatt Mason", false},
		{"name with period", "Kaj Statter Jr..", "Kaj Statter Jr.", false},
		{"no trailing period", "Wyatt Mason", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner(tt.input)
			got, err := s.UntilPeriodEOF()
			if (err != nil) != tt.wantErr {
				t.Fatalf("UntilPeriodEOF() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("UntilPeriodEOF() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScanner_WholeNumber(t *testing.T) {
	s := NewScanner("42-1")
	got, err := s.WholeNumber()
	if err != nil {
		t.Fatalf("WholeNumber() error = %v", err)
	}
	if got != 42 {
		t.Errorf("WholeNumber() = %d, want 42", got)
	}
	if s.Rest() != "-1" {
		t.Errorf("Rest() = %q, want %q", s.Rest(), "-1")
	}

	s = NewScanner("abc")
	if _, err := s.WholeNumber(); err == nil {
		t.Error("WholeNumber() on non-digit input: error = nil, want error")
	}
}

func TestScanner_Float(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"4.5 more", 4.5, false},
		{"-2.0", -2.0, false},
		{"10", 10, false},
		{"x", 0, true},
	}

	for _, tt := range tests {
		s := NewScanner(tt.input)
		got, err := s.Float()
		if (err != nil) != tt.wantErr {
			t.Fatalf("Float(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("Float(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestScanner_TagAndEOF(t *testing.T) {
	s := NewScanner("Play ball!")
	if err := s.Tag("Play ball!"); err != nil {
		t.Fatalf("Tag() error = %v", err)
	}
	if err := s.EOF(); err != nil {
		t.Errorf("EOF() error = %v, want nil", err)
	}

	s = NewScanner("Play ball! extra")
	if err := s.Tag("Play ball!"); err != nil {
		t.Fatalf("Tag() error = %v", err)
	}
	if err := s.EOF(); err == nil {
		t.Error("EOF() with leftovers: error = nil, want error")
	}
}
