package filter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSplit_RoutesBySimAndSeason(t *testing.T) {
	dump := strings.Join([]string{
		`{"id":"a","sim":"thisidisstaticyo","season":14,"type":14}`,
		`{"id":"b","sim":"thisidisstaticyo","season":15,"type":5}`,
		`{"id":"c","sim":"thisidisstaticyo","season":14,"type":6}`,
		`{"id":"d","sim":"gamma8","season":0,"type":14}`,
		`not json at all`,
		`{"id":"e","type":14}`,
	}, "\n")

	dir := t.TempDir()
	stats, err := Split(strings.NewReader(dump), dir)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if stats.Lines != 6 {
		t.Errorf("Lines = %d, want 6", stats.Lines)
	}
	if stats.Written != 4 {
		t.Errorf("Written = %d, want 4", stats.Written)
	}
	if stats.Malformed != 2 {
		t.Errorf("Malformed = %d, want 2", stats.Malformed)
	}

	main, err := os.ReadFile(filepath.Join(dir, "thisidisstaticyo-s14.ndjson"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(main), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("season 14 lines = %d, want 2", len(lines))
	}
	if !strings.Contains(lines[0], `"id":"a"`) || !strings.Contains(lines[1], `"id":"c"`) {
		t.Errorf("season 14 records out of order: %q", lines)
	}

	if _, err := os.Stat(filepath.Join(dir, "gamma8-s0.ndjson")); err != nil {
		t.Errorf("gamma8 output missing: %v", err)
	}
}
