package verify

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const ballRecord = `{"id":"79b73ef9-6e5c-469d-9da8-e7b0861ba93e","created":"2021-04-14T16:20:06.825Z","type":14,"category":0,"description":"Ball. 2-1","playerTags":[],"gameTags":["9466d8d8-bb1c-4b02-9b56-89b05f75e84c"],"teamTags":["36569151-a2fb-43c1-9df7-2df512424c82","b72f3061-f573-40d7-832a-5ad475bd7909"],"metadata":{"play":42,"subPlay":-1},"sim":"thisidisstaticyo","day":64,"season":14,"tournament":-1,"phase":6,"nuts":0}`

func TestReader_CountsAndFailures(t *testing.T) {
	bad := strings.Replace(ballRecord, "Ball. 2-1", "Ball. two-one", 1)
	library := strings.Replace(ballRecord,
		`"metadata":{`,
		`"metadata":{"_eventually_ingest_source":"blaseball.com_library",`, 1)
	input := strings.Join([]string{ballRecord, bad, library, "{not json"}, "\n")

	report, err := Reader(strings.NewReader(input), "feed.ndjson")
	if err != nil {
		t.Fatalf("Reader() error = %v", err)
	}
	if report.Records != 2 {
		t.Errorf("Records = %d, want 2", report.Records)
	}
	if report.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", report.Skipped)
	}
	if len(report.Failures) != 2 {
		t.Fatalf("Failures = %d, want 2", len(report.Failures))
	}
	if report.Failures[0].Line != 2 {
		t.Errorf("first failure line = %d, want 2", report.Failures[0].Line)
	}
	if report.Failures[0].ID != "79b73ef9-6e5c-469d-9da8-e7b0861ba93e" {
		t.Errorf("first failure id = %q, want the record id", report.Failures[0].ID)
	}
}

func TestRecord_StripsIngestMetadata(t *testing.T) {
	stamped := strings.Replace(ballRecord,
		`"metadata":{`,
		`"metadata":{"_eventually_ingest_time":1640000000,"_eventually_ingest_source":"feed",`, 1)
	report, err := Reader(strings.NewReader(stamped), "stamped.ndjson")
	if err != nil {
		t.Fatalf("Reader() error = %v", err)
	}
	if !report.Ok() {
		t.Errorf("round trip failed: %+v", report.Failures)
	}
}

func TestFiles_MergesAcrossWorkers(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.ndjson", "b.ndjson", "c.ndjson"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(ballRecord+"\n"), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		paths = append(paths, path)
	}

	report, err := Files(context.Background(), paths, 2)
	if err != nil {
		t.Fatalf("Files() error = %v", err)
	}
	if report.Records != 3 {
		t.Errorf("Records = %d, want 3", report.Records)
	}
	if !report.Ok() {
		t.Errorf("failures = %+v, want none", report.Failures)
	}
}
