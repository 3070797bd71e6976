package wire

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestMetadata_RoundTripUnknownKeys(t *testing.T) {
	raw := []byte(`{"play":12,"subPlay":-1,"mod":"COFFEE_RALLY","type":0,"away":0.0}`)

	var m Metadata
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if m.Play == nil || *m.Play != 12 {
		t.Errorf("Play = %v, want 12", m.Play)
	}
	if m.SubPlay == nil || *m.SubPlay != -1 {
		t.Errorf("SubPlay = %v, want -1", m.SubPlay)
	}
	if got := string(m.Other["mod"]); got != `"COFFEE_RALLY"` {
		t.Errorf("Other[mod] = %s, want %q", got, "COFFEE_RALLY")
	}
	// Number encodings must survive verbatim, including 0.0 vs 0.
	if got := string(m.Other["away"]); got != "0.0" {
		t.Errorf("Other[away] = %s, want 0.0 preserved verbatim", got)
	}

	out, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var got, want map[string]json.RawMessage
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("Unmarshal(out) error = %v", err)
	}
	if err := json.Unmarshal(raw, &want); err != nil {
		t.Fatalf("Unmarshal(raw) error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("round trip key count = %d, want %d", len(got), len(want))
	}
	for key, value := range want {
		if string(got[key]) != string(value) {
			t.Errorf("round trip key %q = %s, want %s", key, got[key], value)
		}
	}
}

func TestMetadata_NullIsEmptyBag(t *testing.T) {
	var m Metadata
	if err := json.Unmarshal([]byte("null"), &m); err != nil {
		t.Fatalf("Unmarshal(null) error = %v", err)
	}
	if m.Other != nil || m.Play != nil || len(m.Children) != 0 {
		t.Errorf("Unmarshal(null) = %+v, want zero Metadata", m)
	}
}

func TestRecord_NullVersusEmptyTags(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantNil   bool
		wantCount int
	}{
		{"null tags", `{"playerTags":null,"gameTags":null,"teamTags":null,"metadata":null}`, true, 0},
		{"empty tags", `{"playerTags":[],"gameTags":[],"teamTags":[],"metadata":{}}`, false, 0},
		{"one tag", `{"playerTags":["338694b7-6256-4724-86b6-3884299a5d9e"],"gameTags":[],"teamTags":[],"metadata":{}}`, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Record
			if err := json.Unmarshal([]byte(tt.raw), &r); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if (r.PlayerTags == nil) != tt.wantNil {
				t.Errorf("PlayerTags nil = %v, want %v", r.PlayerTags == nil, tt.wantNil)
			}
			if r.PlayerTags != nil && len(*r.PlayerTags) != tt.wantCount {
				t.Errorf("len(PlayerTags) = %d, want %d", len(*r.PlayerTags), tt.wantCount)
			}
		})
	}
}

func TestSortChildren(t *testing.T) {
	sub := func(n int64) *int64 { return &n }
	child := func(id string, subPlay *int64, children ...Record) Record {
		return Record{
			ID:       uuid.MustParse(id),
			Metadata: Metadata{SubPlay: subPlay, Children: children},
		}
	}

	record := Record{Metadata: Metadata{Children: []Record{
		child("00000000-0000-0000-0000-000000000002", sub(2),
			child("00000000-0000-0000-0000-00000000000b", sub(1)),
			child("00000000-0000-0000-0000-00000000000a", sub(0)),
		),
		child("00000000-0000-0000-0000-000000000000", sub(0)),
		child("00000000-0000-0000-0000-000000000001", sub(1)),
	}}}

	SortChildren(&record)

	children := record.Metadata.Children
	for i := range children {
		if got := *children[i].Metadata.SubPlay; got != int64(i) {
			t.Errorf("children[%d].SubPlay = %d, want %d", i, got, i)
		}
	}
	nested := children[2].Metadata.Children
	if *nested[0].Metadata.SubPlay != 0 || *nested[1].Metadata.SubPlay != 1 {
		t.Errorf("nested children not sorted: %d, %d", *nested[0].Metadata.SubPlay, *nested[1].Metadata.SubPlay)
	}
}

func TestSortChildren_MissingSubPlayLeavesOrder(t *testing.T) {
	sub := func(n int64) *int64 { return &n }
	record := Record{Metadata: Metadata{Children: []Record{
		{Metadata: Metadata{SubPlay: sub(1)}},
		{Metadata: Metadata{}},
		{Metadata: Metadata{SubPlay: sub(0)}},
	}}}

	SortChildren(&record)

	children := record.Metadata.Children
	if *children[0].Metadata.SubPlay != 1 {
		t.Errorf("children reordered despite a missing subPlay")
	}
}

func TestDecode_Invalid(t *testing.T) {
	if _, err := Decode([]byte(`{"type":"not a number"}`)); err == nil {
		t.Error("Decode() error = nil, want invalid record error")
	}
}
