package wire

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/calliehart/blasefeed/internal/errors"
)

// Record is one feed entry in the upstream wire format. Children are full
// Records nested under metadata.
type Record struct {
	ID          uuid.UUID `json:"id"`
	Created     time.Time `json:"created"`
	Type        EventType `json:"type"`
	Category    Category  `json:"category"`
	Metadata    Metadata  `json:"metadata"`
	Blurb       string    `json:"blurb"`
	Description string    `json:"description"`

	// Tag lists are positional and order-significant. They are null (not
	// empty) on redacted records, so presence must survive a round trip.
	PlayerTags *[]uuid.UUID `json:"playerTags"`
	GameTags   *[]uuid.UUID `json:"gameTags"`
	TeamTags   *[]uuid.UUID `json:"teamTags"`

	Sim        string `json:"sim"`
	Day        int    `json:"day"`
	Season     int    `json:"season"`
	Tournament int    `json:"tournament"`
	Phase      int    `json:"phase"`
	Nuts       int    `json:"nuts"`
}

// Metadata is the open key/value bag attached to every record. The keys
// below are reserved by the feed itself; everything else is kept verbatim
// in Other so an unrecognized key survives decode/encode untouched.
type Metadata struct {
	Children   []Record
	Siblings   []Record
	IngestTime *int64
	IngestSrc  *string

	Play       *int64
	SubPlay    *int64
	SiblingIDs *[]uuid.UUID
	Parent     *uuid.UUID

	// Other holds the per-kind metadata fields (mod, type, before, after,
	// item fields, ...) as raw JSON, preserving the upstream encoding of
	// numbers exactly.
	Other map[string]json.RawMessage
}

type metadataKnown struct {
	Children   []Record      `json:"children,omitempty"`
	Siblings   []Record      `json:"_eventually_siblingEvents,omitempty"`
	IngestTime *int64        `json:"_eventually_ingest_time,omitempty"`
	IngestSrc  *string       `json:"_eventually_ingest_source,omitempty"`
	Play       *int64        `json:"play,omitempty"`
	SubPlay    *int64        `json:"subPlay,omitempty"`
	SiblingIDs *[]uuid.UUID  `json:"siblingIds,omitempty"`
	Parent     *uuid.UUID    `json:"parent,omitempty"`
}

var metadataReservedKeys = map[string]bool{
	"children":                    true,
	"_eventually_siblingEvents":   true,
	"_eventually_ingest_time":     true,
	"_eventually_ingest_source":   true,
	"play":                        true,
	"subPlay":                     true,
	"siblingIds":                  true,
	"parent":                      true,
}

// UnmarshalJSON decodes the reserved keys into struct fields and keeps
// everything else raw. A JSON null is treated as an empty bag, matching
// records that carry "metadata": null.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	*m = Metadata{}
	if string(data) == "null" {
		return nil
	}

	var known metadataKnown
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	m.Children = known.Children
	m.Siblings = known.Siblings
	m.IngestTime = known.IngestTime
	m.IngestSrc = known.IngestSrc
	m.Play = known.Play
	m.SubPlay = known.SubPlay
	m.SiblingIDs = known.SiblingIDs
	m.Parent = known.Parent

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for key := range all {
		if metadataReservedKeys[key] {
			delete(all, key)
		}
	}
	if len(all) > 0 {
		m.Other = all
	}
	return nil
}

// MarshalJSON re-flattens the reserved keys and the open bag into one
// object.
func (m Metadata) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(metadataKnown{
		Children:   m.Children,
		Siblings:   m.Siblings,
		IngestTime: m.IngestTime,
		IngestSrc:  m.IngestSrc,
		Play:       m.Play,
		SubPlay:    m.SubPlay,
		SiblingIDs: m.SiblingIDs,
		Parent:     m.Parent,
	})
	if err != nil {
		return nil, err
	}

	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for key, value := range m.Other {
		merged[key] = value
	}
	return json.Marshal(merged)
}

// Decode parses one JSON record and canonicalizes child order.
func Decode(data []byte) (Record, error) {
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return Record{}, errors.Wrap(errors.CodeInvalidRecord, "decode wire record", err)
	}
	SortChildren(&record)
	return record, nil
}

// SortChildren orders a record's children by their subPlay index,
// recursively. Sibling order is not always meaningful upstream, so the
// comparison side of the round-trip contract works on this canonical
// order. Children missing a subPlay index are left as found.
func SortChildren(record *Record) {
	children := record.Metadata.Children
	sortable := true
	for i := range children {
		if children[i].Metadata.SubPlay == nil {
			sortable = false
			break
		}
	}
	if sortable {
		sort.SliceStable(children, func(i, j int) bool {
			return *children[i].Metadata.SubPlay < *children[j].Metadata.SubPlay
		})
	}
	for i := range children {
		SortChildren(&children[i])
	}
}
