package feed

import (
	"time"

	"github.com/google/uuid"

	"github.com/calliehart/blasefeed/internal/wire"
)

// Occurrence is one fully-typed feed entry: the envelope fields every
// record carries plus a per-kind payload.
type Occurrence struct {
	ID         uuid.UUID `json:"id"`
	Created    time.Time `json:"created"`
	Sim        string    `json:"sim"`
	Day        int       `json:"day"`
	Season     int       `json:"season"`
	Tournament int       `json:"tournament"`
	Phase      int       `json:"phase"`
	Nuts       int       `json:"nuts"`

	Payload Payload `json:"payload"`
}

// Payload is the per-kind body of an occurrence. The set of payloads is
// closed: every implementation lives in this package, one per known
// discriminant.
type Payload interface {
	// buildInto renders the payload into a prepared builder and returns
	// the finished record.
	buildInto(b *builder) wire.Record
}

// Build reconstructs the wire record for an occurrence. The result is
// bit-equivalent to the parsed input up to canonical child order.
func Build(occ Occurrence) wire.Record {
	b := newBuilder(&occ)
	rec := occ.Payload.buildInto(b)
	wire.SortChildren(&rec)
	return rec
}
