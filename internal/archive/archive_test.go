package archive

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/calliehart/blasefeed/internal/wire"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testRecord(id string, day int) wire.Record {
	empty := func() *[]uuid.UUID { s := []uuid.UUID{}; return &s }
	return wire.Record{
		ID:          uuid.MustParse(id),
		Created:     time.Date(2021, 4, 14, 16, 20, 6, 0, time.UTC),
		Type:        wire.Ball,
		Description: "Ball. 2-1",
		PlayerTags:  empty(),
		GameTags:    empty(),
		TeamTags:    empty(),
		Sim:         "thisidisstaticyo",
		Day:         day,
		Season:      14,
		Tournament:  -1,
		Phase:       6,
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	rec := testRecord("79b73ef9-6e5c-469d-9da8-e7b0861ba93e", 64)

	if err := store.Save(ctx, rec); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := store.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != rec.ID || got.Description != rec.Description || got.Type != rec.Type {
		t.Errorf("Get() = %+v, want the saved record", got)
	}

	// Saving the same id again replaces the payload.
	rec.Description = "Ball. 3-1"
	if err := store.Save(ctx, rec); err != nil {
		t.Fatalf("Save() again error = %v", err)
	}
	got, err = store.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get() after upsert error = %v", err)
	}
	if got.Description != "Ball. 3-1" {
		t.Errorf("Description = %q, want the upserted value", got.Description)
	}
}

func TestStore_GetMissing(t *testing.T) {
	store := openTestStore(t)
	_, err := store.Get(context.Background(), uuid.MustParse("00000000-0000-0000-0000-000000000001"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestStore_ListBySeason(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	later := testRecord("0be5f1a0-5c32-47f7-9d3f-4b7ff5d42a14", 70)
	earlier := testRecord("9a7cbd4e-3b82-4e55-8a0f-6d4bbf6f0d02", 3)
	other := testRecord("2e6f4a8f-ef5f-4f4f-9931-6e8dd1a41b8c", 10)
	other.Season = 15

	for _, rec := range []wire.Record{later, earlier, other} {
		if err := store.Save(ctx, rec); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	got, err := store.ListBySeason(ctx, "thisidisstaticyo", 14)
	if err != nil {
		t.Fatalf("ListBySeason() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListBySeason() = %d records, want 2", len(got))
	}
	if got[0].Day != 3 || got[1].Day != 70 {
		t.Errorf("order = day %d then %d, want 3 then 70", got[0].Day, got[1].Day)
	}
}
